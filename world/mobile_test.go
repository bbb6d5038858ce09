package world

import (
	"strings"
	"testing"

	"github.com/lixenwraith/tilesight/arena"
	"github.com/lixenwraith/tilesight/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(m *Map, h spatial.Handle) [2]int {
	x, y := m.MobilePos(h)
	return [2]int{x, y}
}

func TestCreateMobile_Defaults(t *testing.T) {
	m := newTestMap(t)
	h, mob := m.CreateMobile(3, 3)
	assert.Equal(t, uint8(15), mob.Tile.FG)
	assert.Equal(t, "", mob.Name())
	assert.Same(t, mob, m.Mobile(h))
	assert.Equal(t, [2]int{3, 3}, pos(m, h))
}

func TestMobile_Name(t *testing.T) {
	var mob Mobile
	mob.SetName("goblin")
	assert.Equal(t, "goblin", mob.Name())

	mob.SetName(strings.Repeat("a", 40))
	assert.Equal(t, strings.Repeat("a", NameLen-1), mob.Name())

	mob.SetName("rat")
	assert.Equal(t, "rat", mob.Name())
}

func TestMoveMobile(t *testing.T) {
	m := newTestMap(t)
	h, _ := m.CreateMobile(3, 3)

	assert.True(t, m.MoveMobile(h, 1, 0))
	assert.Equal(t, [2]int{4, 3}, pos(m, h))

	m.TerraPut(5, 3, Wall)
	assert.False(t, m.MoveMobile(h, 1, 0))
	assert.Equal(t, [2]int{4, 3}, pos(m, h))

	// crossing into the next mob cell relinks the entry
	assert.True(t, m.MoveMobile(h, 0, 20))
	assert.Equal(t, [2]int{4, 23}, pos(m, h))
	got, _, ok := m.Mobs().At(4, 23)
	require.True(t, ok)
	assert.Equal(t, h, got)
}

func TestMoveMobile_ThroughPortal(t *testing.T) {
	m := newTestMap(t)
	_, err := m.CreatePortal(5, 3, 20, 20)
	require.NoError(t, err)
	h, _ := m.CreateMobile(4, 3)

	assert.True(t, m.MoveMobile(h, 1, 0))
	assert.Equal(t, [2]int{20, 20}, pos(m, h))

	_, _, ok := m.Mobs().At(5, 3)
	assert.False(t, ok)
}

func TestMoveMobile_PortalIntoWall(t *testing.T) {
	m := newTestMap(t)
	_, err := m.CreatePortal(5, 3, 20, 20)
	require.NoError(t, err)
	m.TerraPut(20, 20, Wall)
	h, _ := m.CreateMobile(4, 3)

	assert.False(t, m.MoveMobile(h, 1, 0))
	assert.Equal(t, [2]int{4, 3}, pos(m, h))
}

func TestPickUpDrop(t *testing.T) {
	m := newTestMap(t)
	scratch := arena.NewArena(arena.KB)
	player, _ := m.CreateMobile(2, 2)
	sword, sm := m.CreateMobile(2, 2)
	sm.SetName("sword")
	shield, _ := m.CreateMobile(3, 2)

	got, ok := m.PickUp(player)
	require.True(t, ok)
	assert.Equal(t, sword, got)
	_, _, ok = m.Mobs().At(2, 2)
	require.True(t, ok)
	at, _, _ := m.Mobs().At(2, 2)
	assert.Equal(t, player, at, "only the picker remains on the tile")

	_, ok = m.PickUp(player)
	assert.False(t, ok, "nothing left to pick up")

	require.True(t, m.MoveMobile(player, 1, 0))
	got, ok = m.PickUp(player)
	require.True(t, ok)
	assert.Equal(t, shield, got)
	assert.Equal(t, []spatial.Handle{shield, sword}, m.Inventory(player, scratch))

	// carried items do not move with the map index
	assert.False(t, m.MoveMobile(sword, 1, 0))

	require.True(t, m.MoveMobile(player, 0, 5))
	got, ok = m.Drop(player)
	require.True(t, ok)
	assert.Equal(t, shield, got)
	assert.Equal(t, [2]int{3, 7}, pos(m, shield))
	assert.Equal(t, []spatial.Handle{sword}, m.Inventory(player, scratch))
	assert.Equal(t, "sword", m.Mobile(sword).Name())
}

func TestPickUp_DoesNotLeakArena(t *testing.T) {
	m := newTestMap(t)
	player, _ := m.CreateMobile(2, 2)
	m.CreateMobile(2, 2)
	used := m.Arena().SizeInUse()

	_, ok := m.PickUp(player)
	require.True(t, ok)
	assert.Equal(t, used, m.Arena().SizeInUse())
}

func TestRemoveMobile(t *testing.T) {
	m := newTestMap(t)
	player, _ := m.CreateMobile(1, 1)
	coin, _ := m.CreateMobile(1, 1)
	_, ok := m.PickUp(player)
	require.True(t, ok)

	assert.False(t, m.RemoveMobile(coin), "carried mobiles must be dropped first")
	assert.True(t, m.RemoveMobile(player))
	assert.False(t, m.RemoveMobile(player))

	got, _, ok := m.Mobs().At(1, 1)
	require.True(t, ok)
	assert.Equal(t, coin, got, "inventory is dropped on removal")

	again, mob := m.CreateMobile(9, 9)
	assert.Equal(t, player, again, "freed slot is recycled")
	assert.Equal(t, "", mob.Name())
	assert.Equal(t, [2]int{9, 9}, pos(m, again))
}
