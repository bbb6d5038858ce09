package world

import (
	"bytes"

	"github.com/lixenwraith/tilesight/arena"
	"github.com/lixenwraith/tilesight/logger"
	"github.com/lixenwraith/tilesight/spatial"
)

// NameLen is the size of a mobile's name buffer, terminator included.
const NameLen = 16

// Mobile is anything that moves or can be carried: the player, monsters and
// items. Carried mobiles are detached from the map and chained into their
// holder's inventory.
type Mobile struct {
	name      [NameLen]byte
	Tile      Tile
	inventory spatial.List
}

// SetName stores name, truncated to NameLen-1 bytes.
func (mob *Mobile) SetName(name string) {
	mob.name = [NameLen]byte{}
	copy(mob.name[:NameLen-1], name)
}

// Name returns the stored name.
func (mob *Mobile) Name() string {
	if i := bytes.IndexByte(mob.name[:], 0); i >= 0 {
		return string(mob.name[:i])
	}
	return string(mob.name[:])
}

// CreateMobile places a new mobile at (x, y), reusing a removed slot when one
// is free.
func (m *Map) CreateMobile(x, y int) (spatial.Handle, *Mobile) {
	h, mob := m.mobs.Alloc(x, y)
	mob.Tile.FG = 15
	return h, mob
}

// Mobile returns the mobile for h.
func (m *Map) Mobile(h spatial.Handle) *Mobile { return m.mobs.Get(h) }

// MobilePos returns the position of h. A carried mobile reports the tile it
// was picked up from.
func (m *Map) MobilePos(h spatial.Handle) (x, y int) {
	return m.mobs.Entry(h).Pos()
}

// MoveMobile displaces h by (dx, dy). Stepping onto a portal source moves the
// mobile to the portal destination instead. The move is refused when the
// final tile blocks movement. It reports whether the mobile moved.
func (m *Map) MoveMobile(h spatial.Handle, dx, dy int) bool {
	if !m.mobs.Indexed(h) {
		return false
	}
	x, y := m.mobs.Entry(h).Pos()
	tx, ty := x+dx, y+dy

	if p, ok := m.PortalAt(tx, ty); ok {
		tx, ty = p.Dst()
		logger.Component("world").WithField("handle", h).Debugf("portal to (%d, %d)", tx, ty)
	}

	if m.TerraGet(tx, ty).BlocksMove {
		return false
	}
	m.mobs.Move(h, tx-x, ty-y)
	return true
}

// RemoveMobile drops everything h carries onto its tile and returns its slot
// to the pool. A carried mobile must be dropped before it can be removed.
func (m *Map) RemoveMobile(h spatial.Handle) bool {
	if !m.mobs.Indexed(h) {
		return false
	}
	for {
		if _, ok := m.Drop(h); !ok {
			break
		}
	}
	return m.mobs.Free(h)
}

// PickUp moves another mobile standing on h's tile into h's inventory and
// returns it.
func (m *Map) PickUp(h spatial.Handle) (spatial.Handle, bool) {
	if !m.mobs.Indexed(h) {
		return spatial.Nil, false
	}
	x, y := m.mobs.Entry(h).Pos()

	target := spatial.Nil
	m.arena.Scope(func() {
		notSelf := func(other spatial.Handle, _ *spatial.Entry) bool { return other != h }
		target, _ = m.mobs.Search(x, y, 0, notSelf, m.arena).Next()
	})
	if target == spatial.Nil {
		return spatial.Nil, false
	}

	m.mobs.Detach(target)
	m.mobs.Get(h).inventory.Push(m.mobs, target)
	return target, true
}

// Drop places the most recently picked item back on h's tile.
func (m *Map) Drop(h spatial.Handle) (spatial.Handle, bool) {
	if !m.mobs.Indexed(h) {
		return spatial.Nil, false
	}
	item := m.mobs.Get(h).inventory.Pop(m.mobs)
	if item == spatial.Nil {
		return spatial.Nil, false
	}
	x, y := m.mobs.Entry(h).Pos()
	m.mobs.Attach(item, x, y)
	return item, true
}

// Inventory lists what h carries, most recent first. The slice is allocated
// from scratch.
func (m *Map) Inventory(h spatial.Handle, scratch *arena.Arena) []spatial.Handle {
	inv := &m.mobs.Get(h).inventory
	out := arena.MakeSlice[spatial.Handle](scratch, inv.Len(m.mobs))
	i := 0
	inv.Each(m.mobs, func(item spatial.Handle) bool {
		out[i] = item
		i++
		return true
	})
	return out
}
