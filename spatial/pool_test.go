package spatial

import (
	"testing"

	"github.com/lixenwraith/tilesight/arena"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	id   int
	kind uint8
}

func TestPool_AllocAndAt(t *testing.T) {
	a := arena.NewArena(64 * arena.KB)
	p := NewPool[item]("items", 4, 1, a)

	h1, v1 := p.Alloc(2, 3)
	v1.id = 7
	h2, v2 := p.Alloc(-4, 9)
	v2.id = 8

	assert.NotEqual(t, Nil, h1)
	assert.NotEqual(t, h1, h2)
	assert.Equal(t, 2, p.Len())

	h, v, ok := p.At(2, 3)
	require.True(t, ok)
	assert.Equal(t, h1, h)
	assert.Equal(t, 7, v.id)

	_, _, ok = p.At(0, 0)
	assert.False(t, ok)
}

func TestPool_FreeRecyclesBeforeGrowing(t *testing.T) {
	a := arena.NewArena(64 * arena.KB)
	p := NewPool[item]("items", 4, 1, a)

	h1, v := p.Alloc(1, 1)
	v.id = 99
	used := a.SizeInUse()

	require.True(t, p.Free(h1))
	assert.False(t, p.Free(h1))
	assert.False(t, p.Live(h1))
	assert.Equal(t, 0, p.Len())

	h2, v2 := p.Alloc(5, 5)
	assert.Equal(t, h1, h2)
	assert.Zero(t, v2.id, "recycled record must be zeroed")
	assert.Equal(t, used, a.SizeInUse())

	x, y := p.Entry(h2).Pos()
	assert.Equal(t, [2]int{5, 5}, [2]int{x, y})
}

func TestPool_GrowsByPage(t *testing.T) {
	a := arena.NewArena(256 * arena.KB)
	p := NewPool[item]("items", 32, 16, a)

	var last Handle
	for i := 0; i < PageLen+1; i++ {
		last, _ = p.Alloc(i, 0)
	}
	assert.Equal(t, Handle(PageLen+1), last)
	assert.Len(t, p.pages, 2)
	assert.Equal(t, PageLen+1, p.Hash().Len())
}

func TestPool_DetachAttach(t *testing.T) {
	a := arena.NewArena(64 * arena.KB)
	p := NewPool[item]("items", 4, 1, a)

	h, _ := p.Alloc(3, 3)
	require.True(t, p.Detach(h))
	assert.False(t, p.Detach(h))
	assert.True(t, p.Live(h))
	assert.False(t, p.Indexed(h))
	_, _, ok := p.At(3, 3)
	assert.False(t, ok)

	// detached records chain into foreign lists through their entry
	var bag List
	bag.Push(p, h)
	assert.Equal(t, 1, bag.Len(p))
	require.True(t, bag.Remove(p, h))

	require.True(t, p.Attach(h, -2, 6))
	assert.False(t, p.Attach(h, 0, 0))
	got, _, ok := p.At(-2, 6)
	require.True(t, ok)
	assert.Equal(t, h, got)
}

func TestPool_MoveIgnoresDetached(t *testing.T) {
	a := arena.NewArena(64 * arena.KB)
	p := NewPool[item]("items", 4, 1, a)

	h, _ := p.Alloc(0, 0)
	p.Move(h, 1, 1)
	_, _, ok := p.At(1, 1)
	assert.True(t, ok)

	p.Detach(h)
	p.Move(h, 1, 1)
	x, y := p.Entry(h).Pos()
	assert.Equal(t, [2]int{1, 1}, [2]int{x, y})
}

func TestPool_BadHandlePanics(t *testing.T) {
	p := NewPool[item]("items", 4, 1, arena.NewArena(arena.KB))
	assert.Panics(t, func() { p.Get(Handle(5)) })
	assert.False(t, p.Live(Nil))
}

func TestPool_Search(t *testing.T) {
	a := arena.NewArena(64 * arena.KB)
	scratch := arena.NewArena(arena.KB)
	p := NewPool[item]("items", 32, 16, a)

	h1, v := p.Alloc(4, 4)
	v.kind = 1
	_, v = p.Alloc(6, 4)
	v.kind = 2
	p.Alloc(100, 100)

	kind1 := func(h Handle, _ *Entry) bool { return p.Get(h).kind == 1 }
	got := collect(p.Search(5, 5, 1, kind1, scratch))
	assert.Equal(t, []Handle{h1}, got)
}
