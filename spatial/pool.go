package spatial

import (
	"fmt"

	"github.com/lixenwraith/tilesight/arena"
	"github.com/lixenwraith/tilesight/logger"
)

// PageLen is the number of records per pool page.
const PageLen = 64

type slotState uint8

const (
	slotFree slotState = iota
	slotIndexed
	slotDetached
)

type record[T any] struct {
	entry Entry
	state slotState
	value T
}

// Pool is a slab of position-tagged records of type T indexed by a Hash.
// Record pages come from the arena; freed records are recycled through a
// free-list before any new page is requested. T may only reference arena
// memory.
type Pool[T any] struct {
	name  string
	arena *arena.Arena
	hash  *Hash
	pages [][]record[T]
	slots int
	free  List
	live  int
}

// NewPool creates a pool whose index has bucketCount buckets of cellLen
// cells. Both must be powers of two.
func NewPool[T any](name string, bucketCount, cellLen int, a *arena.Arena) *Pool[T] {
	p := &Pool[T]{name: name, arena: a}
	p.hash = NewHash(bucketCount, cellLen, p, a)
	return p
}

// Hash returns the pool's spatial index.
func (p *Pool[T]) Hash() *Hash { return p.hash }

// Len returns the number of live records.
func (p *Pool[T]) Len() int { return p.live }

// Entry implements Entries.
func (p *Pool[T]) Entry(h Handle) *Entry {
	return &p.record(h).entry
}

// Get returns the record value for h.
func (p *Pool[T]) Get(h Handle) *T {
	return &p.record(h).value
}

// Live reports whether h refers to a record that has not been freed.
func (p *Pool[T]) Live(h Handle) bool {
	i := int(h) - 1
	if i < 0 || i >= p.slots {
		return false
	}
	return p.pages[i/PageLen][i%PageLen].state != slotFree
}

// Indexed reports whether h is currently linked into the hash.
func (p *Pool[T]) Indexed(h Handle) bool {
	return p.Live(h) && p.record(h).state == slotIndexed
}

func (p *Pool[T]) record(h Handle) *record[T] {
	i := int(h) - 1
	if i < 0 || i >= p.slots {
		panic(fmt.Errorf("spatial: %s pool handle %d out of range", p.name, h))
	}
	return &p.pages[i/PageLen][i%PageLen]
}

// Alloc returns a zeroed record positioned at (x, y) and indexed in the hash.
// A previously freed record is reused when one is available.
func (p *Pool[T]) Alloc(x, y int) (Handle, *T) {
	h := p.free.Pop(p)
	if h != Nil {
		logger.Component("spatial").WithField("pool", p.name).WithField("handle", h).Debug("recycled record")
	} else {
		if p.slots%PageLen == 0 {
			p.pages = append(p.pages, arena.MakeSlice[record[T]](p.arena, PageLen))
		}
		p.slots++
		h = Handle(p.slots)
	}

	r := p.record(h)
	var zero T
	r.value = zero
	r.entry = Entry{}
	r.entry.set(x, y)
	r.state = slotIndexed
	p.hash.Insert(h)
	p.live++
	return h, &r.value
}

// At returns the first record positioned exactly at (x, y).
func (p *Pool[T]) At(x, y int) (Handle, *T, bool) {
	h, ok := p.hash.Get(x, y)
	if !ok {
		return Nil, nil, false
	}
	return h, p.Get(h), true
}

// Move displaces an indexed record by (dx, dy).
func (p *Pool[T]) Move(h Handle, dx, dy int) {
	if !p.Indexed(h) {
		return
	}
	p.hash.Move(h, dx, dy)
}

// Detach unlinks a record from the hash but keeps it alive, so its Entry
// can be chained into another list.
func (p *Pool[T]) Detach(h Handle) bool {
	if !p.Indexed(h) {
		return false
	}
	p.hash.Remove(h)
	p.record(h).state = slotDetached
	return true
}

// Attach places a detached record at (x, y) and links it into the hash.
func (p *Pool[T]) Attach(h Handle, x, y int) bool {
	if !p.Live(h) || p.record(h).state != slotDetached {
		return false
	}
	r := p.record(h)
	r.entry.next = Nil
	r.entry.set(x, y)
	r.state = slotIndexed
	p.hash.Insert(h)
	return true
}

// Free unlinks a record and returns it to the free-list. A detached record
// must already be off any list it was chained into.
func (p *Pool[T]) Free(h Handle) bool {
	if !p.Live(h) {
		return false
	}
	r := p.record(h)
	if r.state == slotIndexed {
		p.hash.Remove(h)
	}
	var zero T
	r.value = zero
	r.state = slotFree
	p.free.Push(p, h)
	p.live--
	return true
}

// Search iterates the records near (x, y), see Hash.Search.
func (p *Pool[T]) Search(x, y, radius int, filter Filter, scratch *arena.Arena) *Search {
	return p.hash.Search(x, y, radius, filter, scratch)
}
