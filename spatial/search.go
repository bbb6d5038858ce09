package spatial

import (
	"iter"

	"github.com/lixenwraith/tilesight/arena"
	"github.com/lixenwraith/tilesight/vmath"
)

// Filter selects entries during a search.
type Filter func(h Handle, e *Entry) bool

// All accepts every entry.
func All(Handle, *Entry) bool { return true }

// Search walks the buckets around an origin cell. The set of buckets is
// snapshotted when the search is created; inserting or removing entries in
// those buckets while the search is live is not supported. A Search must not
// outlive the scratch region it was allocated from.
type Search struct {
	hash    *Hash
	heads   []Handle
	i       int
	cur     Handle
	ox, oy  int
	maxDist int
	filter  Filter
}

// Search returns an iterator over the entries within radius cells of (x, y)
// that pass filter and lie at most radius*cellLen away in Chebyshev distance.
// The bucket snapshot is allocated from scratch.
func (h *Hash) Search(x, y, radius int, filter Filter, scratch *arena.Arena) *Search {
	if radius < 0 {
		radius = 0
	}
	if filter == nil {
		filter = All
	}
	width := 2*radius + 1
	heads := arena.MakeSlice[Handle](scratch, width*width)[:0]
	seen := arena.MakeSlice[int32](scratch, width*width)[:0]

	for i := 0; i < width*width; i++ {
		dx := (i%width - radius) * h.cellLen
		dy := (i/width - radius) * h.cellLen
		b := int32(h.Bucket(x+dx, y+dy))
		dup := false
		for _, s := range seen {
			if s == b {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		seen = append(seen, b)
		heads = append(heads, h.heads[b].First())
	}

	s := &Search{
		hash:    h,
		heads:   heads,
		ox:      x,
		oy:      y,
		maxDist: radius * h.cellLen,
		filter:  filter,
	}
	if len(heads) > 0 {
		s.cur = heads[0]
	}
	return s
}

// Next returns the next matching entry, or false when exhausted.
func (s *Search) Next() (Handle, bool) {
	for {
		for s.cur == Nil {
			if s.i >= len(s.heads)-1 {
				return Nil, false
			}
			s.i++
			s.cur = s.heads[s.i]
		}

		hd := s.cur
		e := s.hash.store.Entry(hd)
		s.cur = e.next

		x, y := e.Pos()
		if vmath.Chebyshev(x, y, s.ox, s.oy) > s.maxDist {
			continue
		}
		if s.filter(hd, e) {
			return hd, true
		}
	}
}

// All adapts the search to a range-over-func iterator.
func (s *Search) All() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		for {
			hd, ok := s.Next()
			if !ok || !yield(hd) {
				return
			}
		}
	}
}
