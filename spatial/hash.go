package spatial

import (
	"fmt"
	"math/bits"

	"github.com/lixenwraith/tilesight/arena"
	"github.com/lixenwraith/tilesight/vmath"
)

// Hash maps 2D integer positions to buckets of entries. An entry at (x, y)
// lives in the bucket selected by mixing its cell index
// (floor(x/cellLen), floor(y/cellLen)).
type Hash struct {
	store     Entries
	cellShift uint
	cellLen   int
	buckets   arena.Sized[List]
	heads     []List
}

// NewHash creates a hash with bucketCount buckets over cells of cellLen
// units, resolving handles through store. The bucket array is allocated from
// a. Panics if bucketCount or cellLen is not a power of two.
func NewHash(bucketCount, cellLen int, store Entries, a *arena.Arena) *Hash {
	if !vmath.IsPow2(bucketCount) {
		panic(fmt.Errorf("spatial: bucket count %d is not a power of two", bucketCount))
	}
	if !vmath.IsPow2(cellLen) {
		panic(fmt.Errorf("spatial: cell length %d is not a power of two", cellLen))
	}
	buckets, err := arena.MakeSized[List](a, bucketCount)
	if err != nil {
		panic(err)
	}
	return &Hash{
		store:     store,
		cellShift: uint(bits.TrailingZeros(uint(cellLen))),
		cellLen:   cellLen,
		buckets:   buckets,
		heads:     buckets.Slice(),
	}
}

// CellLen returns the side length of a hash cell.
func (h *Hash) CellLen() int { return h.cellLen }

// BucketCount returns the number of buckets.
func (h *Hash) BucketCount() int { return h.buckets.Len() }

// Cell returns the cell index containing (x, y).
func (h *Hash) Cell(x, y int) (cx, cy int) {
	return x >> h.cellShift, y >> h.cellShift
}

// Bucket returns the bucket index for (x, y).
func (h *Hash) Bucket(x, y int) int {
	cx, cy := h.Cell(x, y)
	return int(vmath.Hash32(vmath.PackCell(cx, cy)) & uint32(len(h.heads)-1))
}

// Get returns the first entry positioned exactly at (x, y).
func (h *Hash) Get(x, y int) (Handle, bool) {
	head := &h.heads[h.Bucket(x, y)]
	for cur := head.First(); cur != Nil; {
		e := h.store.Entry(cur)
		if int(e.x) == x && int(e.y) == y {
			return cur, true
		}
		cur = e.next
	}
	return Nil, false
}

// Insert links the entry into the bucket for its current position.
func (h *Hash) Insert(hd Handle) {
	x, y := h.store.Entry(hd).Pos()
	h.heads[h.Bucket(x, y)].Push(h.store, hd)
}

// Remove unlinks the entry and reports whether it was indexed.
func (h *Hash) Remove(hd Handle) bool {
	x, y := h.store.Entry(hd).Pos()
	return h.heads[h.Bucket(x, y)].Remove(h.store, hd)
}

// Move displaces the entry by (dx, dy), relinking it only when its bucket
// changes.
func (h *Hash) Move(hd Handle, dx, dy int) {
	e := h.store.Entry(hd)
	x, y := e.Pos()
	src := h.Bucket(x, y)
	dst := h.Bucket(x+dx, y+dy)
	if src != dst {
		h.heads[src].Remove(h.store, hd)
		e.set(x+dx, y+dy)
		h.heads[dst].Push(h.store, hd)
		return
	}
	e.set(x+dx, y+dy)
}

// Len counts every indexed entry.
func (h *Hash) Len() int {
	n := 0
	for i := range h.heads {
		n += h.heads[i].Len(h.store)
	}
	return n
}
