// Package bitmap implements a packed 1-bit-per-cell 2D grid allocated from an
// arena. Cells outside the grid read as set, so the exterior of any bitmap
// behaves as blocked.
package bitmap

import (
	"math/bits"
	"strings"

	"github.com/lixenwraith/tilesight/arena"
)

// Bitmap is a row-major 1-bit image. Bit 7 of each byte is the leftmost cell.
type Bitmap struct {
	width  int32
	height int32
	data   []byte
}

// New allocates a cleared width x height bitmap from a.
func New(width, height int, a *arena.Arena) *Bitmap {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	bmp := arena.New[Bitmap](a)
	bmp.width = int32(width)
	bmp.height = int32(height)
	bmp.data = arena.MakeSlice[byte](a, DataSize(width, height))
	return bmp
}

// DataSize returns the number of bytes backing a width x height bitmap.
// Both dimensions are rounded up to whole bytes.
func DataSize(width, height int) int {
	return roundBitUp(width) * roundBitUp(height) / 8
}

func roundBitUp(n int) int {
	return (n + 7) &^ 7
}

func mask(offset int) byte {
	return 1 << (7 - offset)
}

// Width returns the number of columns.
func (b *Bitmap) Width() int { return int(b.width) }

// Height returns the number of rows.
func (b *Bitmap) Height() int { return int(b.height) }

// InBounds reports whether (x, y) addresses a cell of the bitmap.
func (b *Bitmap) InBounds(x, y int) bool {
	return b != nil && x >= 0 && x < int(b.width) && y >= 0 && y < int(b.height)
}

// Get returns the cell at (x, y). Out-of-range coordinates, and a nil
// bitmap, read as set.
func (b *Bitmap) Get(x, y int) bool {
	if !b.InBounds(x, y) {
		return true
	}
	i := y*int(b.width) + x
	return b.data[i/8]&mask(i%8) != 0
}

// Put writes the cell at (x, y) and reports whether it was in range.
func (b *Bitmap) Put(x, y int, v bool) bool {
	if !b.InBounds(x, y) {
		return false
	}
	i := y*int(b.width) + x
	if v {
		b.data[i/8] |= mask(i % 8)
	} else {
		b.data[i/8] &^= mask(i % 8)
	}
	return true
}

// Fill sets every cell to v.
func (b *Bitmap) Fill(v bool) {
	if b == nil {
		return
	}
	var fill byte
	if v {
		fill = 0xFF
	}
	for i := range b.data {
		b.data[i] = fill
	}
}

// Count returns the number of set cells inside the grid.
func (b *Bitmap) Count() int {
	if b == nil {
		return 0
	}
	cells := int(b.width) * int(b.height)
	n := 0
	full := cells / 8
	for _, v := range b.data[:full] {
		n += bits.OnesCount8(v)
	}
	if rem := cells % 8; rem != 0 {
		n += bits.OnesCount8(b.data[full] & ^byte(0xFF>>rem))
	}
	return n
}

// String renders the bitmap one row per line, '#' for set cells.
func (b *Bitmap) String() string {
	var sb strings.Builder
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.Get(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
