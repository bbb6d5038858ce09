package arena

import (
	"fmt"
	"unsafe"

	"github.com/lixenwraith/tilesight/logger"
)

const sizedSentinel uint32 = 0xDEADBEEF

// sizedHeader precedes the element storage of a sized array in arena memory.
type sizedHeader struct {
	sentinel uint32
	count    uint64
}

var sizedHeaderSize = alignUp(int(unsafe.Sizeof(sizedHeader{})), Alignment)

// Sized is an array allocated from an arena that carries its own element
// count in a header placed immediately before the data. The header is guarded
// by a sentinel checked on every access.
type Sized[T any] struct {
	hdr  *sizedHeader
	data unsafe.Pointer
}

// MakeSized allocates a zeroed sized array of count elements.
// Returns ErrSizeOverflow, without allocating, if count*sizeof(T) would
// overflow.
func MakeSized[T any](a *Arena, count int) (Sized[T], error) {
	var zero T
	stride := int(unsafe.Sizeof(zero))
	if count < 0 {
		return Sized[T]{}, fmt.Errorf("%w: negative count %d", ErrSizeOverflow, count)
	}
	if stride != 0 && count > (maxInt-sizedHeaderSize)/stride {
		logger.Component("arena").WithField("count", count).WithField("stride", stride).Warn("sized array size overflow")
		return Sized[T]{}, fmt.Errorf("%w: count %d stride %d", ErrSizeOverflow, count, stride)
	}

	b := a.Alloc(sizedHeaderSize + count*stride)
	hdr := (*sizedHeader)(unsafe.Pointer(&b[0]))
	hdr.sentinel = sizedSentinel
	hdr.count = uint64(count)
	s := Sized[T]{hdr: hdr}
	if len(b) > sizedHeaderSize {
		s.data = unsafe.Pointer(&b[sizedHeaderSize])
	}
	return s, nil
}

// Len returns the element count recorded in the header.
// Panics with ErrCorrupted if the header sentinel does not match.
func (s Sized[T]) Len() int {
	return int(s.header().count)
}

// Slice returns the element storage.
// Panics with ErrCorrupted if the header sentinel does not match.
func (s Sized[T]) Slice() []T {
	n := int(s.header().count)
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(s.data), n)
}

// IsZero reports whether s was never allocated.
func (s Sized[T]) IsZero() bool {
	return s.hdr == nil
}

func (s Sized[T]) header() *sizedHeader {
	if s.hdr == nil || s.hdr.sentinel != sizedSentinel {
		logger.Component("arena").Error("sized array used after its memory was reclaimed or corrupted")
		panic(ErrCorrupted)
	}
	return s.hdr
}

func alignUp(n, p int) int {
	return (n + p - 1) &^ (p - 1)
}
