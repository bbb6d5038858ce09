package arena

import "unsafe"

// New returns a pointer to a zeroed T stored inside the arena.
// T may only reference arena memory, see the package documentation.
func New[T any](a *Arena) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return &zero
	}
	b := a.Alloc(size)
	return (*T)(unsafe.Pointer(&b[0]))
}

// MakeSlice allocates a zeroed slice of n elements of type T inside the arena.
// Returns nil if n <= 0. Panics with ErrSizeOverflow if n*sizeof(T) overflows.
func MakeSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if elemSize == 0 {
		return make([]T, n)
	}
	if n > maxInt/elemSize {
		panic(ErrSizeOverflow)
	}
	b := a.Alloc(elemSize * n)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

const maxInt = int(^uint(0) >> 1)
