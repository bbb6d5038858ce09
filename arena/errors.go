package arena

import "errors"

var (
	// ErrOutOfMemory is carried by the panic raised when an allocation does
	// not fit into the remaining capacity.
	ErrOutOfMemory = errors.New("arena: out of memory")

	// ErrCorrupted is carried by the panic raised when a sized array header
	// fails its sentinel check.
	ErrCorrupted = errors.New("arena: sized array header corrupted")

	// ErrSizeOverflow is returned when count*stride of a sized array does not
	// fit the address space.
	ErrSizeOverflow = errors.New("arena: sized array size overflow")

	// ErrForeignMark is returned by Pop for memory that is not a live
	// allocation of this arena.
	ErrForeignMark = errors.New("arena: pop of foreign or stale memory")

	// ErrReleased is carried by the panic raised on use after Release.
	ErrReleased = errors.New("arena: use after Release")
)
