// Package arena implements a fixed-capacity bump allocator (memory arena).
//
// # Overview
//
// An Arena owns one contiguous byte range sized at construction. Allocations
// advance an offset after aligning it to Alignment; nothing is freed
// individually. Capacity is reclaimed in bulk by rewinding to an earlier
// mark with Pop or Rewind, or to the beginning with Reset. Reclaimed bytes
// are zero-filled, so every allocation starts out zeroed.
//
// # Basic Usage
//
//	a := arena.NewArena(10 * arena.MB)
//	defer a.Release()
//
//	buf := a.Alloc(256)
//	tile := arena.New[Tile](a)
//	tiles := arena.MakeSlice[Tile](a, 256)
//
//	m := a.Mark()
//	scratch := a.Alloc(1024) // per-frame data
//	a.Rewind(m)              // scratch is gone, capacity is back
//
// # Failure Model
//
// The arena is sized against a fixed budget, so running out of capacity is a
// configuration or logic error: Alloc panics with an error wrapping
// ErrOutOfMemory. Sized arrays guard their header with a sentinel and panic
// with ErrCorrupted when it no longer matches, which is what happens when a
// sized array is used after the region holding it was popped.
//
// # Aliasing Rules
//
// Values placed in arena memory through New or MakeSlice may only reference
// other arena memory. The garbage collector does not trace arena bytes, so a
// pointer to ordinary heap memory stored there can dangle. References handed
// out by an arena must not be used after the region holding them is popped.
//
// The Arena type is not goroutine-safe.
package arena
