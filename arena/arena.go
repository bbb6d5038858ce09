package arena

import (
	"fmt"
	"unsafe"

	"github.com/lixenwraith/tilesight/logger"
	"github.com/sirupsen/logrus"
)

// Byte size units for arena budgets.
const (
	KB = 1024
	MB = 1024 * KB
)

// Alignment is the alignment of every allocation: two pointer widths, the
// largest natural alignment of any Go type on supported platforms.
const Alignment = 2 * int(unsafe.Sizeof(uintptr(0)))

// Arena is a fixed-capacity bump allocator. Not goroutine-safe.
type Arena struct {
	buf       []byte // len(buf) == capacity, &buf[0] aligned to Alignment
	offset    int
	highWater int
}

// Mark is a position in an arena that can be rewound to.
type Mark struct {
	offset int
}

// NewArena creates an arena owning capacity bytes.
// Panics if capacity is not positive.
func NewArena(capacity int) *Arena {
	if capacity <= 0 {
		panic(fmt.Errorf("arena: invalid capacity %d", capacity))
	}
	// Over-allocate so the usable range can start on an aligned address;
	// padding then depends only on the offset.
	raw := make([]byte, capacity+Alignment)
	shift := int(-uintptr(unsafe.Pointer(&raw[0])) & uintptr(Alignment-1))
	return &Arena{buf: raw[shift : shift+capacity : shift+capacity]}
}

// Alloc returns n zeroed bytes owned by the caller until the region holding
// them is popped or the arena is reset or released.
// Panics with ErrOutOfMemory if n bytes (plus alignment padding) do not fit.
// Returns nil if n <= 0.
func (a *Arena) Alloc(n int) []byte {
	a.panicIfReleased()
	if n <= 0 {
		return nil
	}

	padding := -a.offset & (Alignment - 1)
	available := len(a.buf) - a.offset - padding
	if available < 0 {
		available = 0
	}
	if n > available {
		logger.Component("arena").WithFields(logrus.Fields{
			"requested": n,
			"available": available,
			"capacity":  len(a.buf),
		}).Error("allocation exceeds remaining capacity")
		panic(fmt.Errorf("%w: tried allocating %d bytes, only %d left", ErrOutOfMemory, n, available))
	}

	start := a.offset + padding
	a.offset = start + n
	if a.offset > a.highWater {
		a.highWater = a.offset
	}
	p := a.buf[start:a.offset:a.offset]
	clear(p)
	return p
}

// Mark returns the current allocation position.
func (a *Arena) Mark() Mark {
	a.panicIfReleased()
	return Mark{offset: a.offset}
}

// Rewind releases everything allocated after m and zero-fills it.
// Rewinding to a mark that lies ahead of the current offset is a no-op.
func (a *Arena) Rewind(m Mark) {
	a.panicIfReleased()
	if m.offset < 0 || m.offset > a.offset {
		return
	}
	clear(a.buf[m.offset:a.offset])
	a.offset = m.offset
}

// Pop rewinds the arena to the start of p, which must be memory previously
// returned by this arena and not yet reclaimed. Everything allocated from p
// onwards is invalidated and zero-filled.
func (a *Arena) Pop(p []byte) error {
	a.panicIfReleased()
	off, ok := a.offsetOf(p)
	if !ok || off > a.offset {
		logger.Component("arena").WithField("capacity", len(a.buf)).Warn("pop of memory not owned by arena")
		return ErrForeignMark
	}
	a.Rewind(Mark{offset: off})
	return nil
}

// Scope runs fn and then rewinds to the position held before the call.
// Nothing allocated inside fn may be retained after it returns.
func (a *Arena) Scope(fn func()) {
	m := a.Mark()
	defer a.Rewind(m)
	fn()
}

// Reset releases every allocation while keeping the backing memory.
func (a *Arena) Reset() {
	a.Rewind(Mark{})
}

// Release drops the backing memory and makes the arena unusable.
// Any subsequent operation panics.
func (a *Arena) Release() {
	a.buf = nil
	a.offset = 0
}

// Owns reports whether p points into this arena's capacity.
func (a *Arena) Owns(p unsafe.Pointer) bool {
	if a.buf == nil || p == nil {
		return false
	}
	base := uintptr(unsafe.Pointer(&a.buf[0]))
	addr := uintptr(p)
	return addr >= base && addr < base+uintptr(len(a.buf))
}

func (a *Arena) offsetOf(p []byte) (int, bool) {
	if len(p) == 0 {
		return 0, false
	}
	ptr := unsafe.Pointer(unsafe.SliceData(p))
	if !a.Owns(ptr) {
		return 0, false
	}
	return int(uintptr(ptr) - uintptr(unsafe.Pointer(&a.buf[0]))), true
}

func (a *Arena) panicIfReleased() {
	if a.buf == nil {
		panic(ErrReleased)
	}
}
