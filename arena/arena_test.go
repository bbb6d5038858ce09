package arena

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recoverError runs fn and returns the error value it panicked with.
func recoverError(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected panic")
		}
		var ok bool
		err, ok = r.(error)
		if !ok {
			t.Fatalf("Expected error panic value, got %T", r)
		}
	}()
	fn()
	return nil
}

func TestArena_AllocZeroedAndAligned(t *testing.T) {
	a := NewArena(1 * KB)

	b1 := a.Alloc(3)
	b2 := a.Alloc(5)
	require.Len(t, b1, 3)
	require.Len(t, b2, 5)

	for _, v := range b2 {
		assert.Zero(t, v)
	}
	// second allocation starts on the next aligned boundary
	assert.Equal(t, Alignment+5, a.SizeInUse())
	assert.True(t, a.Owns(ptrOf(b1)))
	assert.True(t, a.Owns(ptrOf(b2)))
}

func TestArena_ExhaustionPanics(t *testing.T) {
	a := NewArena(64)
	a.Alloc(40)

	err := recoverError(t, func() { a.Alloc(40) })
	assert.True(t, errors.Is(err, ErrOutOfMemory))
	assert.Contains(t, err.Error(), "only 16 left")
	// failed allocation leaves the offset untouched
	assert.Equal(t, 40, a.SizeInUse())
}

func TestArena_IssuedNeverExceedsCapacity(t *testing.T) {
	a := NewArena(1000)
	sizes := []int{1, 17, 33, 100, 7, 250, 3, 64}
	for _, n := range sizes {
		func() {
			defer func() { _ = recover() }()
			a.Alloc(n)
		}()
		assert.LessOrEqual(t, a.SizeInUse(), a.Capacity())
	}
}

func TestArena_PopZeroFillsAndReclaims(t *testing.T) {
	a := NewArena(256)
	keep := a.Alloc(16)
	keep[0] = 0xAA

	mark := a.Alloc(64)
	for i := range mark {
		mark[i] = 0xFF
	}
	tail := a.Alloc(32)
	tail[0] = 0xFF
	before := a.SizeInUse()

	require.NoError(t, a.Pop(mark))
	assert.Equal(t, 16, a.SizeInUse())
	assert.Less(t, a.SizeInUse(), before)

	for _, v := range mark {
		assert.Zero(t, v)
	}
	assert.Zero(t, tail[0])
	assert.Equal(t, byte(0xAA), keep[0])

	// reclaimed capacity is usable again
	again := a.Alloc(64)
	assert.Equal(t, ptrOf(mark), ptrOf(again))
}

func TestArena_PopForeign(t *testing.T) {
	a := NewArena(128)
	other := make([]byte, 8)

	assert.ErrorIs(t, a.Pop(other), ErrForeignMark)
	assert.ErrorIs(t, a.Pop(nil), ErrForeignMark)

	b := a.Alloc(8)
	a.Reset()
	// b now lies beyond the offset
	a.Alloc(1)
	assert.NoError(t, a.Pop(b))
}

func TestArena_ScopeRewinds(t *testing.T) {
	a := NewArena(256)
	a.Alloc(10)
	before := a.SizeInUse()

	a.Scope(func() {
		a.Alloc(100)
		assert.Greater(t, a.SizeInUse(), before)
	})
	assert.Equal(t, before, a.SizeInUse())
	assert.Equal(t, before+Alignment-10+100, a.Metrics().HighWater)
}

func TestArena_ReleasePanics(t *testing.T) {
	a := NewArena(64)
	a.Release()
	err := recoverError(t, func() { a.Alloc(1) })
	assert.ErrorIs(t, err, ErrReleased)
}

func TestArena_Metrics(t *testing.T) {
	a := NewArena(100)
	a.Alloc(25)

	m := a.Metrics()
	assert.Equal(t, 25, m.SizeInUse)
	assert.Equal(t, 100, m.Capacity)
	assert.Equal(t, 75, m.Remaining)
	assert.InDelta(t, 0.25, m.Utilization, 1e-9)
}

type point struct {
	X, Y int32
}

func TestArena_TypedAllocation(t *testing.T) {
	a := NewArena(1 * KB)

	p := New[point](a)
	p.X = 4
	assert.True(t, a.Owns(unsafePtr(p)))

	s := MakeSlice[point](a, 8)
	require.Len(t, s, 8)
	s[7] = point{1, 2}
	assert.Equal(t, point{}, s[0])

	assert.Nil(t, MakeSlice[point](a, 0))
}
