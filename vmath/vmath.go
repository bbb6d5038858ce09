// Package vmath holds the integer and rational math shared by the world
// index and the field-of-view code.
package vmath

// Abs returns absolute value
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// FloorDiv divides rounding toward negative infinity. b must be positive.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// FloorMod returns the non-negative remainder of a / b. b must be positive.
func FloorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// IsPow2 reports whether n is a positive power of two.
func IsPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// --- Distances ---

// Chebyshev returns the chessboard distance between two points.
func Chebyshev(x1, y1, x2, y2 int) int {
	return max(Abs(x2-x1), Abs(y2-y1))
}

// Manhattan returns the taxicab distance between two points.
func Manhattan(x1, y1, x2, y2 int) int {
	return Abs(x2-x1) + Abs(y2-y1)
}

// DistanceSquared returns the squared euclidean distance, for comparisons
// without roots.
func DistanceSquared(x1, y1, x2, y2 int) int {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// --- Randomness ---

// FastRand is a xorshift64 generator. Deterministic for a given seed.
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n). Returns 0 if n <= 0.
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1).
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
