package vmath

import "fmt"

// Fraction is an exact rational number used for slope bookkeeping.
// Den must be non-zero; methods normalize a negative Den.
type Fraction struct {
	Num int64
	Den int64
}

// NewFraction returns num/den. Panics if den is zero.
func NewFraction(num, den int64) Fraction {
	return Fraction{Num: num, Den: den}.norm()
}

func (f Fraction) norm() Fraction {
	if f.Den == 0 {
		panic(fmt.Errorf("vmath: fraction %d/0 has zero denominator", f.Num))
	}
	if f.Den < 0 {
		return Fraction{Num: -f.Num, Den: -f.Den}
	}
	return f
}

// Scale returns n * f.
func (f Fraction) Scale(n int64) Fraction {
	f = f.norm()
	return Fraction{Num: f.Num * n, Den: f.Den}
}

// Float resolves f to a real number.
func (f Fraction) Float() float64 {
	f = f.norm()
	return float64(f.Num) / float64(f.Den)
}

// Cmp returns -1, 0 or +1 as f is less than, equal to or greater than g.
func (f Fraction) Cmp(g Fraction) int {
	f, g = f.norm(), g.norm()
	l, r := f.Num*g.Den, g.Num*f.Den
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	}
	return 0
}

// LessEq reports f <= g.
func (f Fraction) LessEq(g Fraction) bool {
	return f.Cmp(g) <= 0
}

// CmpInt compares f against the integer n.
func (f Fraction) CmpInt(n int64) int {
	return f.Cmp(Fraction{Num: n, Den: 1})
}

// RoundTiesUp rounds to the nearest integer, halves toward +inf: floor(f + 1/2).
func (f Fraction) RoundTiesUp() int64 {
	f = f.norm()
	return floorDiv64(2*f.Num+f.Den, 2*f.Den)
}

// RoundTiesDown rounds to the nearest integer, halves toward -inf: ceil(f - 1/2).
func (f Fraction) RoundTiesDown() int64 {
	f = f.norm()
	return -floorDiv64(-(2*f.Num - f.Den), 2*f.Den)
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

func floorDiv64(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
