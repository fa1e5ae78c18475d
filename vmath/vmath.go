// Package vmath holds the Q32.32 fixed-point arithmetic used by the physics step
// and the circle layout helpers.
package vmath

import (
	"math"
	"math/bits"
)

// Q32.32: the upper 32 bits are the integer part
const (
	Shift  = 32
	Scale  = 1 << Shift
	ScaleF = float64(Scale)
)

func FromFloat(f float64) int64 { return int64(f * ScaleF) }
func ToFloat(f int64) float64   { return float64(f) / ScaleF }

// FromSeconds converts nanoseconds to Q32.32 seconds
func FromSeconds(ns int64) int64 {
	return MulDiv(ns, Scale, 1_000_000_000)
}

// magnitude splits x into its absolute value and whether it was negative
func magnitude(x int64) (uint64, bool) {
	if x < 0 {
		return uint64(-x), true
	}
	return uint64(x), false
}

func signed(u uint64, negative bool) int64 {
	if u > math.MaxInt64 {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	if negative {
		return -int64(u)
	}
	return int64(u)
}

// Mul multiplies two Q32.32 values through a 128-bit product
func Mul(a, b int64) int64 {
	ua, na := magnitude(a)
	ub, nb := magnitude(b)
	hi, lo := bits.Mul64(ua, ub)
	return signed(hi<<(64-Shift)|lo>>Shift, na != nb)
}

// MulDiv computes a*b/c without losing the intermediate product; c == 0 yields zero
func MulDiv(a, b, c int64) int64 {
	if c == 0 {
		return 0
	}
	ua, na := magnitude(a)
	ub, nb := magnitude(b)
	uc, nc := magnitude(c)
	hi, lo := bits.Mul64(ua, ub)
	if hi >= uc {
		return signed(math.MaxUint64, na != nb != nc)
	}
	q, _ := bits.Div64(hi, lo, uc)
	return signed(q, na != nb != nc)
}

func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
