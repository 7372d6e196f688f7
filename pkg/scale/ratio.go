package scale

import (
	"errors"
	"fmt"
	"math/bits"
)

// Errors returned when constructing ratios from untrusted input.
var (
	ErrZeroNumerator   = errors.New("scale: ratio numerator is zero")
	ErrZeroDenominator = errors.New("scale: ratio denominator is zero")
)

// Ratio is a positive rational scaling factor with 32-bit terms.
//
// For duration and instant bases the ratio is seconds per tick; for rate
// bases it is ticks per second. Both terms must be non-zero. Ratios produced
// by Reduce are in lowest terms, which keeps the derived conversion factors
// minimal and maximizes the overflow-free range of every conversion.
type Ratio struct {
	Num uint32
	Den uint32
}

// Reduce validates num/den and returns the ratio in lowest terms.
func Reduce(num, den uint32) (Ratio, error) {
	if num == 0 {
		return Ratio{}, ErrZeroNumerator
	}
	if den == 0 {
		return Ratio{}, ErrZeroDenominator
	}
	g := uint32(GCD(uint64(num), uint64(den)))
	return Ratio{Num: num / g, Den: den / g}, nil
}

// MustReduce is like Reduce but panics on invalid input. Intended for
// package-level ratio constants.
func MustReduce(num, den uint32) Ratio {
	r, err := Reduce(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// Reduced returns r in lowest terms. Zero terms are returned unchanged.
func (r Ratio) Reduced() Ratio {
	if r.Num == 0 || r.Den == 0 {
		return r
	}
	g := uint32(GCD(uint64(r.Num), uint64(r.Den)))
	return Ratio{Num: r.Num / g, Den: r.Den / g}
}

// Inverse returns the reciprocal ratio.
func (r Ratio) Inverse() Ratio {
	return Ratio{Num: r.Den, Den: r.Num}
}

// String renders the ratio as "num/den".
func (r Ratio) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// GCD returns the greatest common divisor of a and b using the binary
// (Stein) algorithm. GCD(0, b) is b and GCD(a, 0) is a.
func GCD(a, b uint64) uint64 {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	shift := bits.TrailingZeros64(a | b)
	a >>= bits.TrailingZeros64(a)
	for {
		b >>= bits.TrailingZeros64(b)
		if a > b {
			a, b = b, a
		}
		b -= a
		if b == 0 {
			return a << shift
		}
	}
}
