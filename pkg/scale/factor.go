package scale

import "math/bits"

// Factors is a reduced multiply/divide pair mapping tick counts from a
// source base into a destination base: dst = src * Mul / Div, truncating
// toward zero. Both terms are at least 1 for factors built from valid ratios.
type Factors struct {
	Mul uint64
	Div uint64
}

// Conversion derives the factor pair that rebases tick counts from src to
// dst. The pair is reduced by their greatest common divisor, so bases that
// share a common multiple convert with the smallest possible intermediate
// values.
func Conversion(src, dst Ratio) Factors {
	mul := uint64(src.Num) * uint64(dst.Den)
	div := uint64(src.Den) * uint64(dst.Num)
	g := GCD(mul, div)
	return Factors{Mul: mul / g, Div: div / g}
}

// SameBase reports whether the factor pair is the identity, meaning source
// and destination share the same tick base and counts carry over unchanged.
func (f Factors) SameBase() bool {
	return f.Mul == f.Div
}

// Apply rebases v, computing v * Mul / Div with a 128-bit intermediate
// product. It reports false only when the true result exceeds the uint64
// range; truncation of the final division is not an error.
func (f Factors) Apply(v uint64) (uint64, bool) {
	return MulDiv(v, f.Mul, f.Div)
}

// MulDiv computes v * mul / div without losing high bits of the product.
// div must be non-zero. The result is truncated toward zero; false means
// the quotient does not fit in 64 bits.
func MulDiv(v, mul, div uint64) (uint64, bool) {
	hi, lo := bits.Mul64(v, mul)
	if hi == 0 {
		return lo / div, true
	}
	if hi >= div {
		return 0, false
	}
	q, _ := bits.Div64(hi, lo, div)
	return q, true
}

// MulCompare compares a*fa against b*fb using full 128-bit products, so the
// comparison is exact for any operands. It returns -1, 0, or +1.
func MulCompare(a, fa, b, fb uint64) int {
	ahi, alo := bits.Mul64(a, fa)
	bhi, blo := bits.Mul64(b, fb)
	switch {
	case ahi != bhi:
		if ahi < bhi {
			return -1
		}
		return 1
	case alo != blo:
		if alo < blo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// ReciprocalFactor derives the constant linking a rate base to a duration
// base (or the reverse): with K = ReciprocalFactor(a, b), a count n in base a
// corresponds to K/n in base b. The division truncates toward zero, exactly
// when the two bases do not divide evenly.
func ReciprocalFactor(a, b Ratio) uint64 {
	nn := uint64(a.Num) * uint64(b.Num)
	dd := uint64(a.Den) * uint64(b.Den)
	g := GCD(nn, dd)
	return (dd / g) / (nn / g)
}
