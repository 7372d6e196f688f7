package tick

import "github.com/tickbase/tickbase-go/pkg/scale"

// Rate is a frequency measured as an unsigned count in the base S, where
// the base is ticks per second: a Rate[uint32, scale.Kilo] with raw count 8
// is 8 kHz. The zero value is a zero rate, which has no defined period.
type Rate[R Rep, S scale.Scale] struct {
	raw R
}

// RateFromRaw constructs a rate of the given raw count in base S.
func RateFromRaw[S scale.Scale, R Rep](raw R) Rate[R, S] {
	return Rate[R, S]{raw: raw}
}

// Raw returns the raw frequency count.
func (r Rate[R, S]) Raw() R {
	return r.raw
}

// Scale returns the rate base as a ratio of hertz per count.
func (r Rate[R, S]) Scale() scale.Ratio {
	return ratioOf[S]()
}

// Add returns r+o, wrapping on overflow.
func (r Rate[R, S]) Add(o Rate[R, S]) Rate[R, S] {
	return Rate[R, S]{raw: r.raw + o.raw}
}

// Sub returns r-o, wrapping on underflow.
func (r Rate[R, S]) Sub(o Rate[R, S]) Rate[R, S] {
	return Rate[R, S]{raw: r.raw - o.raw}
}

// CheckedAdd returns r+o, reporting false instead of wrapping.
func (r Rate[R, S]) CheckedAdd(o Rate[R, S]) (Rate[R, S], bool) {
	s, ok := checkedAddRep(r.raw, o.raw)
	return Rate[R, S]{raw: s}, ok
}

// CheckedSub returns r-o, reporting false when o exceeds r.
func (r Rate[R, S]) CheckedSub(o Rate[R, S]) (Rate[R, S], bool) {
	s, ok := checkedSubRep(r.raw, o.raw)
	return Rate[R, S]{raw: s}, ok
}

// Mul returns r scaled by k, wrapping on overflow.
func (r Rate[R, S]) Mul(k uint32) Rate[R, S] {
	return Rate[R, S]{raw: r.raw * R(k)}
}

// CheckedMul returns r scaled by k, reporting false instead of wrapping.
func (r Rate[R, S]) CheckedMul(k uint32) (Rate[R, S], bool) {
	p, ok := checkedMulRep(r.raw, uint64(k))
	return Rate[R, S]{raw: p}, ok
}

// Div returns r divided by k, truncating toward zero. k must be non-zero.
func (r Rate[R, S]) Div(k uint32) Rate[R, S] {
	return Rate[R, S]{raw: r.raw / R(k)}
}

// Compare orders two rates in the same base. It returns -1, 0, or +1.
func (r Rate[R, S]) Compare(o Rate[R, S]) int {
	return cmpRep(r.raw, o.raw)
}

// Equal reports whether two rates in the same base are equal.
func (r Rate[R, S]) Equal(o Rate[R, S]) bool {
	return r.raw == o.raw
}

// Hertz returns the rate expressed in whole hertz, truncating toward zero.
// It reports false when the value does not fit R.
func (r Rate[R, S]) Hertz() (R, bool) {
	return rebase[S, scale.Unit](r.raw)
}

// Kilohertz returns the rate expressed in whole kilohertz.
func (r Rate[R, S]) Kilohertz() (R, bool) {
	return rebase[S, scale.Kilo](r.raw)
}

// Megahertz returns the rate expressed in whole megahertz.
func (r Rate[R, S]) Megahertz() (R, bool) {
	return rebase[S, scale.Mega](r.raw)
}

// String renders the rate with a hertz suffix when the base is a decimal
// power, and as "<raw> counts @ (num/den)" otherwise.
func (r Rate[R, S]) String() string {
	return formatRaw(uint64(r.raw), ratioOf[S]())
}

// AddRates sums two rates in possibly different bases. The right operand is
// rebased into the left operand's base, truncating toward zero, and the
// result wraps on overflow.
func AddRates[R Rep, LS, RS scale.Scale](a Rate[R, LS], b Rate[R, RS]) Rate[R, LS] {
	f := conv[RS, LS]()
	if f.SameBase() {
		return Rate[R, LS]{raw: a.raw + b.raw}
	}
	return Rate[R, LS]{raw: a.raw + b.raw*R(f.Mul)/R(f.Div)}
}

// SubRates subtracts b from a across bases, with the same rebasing and
// wrapping behavior as AddRates.
func SubRates[R Rep, LS, RS scale.Scale](a Rate[R, LS], b Rate[R, RS]) Rate[R, LS] {
	f := conv[RS, LS]()
	if f.SameBase() {
		return Rate[R, LS]{raw: a.raw - b.raw}
	}
	return Rate[R, LS]{raw: a.raw - b.raw*R(f.Mul)/R(f.Div)}
}

// CheckedAddRates sums two rates across bases, reporting false when
// rebasing b or the final addition overflows R.
func CheckedAddRates[R Rep, LS, RS scale.Scale](a Rate[R, LS], b Rate[R, RS]) (Rate[R, LS], bool) {
	bt, ok := rebase[RS, LS](b.raw)
	if !ok {
		return Rate[R, LS]{}, false
	}
	s, ok := checkedAddRep(a.raw, bt)
	return Rate[R, LS]{raw: s}, ok
}

// CheckedSubRates subtracts b from a across bases, reporting false when
// rebasing b overflows R or the rebased b exceeds a.
func CheckedSubRates[R Rep, LS, RS scale.Scale](a Rate[R, LS], b Rate[R, RS]) (Rate[R, LS], bool) {
	bt, ok := rebase[RS, LS](b.raw)
	if !ok {
		return Rate[R, LS]{}, false
	}
	s, ok := checkedSubRep(a.raw, bt)
	return Rate[R, LS]{raw: s}, ok
}

// CompareRates orders two rates in possibly different bases by
// cross-multiplying with full-width products. It returns -1, 0, or +1.
func CompareRates[R Rep, LS, RS scale.Scale](a Rate[R, LS], b Rate[R, RS]) int {
	f := conv[LS, RS]()
	if f.SameBase() {
		return cmpRep(a.raw, b.raw)
	}
	return scale.MulCompare(uint64(a.raw), f.Mul, uint64(b.raw), f.Div)
}

// EqualRates reports whether two rates in possibly different bases denote
// the same physical frequency.
func EqualRates[R Rep, LS, RS scale.Scale](a Rate[R, LS], b Rate[R, RS]) bool {
	return CompareRates(a, b) == 0
}

// DivRates returns how many times b fits into a, truncating toward zero.
// It reports false for a zero divisor or when rebasing a into b's base
// overflows R.
func DivRates[R Rep, LS, RS scale.Scale](a Rate[R, LS], b Rate[R, RS]) (R, bool) {
	if b.raw == 0 {
		return 0, false
	}
	at, ok := rebase[LS, RS](a.raw)
	if !ok {
		return 0, false
	}
	return at / b.raw, true
}
