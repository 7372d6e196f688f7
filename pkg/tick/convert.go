package tick

import "github.com/tickbase/tickbase-go/pkg/scale"

// ConvertDuration rebases d into the base To, truncating toward zero. It
// reports false when the rebased count does not fit R. The target base is
// the first type parameter so call sites read ConvertDuration[scale.Milli](d).
func ConvertDuration[To scale.Scale, R Rep, From scale.Scale](d Duration[R, From]) (Duration[R, To], bool) {
	v, ok := rebase[From, To](d.ticks)
	return Duration[R, To]{ticks: v}, ok
}

// MustConvertDuration is like ConvertDuration but panics when the result
// does not fit.
func MustConvertDuration[To scale.Scale, R Rep, From scale.Scale](d Duration[R, From]) Duration[R, To] {
	c, ok := ConvertDuration[To](d)
	if !ok {
		panic("tick: duration conversion overflows")
	}
	return c
}

// ConvertInstant rebases i into the base To. The two bases generally wrap
// at different points of their counter range, so a rebased instant is only
// meaningful while the underlying counter has not wrapped; the conversion
// itself is exact up to truncation. It reports false when the rebased count
// does not fit R.
func ConvertInstant[To scale.Scale, R Rep, From scale.Scale](i Instant[R, From]) (Instant[R, To], bool) {
	v, ok := rebase[From, To](i.ticks)
	return Instant[R, To]{ticks: v}, ok
}

// ConvertRate rebases r into the base To, truncating toward zero. It
// reports false when the rebased count does not fit R.
func ConvertRate[To scale.Scale, R Rep, From scale.Scale](r Rate[R, From]) (Rate[R, To], bool) {
	v, ok := rebase[From, To](r.raw)
	return Rate[R, To]{raw: v}, ok
}

// MustConvertRate is like ConvertRate but panics when the result does not
// fit.
func MustConvertRate[To scale.Scale, R Rep, From scale.Scale](r Rate[R, From]) Rate[R, To] {
	c, ok := ConvertRate[To](r)
	if !ok {
		panic("tick: rate conversion overflows")
	}
	return c
}

// Widen extends a 32-bit duration to 64 bits. The conversion is lossless.
func Widen[S scale.Scale](d Duration[uint32, S]) Duration[uint64, S] {
	return Duration[uint64, S]{ticks: uint64(d.ticks)}
}

// Narrow shrinks a 64-bit duration to 32 bits, reporting false when the
// count exceeds the 32-bit range.
func Narrow[S scale.Scale](d Duration[uint64, S]) (Duration[uint32, S], bool) {
	if d.ticks > repMax[uint32]() {
		return Duration[uint32, S]{}, false
	}
	return Duration[uint32, S]{ticks: uint32(d.ticks)}, true
}

// WidenInstant extends a 32-bit instant to 64 bits. Note that the widened
// instant lives on a counter with a far longer wrap period.
func WidenInstant[S scale.Scale](i Instant[uint32, S]) Instant[uint64, S] {
	return Instant[uint64, S]{ticks: uint64(i.ticks)}
}

// NarrowInstant shrinks a 64-bit instant to 32 bits, reporting false when
// the count exceeds the 32-bit range.
func NarrowInstant[S scale.Scale](i Instant[uint64, S]) (Instant[uint32, S], bool) {
	if i.ticks > repMax[uint32]() {
		return Instant[uint32, S]{}, false
	}
	return Instant[uint32, S]{ticks: uint32(i.ticks)}, true
}

// WidenRate extends a 32-bit rate to 64 bits. The conversion is lossless.
func WidenRate[S scale.Scale](r Rate[uint32, S]) Rate[uint64, S] {
	return Rate[uint64, S]{raw: uint64(r.raw)}
}

// NarrowRate shrinks a 64-bit rate to 32 bits, reporting false when the
// count exceeds the 32-bit range.
func NarrowRate[S scale.Scale](r Rate[uint64, S]) (Rate[uint32, S], bool) {
	if r.raw > repMax[uint32]() {
		return Rate[uint32, S]{}, false
	}
	return Rate[uint32, S]{raw: uint32(r.raw)}, true
}

// ToDuration derives the period of a rate: a rate of n counts per second in
// base From corresponds to a duration of K/n ticks in base To, truncating
// toward zero. It reports false for a zero rate or when the period does not
// fit R.
func ToDuration[To scale.Scale, R Rep, From scale.Scale](r Rate[R, From]) (Duration[R, To], bool) {
	if r.raw == 0 {
		return Duration[R, To]{}, false
	}
	k := scale.ReciprocalFactor(ratioOf[From](), ratioOf[To]())
	v := k / uint64(r.raw)
	if v > repMax[R]() {
		return Duration[R, To]{}, false
	}
	return Duration[R, To]{ticks: R(v)}, true
}

// ToRate derives the frequency of a period: a duration of n ticks in base
// From corresponds to a rate of K/n counts per second in base To,
// truncating toward zero. It reports false for a zero duration or when the
// frequency does not fit R.
func ToRate[To scale.Scale, R Rep, From scale.Scale](d Duration[R, From]) (Rate[R, To], bool) {
	if d.ticks == 0 {
		return Rate[R, To]{}, false
	}
	k := scale.ReciprocalFactor(ratioOf[From](), ratioOf[To]())
	v := k / uint64(d.ticks)
	if v > repMax[R]() {
		return Rate[R, To]{}, false
	}
	return Rate[R, To]{raw: R(v)}, true
}
