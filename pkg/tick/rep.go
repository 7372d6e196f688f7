package tick

import (
	"math/bits"

	"github.com/tickbase/tickbase-go/pkg/scale"
)

// Rep constrains the tick count representation. Only unsigned 32- and
// 64-bit counts are supported; these match the widths of the hardware
// counters the quantities model.
type Rep interface {
	~uint32 | ~uint64
}

// repMax returns the largest value representable in R.
func repMax[R Rep]() uint64 {
	return uint64(^R(0))
}

// ratioOf returns the ratio of the scale type S.
func ratioOf[S scale.Scale]() scale.Ratio {
	var s S
	return s.Ratio()
}

// conv returns the factor pair rebasing counts from From to To.
func conv[From, To scale.Scale]() scale.Factors {
	return scale.Conversion(ratioOf[From](), ratioOf[To]())
}

// rebase converts a tick count from From to To, reporting false when the
// result exceeds R.
func rebase[From, To scale.Scale, R Rep](ticks R) (R, bool) {
	f := conv[From, To]()
	if f.SameBase() {
		return ticks, true
	}
	v, ok := f.Apply(uint64(ticks))
	if !ok || v > repMax[R]() {
		return 0, false
	}
	return R(v), true
}

func checkedAddRep[R Rep](a, b R) (R, bool) {
	s := a + b
	if s < a {
		return 0, false
	}
	return s, true
}

func checkedSubRep[R Rep](a, b R) (R, bool) {
	if b > a {
		return 0, false
	}
	return a - b, true
}

func checkedMulRep[R Rep](a R, k uint64) (R, bool) {
	hi, lo := bits.Mul64(uint64(a), k)
	if hi != 0 || lo > repMax[R]() {
		return 0, false
	}
	return R(lo), true
}

func cmpRep[R Rep](a, b R) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
