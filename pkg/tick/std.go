package tick

import (
	"math"
	"time"

	"github.com/tickbase/tickbase-go/pkg/scale"
)

// Std converts d to a time.Duration, truncating toward zero. It reports
// false when the span exceeds the time.Duration range.
func Std[R Rep, S scale.Scale](d Duration[R, S]) (time.Duration, bool) {
	f := conv[S, scale.Nano]()
	v, ok := f.Apply(uint64(d.ticks))
	if !ok || v > math.MaxInt64 {
		return 0, false
	}
	return time.Duration(v), true
}

// FromStd converts a non-negative time.Duration into a duration in base To,
// truncating toward zero. It reports false for negative input or when the
// tick count does not fit R.
func FromStd[To scale.Scale, R Rep](d time.Duration) (Duration[R, To], bool) {
	if d < 0 {
		return Duration[R, To]{}, false
	}
	f := conv[scale.Nano, To]()
	v, ok := f.Apply(uint64(d))
	if !ok || v > repMax[R]() {
		return Duration[R, To]{}, false
	}
	return Duration[R, To]{ticks: R(v)}, true
}
