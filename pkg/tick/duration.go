package tick

import "github.com/tickbase/tickbase-go/pkg/scale"

// Duration is a span of time measured as an unsigned count of ticks in the
// base S. The zero value is a zero-length span.
//
// Same-base arithmetic is available as methods. Durations in different
// bases are different types; combine them with the package-level functions,
// which rebase the right operand into the left operand's base.
type Duration[R Rep, S scale.Scale] struct {
	ticks R
}

// FromTicks constructs a duration of the given tick count in base S.
func FromTicks[S scale.Scale, R Rep](ticks R) Duration[R, S] {
	return Duration[R, S]{ticks: ticks}
}

// Ticks returns the raw tick count.
func (d Duration[R, S]) Ticks() R {
	return d.ticks
}

// Scale returns the tick base as a ratio of seconds per tick.
func (d Duration[R, S]) Scale() scale.Ratio {
	return ratioOf[S]()
}

// Add returns d+o, wrapping on overflow.
func (d Duration[R, S]) Add(o Duration[R, S]) Duration[R, S] {
	return Duration[R, S]{ticks: d.ticks + o.ticks}
}

// Sub returns d-o, wrapping on underflow.
func (d Duration[R, S]) Sub(o Duration[R, S]) Duration[R, S] {
	return Duration[R, S]{ticks: d.ticks - o.ticks}
}

// CheckedAdd returns d+o, reporting false instead of wrapping.
func (d Duration[R, S]) CheckedAdd(o Duration[R, S]) (Duration[R, S], bool) {
	s, ok := checkedAddRep(d.ticks, o.ticks)
	return Duration[R, S]{ticks: s}, ok
}

// CheckedSub returns d-o, reporting false when o exceeds d.
func (d Duration[R, S]) CheckedSub(o Duration[R, S]) (Duration[R, S], bool) {
	s, ok := checkedSubRep(d.ticks, o.ticks)
	return Duration[R, S]{ticks: s}, ok
}

// Mul returns d scaled by k, wrapping on overflow.
func (d Duration[R, S]) Mul(k uint32) Duration[R, S] {
	return Duration[R, S]{ticks: d.ticks * R(k)}
}

// CheckedMul returns d scaled by k, reporting false instead of wrapping.
func (d Duration[R, S]) CheckedMul(k uint32) (Duration[R, S], bool) {
	p, ok := checkedMulRep(d.ticks, uint64(k))
	return Duration[R, S]{ticks: p}, ok
}

// Div returns d divided by k, truncating toward zero. k must be non-zero.
func (d Duration[R, S]) Div(k uint32) Duration[R, S] {
	return Duration[R, S]{ticks: d.ticks / R(k)}
}

// Compare orders two durations in the same base. It returns -1, 0, or +1.
func (d Duration[R, S]) Compare(o Duration[R, S]) int {
	return cmpRep(d.ticks, o.ticks)
}

// Equal reports whether two durations in the same base are equal.
func (d Duration[R, S]) Equal(o Duration[R, S]) bool {
	return d.ticks == o.ticks
}

// Nanoseconds returns the duration expressed in whole nanoseconds,
// truncating toward zero. It reports false when the value does not fit R.
func (d Duration[R, S]) Nanoseconds() (R, bool) {
	return rebase[S, scale.Nano](d.ticks)
}

// Microseconds returns the duration expressed in whole microseconds.
func (d Duration[R, S]) Microseconds() (R, bool) {
	return rebase[S, scale.Micro](d.ticks)
}

// Milliseconds returns the duration expressed in whole milliseconds.
func (d Duration[R, S]) Milliseconds() (R, bool) {
	return rebase[S, scale.Milli](d.ticks)
}

// Seconds returns the duration expressed in whole seconds.
func (d Duration[R, S]) Seconds() (R, bool) {
	return rebase[S, scale.Unit](d.ticks)
}

// Minutes returns the duration expressed in whole minutes.
func (d Duration[R, S]) Minutes() (R, bool) {
	return rebase[S, scale.Minute](d.ticks)
}

// Hours returns the duration expressed in whole hours.
func (d Duration[R, S]) Hours() (R, bool) {
	return rebase[S, scale.Hour](d.ticks)
}

// String renders the duration with a unit suffix when the base is a common
// time unit, and as "<ticks> ticks @ (num/den)" otherwise.
func (d Duration[R, S]) String() string {
	return formatTicks(uint64(d.ticks), ratioOf[S]())
}
