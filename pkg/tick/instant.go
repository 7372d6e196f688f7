package tick

import "github.com/tickbase/tickbase-go/pkg/scale"

// Instant is a point in time read from a free-running counter in base S.
// The counter wraps at the limit of R, and the instant algebra embraces
// that: subtraction is always defined modulo the counter range, and
// ordering decides direction by whichever way around the circle is shorter.
// Two instants therefore order reliably only while they are less than half
// the counter range apart.
//
// The zero value is the counter's epoch.
type Instant[R Rep, S scale.Scale] struct {
	ticks R
}

// InstantFromTicks constructs an instant at the given counter reading in
// base S.
func InstantFromTicks[S scale.Scale, R Rep](ticks R) Instant[R, S] {
	return Instant[R, S]{ticks: ticks}
}

// Ticks returns the raw counter reading.
func (i Instant[R, S]) Ticks() R {
	return i.ticks
}

// Scale returns the tick base as a ratio of seconds per tick.
func (i Instant[R, S]) Scale() scale.Ratio {
	return ratioOf[S]()
}

// Add advances the instant by d, wrapping around the counter range.
func (i Instant[R, S]) Add(d Duration[R, S]) Instant[R, S] {
	return Instant[R, S]{ticks: i.ticks + d.ticks}
}

// Sub rewinds the instant by d, wrapping around the counter range.
func (i Instant[R, S]) Sub(d Duration[R, S]) Instant[R, S] {
	return Instant[R, S]{ticks: i.ticks - d.ticks}
}

// CheckedAdd advances the instant by d without wrapping, reporting false
// when the counter reading would exceed R.
func (i Instant[R, S]) CheckedAdd(d Duration[R, S]) (Instant[R, S], bool) {
	s, ok := checkedAddRep(i.ticks, d.ticks)
	return Instant[R, S]{ticks: s}, ok
}

// CheckedSub rewinds the instant by d without wrapping, reporting false
// when d reaches past the counter's epoch.
func (i Instant[R, S]) CheckedSub(d Duration[R, S]) (Instant[R, S], bool) {
	s, ok := checkedSubRep(i.ticks, d.ticks)
	return Instant[R, S]{ticks: s}, ok
}

// DurationSince returns the span from o to i, measured the shorter way when
// the counter has wrapped in between. It is always defined; when i is in
// fact older than o the result is the wrapped distance forward from o to i.
func (i Instant[R, S]) DurationSince(o Instant[R, S]) Duration[R, S] {
	return Duration[R, S]{ticks: i.ticks - o.ticks}
}

// CheckedDurationSince returns the span from o to i, reporting false when i
// is older than o.
func (i Instant[R, S]) CheckedDurationSince(o Instant[R, S]) (Duration[R, S], bool) {
	if i.Compare(o) < 0 {
		return Duration[R, S]{}, false
	}
	return Duration[R, S]{ticks: i.ticks - o.ticks}, true
}

// DurationSinceEpoch returns the span from the counter's zero reading to i.
func (i Instant[R, S]) DurationSinceEpoch() Duration[R, S] {
	return Duration[R, S]{ticks: i.ticks}
}

// Compare orders two instants on the wrapping counter. The wrapped
// difference is compared against half the counter range: distances shorter
// forward mean i is later, shorter backward mean earlier. Instants exactly
// half the range apart are unordered and compare as equal. It returns -1,
// 0, or +1.
func (i Instant[R, S]) Compare(o Instant[R, S]) int {
	v := i.ticks - o.ticks
	half := R(repMax[R]() / 2)
	switch {
	case v == 0:
		return 0
	case v < half:
		return 1
	case v > half:
		return -1
	default:
		return 0
	}
}

// Equal reports whether two instants are the same counter reading.
func (i Instant[R, S]) Equal(o Instant[R, S]) bool {
	return i.ticks == o.ticks
}

// Before reports whether i precedes o on the wrapping counter.
func (i Instant[R, S]) Before(o Instant[R, S]) bool {
	return i.Compare(o) < 0
}

// After reports whether i follows o on the wrapping counter.
func (i Instant[R, S]) After(o Instant[R, S]) bool {
	return i.Compare(o) > 0
}

// String renders the instant's counter reading with its base's unit suffix.
func (i Instant[R, S]) String() string {
	return formatTicks(uint64(i.ticks), ratioOf[S]())
}

// AddDuration advances i by a duration in a possibly different base. The
// duration is rebased into the instant's base, truncating toward zero, and
// the counter wraps. The caller is responsible for the rebased count
// fitting R; use CheckedAddDuration otherwise.
func AddDuration[R Rep, IS, DS scale.Scale](i Instant[R, IS], d Duration[R, DS]) Instant[R, IS] {
	f := conv[DS, IS]()
	if f.SameBase() {
		return Instant[R, IS]{ticks: i.ticks + d.ticks}
	}
	return Instant[R, IS]{ticks: i.ticks + d.ticks*R(f.Mul)/R(f.Div)}
}

// SubDuration rewinds i by a duration in a possibly different base, with
// the same rebasing and wrapping behavior as AddDuration.
func SubDuration[R Rep, IS, DS scale.Scale](i Instant[R, IS], d Duration[R, DS]) Instant[R, IS] {
	f := conv[DS, IS]()
	if f.SameBase() {
		return Instant[R, IS]{ticks: i.ticks - d.ticks}
	}
	return Instant[R, IS]{ticks: i.ticks - d.ticks*R(f.Mul)/R(f.Div)}
}

// CheckedAddDuration advances i by a duration in a possibly different base
// without wrapping, reporting false when rebasing d or the counter reading
// overflows R.
func CheckedAddDuration[R Rep, IS, DS scale.Scale](i Instant[R, IS], d Duration[R, DS]) (Instant[R, IS], bool) {
	dt, ok := rebase[DS, IS](d.ticks)
	if !ok {
		return Instant[R, IS]{}, false
	}
	s, ok := checkedAddRep(i.ticks, dt)
	return Instant[R, IS]{ticks: s}, ok
}

// CheckedSubDuration rewinds i by a duration in a possibly different base
// without wrapping, reporting false when rebasing d overflows R or d
// reaches past the epoch.
func CheckedSubDuration[R Rep, IS, DS scale.Scale](i Instant[R, IS], d Duration[R, DS]) (Instant[R, IS], bool) {
	dt, ok := rebase[DS, IS](d.ticks)
	if !ok {
		return Instant[R, IS]{}, false
	}
	s, ok := checkedSubRep(i.ticks, dt)
	return Instant[R, IS]{ticks: s}, ok
}
