package tick

import "github.com/tickbase/tickbase-go/pkg/scale"

// Add sums two durations in possibly different bases. The right operand is
// rebased into the left operand's base, truncating toward zero, and the
// result wraps on overflow. The caller is responsible for the rebased count
// fitting R; use CheckedAdd otherwise.
func Add[R Rep, LS, RS scale.Scale](a Duration[R, LS], b Duration[R, RS]) Duration[R, LS] {
	f := conv[RS, LS]()
	if f.SameBase() {
		return Duration[R, LS]{ticks: a.ticks + b.ticks}
	}
	return Duration[R, LS]{ticks: a.ticks + b.ticks*R(f.Mul)/R(f.Div)}
}

// Sub subtracts b from a across bases, with the same rebasing and wrapping
// behavior as Add.
func Sub[R Rep, LS, RS scale.Scale](a Duration[R, LS], b Duration[R, RS]) Duration[R, LS] {
	f := conv[RS, LS]()
	if f.SameBase() {
		return Duration[R, LS]{ticks: a.ticks - b.ticks}
	}
	return Duration[R, LS]{ticks: a.ticks - b.ticks*R(f.Mul)/R(f.Div)}
}

// CheckedAdd sums two durations across bases, reporting false when rebasing
// b or the final addition overflows R.
func CheckedAdd[R Rep, LS, RS scale.Scale](a Duration[R, LS], b Duration[R, RS]) (Duration[R, LS], bool) {
	bt, ok := rebase[RS, LS](b.ticks)
	if !ok {
		return Duration[R, LS]{}, false
	}
	s, ok := checkedAddRep(a.ticks, bt)
	return Duration[R, LS]{ticks: s}, ok
}

// CheckedSub subtracts b from a across bases, reporting false when rebasing
// b overflows R or the rebased b exceeds a.
func CheckedSub[R Rep, LS, RS scale.Scale](a Duration[R, LS], b Duration[R, RS]) (Duration[R, LS], bool) {
	bt, ok := rebase[RS, LS](b.ticks)
	if !ok {
		return Duration[R, LS]{}, false
	}
	s, ok := checkedSubRep(a.ticks, bt)
	return Duration[R, LS]{ticks: s}, ok
}

// Compare orders two durations in possibly different bases by
// cross-multiplying with full-width products, so the ordering is exact and
// never divides away precision. It returns -1, 0, or +1.
func Compare[R Rep, LS, RS scale.Scale](a Duration[R, LS], b Duration[R, RS]) int {
	f := conv[LS, RS]()
	if f.SameBase() {
		return cmpRep(a.ticks, b.ticks)
	}
	return scale.MulCompare(uint64(a.ticks), f.Mul, uint64(b.ticks), f.Div)
}

// Equal reports whether two durations in possibly different bases denote
// the same physical span.
func Equal[R Rep, LS, RS scale.Scale](a Duration[R, LS], b Duration[R, RS]) bool {
	return Compare(a, b) == 0
}
