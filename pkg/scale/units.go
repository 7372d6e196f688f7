package scale

// Scale is implemented by the empty struct types that identify a tick base
// at the type level. Two quantities agree on a base exactly when they are
// instantiated with the same Scale type, so mixing bases without an explicit
// conversion is rejected at compile time.
//
// Implementations must be stateless and must return the same ratio on every
// call.
type Scale interface {
	Ratio() Ratio
}

// Nano is the base of one nanosecond per tick.
type Nano struct{}

// Micro is the base of one microsecond per tick.
type Micro struct{}

// Milli is the base of one millisecond per tick.
type Milli struct{}

// Unit is the 1/1 base: one second per tick for time-like quantities, one
// hertz per count for rate-like quantities.
type Unit struct{}

// Minute is the base of sixty seconds per tick.
type Minute struct{}

// Hour is the base of 3600 seconds per tick.
type Hour struct{}

// Kilo is the 1000/1 base, used for kilohertz rate counts.
type Kilo struct{}

// Mega is the 1e6/1 base, used for megahertz rate counts.
type Mega struct{}

// Giga is the 1e9/1 base, used for gigahertz rate counts.
type Giga struct{}

func (Nano) Ratio() Ratio   { return Ratio{Num: 1, Den: 1_000_000_000} }
func (Micro) Ratio() Ratio  { return Ratio{Num: 1, Den: 1_000_000} }
func (Milli) Ratio() Ratio  { return Ratio{Num: 1, Den: 1_000} }
func (Unit) Ratio() Ratio   { return Ratio{Num: 1, Den: 1} }
func (Minute) Ratio() Ratio { return Ratio{Num: 60, Den: 1} }
func (Hour) Ratio() Ratio   { return Ratio{Num: 3_600, Den: 1} }
func (Kilo) Ratio() Ratio   { return Ratio{Num: 1_000, Den: 1} }
func (Mega) Ratio() Ratio   { return Ratio{Num: 1_000_000, Den: 1} }
func (Giga) Ratio() Ratio   { return Ratio{Num: 1_000_000_000, Den: 1} }

var (
	_ Scale = Nano{}
	_ Scale = Micro{}
	_ Scale = Milli{}
	_ Scale = Unit{}
	_ Scale = Minute{}
	_ Scale = Hour{}
	_ Scale = Kilo{}
	_ Scale = Mega{}
	_ Scale = Giga{}
)
