package tick

import "github.com/tickbase/tickbase-go/pkg/scale"

// Aliases for the common instantiations. The long forms remain available;
// these exist so signatures read the way datasheets do.
type (
	NanosDurationU32   = Duration[uint32, scale.Nano]
	NanosDurationU64   = Duration[uint64, scale.Nano]
	MicrosDurationU32  = Duration[uint32, scale.Micro]
	MicrosDurationU64  = Duration[uint64, scale.Micro]
	MillisDurationU32  = Duration[uint32, scale.Milli]
	MillisDurationU64  = Duration[uint64, scale.Milli]
	SecsDurationU32    = Duration[uint32, scale.Unit]
	SecsDurationU64    = Duration[uint64, scale.Unit]
	MinutesDurationU32 = Duration[uint32, scale.Minute]
	MinutesDurationU64 = Duration[uint64, scale.Minute]
	HoursDurationU32   = Duration[uint32, scale.Hour]
	HoursDurationU64   = Duration[uint64, scale.Hour]
)

type (
	NanosInstantU32  = Instant[uint32, scale.Nano]
	NanosInstantU64  = Instant[uint64, scale.Nano]
	MicrosInstantU32 = Instant[uint32, scale.Micro]
	MicrosInstantU64 = Instant[uint64, scale.Micro]
	MillisInstantU32 = Instant[uint32, scale.Milli]
	MillisInstantU64 = Instant[uint64, scale.Milli]
	SecsInstantU32   = Instant[uint32, scale.Unit]
	SecsInstantU64   = Instant[uint64, scale.Unit]
)

type (
	HertzU32     = Rate[uint32, scale.Unit]
	HertzU64     = Rate[uint64, scale.Unit]
	KilohertzU32 = Rate[uint32, scale.Kilo]
	KilohertzU64 = Rate[uint64, scale.Kilo]
	MegahertzU32 = Rate[uint32, scale.Mega]
	MegahertzU64 = Rate[uint64, scale.Mega]
	GigahertzU32 = Rate[uint32, scale.Giga]
	GigahertzU64 = Rate[uint64, scale.Giga]
)

// Nanos constructs a duration of v nanoseconds.
func Nanos[R Rep](v R) Duration[R, scale.Nano] {
	return FromTicks[scale.Nano](v)
}

// Micros constructs a duration of v microseconds.
func Micros[R Rep](v R) Duration[R, scale.Micro] {
	return FromTicks[scale.Micro](v)
}

// Millis constructs a duration of v milliseconds.
func Millis[R Rep](v R) Duration[R, scale.Milli] {
	return FromTicks[scale.Milli](v)
}

// Secs constructs a duration of v seconds.
func Secs[R Rep](v R) Duration[R, scale.Unit] {
	return FromTicks[scale.Unit](v)
}

// Minutes constructs a duration of v minutes.
func Minutes[R Rep](v R) Duration[R, scale.Minute] {
	return FromTicks[scale.Minute](v)
}

// Hours constructs a duration of v hours.
func Hours[R Rep](v R) Duration[R, scale.Hour] {
	return FromTicks[scale.Hour](v)
}

// Hz constructs a rate of v hertz.
func Hz[R Rep](v R) Rate[R, scale.Unit] {
	return RateFromRaw[scale.Unit](v)
}

// KHz constructs a rate of v kilohertz.
func KHz[R Rep](v R) Rate[R, scale.Kilo] {
	return RateFromRaw[scale.Kilo](v)
}

// MHz constructs a rate of v megahertz.
func MHz[R Rep](v R) Rate[R, scale.Mega] {
	return RateFromRaw[scale.Mega](v)
}
