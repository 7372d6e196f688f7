package tick

import (
	"fmt"

	"github.com/tickbase/tickbase-go/pkg/scale"
)

// formatTicks renders a time-like count with the unit suffix of its base.
func formatTicks(ticks uint64, r scale.Ratio) string {
	switch r {
	case scale.Ratio{Num: 1, Den: 1_000_000_000}:
		return fmt.Sprintf("%d ns", ticks)
	case scale.Ratio{Num: 1, Den: 1_000_000}:
		return fmt.Sprintf("%d us", ticks)
	case scale.Ratio{Num: 1, Den: 1_000}:
		return fmt.Sprintf("%d ms", ticks)
	case scale.Ratio{Num: 1, Den: 1}:
		return fmt.Sprintf("%d s", ticks)
	case scale.Ratio{Num: 60, Den: 1}:
		return fmt.Sprintf("%d min", ticks)
	case scale.Ratio{Num: 3_600, Den: 1}:
		return fmt.Sprintf("%d h", ticks)
	default:
		return fmt.Sprintf("%d ticks @ (%d/%d)", ticks, r.Num, r.Den)
	}
}

// formatRaw renders a rate count with the hertz suffix of its base.
func formatRaw(raw uint64, r scale.Ratio) string {
	switch r {
	case scale.Ratio{Num: 1, Den: 1}:
		return fmt.Sprintf("%d Hz", raw)
	case scale.Ratio{Num: 1_000, Den: 1}:
		return fmt.Sprintf("%d kHz", raw)
	case scale.Ratio{Num: 1_000_000, Den: 1}:
		return fmt.Sprintf("%d MHz", raw)
	case scale.Ratio{Num: 1_000_000_000, Den: 1}:
		return fmt.Sprintf("%d GHz", raw)
	default:
		return fmt.Sprintf("%d counts @ (%d/%d)", raw, r.Num, r.Den)
	}
}

// FormatTicks renders a time-like tick count in an arbitrary base. It is
// used by tooling that reads tick counts and ratios off the wire rather
// than holding typed quantities.
func FormatTicks(ticks uint64, r scale.Ratio) string {
	return formatTicks(ticks, r)
}

// FormatRaw renders a rate count in an arbitrary base.
func FormatRaw(raw uint64, r scale.Ratio) string {
	return formatRaw(raw, r)
}
