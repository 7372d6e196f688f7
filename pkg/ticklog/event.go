package ticklog

import (
	"time"

	"github.com/tickbase/tickbase-go/pkg/scale"
)

// Event is a single timing trace record.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event was recorded (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// TraceID groups events recorded by the same Recorder (UUID).
	TraceID string `cbor:"2,keyasint"`

	// Seq orders events within a trace.
	Seq uint64 `cbor:"3,keyasint"`

	// Kind classifies the measurement.
	Kind Kind `cbor:"4,keyasint"`

	// Label names the measurement site.
	Label string `cbor:"5,keyasint,omitempty"`

	// Ticks is the counter reading for samples, the elapsed tick count for
	// spans, and the raw count for rate observations.
	Ticks uint64 `cbor:"6,keyasint"`

	// ScaleNum and ScaleDen carry the tick base: seconds per tick for
	// samples and spans, hertz per count for rate observations.
	ScaleNum uint32 `cbor:"7,keyasint"`
	ScaleDen uint32 `cbor:"8,keyasint"`
}

// Scale returns the event's tick base as a ratio.
func (e Event) Scale() scale.Ratio {
	return scale.Ratio{Num: e.ScaleNum, Den: e.ScaleDen}
}

// Kind classifies a trace event.
type Kind uint8

const (
	// KindSample is a raw counter reading.
	KindSample Kind = 0
	// KindSpan is an elapsed duration between two counter readings.
	KindSpan Kind = 1
	// KindRate is a frequency observation.
	KindRate Kind = 2
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSample:
		return "SAMPLE"
	case KindSpan:
		return "SPAN"
	case KindRate:
		return "RATE"
	default:
		return "UNKNOWN"
	}
}
