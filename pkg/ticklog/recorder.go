package ticklog

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/tickbase/tickbase-go/pkg/scale"
	"github.com/tickbase/tickbase-go/pkg/tick"
)

// Recorder groups trace events under a single trace ID and assigns them
// monotonically increasing sequence numbers. It is safe for concurrent use;
// events recorded concurrently get distinct sequence numbers but may reach
// the logger out of order.
type Recorder struct {
	logger  Logger
	traceID string
	seq     atomic.Uint64
}

// NewRecorder creates a Recorder with a fresh random trace ID.
func NewRecorder(logger Logger) *Recorder {
	return &Recorder{
		logger:  logger,
		traceID: uuid.NewString(),
	}
}

// TraceID returns the recorder's trace ID.
func (r *Recorder) TraceID() string {
	return r.traceID
}

// record stamps and emits one event.
func (r *Recorder) record(kind Kind, label string, ticks uint64, ratio scale.Ratio) {
	r.logger.Log(Event{
		Timestamp: time.Now(),
		TraceID:   r.traceID,
		Seq:       r.seq.Add(1),
		Kind:      kind,
		Label:     label,
		Ticks:     ticks,
		ScaleNum:  ratio.Num,
		ScaleDen:  ratio.Den,
	})
}

// Sample records a raw counter reading.
func Sample[R tick.Rep, S scale.Scale](r *Recorder, label string, i tick.Instant[R, S]) {
	r.record(KindSample, label, uint64(i.Ticks()), i.Scale())
}

// Span records the elapsed span between two counter readings, measured the
// wrap-aware way.
func Span[R tick.Rep, S scale.Scale](r *Recorder, label string, from, to tick.Instant[R, S]) {
	d := to.DurationSince(from)
	r.record(KindSpan, label, uint64(d.Ticks()), d.Scale())
}

// Elapsed records an already-measured duration.
func Elapsed[R tick.Rep, S scale.Scale](r *Recorder, label string, d tick.Duration[R, S]) {
	r.record(KindSpan, label, uint64(d.Ticks()), d.Scale())
}

// Frequency records a rate observation.
func Frequency[R tick.Rep, S scale.Scale](r *Recorder, label string, rate tick.Rate[R, S]) {
	r.record(KindRate, label, uint64(rate.Raw()), rate.Scale())
}
