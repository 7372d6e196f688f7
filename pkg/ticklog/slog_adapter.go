package ticklog

import (
	"context"
	"log/slog"

	"github.com/tickbase/tickbase-go/pkg/tick"
)

// SlogAdapter writes trace events to an slog.Logger.
// Useful for development when you want to see trace events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("trace_id", event.TraceID),
		slog.Uint64("seq", event.Seq),
		slog.String("kind", event.Kind.String()),
	}

	if event.Label != "" {
		attrs = append(attrs, slog.String("label", event.Label))
	}

	switch event.Kind {
	case KindRate:
		attrs = append(attrs, slog.String("rate", tick.FormatRaw(event.Ticks, event.Scale())))
	default:
		attrs = append(attrs, slog.String("ticks", tick.FormatTicks(event.Ticks, event.Scale())))
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "tickbase", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
