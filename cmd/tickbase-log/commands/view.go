// Package commands implements the tickbase-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/tickbase/tickbase-go/pkg/tick"
	"github.com/tickbase/tickbase-go/pkg/ticklog"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	TraceID string
	Label   string
	Kind    *ticklog.Kind
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event ticklog.Event) {
	// Header line: timestamp [trace:id] seq KIND label
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	traceID := shortenTraceID(event.TraceID)

	label := event.Label
	if label == "" {
		label = "-"
	}

	fmt.Fprintf(w, "%s [trace:%s] #%d %-6s %s\n", ts, traceID, event.Seq, event.Kind.String(), label)

	switch event.Kind {
	case ticklog.KindRate:
		fmt.Fprintf(w, "  Rate: %s\n", tick.FormatRaw(event.Ticks, event.Scale()))
	case ticklog.KindSpan:
		fmt.Fprintf(w, "  Elapsed: %s\n", tick.FormatTicks(event.Ticks, event.Scale()))
	default:
		fmt.Fprintf(w, "  Counter: %s\n", tick.FormatTicks(event.Ticks, event.Scale()))
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenTraceID returns the first 8 characters of the trace ID.
func shortenTraceID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// ParseKindFlag parses a kind string from command-line flag (case-insensitive).
func ParseKindFlag(s string) (ticklog.Kind, error) {
	switch strings.ToLower(s) {
	case "sample":
		return ticklog.KindSample, nil
	case "span":
		return ticklog.KindSpan, nil
	case "rate":
		return ticklog.KindRate, nil
	default:
		return 0, fmt.Errorf("invalid kind: %s (must be sample, span, or rate)", s)
	}
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := ticklog.NewFilteredReader(path, ticklog.Filter{
		TraceID: filter.TraceID,
		Label:   filter.Label,
		Kind:    filter.Kind,
	})
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		formatEvent(output, event)
	}

	return nil
}
