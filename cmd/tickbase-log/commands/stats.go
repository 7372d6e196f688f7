package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/tickbase/tickbase-go/pkg/scale"
	"github.com/tickbase/tickbase-go/pkg/tick"
	"github.com/tickbase/tickbase-go/pkg/ticklog"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents  int
	EventsByKind map[ticklog.Kind]int
	Traces       map[string]*TraceStats
	Spans        map[spanKey]*SpanStats
	TimeRange    struct {
		Start time.Time
		End   time.Time
	}
}

// TraceStats holds statistics for a single trace.
type TraceStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
}

// spanKey identifies a span aggregate: spans only aggregate with spans of
// the same label measured in the same tick base.
type spanKey struct {
	Label string
	Scale scale.Ratio
}

// SpanStats aggregates the elapsed spans recorded under one label and base.
type SpanStats struct {
	Count int
	Min   uint64
	Max   uint64
	Total uint64
}

// RunStats analyzes the trace file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := ticklog.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByKind: make(map[ticklog.Kind]int),
		Traces:       make(map[string]*TraceStats),
		Spans:        make(map[spanKey]*SpanStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByKind[event.Kind]++

		// Track time range
		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		// Track per-trace stats
		trace, ok := stats.Traces[event.TraceID]
		if !ok {
			trace = &TraceStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
			}
			stats.Traces[event.TraceID] = trace
		}
		trace.Events++
		if event.Timestamp.After(trace.LastSeen) {
			trace.LastSeen = event.Timestamp
		}

		// Aggregate spans per label and base
		if event.Kind == ticklog.KindSpan {
			key := spanKey{Label: event.Label, Scale: event.Scale()}
			span, ok := stats.Spans[key]
			if !ok {
				span = &SpanStats{Min: event.Ticks, Max: event.Ticks}
				stats.Spans[key] = span
			}
			span.Count++
			span.Total += event.Ticks
			if event.Ticks < span.Min {
				span.Min = event.Ticks
			}
			if event.Ticks > span.Max {
				span.Max = event.Ticks
			}
		}
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Tick Trace Statistics ===")
	fmt.Fprintln(w)

	// Time range
	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	// Total events
	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	// Events by kind
	fmt.Fprintln(w, "Events by Kind:")
	for _, kind := range []ticklog.Kind{ticklog.KindSample, ticklog.KindSpan, ticklog.KindRate} {
		if count := stats.EventsByKind[kind]; count > 0 {
			fmt.Fprintf(w, "  %-8s %d\n", kind.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	// Traces
	fmt.Fprintf(w, "Traces: %d\n", len(stats.Traces))
	if len(stats.Traces) > 0 {
		type traceInfo struct {
			id    string
			stats *TraceStats
		}
		traces := make([]traceInfo, 0, len(stats.Traces))
		for id, ts := range stats.Traces {
			traces = append(traces, traceInfo{id, ts})
		}
		sort.Slice(traces, func(i, j int) bool {
			return traces[i].stats.FirstSeen.Before(traces[j].stats.FirstSeen)
		})

		fmt.Fprintln(w, "")
		for _, tr := range traces {
			duration := tr.stats.LastSeen.Sub(tr.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, duration %s\n", shortenTraceID(tr.id), tr.stats.Events, duration)
		}
	}

	// Span aggregates
	if len(stats.Spans) > 0 {
		keys := make([]spanKey, 0, len(stats.Spans))
		for key := range stats.Spans {
			keys = append(keys, key)
		}
		sort.Slice(keys, func(i, j int) bool {
			return keys[i].Label < keys[j].Label
		})

		fmt.Fprintln(w)
		fmt.Fprintln(w, "Spans:")
		for _, key := range keys {
			span := stats.Spans[key]
			label := key.Label
			if label == "" {
				label = "-"
			}
			fmt.Fprintf(w, "  %-20s n=%d min=%s max=%s avg=%s\n",
				label,
				span.Count,
				tick.FormatTicks(span.Min, key.Scale),
				tick.FormatTicks(span.Max, key.Scale),
				tick.FormatTicks(span.Total/uint64(span.Count), key.Scale))
		}
	}
}
