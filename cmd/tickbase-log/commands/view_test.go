package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tickbase/tickbase-go/pkg/ticklog"
)

// traceEvent builds a trace event with a fixed timestamp for tests.
func traceEvent(trace string, seq uint64, kind ticklog.Kind, label string, ticks uint64, num, den uint32) ticklog.Event {
	return ticklog.Event{
		Timestamp: time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC).Add(time.Duration(seq) * time.Second),
		TraceID:   trace,
		Seq:       seq,
		Kind:      kind,
		Label:     label,
		Ticks:     ticks,
		ScaleNum:  num,
		ScaleDen:  den,
	}
}

// writeTraceFile writes events to a fresh trace file and returns its path.
func writeTraceFile(t *testing.T, events ...ticklog.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.tlog")
	logger, err := ticklog.NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return path
}

func TestFormatSampleEvent(t *testing.T) {
	event := traceEvent("abc12345-6789-0123-4567-890abcdef012", 1, ticklog.KindSample, "systick", 4_242, 1, 1_000)

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "2026-01-28T10:15:33.123456Z") {
		t.Errorf("expected formatted timestamp, got: %s", output)
	}
	if !strings.Contains(output, "[trace:abc12345]") {
		t.Errorf("expected shortened trace ID, got: %s", output)
	}
	if !strings.Contains(output, "SAMPLE") {
		t.Errorf("expected SAMPLE kind, got: %s", output)
	}
	if !strings.Contains(output, "systick") {
		t.Errorf("expected label, got: %s", output)
	}
	if !strings.Contains(output, "Counter: 4242 ms") {
		t.Errorf("expected counter value with unit, got: %s", output)
	}
}

func TestFormatSpanEvent(t *testing.T) {
	event := traceEvent("abc12345", 2, ticklog.KindSpan, "isr-latency", 125, 1, 1_000_000)

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "SPAN") {
		t.Errorf("expected SPAN kind, got: %s", output)
	}
	if !strings.Contains(output, "Elapsed: 125 us") {
		t.Errorf("expected elapsed value, got: %s", output)
	}
}

func TestFormatRateEvent(t *testing.T) {
	event := traceEvent("abc12345", 3, ticklog.KindRate, "core-clock", 48, 1_000_000, 1)

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "RATE") {
		t.Errorf("expected RATE kind, got: %s", output)
	}
	if !strings.Contains(output, "Rate: 48 MHz") {
		t.Errorf("expected rate value, got: %s", output)
	}
}

func TestFormatEventEmptyLabel(t *testing.T) {
	event := traceEvent("abc12345", 1, ticklog.KindSample, "", 1, 1, 1_000)

	var buf bytes.Buffer
	formatEvent(&buf, event)

	if !strings.Contains(buf.String(), " -") {
		t.Errorf("expected placeholder for empty label, got: %s", buf.String())
	}
}

func TestParseKindFlag(t *testing.T) {
	tests := []struct {
		in      string
		want    ticklog.Kind
		wantErr bool
	}{
		{"sample", ticklog.KindSample, false},
		{"SPAN", ticklog.KindSpan, false},
		{"Rate", ticklog.KindRate, false},
		{"bogus", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseKindFlag(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKindFlag(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseKindFlag(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRunView(t *testing.T) {
	path := writeTraceFile(t,
		traceEvent("trace-1", 1, ticklog.KindSample, "systick", 100, 1, 1_000),
		traceEvent("trace-1", 2, ticklog.KindSpan, "isr-latency", 7, 1, 1_000_000),
	)

	var buf bytes.Buffer
	if err := RunView(path, ViewFilter{}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "Counter: 100 ms") {
		t.Errorf("missing sample event, got: %s", output)
	}
	if !strings.Contains(output, "Elapsed: 7 us") {
		t.Errorf("missing span event, got: %s", output)
	}
}

func TestRunViewFiltersByKind(t *testing.T) {
	path := writeTraceFile(t,
		traceEvent("trace-1", 1, ticklog.KindSample, "systick", 100, 1, 1_000),
		traceEvent("trace-1", 2, ticklog.KindSpan, "isr-latency", 7, 1, 1_000_000),
	)

	kind := ticklog.KindSpan
	var buf bytes.Buffer
	if err := RunView(path, ViewFilter{Kind: &kind}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	output := buf.String()

	if strings.Contains(output, "SAMPLE") {
		t.Errorf("sample event not filtered out, got: %s", output)
	}
	if !strings.Contains(output, "SPAN") {
		t.Errorf("span event missing, got: %s", output)
	}
}

func TestRunViewMissingFile(t *testing.T) {
	var buf bytes.Buffer
	if err := RunView(filepath.Join(t.TempDir(), "missing.tlog"), ViewFilter{}, &buf); err == nil {
		t.Error("RunView on a missing file did not error")
	}
}
