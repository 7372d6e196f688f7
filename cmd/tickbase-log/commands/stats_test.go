package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tickbase/tickbase-go/pkg/ticklog"
)

func TestRunStats(t *testing.T) {
	path := writeTraceFile(t,
		traceEvent("trace-1", 1, ticklog.KindSample, "systick", 100, 1, 1_000),
		traceEvent("trace-1", 2, ticklog.KindSpan, "isr-latency", 10, 1, 1_000_000),
		traceEvent("trace-1", 3, ticklog.KindSpan, "isr-latency", 30, 1, 1_000_000),
		traceEvent("trace-2", 1, ticklog.KindRate, "core-clock", 48, 1_000_000, 1),
	)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "Total Events: 4") {
		t.Errorf("expected total events, got: %s", output)
	}
	if !strings.Contains(output, "SAMPLE:  1") {
		t.Errorf("expected sample count, got: %s", output)
	}
	if !strings.Contains(output, "SPAN:    2") {
		t.Errorf("expected span count, got: %s", output)
	}
	if !strings.Contains(output, "RATE:    1") {
		t.Errorf("expected rate count, got: %s", output)
	}
	if !strings.Contains(output, "Traces: 2") {
		t.Errorf("expected trace count, got: %s", output)
	}
}

func TestRunStatsSpanAggregates(t *testing.T) {
	path := writeTraceFile(t,
		traceEvent("trace-1", 1, ticklog.KindSpan, "isr-latency", 10, 1, 1_000_000),
		traceEvent("trace-1", 2, ticklog.KindSpan, "isr-latency", 30, 1, 1_000_000),
		traceEvent("trace-1", 3, ticklog.KindSpan, "isr-latency", 20, 1, 1_000_000),
	)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "n=3") {
		t.Errorf("expected span count, got: %s", output)
	}
	if !strings.Contains(output, "min=10 us") {
		t.Errorf("expected span min, got: %s", output)
	}
	if !strings.Contains(output, "max=30 us") {
		t.Errorf("expected span max, got: %s", output)
	}
	if !strings.Contains(output, "avg=20 us") {
		t.Errorf("expected span average, got: %s", output)
	}
}

func TestRunStatsSpansKeepBasesApart(t *testing.T) {
	// Same label in two different bases must not aggregate together.
	path := writeTraceFile(t,
		traceEvent("trace-1", 1, ticklog.KindSpan, "render", 16, 1, 1_000),
		traceEvent("trace-1", 2, ticklog.KindSpan, "render", 16_000, 1, 1_000_000),
	)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "16 ms") {
		t.Errorf("expected millisecond aggregate, got: %s", output)
	}
	if !strings.Contains(output, "16000 us") {
		t.Errorf("expected microsecond aggregate, got: %s", output)
	}
}

func TestRunStatsEmptyFile(t *testing.T) {
	path := writeTraceFile(t)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Total Events: 0") {
		t.Errorf("expected zero events, got: %s", buf.String())
	}
}
