package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/tickbase/tickbase-go/pkg/ticklog"
)

// RunExport exports the trace file to JSONL or CSV. An empty output path
// writes to stdout.
func RunExport(path, format, output string) error {
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(path, w)
	case "csv":
		return exportCSV(path, w)
	default:
		return fmt.Errorf("invalid format: %s (must be jsonl or csv)", format)
	}
}

// exportEvent is the JSON shape of a trace event.
type exportEvent struct {
	Timestamp time.Time `json:"timestamp"`
	TraceID   string    `json:"trace_id"`
	Seq       uint64    `json:"seq"`
	Kind      string    `json:"kind"`
	Label     string    `json:"label,omitempty"`
	Ticks     uint64    `json:"ticks"`
	ScaleNum  uint32    `json:"scale_num"`
	ScaleDen  uint32    `json:"scale_den"`
}

func toExportEvent(event ticklog.Event) exportEvent {
	return exportEvent{
		Timestamp: event.Timestamp,
		TraceID:   event.TraceID,
		Seq:       event.Seq,
		Kind:      event.Kind.String(),
		Label:     event.Label,
		Ticks:     event.Ticks,
		ScaleNum:  event.ScaleNum,
		ScaleDen:  event.ScaleDen,
	}
}

func exportJSONL(path string, w io.Writer) error {
	reader, err := ticklog.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	enc := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := enc.Encode(toExportEvent(event)); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
}

func exportCSV(path string, w io.Writer) error {
	reader, err := ticklog.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "trace_id", "seq", "kind", "label", "ticks", "scale_num", "scale_den"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		record := []string{
			event.Timestamp.UTC().Format(time.RFC3339Nano),
			event.TraceID,
			strconv.FormatUint(event.Seq, 10),
			event.Kind.String(),
			event.Label,
			strconv.FormatUint(event.Ticks, 10),
			strconv.FormatUint(uint64(event.ScaleNum), 10),
			strconv.FormatUint(uint64(event.ScaleDen), 10),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
}
