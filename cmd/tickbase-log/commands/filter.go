package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tickbase/tickbase-go/pkg/ticklog"
)

// FilterOptions specifies criteria for the filter command. String fields
// are raw flag values; RunFilter parses and validates them.
type FilterOptions struct {
	Output    string
	TraceID   string
	Label     string
	Kind      string
	TimeStart string
	TimeEnd   string
}

// RunFilter reads the trace file, keeps events matching the options, and
// writes them to a new trace file.
func RunFilter(path string, opts FilterOptions) error {
	filter := ticklog.Filter{
		TraceID: opts.TraceID,
		Label:   opts.Label,
	}

	if opts.Kind != "" {
		k, err := ParseKindFlag(opts.Kind)
		if err != nil {
			return err
		}
		filter.Kind = &k
	}
	if opts.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeStart)
		if err != nil {
			return fmt.Errorf("invalid time-start: %w", err)
		}
		filter.TimeStart = &t
	}
	if opts.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeEnd)
		if err != nil {
			return fmt.Errorf("invalid time-end: %w", err)
		}
		filter.TimeEnd = &t
	}

	reader, err := ticklog.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	out, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	enc := ticklog.NewEncoder(out)
	count := 0
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := enc.Encode(event); err != nil {
			return fmt.Errorf("failed to write event: %w", err)
		}
		count++
	}

	fmt.Printf("  wrote %d events to %s\n", count, opts.Output)
	return nil
}
