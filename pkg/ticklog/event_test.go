package ticklog

import (
	"testing"
	"time"

	"github.com/tickbase/tickbase-go/pkg/scale"
)

func TestEventRoundTrip(t *testing.T) {
	event := Event{
		Timestamp: time.Now().UTC(),
		TraceID:   "trace-123",
		Seq:       7,
		Kind:      KindSpan,
		Label:     "isr-latency",
		Ticks:     1_500,
		ScaleNum:  1,
		ScaleDen:  1_000_000,
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if decoded.TraceID != event.TraceID {
		t.Errorf("TraceID: got %q, want %q", decoded.TraceID, event.TraceID)
	}
	if decoded.Seq != event.Seq {
		t.Errorf("Seq: got %d, want %d", decoded.Seq, event.Seq)
	}
	if decoded.Kind != event.Kind {
		t.Errorf("Kind: got %v, want %v", decoded.Kind, event.Kind)
	}
	if decoded.Label != event.Label {
		t.Errorf("Label: got %q, want %q", decoded.Label, event.Label)
	}
	if decoded.Ticks != event.Ticks {
		t.Errorf("Ticks: got %d, want %d", decoded.Ticks, event.Ticks)
	}
	if decoded.Scale() != (scale.Ratio{Num: 1, Den: 1_000_000}) {
		t.Errorf("Scale: got %v, want 1/1000000", decoded.Scale())
	}
	if !decoded.Timestamp.Equal(event.Timestamp) {
		t.Errorf("Timestamp: got %v, want %v", decoded.Timestamp, event.Timestamp)
	}
}

func TestDecodeEventInvalid(t *testing.T) {
	if _, err := DecodeEvent([]byte{0xff, 0xff}); err == nil {
		t.Error("DecodeEvent accepted garbage input")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindSample, "SAMPLE"},
		{KindSpan, "SPAN"},
		{KindRate, "RATE"},
		{Kind(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
