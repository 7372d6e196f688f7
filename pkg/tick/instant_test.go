package tick

import (
	"math"
	"testing"

	"github.com/tickbase/tickbase-go/pkg/scale"
)

func millisInstant(ticks uint32) Instant[uint32, scale.Milli] {
	return InstantFromTicks[scale.Milli](ticks)
}

func TestInstantAddWraps(t *testing.T) {
	i := millisInstant(math.MaxUint32 - 1)
	got := i.Add(Millis(uint32(3)))
	if got.Ticks() != 1 {
		t.Errorf("instant near wrap advanced to %d, want 1", got.Ticks())
	}
}

func TestInstantSubWraps(t *testing.T) {
	i := millisInstant(1)
	got := i.Sub(Millis(uint32(3)))
	if got.Ticks() != math.MaxUint32-1 {
		t.Errorf("instant rewound to %d, want %d", got.Ticks(), uint32(math.MaxUint32-1))
	}
}

func TestInstantCheckedAdd(t *testing.T) {
	if _, ok := millisInstant(math.MaxUint32).CheckedAdd(Millis(uint32(1))); ok {
		t.Error("CheckedAdd did not report counter overflow")
	}
	got, ok := millisInstant(10).CheckedAdd(Millis(uint32(5)))
	if !ok || got.Ticks() != 15 {
		t.Errorf("CheckedAdd = %d, %v, want 15, true", got.Ticks(), ok)
	}
}

func TestInstantCheckedSub(t *testing.T) {
	if _, ok := millisInstant(2).CheckedSub(Millis(uint32(3))); ok {
		t.Error("CheckedSub did not report epoch underflow")
	}
	got, ok := millisInstant(10).CheckedSub(Millis(uint32(4)))
	if !ok || got.Ticks() != 6 {
		t.Errorf("CheckedSub = %d, %v, want 6, true", got.Ticks(), ok)
	}
}

func TestInstantDurationSince(t *testing.T) {
	a := millisInstant(1_000)
	b := millisInstant(250)
	if got := a.DurationSince(b).Ticks(); got != 750 {
		t.Errorf("DurationSince = %d, want 750", got)
	}
}

func TestInstantDurationSinceAcrossWrap(t *testing.T) {
	// The counter wrapped between the two readings; the elapsed span is
	// still recovered exactly.
	before := millisInstant(math.MaxUint32 - 1)
	after := before.Add(Millis(uint32(5)))
	if got := after.DurationSince(before).Ticks(); got != 5 {
		t.Errorf("elapsed across wrap = %d, want 5", got)
	}
}

func TestInstantCheckedDurationSince(t *testing.T) {
	a := millisInstant(1_000)
	b := millisInstant(250)

	d, ok := a.CheckedDurationSince(b)
	if !ok || d.Ticks() != 750 {
		t.Errorf("CheckedDurationSince = %d, %v, want 750, true", d.Ticks(), ok)
	}
	if _, ok := b.CheckedDurationSince(a); ok {
		t.Error("CheckedDurationSince of an older instant reported ok")
	}
	d, ok = a.CheckedDurationSince(a)
	if !ok || d.Ticks() != 0 {
		t.Errorf("CheckedDurationSince of self = %d, %v, want 0, true", d.Ticks(), ok)
	}
}

func TestInstantCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b uint32
		want int
	}{
		{"equal", 100, 100, 0},
		{"later", 200, 100, 1},
		{"earlier", 100, 200, -1},
		{"later across wrap", 2, math.MaxUint32 - 2, 1},
		{"earlier across wrap", math.MaxUint32 - 2, 2, -1},
		{"half range apart is unordered", math.MaxUint32/2 + 1, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := millisInstant(tt.a).Compare(millisInstant(tt.b)); got != tt.want {
				t.Errorf("Compare(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestInstantBeforeAfter(t *testing.T) {
	a := millisInstant(10)
	b := millisInstant(20)
	if !a.Before(b) || a.After(b) {
		t.Error("Before/After ordering wrong")
	}
	if !b.After(a) || b.Before(a) {
		t.Error("After/Before ordering wrong")
	}
}

func TestInstantDurationSinceEpoch(t *testing.T) {
	i := millisInstant(4_242)
	if got := i.DurationSinceEpoch().Ticks(); got != 4_242 {
		t.Errorf("DurationSinceEpoch = %d, want 4242", got)
	}
}

func TestInstantAddDurationAcrossBases(t *testing.T) {
	i := millisInstant(500)
	got := AddDuration(i, Secs(uint32(2)))
	if got.Ticks() != 2_500 {
		t.Errorf("500 ms + 2 s = %d ms, want 2500 ms", got.Ticks())
	}

	back := SubDuration(got, Secs(uint32(1)))
	if back.Ticks() != 1_500 {
		t.Errorf("2500 ms - 1 s = %d ms, want 1500 ms", back.Ticks())
	}
}

func TestInstantCheckedAddDurationAcrossBases(t *testing.T) {
	if _, ok := CheckedAddDuration(millisInstant(0), Secs(uint32(math.MaxUint32))); ok {
		t.Error("CheckedAddDuration did not report rebase overflow")
	}
	got, ok := CheckedAddDuration(millisInstant(1), Secs(uint32(1)))
	if !ok || got.Ticks() != 1_001 {
		t.Errorf("CheckedAddDuration = %d, %v, want 1001, true", got.Ticks(), ok)
	}
}

func TestInstantCheckedSubDurationAcrossBases(t *testing.T) {
	if _, ok := CheckedSubDuration(millisInstant(500), Secs(uint32(1))); ok {
		t.Error("CheckedSubDuration did not report epoch underflow")
	}
	got, ok := CheckedSubDuration(millisInstant(1_500), Secs(uint32(1)))
	if !ok || got.Ticks() != 500 {
		t.Errorf("CheckedSubDuration = %d, %v, want 500, true", got.Ticks(), ok)
	}
}
