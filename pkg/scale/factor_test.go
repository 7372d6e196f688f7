package scale

import (
	"math"
	"testing"
)

func TestConversion(t *testing.T) {
	tests := []struct {
		name     string
		src, dst Ratio
		want     Factors
	}{
		{"identity", Ratio{1, 1_000}, Ratio{1, 1_000}, Factors{1, 1}},
		{"millis to seconds", Ratio{1, 1_000}, Ratio{1, 1}, Factors{1, 1_000}},
		{"seconds to millis", Ratio{1, 1}, Ratio{1, 1_000}, Factors{1_000, 1}},
		{"micros to millis", Ratio{1, 1_000_000}, Ratio{1, 1_000}, Factors{1, 1_000}},
		{"hours to minutes", Ratio{3_600, 1}, Ratio{60, 1}, Factors{60, 1}},
		{"timer to micros", Ratio{1, 32_768}, Ratio{1, 1_000_000}, Factors{15_625, 512}},
		{"same base different terms", Ratio{2, 2_000}, Ratio{1, 1_000}, Factors{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Conversion(tt.src, tt.dst); got != tt.want {
				t.Errorf("Conversion(%v, %v) = %v, want %v", tt.src, tt.dst, got, tt.want)
			}
		})
	}
}

func TestFactorsSameBase(t *testing.T) {
	if !Conversion(Ratio{1, 1_000}, Ratio{1, 1_000}).SameBase() {
		t.Error("identity conversion not reported as same base")
	}
	if Conversion(Ratio{1, 1_000}, Ratio{1, 1}).SameBase() {
		t.Error("millis to seconds reported as same base")
	}
}

func TestFactorsApply(t *testing.T) {
	tests := []struct {
		name   string
		f      Factors
		v      uint64
		want   uint64
		wantOK bool
	}{
		{"identity", Factors{1, 1}, 12_345, 12_345, true},
		{"scale down exact", Factors{1, 1_000}, 2_000, 2, true},
		{"scale down truncates", Factors{1, 1_000}, 1_999, 1, true},
		{"scale up", Factors{1_000, 1}, 7, 7_000, true},
		{"wide intermediate", Factors{1_000_000_000, 1_000}, math.MaxUint32, 4_294_967_295_000_000, true},
		{"overflow", Factors{1_000_000_000, 1}, math.MaxUint64 / 2, 0, false},
		{"max value identity", Factors{1, 1}, math.MaxUint64, math.MaxUint64, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.f.Apply(tt.v)
			if ok != tt.wantOK {
				t.Fatalf("Apply(%d) ok = %v, want %v", tt.v, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Apply(%d) = %d, want %d", tt.v, got, tt.want)
			}
		})
	}
}

func TestMulDivWidePath(t *testing.T) {
	// Product spans more than 64 bits but the quotient fits.
	got, ok := MulDiv(math.MaxUint64, 10, 100)
	if !ok {
		t.Fatal("MulDiv(MaxUint64, 10, 100) reported overflow")
	}
	want := math.MaxUint64 / uint64(10)
	if got != want {
		t.Errorf("MulDiv(MaxUint64, 10, 100) = %d, want %d", got, want)
	}
}

func TestMulCompare(t *testing.T) {
	tests := []struct {
		name         string
		a, fa, b, fb uint64
		want         int
	}{
		{"equal", 1_000, 1, 1, 1_000, 0},
		{"less", 999, 1, 1, 1_000, -1},
		{"greater", 1_001, 1, 1, 1_000, 1},
		{"high words differ", math.MaxUint64, 3, math.MaxUint64, 2, 1},
		{"high equal low differs", math.MaxUint64, 2, math.MaxUint64 - 1, 2, 1},
		{"zero operands", 0, 1_000, 0, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MulCompare(tt.a, tt.fa, tt.b, tt.fb); got != tt.want {
				t.Errorf("MulCompare(%d, %d, %d, %d) = %d, want %d", tt.a, tt.fa, tt.b, tt.fb, got, tt.want)
			}
		})
	}
}

func TestReciprocalFactor(t *testing.T) {
	tests := []struct {
		name string
		a, b Ratio
		want uint64
	}{
		{"hertz to seconds", Ratio{1, 1}, Ratio{1, 1}, 1},
		{"hertz to millis", Ratio{1, 1}, Ratio{1, 1_000}, 1_000},
		{"kilohertz to micros", Ratio{1_000, 1}, Ratio{1, 1_000_000}, 1_000},
		{"megahertz to nanos", Ratio{1_000_000, 1}, Ratio{1, 1_000_000_000}, 1_000},
		{"truncating", Ratio{3, 1}, Ratio{1, 1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReciprocalFactor(tt.a, tt.b); got != tt.want {
				t.Errorf("ReciprocalFactor(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
