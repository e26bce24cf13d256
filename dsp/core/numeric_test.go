package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestPositive(t *testing.T) {
	tests := []struct {
		v    float64
		want bool
	}{
		{1, true},
		{1e-300, true},
		{0, false},
		{-1, false},
		{math.NaN(), false},
		{math.Inf(1), false},
	}
	for _, tt := range tests {
		if got := Positive(tt.v); got != tt.want {
			t.Errorf("Positive(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestLog10Floor(t *testing.T) {
	if got := Log10Floor(100); !NearlyEqual(got, 2, 1e-12) {
		t.Fatalf("Log10Floor(100) = %v, want 2", got)
	}
	for _, x := range []float64{0, -5, math.NaN()} {
		got := Log10Floor(x)
		if !NearlyEqual(got, -12, 1e-12) {
			t.Fatalf("Log10Floor(%v) = %v, want -12", x, got)
		}
	}
}

func TestDBConversions(t *testing.T) {
	linear := DBToLinear(-6)
	if db := LinearToDBFloor(linear); !NearlyEqual(db, -6, 1e-10) {
		t.Fatalf("LinearToDBFloor(DBToLinear(-6)) = %v, want -6", db)
	}
	if got := LinearToDBFloor(-1); !NearlyEqual(got, -240, 1e-12) {
		t.Fatalf("LinearToDBFloor(-1) = %v, want -240", got)
	}
	if got := LinearToDBFloor(0); !NearlyEqual(got, -240, 1e-12) {
		t.Fatalf("LinearToDBFloor(0) = %v, want -240", got)
	}
}

func TestDBPowerConversions(t *testing.T) {
	// 3 dB power ~ 2x linear power
	p := DBPowerToLinear(3)
	if !NearlyEqual(p, 2.0, 0.01) {
		t.Fatalf("DBPowerToLinear(3) = %v, want ~2.0", p)
	}
	if got := DBPowerToLinear(-10); !NearlyEqual(got, 0.1, 1e-12) {
		t.Fatalf("DBPowerToLinear(-10) = %v, want 0.1", got)
	}
}

func TestDBmToWatts(t *testing.T) {
	if got := DBmToWatts(50); !NearlyEqual(got, 100, 1e-9) {
		t.Fatalf("DBmToWatts(50) = %v, want 100", got)
	}
	if got := DBmToWatts(30); !NearlyEqual(got, 1, 1e-12) {
		t.Fatalf("DBmToWatts(30) = %v, want 1", got)
	}
}
