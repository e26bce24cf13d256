package testutil

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDeterministicSineQuarterPeriod(t *testing.T) {
	// 250 Hz at 1 kHz puts the crest on every fourth sample.
	s := DeterministicSine(250, 1000, 2, 9)
	for i := 1; i < len(s); i += 4 {
		want := 2.0
		if (i/4)%2 == 1 {
			want = -2
		}
		if math.Abs(s[i]-want) > 1e-12 {
			t.Fatalf("s[%d] = %g, want %g", i, s[i], want)
		}
	}
}

func TestRandStreamsRepeat(t *testing.T) {
	a, b := Rand(99), Rand(99)
	for i := range 32 {
		if x, y := a.Uint64(), b.Uint64(); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 0.5, 256)
	if diff := cmp.Diff(a, DeterministicNoise(42, 0.5, 256)); diff != "" {
		t.Fatalf("noise not reproducible (-first +second):\n%s", diff)
	}
	for i, v := range a {
		if v < -0.5 || v > 0.5 {
			t.Fatalf("a[%d] = %g outside ±0.5", i, v)
		}
	}
	if cmp.Equal(a[:16], DeterministicNoise(43, 0.5, 16)) {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestOnes(t *testing.T) {
	if diff := cmp.Diff([]float64{1, 1, 1}, Ones(3)); diff != "" {
		t.Fatalf("Ones(3) mismatch:\n%s", diff)
	}
	if len(Ones(0)) != 0 {
		t.Fatal("Ones(0) not empty")
	}
}
