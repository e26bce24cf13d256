package conv

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-rfchannel/internal/testutil"
)

func TestDirect(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected []float64
	}{
		{
			name:     "simple 3x3",
			a:        []float64{1, 2, 3},
			b:        []float64{1, 1, 1},
			expected: []float64{1, 3, 6, 5, 3},
		},
		{
			name:     "impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{1},
			expected: []float64{1, 2, 3, 4, 5},
		},
		{
			name:     "delayed impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{0, 0, 1},
			expected: []float64{0, 0, 1, 2, 3, 4, 5},
		},
		{
			name:     "symmetric",
			a:        []float64{1, 2, 1},
			b:        []float64{1, 2, 1},
			expected: []float64{1, 4, 6, 4, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Direct(tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, result, tt.expected, 1e-12)
		})
	}
}

func TestDirectErrors(t *testing.T) {
	if _, err := Direct(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
	if _, err := DirectComplex([]complex128{1}, nil); !errors.Is(err, ErrEmptyKernel) {
		t.Fatalf("err = %v, want ErrEmptyKernel", err)
	}
}

func TestDirectComplex(t *testing.T) {
	a := []complex128{1, 1i, -1}
	b := []complex128{1, 1i}
	got, err := DirectComplex(a, b)
	if err != nil {
		t.Fatalf("DirectComplex() error = %v", err)
	}
	// (1 + i z - z²)(1 + i z) = 1 + 2i z - 2 z² - i z³
	want := []complex128{1, 2i, -2, -1i}
	testutil.RequireComplexNearlyEqual(t, got, want, 1e-12)
}

func TestFFTMatchesDirect(t *testing.T) {
	a := make([]complex128, 300)
	for i := range a {
		a[i] = complex(float64(i%11)-5, float64(i%5)*0.25)
	}
	b := make([]complex128, 100)
	for i := range b {
		b[i] = complex(1/float64(i+1), -0.5/float64(i+1))
	}

	want, err := DirectComplex(a, b)
	if err != nil {
		t.Fatalf("DirectComplex() error = %v", err)
	}
	got, err := FFT(a, b)
	if err != nil {
		t.Fatalf("FFT() error = %v", err)
	}
	testutil.RequireComplexNearlyEqual(t, got, want, 1e-9)

	auto, err := Complex(a, b)
	if err != nil {
		t.Fatalf("Complex() error = %v", err)
	}
	if len(auto) != len(a)+len(b)-1 {
		t.Fatalf("len = %d, want %d", len(auto), len(a)+len(b)-1)
	}
}

func TestModes(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{1, 1, 1}

	tests := []struct {
		mode Mode
		want []float64
	}{
		{ModeFull, []float64{1, 3, 6, 9, 12, 9, 5}},
		{ModeSame, []float64{3, 6, 9, 12, 9}},
		{ModeValid, []float64{6, 9, 12}},
		{ModeHead, []float64{1, 3, 6, 9, 12}},
	}

	for _, tt := range tests {
		got, err := DirectMode(a, b, tt.mode)
		if err != nil {
			t.Fatalf("mode %d: error = %v", tt.mode, err)
		}
		testutil.RequireSliceNearlyEqual(t, got, tt.want, 1e-12)
	}

	head, err := ComplexMode([]complex128{1, 2, 3}, []complex128{1, 1}, ModeHead)
	if err != nil {
		t.Fatalf("ComplexMode() error = %v", err)
	}
	testutil.RequireComplexNearlyEqual(t, head, []complex128{1, 3, 5}, 1e-12)
}
