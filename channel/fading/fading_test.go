package fading

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-rfchannel/dsp/core"
	"github.com/cwbudde/algo-rfchannel/internal/testutil"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func TestPowerDelayProfileSumsToOne(t *testing.T) {
	for _, p := range []Profile{ProfileUniform, ProfileExponential} {
		for _, n := range []int{1, 2, 3, 50, 500} {
			pdp, err := PowerDelayProfile(p, n)
			if err != nil {
				t.Fatalf("%s n=%d: %v", p, n, err)
			}
			if len(pdp) != n {
				t.Fatalf("%s n=%d: len=%d", p, n, len(pdp))
			}
			if s := floats.Sum(pdp); math.Abs(s-1) > 1e-9 {
				t.Fatalf("%s n=%d: sum=%v", p, n, s)
			}
		}
	}
}

func TestExponentialProfileShape(t *testing.T) {
	const n = 4
	pdp, err := PowerDelayProfile(ProfileExponential, n)
	if err != nil {
		t.Fatal(err)
	}
	for k := 1; k < n; k++ {
		ratio := pdp[k] / pdp[0]
		if want := math.Exp(-float64(k) / n); math.Abs(ratio-want) > 1e-12 {
			t.Fatalf("p[%d]/p[0] = %v, want %v", k, ratio, want)
		}
	}
}

func TestPowerDelayProfileErrors(t *testing.T) {
	if _, err := PowerDelayProfile(ProfileUniform, 0); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
	if _, err := PowerDelayProfile(Profile(7), 3); !errors.Is(err, core.ErrUnsupportedVariant) {
		t.Fatalf("err = %v, want ErrUnsupportedVariant", err)
	}
	if _, err := ParseProfile("gaussian"); !errors.Is(err, core.ErrUnsupportedVariant) {
		t.Fatalf("err = %v, want ErrUnsupportedVariant", err)
	}
}

func TestDeterministicGainsReproducible(t *testing.T) {
	a, err := Gains(ProfileExponential, 10, GainDeterministic, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Gains(ProfileExponential, 10, GainDeterministic, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("gain %d differs: %v vs %v", i, a[i], b[i])
		}
		if imag(a[i]) != 0 {
			t.Fatalf("deterministic gain %d has imaginary part", i)
		}
	}
	if p := MeanPowerGain(a) * 10; math.Abs(p-1) > 1e-12 {
		t.Fatalf("total tap power = %v, want 1", p)
	}
}

func TestStochasticGainsSeeded(t *testing.T) {
	a, err := Gains(ProfileUniform, 64, GainStochastic, testutil.Rand(3))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Gains(ProfileUniform, 64, GainStochastic, testutil.Rand(3))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireComplexNearlyEqual(t, a, b, 0)

	if _, err := Gains(ProfileUniform, 4, GainStochastic, nil); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
}

func TestStochasticGainVariance(t *testing.T) {
	const n = 20000
	g, err := Gains(ProfileUniform, n, GainStochastic, testutil.Rand(11))
	if err != nil {
		t.Fatal(err)
	}
	// Total power is 1 in expectation, so mean |g|^2 is 1/n.
	if got := MeanPowerGain(g) * n; math.Abs(got-1) > 0.05 {
		t.Fatalf("total power = %v, want ~1", got)
	}
}

func TestModelCodes(t *testing.T) {
	tests := []struct {
		code int
		want Model
	}{
		{0, ModelNone},
		{1, ModelUniform},
		{11, ModelUniformStatic},
		{2, ModelExponential},
		{22, ModelExponentialStatic},
	}
	for _, tt := range tests {
		got, err := ModelFromCode(tt.code)
		if err != nil || got != tt.want {
			t.Fatalf("ModelFromCode(%d) = %v, %v", tt.code, got, err)
		}
		parsed, err := ParseModel(got.String())
		if err != nil || parsed != got {
			t.Fatalf("ParseModel(%q) = %v, %v", got.String(), parsed, err)
		}
	}

	if m, err := ParseModel("22"); err != nil || m != ModelExponentialStatic {
		t.Fatalf("ParseModel(22) = %v, %v", m, err)
	}
	if _, err := ModelFromCode(3); !errors.Is(err, core.ErrUnsupportedVariant) {
		t.Fatalf("err = %v, want ErrUnsupportedVariant", err)
	}
	if _, err := ParseModel("rayleigh-ish"); !errors.Is(err, core.ErrUnsupportedVariant) {
		t.Fatalf("err = %v, want ErrUnsupportedVariant", err)
	}
}

func TestChannelApply(t *testing.T) {
	ch, err := NewChannel(ModelUniformStatic, 4, nil)
	if err != nil {
		t.Fatal(err)
	}

	x := []complex128{1, 0, 0, 0, 0, 0}
	y, err := ch.Apply(x)
	if err != nil {
		t.Fatal(err)
	}
	if len(y) != len(x)+4-1 {
		t.Fatalf("len = %d, want %d", len(y), len(x)+3)
	}
	for k := 0; k < 4; k++ {
		if cmplx.Abs(y[k]-0.5) > 1e-12 {
			t.Fatalf("y[%d] = %v, want 0.5", k, y[k])
		}
	}

	head, err := ch.ApplyHead(x)
	if err != nil {
		t.Fatal(err)
	}
	if len(head) != len(x) {
		t.Fatalf("head len = %d", len(head))
	}
}

func TestChannelNone(t *testing.T) {
	ch, err := NewChannel(ModelNone, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if ch.MeanPowerGain() != 1 {
		t.Fatalf("MeanPowerGain = %v, want 1", ch.MeanPowerGain())
	}

	x := []complex128{1, 2i, 3}
	y, err := ch.Apply(x)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireComplexNearlyEqual(t, y, x, 0)
	y[0] = 9
	if x[0] != 1 {
		t.Fatal("Apply must not alias its input")
	}

	if _, err := NewChannel(Model(42), 3, nil); !errors.Is(err, core.ErrUnsupportedVariant) {
		t.Fatalf("err = %v, want ErrUnsupportedVariant", err)
	}
	if _, err := NewChannel(ModelUniform, 0, testutil.Rand(1)); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
}

func TestPathLossDB(t *testing.T) {
	got := PathLossDB([]complex128{1, 0.1, 0})
	if math.Abs(got[0]) > 1e-9 || math.Abs(got[1]-20) > 1e-9 {
		t.Fatalf("PathLossDB = %v", got)
	}
	if math.IsInf(got[2], 0) || math.Abs(got[2]-240) > 1e-6 {
		t.Fatalf("zero tap loss = %v, want 240", got[2])
	}
}

func TestRicianMean(t *testing.T) {
	const k = 10.0
	h, err := Rician(k, 20000, testutil.Rand(5))
	if err != nil {
		t.Fatal(err)
	}

	re := make([]float64, len(h))
	for i, v := range h {
		re[i] = real(v)
	}
	mu, sigma := RicianParams(k)
	if got := stat.Mean(re, nil); math.Abs(got-mu) > 5*sigma/math.Sqrt(float64(len(h))) {
		t.Fatalf("mean real part = %v, want %v", got, mu)
	}

	if _, err := Rician(-1, 4, testutil.Rand(5)); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
	if math.Abs(KFactorFromDB(10)-10) > 1e-12 {
		t.Fatalf("KFactorFromDB(10) = %v", KFactorFromDB(10))
	}
}

func TestNakagamiMeanPower(t *testing.T) {
	h, err := Nakagami(1, 1, 20000, testutil.Rand(9))
	if err != nil {
		t.Fatal(err)
	}
	sq := make([]float64, len(h))
	for i, v := range h {
		if v < 0 {
			t.Fatalf("negative envelope %v", v)
		}
		sq[i] = v * v
	}
	if got := stat.Mean(sq, nil); math.Abs(got-1) > 0.05 {
		t.Fatalf("mean power = %v, want ~1", got)
	}

	for _, tt := range []struct{ m, omega float64 }{{0, 1}, {1, 0}, {-1, 1}} {
		if _, err := Nakagami(tt.m, tt.omega, 4, testutil.Rand(1)); !errors.Is(err, core.ErrInvalidParameter) {
			t.Fatalf("m=%v omega=%v: err = %v", tt.m, tt.omega, err)
		}
	}
}

func TestRayleighMeanPower(t *testing.T) {
	const scale = 1.0
	r, err := Rayleigh(scale, 20000, testutil.Rand(13))
	if err != nil {
		t.Fatal(err)
	}
	sq := make([]float64, len(r))
	for i, v := range r {
		sq[i] = v * v
	}
	// E[R^2] = 2σ^2.
	if got := stat.Mean(sq, nil); math.Abs(got-2*scale*scale) > 0.1 {
		t.Fatalf("mean power = %v, want ~2", got)
	}
}

func TestEnvelopeDB(t *testing.T) {
	got := EnvelopeDB([]complex128{10, 0})
	if math.Abs(got[0]-20) > 1e-12 {
		t.Fatalf("EnvelopeDB(10) = %v", got[0])
	}
	if math.IsInf(got[1], 0) {
		t.Fatal("EnvelopeDB(0) must be finite")
	}
	if m := Magnitude([]complex128{3 + 4i}); m[0] != 5 {
		t.Fatalf("Magnitude = %v", m)
	}
}
