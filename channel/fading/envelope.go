package fading

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"

	"github.com/cwbudde/algo-rfchannel/dsp/core"
	"gonum.org/v1/gonum/stat/distuv"
)

// KFactorFromDB converts a Rician K-factor from dB to linear scale.
func KFactorFromDB(kDB float64) float64 {
	return core.DBPowerToLinear(kDB)
}

// RicianParams returns the per-axis mean μ = sqrt(K/(2(K+1))) and scatter
// standard deviation σ = sqrt(1/(2(K+1))).
func RicianParams(k float64) (mu, sigma float64) {
	mu = math.Sqrt(k / (2 * (k + 1)))
	sigma = math.Sqrt(1 / (2 * (k + 1)))
	return mu, sigma
}

// Rician returns n complex channel samples (σ·N+μ) + j(σ·N+μ) for the linear
// K-factor k.
func Rician(k float64, n int, rng *rand.Rand) ([]complex128, error) {
	if !core.IsFinite(k) || k < 0 {
		return nil, fmt.Errorf("%w: fading rician k-factor must be >= 0: %g", core.ErrInvalidParameter, k)
	}
	if err := checkDraw(n, rng); err != nil {
		return nil, err
	}

	mu, sigma := RicianParams(k)
	axis := distuv.Normal{Mu: mu, Sigma: sigma, Src: rng}

	out := make([]complex128, n)
	for i := range out {
		re := axis.Rand()
		im := axis.Rand()
		out[i] = complex(re, im)
	}
	return out, nil
}

// Nakagami returns n Nakagami-m envelope samples sqrt(Y) with
// Y ~ Gamma(shape m, scale Ω/m).
func Nakagami(m, omega float64, n int, rng *rand.Rand) ([]float64, error) {
	if !core.Positive(m) {
		return nil, fmt.Errorf("%w: fading nakagami m must be > 0: %g", core.ErrInvalidParameter, m)
	}
	if !core.Positive(omega) {
		return nil, fmt.Errorf("%w: fading nakagami omega must be > 0: %g", core.ErrInvalidParameter, omega)
	}
	if err := checkDraw(n, rng); err != nil {
		return nil, err
	}

	// gonum parameterizes Gamma by rate, the inverse of scale.
	g := distuv.Gamma{Alpha: m, Beta: m / omega, Src: rng}

	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sqrt(g.Rand())
	}
	return out, nil
}

// Rayleigh returns n Rayleigh envelope samples with scale σ.
func Rayleigh(scale float64, n int, rng *rand.Rand) ([]float64, error) {
	if !core.Positive(scale) {
		return nil, fmt.Errorf("%w: fading rayleigh scale must be > 0: %g", core.ErrInvalidParameter, scale)
	}
	if err := checkDraw(n, rng); err != nil {
		return nil, err
	}

	// Rayleigh(σ) is Weibull with shape 2 and scale σ·√2.
	w := distuv.Weibull{K: 2, Lambda: scale * math.Sqrt2, Src: rng}

	out := make([]float64, n)
	for i := range out {
		out[i] = w.Rand()
	}
	return out, nil
}

// Magnitude returns |h| per sample.
func Magnitude(h []complex128) []float64 {
	out := make([]float64, len(h))
	for i, v := range h {
		out[i] = cmplx.Abs(v)
	}
	return out
}

// EnvelopeDB returns 20·log10(|h|) per sample, floored at ε.
func EnvelopeDB(h []complex128) []float64 {
	out := make([]float64, len(h))
	for i, v := range h {
		out[i] = core.LinearToDBFloor(cmplx.Abs(v))
	}
	return out
}

func checkDraw(n int, rng *rand.Rand) error {
	if n < 0 {
		return fmt.Errorf("%w: fading sample count must be >= 0: %d", core.ErrInvalidParameter, n)
	}
	if rng == nil {
		return fmt.Errorf("%w: fading needs a random source", core.ErrInvalidParameter)
	}
	return nil
}
