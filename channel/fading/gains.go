package fading

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"

	"github.com/cwbudde/algo-rfchannel/dsp/core"
)

// GainMode selects how tap gains are derived from a profile.
type GainMode int

const (
	// GainStochastic draws each tap as CN(0, p[k]).
	GainStochastic GainMode = iota
	// GainDeterministic sets each tap to sqrt(p[k]).
	GainDeterministic
)

// pathLossEpsilon guards the log of a zero tap.
const pathLossEpsilon = 1e-12

// Gains returns one complex tap gain per path. In stochastic mode the real and
// imaginary parts are independent N(0, p[k]/2) draws from rng; deterministic
// mode ignores rng and returns real gains.
func Gains(p Profile, numPaths int, mode GainMode, rng *rand.Rand) ([]complex128, error) {
	pdp, err := PowerDelayProfile(p, numPaths)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, numPaths)
	switch mode {
	case GainDeterministic:
		for k, pk := range pdp {
			out[k] = complex(math.Sqrt(pk), 0)
		}
	case GainStochastic:
		if rng == nil {
			return nil, fmt.Errorf("%w: fading stochastic gains need a random source", core.ErrInvalidParameter)
		}
		for k, pk := range pdp {
			s := math.Sqrt(pk / 2)
			re := rng.NormFloat64()
			im := rng.NormFloat64()
			out[k] = complex(re*s, im*s)
		}
	default:
		return nil, fmt.Errorf("%w: fading gain mode %d", core.ErrUnsupportedVariant, int(mode))
	}
	return out, nil
}

// PathLossDB returns -20·log10(|g|+ε) per tap.
func PathLossDB(gains []complex128) []float64 {
	out := make([]float64, len(gains))
	for i, g := range gains {
		out[i] = -20 * math.Log10(cmplx.Abs(g)+pathLossEpsilon)
	}
	return out
}

// MeanPowerGain returns mean(|g|^2), or 1 for no taps.
func MeanPowerGain(gains []complex128) float64 {
	if len(gains) == 0 {
		return 1
	}
	sum := 0.0
	for _, g := range gains {
		re, im := real(g), imag(g)
		sum += re*re + im*im
	}
	return sum / float64(len(gains))
}
