package fading

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-rfchannel/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// Profile is a power-delay profile shape.
type Profile int

const (
	// ProfileUniform gives every tap power 1/N.
	ProfileUniform Profile = iota
	// ProfileExponential decays tap k as exp(-k/N) from a unit first tap.
	ProfileExponential
)

// ParseProfile resolves "uniform" or "exponential".
func ParseProfile(name string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "uniform":
		return ProfileUniform, nil
	case "exponential", "exp":
		return ProfileExponential, nil
	default:
		return 0, fmt.Errorf("%w: unknown fading profile %q", core.ErrUnsupportedVariant, name)
	}
}

func (p Profile) String() string {
	switch p {
	case ProfileUniform:
		return "uniform"
	case ProfileExponential:
		return "exponential"
	default:
		return fmt.Sprintf("profile(%d)", int(p))
	}
}

// PowerDelayProfile returns numPaths tap powers summing to 1.
func PowerDelayProfile(p Profile, numPaths int) ([]float64, error) {
	if err := checkPaths(numPaths); err != nil {
		return nil, err
	}

	out := make([]float64, numPaths)
	switch p {
	case ProfileUniform:
		for i := range out {
			out[i] = 1
		}
	case ProfileExponential:
		out[0] = 1
		n := float64(numPaths)
		for k := 1; k < numPaths; k++ {
			out[k] = out[0] * math.Exp(-float64(k)/n)
		}
	default:
		return nil, fmt.Errorf("%w: fading profile %d", core.ErrUnsupportedVariant, int(p))
	}

	floats.Scale(1/floats.Sum(out), out)
	return out, nil
}

func checkPaths(numPaths int) error {
	if numPaths <= 0 {
		return fmt.Errorf("%w: fading number of paths must be > 0: %d", core.ErrInvalidParameter, numPaths)
	}
	return nil
}
