package coverage

import (
	"fmt"

	"github.com/cwbudde/algo-rfchannel/channel/pathloss"
	"github.com/cwbudde/algo-rfchannel/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// Radius returns the largest distance whose loss does not exceed threshold,
// or 0 when no sample qualifies.
func Radius(distances, losses []float64, threshold float64) (float64, error) {
	if len(distances) != len(losses) {
		return 0, fmt.Errorf("%w: coverage distances and losses length mismatch: %d != %d",
			core.ErrInvalidParameter, len(distances), len(losses))
	}

	best := 0.0
	found := false
	for i, l := range losses {
		if l <= threshold && (!found || distances[i] > best) {
			best = distances[i]
			found = true
		}
	}
	if !found {
		return 0, nil
	}
	return best, nil
}

// SweepResult is a sampled loss curve and its coverage radius.
type SweepResult struct {
	Distances []float64
	Losses    []float64
	Radius    float64
}

// Sweep evaluates m over points linearly spaced distances in [dMinKm, dMaxKm]
// and returns the coverage radius at threshold.
func Sweep(m pathloss.Model, dMinKm, dMaxKm float64, points int, threshold float64) (SweepResult, error) {
	if points < 2 {
		return SweepResult{}, fmt.Errorf("%w: coverage sweep needs at least 2 points: %d", core.ErrInvalidParameter, points)
	}
	if !core.IsFinite(dMinKm) || !core.IsFinite(dMaxKm) || dMinKm < 0 || dMaxKm <= dMinKm {
		return SweepResult{}, fmt.Errorf("%w: coverage sweep range must satisfy 0 <= min < max: [%g,%g]",
			core.ErrInvalidParameter, dMinKm, dMaxKm)
	}

	d := floats.Span(make([]float64, points), dMinKm, dMaxKm)
	l, err := pathloss.Curve(m, d)
	if err != nil {
		return SweepResult{}, err
	}
	r, err := Radius(d, l, threshold)
	if err != nil {
		return SweepResult{}, err
	}
	return SweepResult{Distances: d, Losses: l, Radius: r}, nil
}
