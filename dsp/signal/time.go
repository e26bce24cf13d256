package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-rfchannel/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// MaxSamples bounds the length of a time axis and the number of impulses a
// comb may place.
const MaxSamples = 1 << 24

// TimeAxis returns the timestamps -duration/2, -duration/2+te, ... strictly
// below duration/2. The result is empty (not nil) when the window admits no
// step.
func TimeAxis(duration, te float64) ([]float64, error) {
	if !core.Positive(duration) {
		return nil, fmt.Errorf("%w: time axis duration must be > 0: %g", core.ErrInvalidParameter, duration)
	}
	if !core.Positive(te) {
		return nil, fmt.Errorf("%w: time axis step must be > 0: %g", core.ErrInvalidParameter, te)
	}
	if steps := math.Ceil(duration / te); steps > MaxSamples {
		return nil, fmt.Errorf("%w: time axis of %g s at step %g s exceeds %d samples",
			core.ErrInvalidParameter, duration, te, MaxSamples)
	}

	start := -duration / 2
	out := make([]float64, AxisLen(duration, te))
	for k := range out {
		out[k] = start + float64(k)*te
	}
	return out, nil
}

// AxisLen returns the number of samples TimeAxis produces: ceil(duration/te),
// reduced while the last sample would reach duration/2. It is 0 for invalid
// inputs and for grids longer than MaxSamples.
func AxisLen(duration, te float64) int {
	if !core.Positive(duration) || !core.Positive(te) || math.Ceil(duration/te) > MaxSamples {
		return 0
	}

	start, stop := -duration/2, duration/2
	n := int(math.Ceil((stop - start) / te))
	for n > 0 && start+float64(n-1)*te >= stop {
		n--
	}
	return n
}

// Linspace returns n evenly spaced values over [lo, hi], both inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{lo}
	}

	return floats.Span(make([]float64, n), lo, hi)
}
