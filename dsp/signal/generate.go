package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-rfchannel/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// combBoundary pulls the right edge of a comb window inward so an impulse
// exactly on duration/2 is excluded from the half-open window.
const combBoundary = 1e-9

// Comb is a Dirac comb sampled on a centered time axis.
type Comb struct {
	Time   []float64
	Values []int
}

// Count returns the number of impulses in the comb.
func (c Comb) Count() int {
	n := 0
	for _, v := range c.Values {
		n += v
	}
	return n
}

// Float returns the comb values as float64 samples.
func (c Comb) Float() []float64 {
	out := make([]float64, len(c.Values))
	for i, v := range c.Values {
		out[i] = float64(v)
	}
	return out
}

// Sinusoid returns amplitude·sin(2π·freq·t + phase) for each timestamp.
func Sinusoid(t []float64, amplitude, freq, phase float64) []float64 {
	out := make([]float64, len(t))
	w := 2 * math.Pi * freq
	for i, ti := range t {
		out[i] = amplitude * math.Sin(w*ti+phase)
	}
	return out
}

// Rect returns 1 where |x| <= 0.5 and 0 elsewhere.
func Rect(x []float64) []int {
	out := make([]int, len(x))
	for i, v := range x {
		if math.Abs(v) <= 0.5 {
			out[i] = 1
		}
	}
	return out
}

// RectPulse evaluates Rect(t / (width·pulse)), a rectangular pulse of
// width·pulse seconds centered on zero.
func RectPulse(t []float64, width, pulse float64) ([]int, error) {
	if width == 0 || !core.IsFinite(width) {
		return nil, fmt.Errorf("%w: rect width must be non-zero: %g", core.ErrInvalidParameter, width)
	}
	if !core.Positive(pulse) {
		return nil, fmt.Errorf("%w: rect pulse duration must be > 0: %g", core.ErrInvalidParameter, pulse)
	}

	scaled := make([]float64, len(t))
	den := width * pulse
	for i, ti := range t {
		scaled[i] = ti / den
	}
	return Rect(scaled), nil
}

// DiracComb places unit impulses at every integer multiple of period inside
// the centered window. Each impulse snaps to the nearest grid index
// round((n·period - t0)/te), ties to even.
func DiracComb(duration, period, te float64) (Comb, error) {
	if !core.Positive(period) {
		return Comb{}, fmt.Errorf("%w: comb period must be > 0: %g", core.ErrInvalidParameter, period)
	}
	if core.Positive(duration) && duration/period > MaxSamples {
		return Comb{}, fmt.Errorf("%w: comb of period %g s over %g s exceeds %d impulses",
			core.ErrInvalidParameter, period, duration, MaxSamples)
	}

	t, err := TimeAxis(duration, te)
	if err != nil {
		return Comb{}, err
	}

	values := make([]int, len(t))
	if len(t) == 0 {
		return Comb{Time: t, Values: values}, nil
	}

	tStart, tEnd := -duration/2, duration/2-combBoundary
	nMin := int(math.Ceil(tStart / period))
	nMax := int(math.Floor(tEnd / period))

	for n := nMin; n <= nMax; n++ {
		impulse := float64(n) * period
		idx := int(math.RoundToEven((impulse - t[0]) / te))
		if idx >= 0 && idx < len(values) {
			values[idx] = 1
		}
	}

	return Comb{Time: t, Values: values}, nil
}

// SampledProduct multiplies a comb with a carrier sample by sample, the
// ideal impulse sampler.
func SampledProduct(comb []int, carrier []float64) ([]float64, error) {
	if len(comb) != len(carrier) {
		return nil, fmt.Errorf("%w: sampled product length mismatch: %d != %d",
			core.ErrInvalidParameter, len(comb), len(carrier))
	}

	out := make([]float64, len(carrier))
	if len(out) == 0 {
		return out, nil
	}

	c := make([]float64, len(comb))
	for i, v := range comb {
		c[i] = float64(v)
	}
	vecmath.MulBlock(out, c, carrier)
	return out, nil
}

// Impulse returns a length-n signal with a single unit sample at n/2.
func Impulse(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	out[n/2] = 1
	return out
}

// DelayedCarrier returns sin(2π·freq·(t - d/c)) where the receiver distance
// d (km) follows the time axis sample by sample.
func DelayedCarrier(t []float64, freq float64, distancesKm []float64) ([]float64, error) {
	if len(t) != len(distancesKm) {
		return nil, fmt.Errorf("%w: delayed carrier length mismatch: %d != %d",
			core.ErrInvalidParameter, len(t), len(distancesKm))
	}

	out := make([]float64, len(t))
	w := 2 * math.Pi * freq
	for i, ti := range t {
		delay := distancesKm[i] * 1000 / core.SpeedOfLight
		out[i] = math.Sin(w * (ti - delay))
	}
	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}

// Scale returns data multiplied by gain.
func Scale(data []float64, gain float64) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = v * gain
	}
	return out
}
