// Package time summarizes sampled time-domain waveforms.
package time

import (
	"math"

	"github.com/cwbudde/algo-rfchannel/dsp/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds time-domain signal statistics.
//
//nolint:revive
type Stats struct {
	Length         int     `json:"length"`
	DC             float64 `json:"dc"`
	RMS            float64 `json:"rms"`
	RMS_dB         float64 `json:"rms_db"`
	Max            float64 `json:"max"`
	MaxPos         int     `json:"max_pos"`
	Min            float64 `json:"min"`
	MinPos         int     `json:"min_pos"`
	Peak           float64 `json:"peak"` // max(|max|, |min|)
	Peak_dB        float64 `json:"peak_db"`
	CrestFactor    float64 `json:"crest_factor"` // peak / RMS (linear)
	CrestFactor_dB float64 `json:"crest_factor_db"`
	// PAPR_dB is the peak-to-average power ratio, 10·log10(peak²/power).
	PAPR_dB       float64 `json:"papr_db"`
	Energy        float64 `json:"energy"` // sum of squares
	Power         float64 `json:"power"`  // energy / length
	ZeroCrossings int     `json:"zero_crossings"`
	Variance      float64 `json:"variance"`
	StdDev        float64 `json:"std_dev"`
}

// Calculate computes all statistics of signal. dB fields are floored at
// core.Epsilon, so an all-zero or empty signal reports -240 dB.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		floor := core.LinearToDBFloor(0)
		return Stats{RMS_dB: floor, Peak_dB: floor, CrestFactor_dB: floor, PAPR_dB: floor}
	}

	mean, variance := stat.PopMeanVariance(signal, nil)
	energy := floats.Dot(signal, signal)
	power := energy / float64(n)
	rms := math.Sqrt(power)

	s := Stats{
		Length:        n,
		DC:            mean,
		RMS:           rms,
		RMS_dB:        core.LinearToDBFloor(rms),
		Max:           floats.Max(signal),
		MaxPos:        floats.MaxIdx(signal),
		Min:           floats.Min(signal),
		MinPos:        floats.MinIdx(signal),
		Energy:        energy,
		Power:         power,
		ZeroCrossings: ZeroCrossings(signal),
		Variance:      variance,
		StdDev:        math.Sqrt(variance),
	}
	s.Peak = math.Max(math.Abs(s.Max), math.Abs(s.Min))
	s.Peak_dB = core.LinearToDBFloor(s.Peak)
	if rms > 0 {
		s.CrestFactor = s.Peak / rms
	}
	s.CrestFactor_dB = core.LinearToDBFloor(s.CrestFactor)
	s.PAPR_dB = s.CrestFactor_dB
	return s
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return math.Sqrt(floats.Dot(signal, signal) / float64(len(signal)))
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return math.Max(math.Abs(floats.Max(signal)), math.Abs(floats.Min(signal)))
}

// ZeroCrossings returns the number of zero crossings in the signal.
// A crossing is counted when consecutive samples have opposite signs.
func ZeroCrossings(signal []float64) int {
	count := 0
	for i := 1; i < len(signal); i++ {
		if (signal[i-1] >= 0) != (signal[i] >= 0) {
			count++
		}
	}
	return count
}
