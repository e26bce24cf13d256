// Package frequency summarizes spectra on an explicit frequency axis.
//
// Statistics consider only bins with non-negative frequency, so a two-sided
// magnitude spectrum and a one-sided power spectrum are both accepted.
package frequency

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-rfchannel/dsp/core"
	"gonum.org/v1/gonum/floats"
)

// Stats holds frequency-domain statistics.
type Stats struct {
	Bins          int     `json:"bins"`
	PeakFrequency float64 `json:"peak_frequency"`
	PeakValue     float64 `json:"peak_value"`
	Centroid      float64 `json:"centroid"`
	Spread        float64 `json:"spread"`
	Flatness      float64 `json:"flatness"`
	Rolloff       float64 `json:"rolloff"`
	Bandwidth3dB  float64 `json:"bandwidth_3db"`
}

// RolloffFraction is the energy fraction used by [Calculate].
const RolloffFraction = 0.85

// Calculate computes all statistics of values over freq in Hz.
func Calculate(freq, values []float64) (Stats, error) {
	f, v, err := positiveHalf(freq, values)
	if err != nil {
		return Stats{}, err
	}
	if len(v) == 0 {
		return Stats{}, nil
	}

	peak := floats.MaxIdx(v)
	cent := Centroid(f, v)
	return Stats{
		Bins:          len(v),
		PeakFrequency: f[peak],
		PeakValue:     v[peak],
		Centroid:      cent,
		Spread:        spread(f, v, cent),
		Flatness:      Flatness(v),
		Rolloff:       Rolloff(f, v, RolloffFraction),
		Bandwidth3dB:  Bandwidth(f, v),
	}, nil
}

// positiveHalf keeps the bins with f >= 0, in axis order.
func positiveHalf(freq, values []float64) ([]float64, []float64, error) {
	if len(freq) != len(values) {
		return nil, nil, fmt.Errorf("%w: frequency stats axis and values length mismatch: %d != %d",
			core.ErrInvalidParameter, len(freq), len(values))
	}

	f := make([]float64, 0, len(freq))
	v := make([]float64, 0, len(values))
	for i, x := range freq {
		if x >= 0 {
			f = append(f, x)
			v = append(v, math.Abs(values[i]))
		}
	}
	return f, v, nil
}

// Centroid returns sum(f·v)/sum(v), or 0 for an all-zero spectrum.
func Centroid(freq, values []float64) float64 {
	sum := floats.Sum(values)
	if sum == 0 {
		return 0
	}
	return floats.Dot(freq, values) / sum
}

func spread(freq, values []float64, cent float64) float64 {
	sum := floats.Sum(values)
	if sum == 0 {
		return 0
	}
	acc := 0.0
	for i, v := range values {
		d := freq[i] - cent
		acc += d * d * v
	}
	return math.Sqrt(acc / sum)
}

// Flatness returns the spectral flatness (Wiener entropy) in the range 0..1.
//
// Flatness = exp(mean(log(|X_i|))) / mean(|X_i|)
//
// The DC bin (index 0) is excluded. A zero bin makes the flatness zero.
func Flatness(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	bins := values[1:]
	meanLin := floats.Sum(bins) / float64(len(bins))
	if meanLin == 0 {
		return 0
	}

	sumLog := 0.0
	for _, v := range bins {
		if v <= 0 {
			return 0
		}
		sumLog += math.Log(v)
	}
	return math.Exp(sumLog/float64(len(bins))) / meanLin
}

// Rolloff returns the frequency below which fraction of the spectral energy
// (sum of squares) lies.
func Rolloff(freq, values []float64, fraction float64) float64 {
	if len(values) == 0 {
		return 0
	}
	total := floats.Dot(values, values)
	if total == 0 {
		return 0
	}

	threshold := fraction * total
	cum := 0.0
	for i, v := range values {
		cum += v * v
		if cum >= threshold {
			return freq[i]
		}
	}
	return freq[len(freq)-1]
}

// Bandwidth returns the width between the points around the peak where the
// values drop to peak/sqrt(2), interpolating linearly between bins.
func Bandwidth(freq, values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}

	peakBin := floats.MaxIdx(values)
	peakVal := values[peakBin]
	if peakVal == 0 {
		return 0
	}
	threshold := peakVal / math.Sqrt2

	lower := freq[0]
	for i := peakBin; i >= 1; i-- {
		if values[i-1] <= threshold && values[i] > threshold {
			lower = interp(freq[i-1], freq[i], values[i-1], values[i], threshold)
			break
		}
	}

	upper := freq[n-1]
	for i := peakBin; i < n-1; i++ {
		if values[i+1] <= threshold && values[i] > threshold {
			upper = interp(freq[i], freq[i+1], values[i], values[i+1], threshold)
			break
		}
	}

	if bw := upper - lower; bw > 0 {
		return bw
	}
	return 0
}

func interp(fLow, fHigh, vLow, vHigh, threshold float64) float64 {
	denom := vHigh - vLow
	if denom == 0 {
		return (fLow + fHigh) / 2
	}
	t := (threshold - vLow) / denom
	return fLow + t*(fHigh-fLow)
}
