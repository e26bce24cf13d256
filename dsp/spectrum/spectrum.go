package spectrum

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-rfchannel/dsp/buffer"
	"github.com/cwbudde/algo-vecmath"
)

// scratch pools the split real and imaginary vectors fed to vecmath.
var scratch = buffer.NewPool()

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return []float64{}
	}

	out := make([]float64, len(in))
	re, im, buf := scratch.SplitComplex(in)
	vecmath.Magnitude(out, re, im)
	scratch.Put(buf)
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return []float64{}
	}

	out := make([]float64, len(in))
	re, im, buf := scratch.SplitComplex(in)
	vecmath.Power(out, re, im)
	scratch.Put(buf)
	return out
}

// Phase returns arg(X[k]) for each complex spectrum bin in radians.
func Phase(in []complex128) []float64 {
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// PeakBin returns the index of the largest value, or -1 for empty input.
// NaN values are ignored.
func PeakBin(values []float64) int {
	best := -1
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if best < 0 || v > values[best] {
			best = i
		}
	}
	return best
}
