// Package dft computes exact-length discrete Fourier transforms.
//
// Power-of-two lengths run on algo-fft plans; every other length runs on the
// gonum mixed-radix (FFTPACK) transform, so an n-sample input always yields
// exactly n bins with no zero padding. Conventions follow numpy: Forward is
// unnormalized and Inverse is scaled by 1/n.
package dft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Forward returns X[k] = sum_n x[n]·exp(-2πi·kn/N).
func Forward(x []complex128) ([]complex128, error) {
	n := len(x)
	switch {
	case n == 0:
		return []complex128{}, nil
	case n == 1:
		return []complex128{x[0]}, nil
	}

	if isPowerOf2(n) {
		out, err := planned(x, false)
		if err == nil {
			return out, nil
		}
	}

	return fourier.NewCmplxFFT(n).Coefficients(nil, x), nil
}

// Inverse returns x[n] = (1/N)·sum_k X[k]·exp(2πi·kn/N).
func Inverse(x []complex128) ([]complex128, error) {
	n := len(x)
	switch {
	case n == 0:
		return []complex128{}, nil
	case n == 1:
		return []complex128{x[0]}, nil
	}

	if isPowerOf2(n) {
		out, err := planned(x, true)
		if err == nil {
			return out, nil
		}
	}

	out := fourier.NewCmplxFFT(n).Sequence(nil, x)
	scale := complex(1/float64(n), 0)
	for i := range out {
		out[i] *= scale
	}
	return out, nil
}

// ForwardReal transforms a real sequence.
func ForwardReal(x []float64) ([]complex128, error) {
	return Forward(Complex(x))
}

// Complex widens a real slice to complex128 with zero imaginary parts.
func Complex(x []float64) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex(v, 0)
	}
	return out
}

// Real returns the real parts of x.
func Real(x []complex128) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = real(v)
	}
	return out
}

func planned(x []complex128, inverse bool) ([]complex128, error) {
	plan, err := algofft.NewPlan64(len(x))
	if err != nil {
		return nil, fmt.Errorf("dft: failed to create FFT plan: %w", err)
	}

	src := make([]complex128, len(x))
	copy(src, x)
	out := make([]complex128, len(x))

	if inverse {
		err = plan.Inverse(out, src)
	} else {
		err = plan.Forward(out, src)
	}
	if err != nil {
		return nil, fmt.Errorf("dft: transform failed: %w", err)
	}
	return out, nil
}

// NextPowerOf2 returns the smallest power of two >= n.
func NextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
