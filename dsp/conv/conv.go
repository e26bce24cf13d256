package conv

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-rfchannel/internal/dft"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput  = errors.New("conv: empty input")
	ErrEmptyKernel = errors.New("conv: empty kernel")
)

// Mode specifies the output mode for convolution.
type Mode int

const (
	// ModeFull returns the full convolution result with length len(a)+len(b)-1.
	ModeFull Mode = iota

	// ModeSame returns output with the same length as the first input,
	// centered on the full result.
	ModeSame

	// ModeValid returns only the portion where signals fully overlap,
	// with length max(len(a), len(b)) - min(len(a), len(b)) + 1.
	ModeValid

	// ModeHead returns the first len(a) samples of the full result, the
	// causal part of a channel applied to a stream of len(a) samples.
	ModeHead
)

// directThreshold is the kernel length up to which direct convolution wins.
const directThreshold = 64

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	for i, x := range a {
		if x == 0 {
			continue
		}
		for j, h := range b {
			result[i+j] += x * h
		}
	}
	return result, nil
}

// DirectComplex is Direct for complex sequences.
func DirectComplex(a, b []complex128) ([]complex128, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]complex128, len(a)+len(b)-1)
	for i, x := range a {
		if x == 0 {
			continue
		}
		for j, h := range b {
			result[i+j] += x * h
		}
	}
	return result, nil
}

// FFT performs linear convolution through zero-padded power-of-two
// transforms. Returns a new slice of length len(a) + len(b) - 1.
func FFT(a, b []complex128) ([]complex128, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	n := len(a) + len(b) - 1
	size := dft.NextPowerOf2(n)

	aPadded := make([]complex128, size)
	copy(aPadded, a)
	bPadded := make([]complex128, size)
	copy(bPadded, b)

	aFreq, err := dft.Forward(aPadded)
	if err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	bFreq, err := dft.Forward(bPadded)
	if err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	for i := range aFreq {
		aFreq[i] *= bFreq[i]
	}

	result, err := dft.Inverse(aFreq)
	if err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}
	return result[:n], nil
}

// Complex performs complex linear convolution with automatic algorithm
// selection: direct summation for kernels up to 64 taps, FFT otherwise.
func Complex(a, b []complex128) ([]complex128, error) {
	short := len(b)
	if len(a) < short {
		short = len(a)
	}
	if short <= directThreshold {
		return DirectComplex(a, b)
	}
	return FFT(a, b)
}

// ComplexMode performs complex convolution and trims the result to mode.
func ComplexMode(a, b []complex128, mode Mode) ([]complex128, error) {
	full, err := Complex(a, b)
	if err != nil {
		return nil, err
	}
	return trimToMode(full, len(a), len(b), mode), nil
}

// DirectMode performs real direct convolution and trims the result to mode.
func DirectMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Direct(a, b)
	if err != nil {
		return nil, err
	}
	return trimToMode(full, len(a), len(b), mode), nil
}

// trimToMode extracts the appropriate portion of a full convolution result.
func trimToMode[T any](full []T, lenA, lenB int, mode Mode) []T {
	switch mode {
	case ModeFull:
		return full
	case ModeSame:
		// Center the result to match length of first input
		start := (lenB - 1) / 2
		return full[start : start+lenA]
	case ModeValid:
		if lenA >= lenB {
			return full[lenB-1 : lenA]
		}
		return full[lenA-1 : lenB]
	case ModeHead:
		return full[:lenA]
	default:
		return full
	}
}
