// Package conv provides linear convolution for real and complex sequences.
//
// Two strategies are offered:
//
//   - Direct convolution: O(N*M) time-domain summation, best for short kernels
//   - FFT convolution: zero-padded power-of-two transforms, for long kernels
//
// # Usage
//
//	y, err := conv.Direct(signal, kernel)        // real, length N+M-1
//	y, err := conv.Complex(waveform, tapGains)   // complex, automatic strategy
//
// Results can be trimmed with [ModeSame], [ModeValid] or [ModeHead].
package conv
