// Package buffer pools float64 scratch memory for the spectral kernels.
//
// Kernels that hand split real and imaginary vectors to the SIMD routines
// borrow a [Buffer] from a [Pool], so in steady state a transform allocates
// only its output.
package buffer
