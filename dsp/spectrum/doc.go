// Package spectrum computes DFT spectra of sampled signals together with their
// frequency axes.
//
// Two value layouts are supported: the full two-sided magnitude |X[k]| in
// standard DFT order, and the one-sided power |X[k]|^2 over bins 0..n/2.
package spectrum
