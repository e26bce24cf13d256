// Package ofdm frames a real waveform into OFDM symbols with a cyclic prefix,
// optionally passes the stream through a fading channel and adds Gaussian
// noise calibrated to a target Es/N0.
package ofdm
