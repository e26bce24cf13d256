// Package signal builds the baseline time-domain waveforms of the channel
// simulator: the centered time axis, sinusoids, rectangular pulses, Dirac
// combs and ideally sampled products.
//
// Every time axis is centered on zero and covers the half-open window
// [-duration/2, duration/2) with a fixed step te. Sample k sits at
// -duration/2 + k·te.
package signal
