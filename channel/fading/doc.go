// Package fading generates multipath fading channels and fading envelopes.
//
// A [Channel] is a tapped delay line whose tap powers follow a power-delay
// profile. Taps are either deterministic (square root of the profile) or
// drawn as circularly symmetric complex Gaussians, giving Rayleigh-faded taps.
// The envelope generators [Rician], [Nakagami] and [Rayleigh] produce fading
// samples without an input waveform.
//
// Every random draw comes from the *rand.Rand passed by the caller; the
// package holds no random state.
package fading
