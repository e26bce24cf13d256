package fading

import (
	"fmt"
	"math/rand/v2"

	"github.com/cwbudde/algo-rfchannel/dsp/conv"
	"github.com/cwbudde/algo-rfchannel/dsp/core"
)

// Channel is a tapped delay line with fixed gains.
type Channel struct {
	model Model
	gains []complex128
}

// NewChannel draws the taps for model. numPaths is ignored for [ModelNone].
func NewChannel(model Model, numPaths int, rng *rand.Rand) (Channel, error) {
	if !model.valid() {
		return Channel{}, fmt.Errorf("%w: fading model %d", core.ErrUnsupportedVariant, int(model))
	}

	p, ok := model.Profile()
	if !ok {
		return Channel{model: model}, nil
	}

	g, err := Gains(p, numPaths, model.Mode(), rng)
	if err != nil {
		return Channel{}, err
	}
	return Channel{model: model, gains: g}, nil
}

// Model returns the channel variant.
func (c Channel) Model() Model { return c.model }

// Gains returns a copy of the tap gains. It is empty for [ModelNone].
func (c Channel) Gains() []complex128 {
	out := make([]complex128, len(c.gains))
	copy(out, c.gains)
	return out
}

// MeanPowerGain returns mean(|g|^2), 1 when the channel has no taps.
func (c Channel) MeanPowerGain() float64 {
	return MeanPowerGain(c.gains)
}

// Apply convolves waveform with the taps. The result has len(waveform)+N-1
// samples; [ModelNone] returns a copy of waveform.
func (c Channel) Apply(waveform []complex128) ([]complex128, error) {
	return c.apply(waveform, conv.ModeFull)
}

// ApplyHead is Apply truncated to the first len(waveform) samples.
func (c Channel) ApplyHead(waveform []complex128) ([]complex128, error) {
	return c.apply(waveform, conv.ModeHead)
}

// ApplyReal widens x to complex and applies the channel.
func (c Channel) ApplyReal(x []float64) ([]complex128, error) {
	w := make([]complex128, len(x))
	for i, v := range x {
		w[i] = complex(v, 0)
	}
	return c.Apply(w)
}

func (c Channel) apply(waveform []complex128, mode conv.Mode) ([]complex128, error) {
	if len(c.gains) == 0 || len(waveform) == 0 {
		out := make([]complex128, len(waveform))
		copy(out, waveform)
		return out, nil
	}
	out, err := conv.ComplexMode(waveform, c.gains, mode)
	if err != nil {
		return nil, fmt.Errorf("fading: %w", err)
	}
	return out, nil
}
