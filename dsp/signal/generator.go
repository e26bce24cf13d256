package signal

import "github.com/cwbudde/algo-rfchannel/dsp/core"

// Generator builds waveforms on one shared sampling grid.
type Generator struct {
	cfg core.GridConfig
}

// NewGenerator creates a generator for the configured grid.
func NewGenerator(opts ...core.GridOption) *Generator {
	return &Generator{cfg: core.ApplyGridOptions(opts...)}
}

// Config returns the generator grid configuration.
func (g *Generator) Config() core.GridConfig {
	return g.cfg
}

// Time returns the grid's centered time axis.
func (g *Generator) Time() ([]float64, error) {
	return TimeAxis(g.cfg.Duration, g.cfg.Interval)
}

// Sine returns the time axis and amplitude·sin(2π·freq·t + phase) on it.
func (g *Generator) Sine(amplitude, freq, phase float64) (t, y []float64, err error) {
	t, err = g.Time()
	if err != nil {
		return nil, nil, err
	}
	return t, Sinusoid(t, amplitude, freq, phase), nil
}

// Comb returns a Dirac comb with the given impulse period on the grid.
func (g *Generator) Comb(period float64) (Comb, error) {
	return DiracComb(g.cfg.Duration, period, g.cfg.Interval)
}

// SampledSine samples a sinusoid with a Dirac comb of impulse period.
func (g *Generator) SampledSine(amplitude, freq, phase, period float64) (t, y []float64, err error) {
	comb, err := g.Comb(period)
	if err != nil {
		return nil, nil, err
	}

	carrier := Sinusoid(comb.Time, amplitude, freq, phase)
	y, err = SampledProduct(comb.Values, carrier)
	if err != nil {
		return nil, nil, err
	}
	return comb.Time, y, nil
}
