package scenario

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/cwbudde/algo-rfchannel/dsp/core"
	"github.com/cwbudde/algo-rfchannel/dsp/signal"
	"github.com/cwbudde/algo-rfchannel/internal/config"
)

const (
	labelTime      = "time (s)"
	labelAmplitude = "amplitude"
)

// Grid is the centered sampling window shared by the time-series scenarios.
type Grid struct {
	Duration float64 `yaml:"duration"`
	Te       float64 `yaml:"te"`
}

func defaultGrid() Grid { return Grid{Duration: 1, Te: 0.001} }

// Axis returns the time axis of the grid.
func (g Grid) Axis() ([]float64, error) {
	return signal.TimeAxis(g.Duration, g.Te)
}

// Generator validates the grid and returns a generator on it.
func (g Grid) Generator() (*signal.Generator, error) {
	if !core.Positive(g.Duration) {
		return nil, fmt.Errorf("%w: scenario duration must be > 0: %g", core.ErrInvalidParameter, g.Duration)
	}
	if !core.Positive(g.Te) {
		return nil, fmt.Errorf("%w: scenario te must be > 0: %g", core.ErrInvalidParameter, g.Te)
	}
	return signal.NewGenerator(core.WithDuration(g.Duration), core.WithInterval(g.Te)), nil
}

func (g Grid) series(t, y []float64) Result {
	return Result{X: t, Y: y, XLabel: labelTime, YLabel: labelAmplitude, Step: g.Te}
}

// stepAxis returns n timestamps starting at the grid origin, for outputs
// whose length differs from the grid.
func (g Grid) stepAxis(n int) []float64 {
	out := make([]float64, n)
	start := -g.Duration / 2
	for k := range out {
		out[k] = start + float64(k)*g.Te
	}
	return out
}

func period(name string, v float64) (float64, error) {
	if !core.Positive(v) {
		return 0, fmt.Errorf("%w: scenario %s must be > 0: %g", core.ErrInvalidParameter, name, v)
	}
	return 1 / v, nil
}

func toFloats(v []int) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

type rectParams struct {
	Grid  `yaml:",inline"`
	Width float64 `yaml:"width"`
	Pulse float64 `yaml:"pulse"`
}

func runRect(_ context.Context, params config.Params, _ *rand.Rand) (Result, error) {
	p := rectParams{
		Grid:  Grid{Duration: 10e-3, Te: 1 / 250e3},
		Width: 1,
		Pulse: 1e-3,
	}
	if err := params.Decode(&p); err != nil {
		return Result{}, err
	}

	t, err := p.Axis()
	if err != nil {
		return Result{}, err
	}
	y, err := signal.RectPulse(t, p.Width, p.Pulse)
	if err != nil {
		return Result{}, err
	}
	return p.series(t, toFloats(y)), nil
}

type sinusParams struct {
	Grid      `yaml:",inline"`
	Period    float64 `yaml:"period"`
	Amplitude float64 `yaml:"amplitude"`
	Phase     float64 `yaml:"phase"`
}

func runSinus(_ context.Context, params config.Params, _ *rand.Rand) (Result, error) {
	p := sinusParams{
		Grid:      Grid{Duration: 10e-3, Te: 1 / 250e3},
		Period:    1e-3,
		Amplitude: 1,
	}
	if err := params.Decode(&p); err != nil {
		return Result{}, err
	}

	freq, err := period("period", p.Period)
	if err != nil {
		return Result{}, err
	}
	g, err := p.Generator()
	if err != nil {
		return Result{}, err
	}
	t, y, err := g.Sine(p.Amplitude, freq, p.Phase)
	if err != nil {
		return Result{}, err
	}
	return p.series(t, y), nil
}

func runImpulse(_ context.Context, params config.Params, _ *rand.Rand) (Result, error) {
	p := defaultGrid()
	if err := params.Decode(&p); err != nil {
		return Result{}, err
	}

	t, err := p.Axis()
	if err != nil {
		return Result{}, err
	}
	return p.series(t, signal.Impulse(len(t))), nil
}

type combParams struct {
	Grid   `yaml:",inline"`
	Period float64 `yaml:"period"`
}

func runDiracComb(_ context.Context, params config.Params, _ *rand.Rand) (Result, error) {
	p := combParams{Grid: defaultGrid(), Period: 0.1}
	if err := params.Decode(&p); err != nil {
		return Result{}, err
	}

	g, err := p.Generator()
	if err != nil {
		return Result{}, err
	}
	comb, err := g.Comb(p.Period)
	if err != nil {
		return Result{}, err
	}

	res := p.series(comb.Time, comb.Float())
	res.Extra = map[string]int{"impulse_count": comb.Count()}
	return res, nil
}

type sampledSinusParams struct {
	Grid          `yaml:",inline"`
	SinusPeriod   float64 `yaml:"sinus_period"`
	Amplitude     float64 `yaml:"amplitude"`
	Phase         float64 `yaml:"phase"`
	ImpulsePeriod float64 `yaml:"impulse_period"`
}

func runSampledSinus(_ context.Context, params config.Params, _ *rand.Rand) (Result, error) {
	p := sampledSinusParams{
		Grid:          Grid{Duration: 20e-3, Te: 1 / 250e3},
		SinusPeriod:   0.005,
		Amplitude:     1,
		ImpulsePeriod: 0.002,
	}
	if err := params.Decode(&p); err != nil {
		return Result{}, err
	}

	freq, err := period("sinus_period", p.SinusPeriod)
	if err != nil {
		return Result{}, err
	}
	g, err := p.Generator()
	if err != nil {
		return Result{}, err
	}
	t, y, err := g.SampledSine(p.Amplitude, freq, p.Phase, p.ImpulsePeriod)
	if err != nil {
		return Result{}, err
	}
	return p.series(t, y), nil
}
