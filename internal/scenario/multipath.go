package scenario

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/cwbudde/algo-rfchannel/channel/fading"
	"github.com/cwbudde/algo-rfchannel/channel/ofdm"
	"github.com/cwbudde/algo-rfchannel/dsp/conv"
	"github.com/cwbudde/algo-rfchannel/dsp/core"
	"github.com/cwbudde/algo-rfchannel/dsp/signal"
	"github.com/cwbudde/algo-rfchannel/internal/config"
	"github.com/cwbudde/algo-rfchannel/internal/dft"
	"gonum.org/v1/gonum/floats"
)

type fadingParams struct {
	Grid      `yaml:",inline"`
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"freq"`
	Phase     float64 `yaml:"phase"`
	// Model is a fading model name or its numeric code.
	Model    string `yaml:"model"`
	NumPaths int    `yaml:"num_paths"`
	ShowLoss bool   `yaml:"show_loss"`
}

// runFading passes a sinusoid through a multipath channel and keeps the real
// part of the first len(t) output samples.
func runFading(_ context.Context, params config.Params, rng *rand.Rand) (Result, error) {
	p := fadingParams{
		Grid:      defaultGrid(),
		Amplitude: 1,
		Frequency: 5,
		Model:     "exponential",
		NumPaths:  500,
		ShowLoss:  true,
	}
	if err := params.Decode(&p); err != nil {
		return Result{}, err
	}

	model, err := fading.ParseModel(p.Model)
	if err != nil {
		return Result{}, err
	}
	t, err := p.Axis()
	if err != nil {
		return Result{}, err
	}

	y := signal.Sinusoid(t, p.Amplitude, p.Frequency, p.Phase)
	res := p.series(t, y)
	if !p.ShowLoss {
		return res, nil
	}

	ch, err := fading.NewChannel(model, p.NumPaths, rng)
	if err != nil {
		return Result{}, err
	}
	out, err := ch.ApplyHead(dft.Complex(y))
	if err != nil {
		return Result{}, err
	}
	res.Y = dft.Real(out)
	res.Extra = map[string]any{
		"model":           model.String(),
		"mean_power_gain": ch.MeanPowerGain(),
	}
	return res, nil
}

type ofdmParams struct {
	Grid            `yaml:",inline"`
	FFTLen          int     `yaml:"fftlen"`
	GuardLen        int     `yaml:"gilen"`
	DataSubcarriers int     `yaml:"data_sc"`
	EsN0dB          float64 `yaml:"esn0"`
	Fading          bool    `yaml:"fading"`
	FadingModel     string  `yaml:"fading_model"`
	NumPaths        int     `yaml:"num_paths"`
	FrequencyMHz    float64 `yaml:"frequency_mhz"`
}

func runOFDM(_ context.Context, params config.Params, rng *rand.Rand) (Result, error) {
	def := ofdm.DefaultConfig()
	p := ofdmParams{
		Grid:            defaultGrid(),
		FFTLen:          def.FFTLen,
		GuardLen:        def.GuardLen,
		DataSubcarriers: def.DataSubcarriers,
		EsN0dB:          def.EsN0dB,
		FadingModel:     "uniform",
		NumPaths:        def.NumPaths,
		FrequencyMHz:    1,
	}
	if err := params.Decode(&p); err != nil {
		return Result{}, err
	}

	cfg := ofdm.Config{
		FFTLen:          p.FFTLen,
		GuardLen:        p.GuardLen,
		DataSubcarriers: p.DataSubcarriers,
		EsN0dB:          p.EsN0dB,
		Fading:          fading.ModelNone,
		NumPaths:        p.NumPaths,
	}
	if p.Fading {
		model, err := fading.ParseModel(p.FadingModel)
		if err != nil {
			return Result{}, err
		}
		cfg.Fading = model
	}

	t, err := p.Axis()
	if err != nil {
		return Result{}, err
	}
	input := signal.Sinusoid(t, 1, p.FrequencyMHz*1e6, 0)

	framed, err := ofdm.Frame(input, cfg, rng)
	if err != nil {
		return Result{}, err
	}

	res := p.series(p.stepAxis(len(framed.Signal)), framed.Signal)
	res.Extra = map[string]any{
		"symbols":                 framed.NumSymbols,
		"noise_std":               framed.NoiseStd,
		"mean_channel_power_gain": framed.MeanChannelPowerGain,
	}
	return res, nil
}

// ricianOutput selects what the rician scenario reports.
type ricianOutput int

const (
	ricianConvolved ricianOutput = iota
	ricianChannel
	ricianChannelDB
)

func parseRicianOutput(name string) (ricianOutput, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "convolved", "convol_sign":
		return ricianConvolved, nil
	case "channel", "rician_channel":
		return ricianChannel, nil
	case "channel-db", "ricianchannel_db":
		return ricianChannelDB, nil
	default:
		return 0, fmt.Errorf("%w: unknown rician output %q", core.ErrUnsupportedVariant, name)
	}
}

type ricianParams struct {
	Grid        `yaml:",inline"`
	KFactorDB   float64 `yaml:"k_db"`
	SignalPower float64 `yaml:"signal_power"`
	FrequencyHz float64 `yaml:"frequency_hz"`
	// Samples is the channel length; zero means one tap per grid sample.
	Samples  int    `yaml:"samples"`
	Output   string `yaml:"output"`
	ShowLoss bool   `yaml:"show_loss"`
}

func runRician(_ context.Context, params config.Params, rng *rand.Rand) (Result, error) {
	p := ricianParams{
		Grid:        defaultGrid(),
		KFactorDB:   10,
		SignalPower: 20,
		FrequencyHz: 900,
		Output:      "convolved",
		ShowLoss:    true,
	}
	if err := params.Decode(&p); err != nil {
		return Result{}, err
	}

	output, err := parseRicianOutput(p.Output)
	if err != nil {
		return Result{}, err
	}
	amplitude, err := sinusAmplitude(p.SignalPower)
	if err != nil {
		return Result{}, err
	}
	t, err := p.Axis()
	if err != nil {
		return Result{}, err
	}

	n := p.Samples
	if n == 0 {
		n = len(t)
	}
	h, err := fading.Rician(fading.KFactorFromDB(p.KFactorDB), n, rng)
	if err != nil {
		return Result{}, err
	}

	switch output {
	case ricianChannel:
		res := p.series(p.stepAxis(n), fading.Magnitude(h))
		res.YLabel = "envelope"
		return res, nil
	case ricianChannelDB:
		res := p.series(p.stepAxis(n), fading.EnvelopeDB(h))
		res.YLabel = "envelope (dB)"
		return res, nil
	}

	y := signal.Sinusoid(t, amplitude, p.FrequencyHz, 0)
	if p.ShowLoss && len(y) > 0 && len(h) > 0 {
		out, err := conv.ComplexMode(dft.Complex(y), h, conv.ModeHead)
		if err != nil {
			return Result{}, err
		}
		y = fading.Magnitude(out)
	}
	return p.series(t, y), nil
}

type nakagamiParams struct {
	Grid        `yaml:",inline"`
	FrequencyHz float64 `yaml:"frequency_hz"`
	SignalPower float64 `yaml:"signal_power"`
	M           float64 `yaml:"m"`
	Omega       float64 `yaml:"omega"`
	ShowLoss    bool    `yaml:"show_loss"`
}

func runNakagami(_ context.Context, params config.Params, rng *rand.Rand) (Result, error) {
	p := nakagamiParams{
		Grid:        defaultGrid(),
		FrequencyHz: 900,
		SignalPower: 3,
		M:           1,
		Omega:       1,
		ShowLoss:    true,
	}
	if err := params.Decode(&p); err != nil {
		return Result{}, err
	}

	amplitude, err := sinusAmplitude(p.SignalPower)
	if err != nil {
		return Result{}, err
	}
	t, err := p.Axis()
	if err != nil {
		return Result{}, err
	}

	y := signal.Sinusoid(t, amplitude, p.FrequencyHz, 0)
	if p.ShowLoss {
		h, err := fading.Nakagami(p.M, p.Omega, len(y), rng)
		if err != nil {
			return Result{}, err
		}
		floats.Mul(y, h)
	}
	return p.series(t, y), nil
}

// sinusAmplitude returns sqrt(2·P), the peak of a sinusoid of mean power P.
func sinusAmplitude(power float64) (float64, error) {
	if !core.IsFinite(power) || power < 0 {
		return 0, fmt.Errorf("%w: scenario signal power must be >= 0: %g", core.ErrInvalidParameter, power)
	}
	return math.Sqrt(2 * power), nil
}
