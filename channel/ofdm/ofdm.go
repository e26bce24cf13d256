package ofdm

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-rfchannel/channel/fading"
	"github.com/cwbudde/algo-rfchannel/dsp/core"
	"github.com/cwbudde/algo-rfchannel/internal/dft"
)

// Config describes an OFDM link.
type Config struct {
	// FFTLen is the number of subcarriers per symbol.
	FFTLen int
	// GuardLen is the cyclic prefix length in samples.
	GuardLen int
	// DataSubcarriers is the number of subcarriers carrying data.
	DataSubcarriers int
	// EsN0dB is the target symbol energy to noise density ratio.
	EsN0dB float64
	// Fading selects an optional multipath channel.
	Fading fading.Model
	// NumPaths is the tap count of the fading channel.
	NumPaths int
}

// DefaultConfig returns the 64/16/48 configuration with fading disabled.
func DefaultConfig() Config {
	return Config{
		FFTLen:          64,
		GuardLen:        16,
		DataSubcarriers: 48,
		EsN0dB:          1,
		Fading:          fading.ModelNone,
		NumPaths:        3,
	}
}

// SymbolLen returns FFTLen+GuardLen.
func (c Config) SymbolLen() int { return c.FFTLen + c.GuardLen }

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.FFTLen <= 0 {
		return fmt.Errorf("%w: ofdm fft length must be > 0: %d", core.ErrInvalidParameter, c.FFTLen)
	}
	if c.GuardLen < 0 || c.GuardLen > c.FFTLen {
		return fmt.Errorf("%w: ofdm guard length must be in [0,%d]: %d", core.ErrInvalidParameter, c.FFTLen, c.GuardLen)
	}
	if c.DataSubcarriers <= 0 || c.DataSubcarriers > c.FFTLen {
		return fmt.Errorf("%w: ofdm data subcarriers must be in [1,%d]: %d",
			core.ErrInvalidParameter, c.FFTLen, c.DataSubcarriers)
	}
	if !core.IsFinite(c.EsN0dB) {
		return fmt.Errorf("%w: ofdm Es/N0 must be finite: %g", core.ErrInvalidParameter, c.EsN0dB)
	}
	return nil
}

// NoiseStd returns the per-sample noise standard deviation for a channel with
// mean power gain g.
func (c Config) NoiseStd(g float64) float64 {
	fft := float64(c.FFTLen)
	return math.Sqrt(0.5 * g *
		(fft / float64(c.DataSubcarriers)) *
		(fft / float64(c.SymbolLen())) *
		core.DBPowerToLinear(-c.EsN0dB))
}

// Result is the output of [Frame].
type Result struct {
	// Signal is the real part of the stream plus noise.
	Signal []float64
	// Complex is the stream before noise.
	Complex []complex128
	// NoiseStd is the standard deviation of the added noise.
	NoiseStd float64
	// MeanChannelPowerGain is mean(|g|^2) of the fading taps, 1 without fading.
	MeanChannelPowerGain float64
	// NumSymbols is the number of OFDM symbols.
	NumSymbols int
}

// Frame splits input into blocks of FFTLen samples, dropping any remainder,
// transforms each block with a normalized inverse DFT, prepends the cyclic
// prefix and concatenates the symbols. The stream then passes through the
// configured fading channel, truncated to its unfaded length, and real
// Gaussian noise is added. The output has NumSymbols·(FFTLen+GuardLen)
// samples.
func Frame(input []float64, cfg Config, rng *rand.Rand) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if rng == nil {
		return Result{}, fmt.Errorf("%w: ofdm needs a random source", core.ErrInvalidParameter)
	}

	stream, numSymbols, err := Modulate(input, cfg.FFTLen, cfg.GuardLen)
	if err != nil {
		return Result{}, err
	}

	ch, err := fading.NewChannel(cfg.Fading, cfg.NumPaths, rng)
	if err != nil {
		return Result{}, err
	}
	faded, err := ch.ApplyHead(stream)
	if err != nil {
		return Result{}, err
	}

	gain := ch.MeanPowerGain()
	noiseStd := cfg.NoiseStd(gain)

	out := make([]float64, len(faded))
	for i, v := range faded {
		out[i] = real(v) + noiseStd*rng.NormFloat64()
	}

	return Result{
		Signal:               out,
		Complex:              faded,
		NoiseStd:             noiseStd,
		MeanChannelPowerGain: gain,
		NumSymbols:           numSymbols,
	}, nil
}

// Modulate performs the block transform and cyclic prefix insertion only.
func Modulate(input []float64, fftLen, guardLen int) ([]complex128, int, error) {
	if fftLen <= 0 {
		return nil, 0, fmt.Errorf("%w: ofdm fft length must be > 0: %d", core.ErrInvalidParameter, fftLen)
	}
	if guardLen < 0 || guardLen > fftLen {
		return nil, 0, fmt.Errorf("%w: ofdm guard length must be in [0,%d]: %d", core.ErrInvalidParameter, fftLen, guardLen)
	}

	numSymbols := len(input) / fftLen
	symLen := fftLen + guardLen
	out := make([]complex128, numSymbols*symLen)

	block := make([]complex128, fftLen)
	for s := 0; s < numSymbols; s++ {
		for i := range block {
			block[i] = complex(input[s*fftLen+i], 0)
		}

		sym, err := dft.Inverse(block)
		if err != nil {
			return nil, 0, fmt.Errorf("ofdm: symbol %d: %w", s, err)
		}

		dst := out[s*symLen : (s+1)*symLen]
		copy(dst, sym[fftLen-guardLen:])
		copy(dst[guardLen:], sym)
	}
	return out, numSymbols, nil
}
