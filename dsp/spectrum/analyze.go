package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-rfchannel/dsp/core"
	"github.com/cwbudde/algo-rfchannel/dsp/window"
	"github.com/cwbudde/algo-rfchannel/internal/dft"
	"github.com/cwbudde/algo-vecmath"
)

// Kind selects the value layout of a [Spectrum].
type Kind int

const (
	// KindMagnitude is |X[k]| over all n bins in standard DFT order.
	KindMagnitude Kind = iota
	// KindPowerOneSided is |X[k]|^2 over bins 0..n/2 with axis k/(n·te).
	KindPowerOneSided
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindMagnitude:
		return "magnitude"
	case KindPowerOneSided:
		return "power-one-sided"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Spectrum pairs a frequency axis in Hz with spectral values.
type Spectrum struct {
	Frequency []float64
	Values    []float64
	Kind      Kind
}

// Len returns the number of bins.
func (s Spectrum) Len() int { return len(s.Values) }

// Option configures [Analyze] and [AnalyzeComplex].
type Option func(*analyzeConfig)

type analyzeConfig struct {
	kind     Kind
	window   window.Type
	windowed bool
}

// WithKind selects the value layout. The default is [KindMagnitude].
func WithKind(k Kind) Option {
	return func(c *analyzeConfig) { c.kind = k }
}

// WithWindow applies an analysis window before the transform.
func WithWindow(t window.Type) Option {
	return func(c *analyzeConfig) {
		c.window = t
		c.windowed = true
	}
}

// FrequencyAxis returns the DFT bin frequencies for n samples at step te:
// k/(n·te) for k < ceil(n/2) and (k-n)/(n·te) otherwise.
func FrequencyAxis(n int, te float64) ([]float64, error) {
	if err := validateStep(te); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: spectrum length must be >= 0: %d", core.ErrInvalidParameter, n)
	}

	out := make([]float64, n)
	df := 1 / (float64(n) * te)
	half := (n + 1) / 2
	for k := range out {
		if k < half {
			out[k] = float64(k) * df
		} else {
			out[k] = float64(k-n) * df
		}
	}
	return out, nil
}

// Analyze transforms a real sequence sampled at step te.
func Analyze(x []float64, te float64, opts ...Option) (Spectrum, error) {
	return AnalyzeComplex(dft.Complex(x), te, opts...)
}

// AnalyzeComplex transforms a complex sequence sampled at step te.
func AnalyzeComplex(x []complex128, te float64, opts ...Option) (Spectrum, error) {
	cfg := analyzeConfig{kind: KindMagnitude}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := validateStep(te); err != nil {
		return Spectrum{}, err
	}
	if cfg.kind != KindMagnitude && cfg.kind != KindPowerOneSided {
		return Spectrum{}, fmt.Errorf("%w: spectrum kind %d", core.ErrUnsupportedVariant, int(cfg.kind))
	}

	n := len(x)
	if n == 0 {
		return Spectrum{Frequency: []float64{}, Values: []float64{}, Kind: cfg.kind}, nil
	}

	src := x
	if cfg.windowed {
		src = applyWindow(x, window.Generate(cfg.window, n))
	}

	bins, err := dft.Forward(src)
	if err != nil {
		return Spectrum{}, err
	}

	freq, err := FrequencyAxis(n, te)
	if err != nil {
		return Spectrum{}, err
	}

	if cfg.kind == KindMagnitude {
		return Spectrum{Frequency: freq, Values: Magnitude(bins), Kind: cfg.kind}, nil
	}

	half := n/2 + 1
	df := 1 / (float64(n) * te)
	axis := make([]float64, half)
	for k := range axis {
		axis[k] = float64(k) * df
	}
	return Spectrum{Frequency: axis, Values: Power(bins[:half]), Kind: cfg.kind}, nil
}

func applyWindow(x []complex128, w []float64) []complex128 {
	n := len(x)
	re, im, buf := scratch.SplitComplex(x)
	defer scratch.Put(buf)

	vecmath.MulBlockInPlace(re, w)
	vecmath.MulBlockInPlace(im, w)

	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(re[i], im[i])
	}
	return out
}

func validateStep(te float64) error {
	if !core.Positive(te) {
		return fmt.Errorf("%w: spectrum sample step must be > 0: %g", core.ErrInvalidParameter, te)
	}
	return nil
}
