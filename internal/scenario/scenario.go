// Package scenario composes waveforms, channel models and spectral analysis
// into the named simulations run by channelsim.
//
// Each scenario decodes its parameters from a [config.Params] mapping into a
// struct pre-filled with defaults, produces an x/y [Result] and, when the
// result is sampled in time, can be viewed in the frequency domain.
package scenario

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/cwbudde/algo-rfchannel/dsp/core"
	"github.com/cwbudde/algo-rfchannel/dsp/signal"
	"github.com/cwbudde/algo-rfchannel/dsp/spectrum"
	"github.com/cwbudde/algo-rfchannel/dsp/window"
	"github.com/cwbudde/algo-rfchannel/internal/config"
	"github.com/cwbudde/algo-rfchannel/internal/logging"
	freqstats "github.com/cwbudde/algo-rfchannel/stats/frequency"
	timestats "github.com/cwbudde/algo-rfchannel/stats/time"
)

// Domain selects how a time-sampled result is presented.
type Domain int

const (
	DomainTime Domain = iota
	DomainFrequency
)

// ParseDomain resolves "time" or "frequency". The empty string is time.
func ParseDomain(name string) (Domain, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "time", "temporal":
		return DomainTime, nil
	case "frequency", "freq", "spectrum":
		return DomainFrequency, nil
	default:
		return 0, fmt.Errorf("%w: unknown domain %q", core.ErrUnsupportedVariant, name)
	}
}

func (d Domain) String() string {
	switch d {
	case DomainTime:
		return "time"
	case DomainFrequency:
		return "frequency"
	default:
		return fmt.Sprintf("domain(%d)", int(d))
	}
}

// Result is the output of one scenario run.
type Result struct {
	Name   string
	XLabel string
	YLabel string
	X      []float64
	Y      []float64
	// Step is the sampling interval of Y in seconds; zero when Y is not a
	// time series (loss curves, tower reports).
	Step float64
	// Summary holds time or frequency statistics of Y.
	Summary any
	// Extra carries scenario specific data such as a coverage report.
	Extra any
}

// Env is the input of a scenario run.
type Env struct {
	Params config.Params
	Domain Domain
	// Window is applied before the transform of a frequency view. Magnitudes
	// are divided by its coherent gain.
	Window window.Type
	Seed   uint64
}

// RunFunc produces a result from decoded parameters and a seeded source.
type RunFunc func(ctx context.Context, params config.Params, rng *rand.Rand) (Result, error)

// Scenario is a named simulation.
type Scenario struct {
	Name        string
	Description string
	Run         RunFunc
}

var registry = map[string]Scenario{}

func register(name, description string, run RunFunc) {
	registry[name] = Scenario{Name: name, Description: description, Run: run}
}

func init() {
	register("rect", "rectangular pulse of width·pulse seconds", runRect)
	register("sinus", "sinusoid of the given period", runSinus)
	register("impulse", "single unit impulse at the window center", runImpulse)
	register("dirac-comb", "unit impulses every period seconds", runDiracComb)
	register("sampled-sinus", "sinusoid sampled by a Dirac comb", runSampledSinus)
	register("fading", "sinusoid through a multipath fading channel", runFading)
	register("cost231", "COST231-Hata attenuated carrier with optional Rayleigh fading", runCost231)
	register("fspl", "free-space attenuated baseband sinusoid", runFreeSpace)
	register("itu-p1411", "NLOS street canyon loss on a moving receiver", runNLOS)
	register("hata", "Okumura-Hata attenuated sinusoid", runHata)
	register("two-ray", "two-ray ground attenuated sinusoid", runTwoRay)
	register("two-ray-loss", "two-ray ground loss versus distance", runTwoRayLoss)
	register("weissberger", "foliage attenuated delayed carrier on a moving receiver", runWeissberger)
	register("weissberger-loss", "Weissberger foliage loss versus distance", runWeissbergerLoss)
	register("longley-rice", "Longley-Rice attenuated delayed carrier on a moving receiver", runLongleyRice)
	register("longley-rice-loss", "Longley-Rice loss versus distance", runLongleyRiceLoss)
	register("ofdm", "OFDM framed sinusoid with optional fading and AWGN", runOFDM)
	register("rician", "Rician channel envelope or convolved sinusoid", runRician)
	register("nakagami", "sinusoid with a Nakagami-m envelope", runNakagami)
	register("coverage", "COST231 coverage and interference of a tower layout", runCoverage)
	register("coverage-radius", "loss sweep and coverage radius of one model", runCoverageRadius)
}

// Names returns the registered scenario names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the scenario registered under name.
func Lookup(name string) (Scenario, error) {
	s, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Scenario{}, fmt.Errorf("%w: unknown scenario %q", core.ErrUnsupportedVariant, name)
	}
	return s, nil
}

// NewRand returns the PCG source used for a run seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Run executes the named scenario and applies the requested domain. A
// frequency view replaces X and Y with the two-sided magnitude spectrum of Y.
func Run(ctx context.Context, name string, env Env) (Result, error) {
	s, err := Lookup(name)
	if err != nil {
		return Result{}, err
	}

	log := logging.FromContext(ctx).With(logging.String("scenario", s.Name))
	log.Debug(ctx, "scenario starting",
		logging.String("domain", env.Domain.String()),
		logging.String("window", env.Window.String()),
		logging.Any("params", env.Params.Keys()))

	res, err := s.Run(ctx, env.Params, NewRand(env.Seed))
	if err != nil {
		log.Warn(ctx, "scenario failed", logging.Err(err))
		return Result{}, err
	}
	res.Name = s.Name

	switch env.Domain {
	case DomainTime:
		if res.Step > 0 && res.Summary == nil {
			res.Summary = timestats.Calculate(res.Y)
		}
	case DomainFrequency:
		if res, err = toFrequency(res, env.Window); err != nil {
			return Result{}, err
		}
	default:
		return Result{}, fmt.Errorf("%w: domain %d", core.ErrUnsupportedVariant, int(env.Domain))
	}

	log.Info(ctx, "scenario finished",
		logging.String("domain", env.Domain.String()),
		logging.Int("points", len(res.Y)))
	return res, nil
}

func toFrequency(res Result, w window.Type) (Result, error) {
	if res.Step <= 0 {
		return Result{}, fmt.Errorf("%w: scenario %s is not a time series and has no frequency view",
			core.ErrUnsupportedVariant, res.Name)
	}

	var opts []spectrum.Option
	if w != window.TypeRectangular {
		opts = append(opts, spectrum.WithWindow(w))
	}
	sp, err := spectrum.Analyze(res.Y, res.Step, opts...)
	if err != nil {
		return Result{}, fmt.Errorf("scenario %s spectrum: %w", res.Name, err)
	}
	if len(opts) > 0 && len(res.Y) > 0 {
		g := window.CoherentGain(window.Generate(w, len(res.Y)))
		if g <= 0 {
			return Result{}, fmt.Errorf("%w: window %s has no coherent gain at %d samples",
				core.ErrInvalidParameter, w, len(res.Y))
		}
		sp.Values = signal.Scale(sp.Values, 1/g)
	}

	res.X = sp.Frequency
	res.Y = sp.Values
	res.XLabel = "frequency (Hz)"
	res.YLabel = "magnitude"
	if len(sp.Values) > 0 {
		st, err := freqstats.Calculate(sp.Frequency, sp.Values)
		if err != nil {
			return Result{}, fmt.Errorf("scenario %s spectrum stats: %w", res.Name, err)
		}
		res.Summary = st
	} else {
		res.Summary = nil
	}
	return res, nil
}
