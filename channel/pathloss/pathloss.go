package pathloss

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cwbudde/algo-rfchannel/dsp/core"
)

// Model is a propagation loss model.
type Model interface {
	// Name returns the registry name of the model.
	Name() string
	// Validate reports whether the model parameters are usable.
	Validate() error
	// Loss returns the path loss in dB at distanceKm.
	Loss(distanceKm float64) (float64, error)
}

// Curve evaluates m at every distance. It validates the model once and fails
// on the first distance the model rejects.
func Curve(m Model, distancesKm []float64) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: pathloss model is nil", core.ErrInvalidParameter)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, len(distancesKm))
	for i, d := range distancesKm {
		l, err := m.Loss(d)
		if err != nil {
			return nil, fmt.Errorf("pathloss %s at index %d: %w", m.Name(), i, err)
		}
		out[i] = l
	}
	return out, nil
}

var registry = map[string]func() Model{
	"fspl":         func() Model { return DefaultFreeSpace() },
	"cost231":      func() Model { return DefaultCost231() },
	"hata":         func() Model { return DefaultOkumuraHata() },
	"two-ray":      func() Model { return DefaultTwoRay() },
	"nlos":         func() Model { return DefaultNLOS() },
	"weissberger":  func() Model { return DefaultWeissberger() },
	"longley-rice": func() Model { return DefaultLongleyRice() },
}

var aliases = map[string]string{
	"free-space":     "fspl",
	"cost231-hata":   "cost231",
	"okumura-hata":   "hata",
	"two-ray-ground": "two-ray",
	"itu-r-p1411":    "nlos",
	"itu-p1411":      "nlos",
	"foliage":        "weissberger",
	"itm":            "longley-rice",
}

// ParseModel returns a model with default parameters by name.
func ParseModel(name string) (Model, error) {
	key := normalizeName(name)
	if a, ok := aliases[key]; ok {
		key = a
	}
	ctor, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("%w: unknown pathloss model %q", core.ErrUnsupportedVariant, name)
	}
	return ctor(), nil
}

// ModelNames returns the registered model names in sorted order.
func ModelNames() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ReceivedPowerDBm returns txDBm - lossDB.
func ReceivedPowerDBm(txDBm, lossDB float64) float64 {
	return txDBm - lossDB
}

// AmplitudeFactor converts a loss into a linear amplitude factor 10^(-L/20).
func AmplitudeFactor(lossDB float64) float64 {
	return core.DBToLinear(-lossDB)
}

// PowerFactor converts a loss into a linear power factor 10^(-L/10).
func PowerFactor(lossDB float64) float64 {
	return core.DBPowerToLinear(-lossDB)
}

func normalizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "_", "-")
	return strings.ReplaceAll(s, " ", "-")
}

func checkPositive(model, field string, v float64) error {
	if !core.Positive(v) {
		return fmt.Errorf("%w: pathloss %s %s must be > 0: %g", core.ErrInvalidParameter, model, field, v)
	}
	return nil
}

func checkDistance(model string, d float64) error {
	if !core.IsFinite(d) || d < 0 {
		return fmt.Errorf("%w: pathloss %s distance must be >= 0: %g", core.ErrInvalidParameter, model, d)
	}
	return nil
}

func checkRange(model, field string, v, lo, hi float64, unit string) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return fmt.Errorf("%w: pathloss %s %s must be in [%g,%g] %s: %g",
			core.ErrInvalidParameter, model, field, lo, hi, unit, v)
	}
	return nil
}

func log10(x float64) float64 {
	return core.Log10Floor(x)
}
