package pathloss

import "math"

// Weissberger is the modified exponential decay foliage model.
type Weissberger struct {
	FrequencyMHz   float64
	FoliageDepthKm float64
}

// DefaultWeissberger returns 900 MHz through 100 m of foliage.
func DefaultWeissberger() Weissberger {
	return Weissberger{FrequencyMHz: 900, FoliageDepthKm: 0.1}
}

// Name implements [Model].
func (Weissberger) Name() string { return "weissberger" }

// Validate implements [Model].
func (m Weissberger) Validate() error {
	if err := checkPositive(m.Name(), "frequency", m.FrequencyMHz); err != nil {
		return err
	}
	return checkPositive(m.Name(), "foliage depth", m.FoliageDepthKm)
}

// Loss returns 1.33·f^0.284·(d·depth)^0.588.
func (m Weissberger) Loss(distanceKm float64) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	if err := checkDistance(m.Name(), distanceKm); err != nil {
		return 0, err
	}
	return 1.33 * math.Pow(m.FrequencyMHz, 0.284) * math.Pow(distanceKm*m.FoliageDepthKm, 0.588), nil
}
