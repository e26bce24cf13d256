package pathloss

import (
	"fmt"

	"github.com/cwbudde/algo-rfchannel/dsp/core"
)

// NLOS is the simplified ITU-R P.1411 non-line-of-sight model: free space
// plus a fixed environment margin.
type NLOS struct {
	FrequencyMHz float64
	Environment  Environment
	// MarginDB overrides the environment margin when non-nil.
	MarginDB *float64
}

// DefaultNLOS returns the 2.4 GHz urban configuration.
func DefaultNLOS() NLOS {
	return NLOS{FrequencyMHz: 2400, Environment: EnvironmentUrban}
}

// Name implements [Model].
func (NLOS) Name() string { return "nlos" }

// Validate implements [Model].
func (m NLOS) Validate() error {
	if err := checkPositive(m.Name(), "frequency", m.FrequencyMHz); err != nil {
		return err
	}
	if m.MarginDB != nil && !core.IsFinite(*m.MarginDB) {
		return fmt.Errorf("%w: pathloss nlos margin must be finite: %g", core.ErrInvalidParameter, *m.MarginDB)
	}
	_, err := m.Margin()
	return err
}

// Margin returns the additive NLOS margin in dB.
func (m NLOS) Margin() (float64, error) {
	if m.MarginDB != nil {
		return *m.MarginDB, nil
	}
	switch m.Environment {
	case EnvironmentUrban:
		return 20, nil
	case EnvironmentSuburban:
		return 15, nil
	case EnvironmentOpen:
		return 10, nil
	default:
		return 0, unsupportedEnvironment(m.Name(), m.Environment)
	}
}

// Loss implements [Model].
func (m NLOS) Loss(distanceKm float64) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	if err := checkDistance(m.Name(), distanceKm); err != nil {
		return 0, err
	}
	margin, _ := m.Margin()
	return freeSpaceDB(distanceKm, m.FrequencyMHz) + margin, nil
}

func unsupportedEnvironment(model string, e Environment) error {
	return fmt.Errorf("%w: pathloss %s does not support environment %s", core.ErrUnsupportedVariant, model, e)
}
