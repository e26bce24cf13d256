package pathloss

import (
	"math"

	"github.com/cwbudde/algo-rfchannel/dsp/core"
)

// fsplConstant is 20·log10(4π/c) with c = core.SpeedOfLight.
var fsplConstant = 20 * math.Log10(4*math.Pi/core.SpeedOfLight)

// FreeSpace is the Friis free-space path loss.
type FreeSpace struct {
	FrequencyMHz float64
}

// DefaultFreeSpace returns a 2.4 GHz free-space model.
func DefaultFreeSpace() FreeSpace {
	return FreeSpace{FrequencyMHz: 2400}
}

// Name implements [Model].
func (FreeSpace) Name() string { return "fspl" }

// Validate implements [Model].
func (m FreeSpace) Validate() error {
	return checkPositive(m.Name(), "frequency", m.FrequencyMHz)
}

// Loss returns 20·log10(d)+20·log10(f)+20·log10(4π/c) with d in metres and
// f in Hz.
func (m FreeSpace) Loss(distanceKm float64) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	if err := checkDistance(m.Name(), distanceKm); err != nil {
		return 0, err
	}
	return freeSpaceDB(distanceKm, m.FrequencyMHz), nil
}

func freeSpaceDB(distanceKm, frequencyMHz float64) float64 {
	return 20*log10(distanceKm*1e3) + 20*log10(frequencyMHz*1e6) + fsplConstant
}

// Wavelength returns c/f in metres.
func Wavelength(frequencyMHz float64) float64 {
	return core.SpeedOfLight / (frequencyMHz * 1e6)
}
