package pathloss

import (
	"fmt"

	"github.com/cwbudde/algo-rfchannel/dsp/core"
)

// LongleyRice is a simplified irregular terrain model: free space plus a
// terrain penalty of 0.1 dB per metre of irregularity and a climate offset,
// minus an antenna height gain.
type LongleyRice struct {
	FrequencyMHz         float64
	TxHeightM            float64
	RxHeightM            float64
	TerrainIrregularityM float64
	Climate              Climate
}

// DefaultLongleyRice returns the 900 MHz continental temperate configuration.
func DefaultLongleyRice() LongleyRice {
	return LongleyRice{
		FrequencyMHz:         900,
		TxHeightM:            30,
		RxHeightM:            1.5,
		TerrainIrregularityM: 50,
		Climate:              ClimateContinentalTemperate,
	}
}

// Name implements [Model].
func (LongleyRice) Name() string { return "longley-rice" }

// Validate implements [Model].
func (m LongleyRice) Validate() error {
	if err := checkPositive(m.Name(), "frequency", m.FrequencyMHz); err != nil {
		return err
	}
	if err := checkPositive(m.Name(), "tx height", m.TxHeightM); err != nil {
		return err
	}
	if err := checkPositive(m.Name(), "rx height", m.RxHeightM); err != nil {
		return err
	}
	if !core.IsFinite(m.TerrainIrregularityM) || m.TerrainIrregularityM < 0 {
		return fmt.Errorf("%w: pathloss longley-rice terrain irregularity must be >= 0: %g",
			core.ErrInvalidParameter, m.TerrainIrregularityM)
	}
	switch m.Climate {
	case ClimateNone, ClimateContinentalTemperate, ClimateMaritimeTemperate:
		return nil
	default:
		return fmt.Errorf("%w: pathloss longley-rice climate %d", core.ErrUnsupportedVariant, int(m.Climate))
	}
}

// Loss implements [Model].
func (m LongleyRice) Loss(distanceKm float64) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	if err := checkDistance(m.Name(), distanceKm); err != nil {
		return 0, err
	}
	return freeSpaceDB(distanceKm, m.FrequencyMHz) +
		0.1*m.TerrainIrregularityM +
		m.Climate.OffsetDB() -
		10*log10(m.TxHeightM*m.RxHeightM), nil
}
