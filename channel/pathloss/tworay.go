package pathloss

// TwoRay is the two-ray ground reflection model. Below the crossover distance
// 4·h_t·h_r/λ it reduces to free space.
type TwoRay struct {
	FrequencyMHz float64
	TxHeightM    float64
	RxHeightM    float64
}

// DefaultTwoRay returns a 900 MHz link between a 30 m mast and a 1.5 m mobile.
func DefaultTwoRay() TwoRay {
	return TwoRay{FrequencyMHz: 900, TxHeightM: 30, RxHeightM: 1.5}
}

// Name implements [Model].
func (TwoRay) Name() string { return "two-ray" }

// Validate implements [Model].
func (m TwoRay) Validate() error {
	if err := checkPositive(m.Name(), "frequency", m.FrequencyMHz); err != nil {
		return err
	}
	if err := checkPositive(m.Name(), "tx height", m.TxHeightM); err != nil {
		return err
	}
	return checkPositive(m.Name(), "rx height", m.RxHeightM)
}

// CrossoverKm returns the crossover distance in kilometres.
func (m TwoRay) CrossoverKm() float64 {
	return 4 * m.TxHeightM * m.RxHeightM / Wavelength(m.FrequencyMHz) / 1e3
}

// Loss implements [Model].
func (m TwoRay) Loss(distanceKm float64) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	if err := checkDistance(m.Name(), distanceKm); err != nil {
		return 0, err
	}

	if distanceKm <= m.CrossoverKm() {
		return freeSpaceDB(distanceKm, m.FrequencyMHz), nil
	}
	return 40*log10(distanceKm*1e3) - 20*log10(m.TxHeightM*m.RxHeightM), nil
}
