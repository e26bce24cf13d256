package pathloss

import (
	"fmt"

	"github.com/cwbudde/algo-rfchannel/dsp/core"
)

// Cost231 is the COST231-Hata extension of the Okumura-Hata model.
type Cost231 struct {
	FrequencyMHz  float64
	BaseHeightM   float64
	MobileHeightM float64
	Environment   Environment
}

// DefaultCost231 returns the 900 MHz rural configuration.
func DefaultCost231() Cost231 {
	return Cost231{
		FrequencyMHz:  900,
		BaseHeightM:   30,
		MobileHeightM: 1.5,
		Environment:   EnvironmentRural,
	}
}

// Name implements [Model].
func (Cost231) Name() string { return "cost231" }

// Validate implements [Model].
func (m Cost231) Validate() error {
	if err := checkPositive(m.Name(), "frequency", m.FrequencyMHz); err != nil {
		return err
	}
	if err := checkPositive(m.Name(), "base height", m.BaseHeightM); err != nil {
		return err
	}
	if err := checkPositive(m.Name(), "mobile height", m.MobileHeightM); err != nil {
		return err
	}
	_, err := m.correction()
	return err
}

// Loss implements [Model].
func (m Cost231) Loss(distanceKm float64) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	if err := checkDistance(m.Name(), distanceKm); err != nil {
		return 0, err
	}

	c, _ := m.correction()
	lf := log10(m.FrequencyMHz)
	lb := log10(m.BaseHeightM)
	return 46.3 + 33.9*lf - 13.82*lb - mediumCityCorrection(lf, m.MobileHeightM) +
		(44.9-6.55*lb)*log10(distanceKm) + c, nil
}

func (m Cost231) correction() (float64, error) {
	switch m.Environment {
	case EnvironmentUrban:
		return 3, nil
	case EnvironmentSuburban:
		return 0, nil
	case EnvironmentRural:
		return ruralCorrection(log10(m.FrequencyMHz)), nil
	default:
		return 0, unsupportedEnvironment(m.Name(), m.Environment)
	}
}

// OkumuraHata is the Okumura-Hata empirical model. It is only defined for
// 150-1500 MHz, base heights 30-200 m, mobile heights 1-10 m and 1-20 km.
type OkumuraHata struct {
	FrequencyMHz  float64
	BaseHeightM   float64
	MobileHeightM float64
	Environment   Environment
	City          CitySize
}

// DefaultOkumuraHata returns the 900 MHz urban, medium city configuration.
func DefaultOkumuraHata() OkumuraHata {
	return OkumuraHata{
		FrequencyMHz:  900,
		BaseHeightM:   50,
		MobileHeightM: 1.5,
		Environment:   EnvironmentUrban,
		City:          CityMediumSmall,
	}
}

// Name implements [Model].
func (OkumuraHata) Name() string { return "hata" }

// Validate implements [Model].
func (m OkumuraHata) Validate() error {
	if err := checkRange(m.Name(), "frequency", m.FrequencyMHz, 150, 1500, "MHz"); err != nil {
		return err
	}
	if err := checkRange(m.Name(), "base height", m.BaseHeightM, 30, 200, "m"); err != nil {
		return err
	}
	if err := checkRange(m.Name(), "mobile height", m.MobileHeightM, 1, 10, "m"); err != nil {
		return err
	}
	if m.City != CityLarge && m.City != CityMediumSmall {
		return fmt.Errorf("%w: pathloss %s does not support city size %s", core.ErrUnsupportedVariant, m.Name(), m.City)
	}
	switch m.Environment {
	case EnvironmentUrban, EnvironmentSuburban, EnvironmentRural:
		return nil
	default:
		return unsupportedEnvironment(m.Name(), m.Environment)
	}
}

// Loss implements [Model].
func (m OkumuraHata) Loss(distanceKm float64) (float64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	if err := checkRange(m.Name(), "distance", distanceKm, 1, 20, "km"); err != nil {
		return 0, err
	}

	f := m.FrequencyMHz
	lf := log10(f)
	lb := log10(m.BaseHeightM)

	l := 69.55 + 26.16*lf - 13.82*lb - m.mobileCorrection() + (44.9-6.55*lb)*log10(distanceKm)

	switch m.Environment {
	case EnvironmentSuburban:
		q := log10(f / 28)
		l -= 2*q*q + 5.4
	case EnvironmentRural:
		l -= ruralCorrection(lf)
	}
	return l, nil
}

func (m OkumuraHata) mobileCorrection() float64 {
	hm := m.MobileHeightM
	if m.City == CityMediumSmall {
		return mediumCityCorrection(log10(m.FrequencyMHz), hm)
	}
	if m.FrequencyMHz >= 400 {
		q := log10(11.75 * hm)
		return 3.2*q*q - 4.97
	}
	q := log10(1.54 * hm)
	return 8.29*q*q - 1.1
}

// mediumCityCorrection is a(h_m) for medium and small cities.
func mediumCityCorrection(logF, hm float64) float64 {
	return (1.1*logF-0.7)*hm - (1.56*logF - 0.8)
}

// ruralCorrection is 4.78·(log f)² − 18.33·log f + 40.94.
func ruralCorrection(logF float64) float64 {
	return 4.78*logF*logF - 18.33*logF + 40.94
}
