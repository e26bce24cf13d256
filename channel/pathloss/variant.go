package pathloss

import (
	"fmt"

	"github.com/cwbudde/algo-rfchannel/dsp/core"
)

// Environment is a propagation environment class.
type Environment int

const (
	EnvironmentUrban Environment = iota
	EnvironmentSuburban
	EnvironmentRural
	// EnvironmentOpen is open terrain, used by the NLOS margin table.
	EnvironmentOpen
)

var environmentNames = map[string]Environment{
	"urban":    EnvironmentUrban,
	"suburban": EnvironmentSuburban,
	"rural":    EnvironmentRural,
	"open":     EnvironmentOpen,
}

// ParseEnvironment resolves "urban", "suburban", "rural" or "open".
func ParseEnvironment(name string) (Environment, error) {
	e, ok := environmentNames[normalizeName(name)]
	if !ok {
		return 0, fmt.Errorf("%w: unknown environment %q", core.ErrUnsupportedVariant, name)
	}
	return e, nil
}

func (e Environment) String() string {
	switch e {
	case EnvironmentUrban:
		return "urban"
	case EnvironmentSuburban:
		return "suburban"
	case EnvironmentRural:
		return "rural"
	case EnvironmentOpen:
		return "open"
	default:
		return fmt.Sprintf("environment(%d)", int(e))
	}
}

// CitySize selects the Okumura-Hata mobile antenna correction.
type CitySize int

const (
	CityMediumSmall CitySize = iota
	CityLarge
)

var citySizeNames = map[string]CitySize{
	"large":          CityLarge,
	"grande":         CityLarge,
	"medium":         CityMediumSmall,
	"small":          CityMediumSmall,
	"medium-small":   CityMediumSmall,
	"medium/small":   CityMediumSmall,
	"moyenne/petite": CityMediumSmall,
	"petite/meduim":  CityMediumSmall,
	"petite/medium":  CityMediumSmall,
}

// ParseCitySize resolves a city size name ("large", "medium-small", ...).
func ParseCitySize(name string) (CitySize, error) {
	c, ok := citySizeNames[normalizeName(name)]
	if !ok {
		return 0, fmt.Errorf("%w: unknown city size %q", core.ErrUnsupportedVariant, name)
	}
	return c, nil
}

func (c CitySize) String() string {
	switch c {
	case CityLarge:
		return "large"
	case CityMediumSmall:
		return "medium-small"
	default:
		return fmt.Sprintf("city(%d)", int(c))
	}
}

// Climate selects the Longley-Rice climate offset.
type Climate int

const (
	ClimateNone Climate = iota
	ClimateContinentalTemperate
	ClimateMaritimeTemperate
)

var climateNames = map[string]Climate{
	"none":                  ClimateNone,
	"continental-temperate": ClimateContinentalTemperate,
	"maritime-temperate":    ClimateMaritimeTemperate,
	"tempéré-continental":   ClimateContinentalTemperate,
	"tempéré-maritime":      ClimateMaritimeTemperate,
	"tempere-continental":   ClimateContinentalTemperate,
	"tempere-maritime":      ClimateMaritimeTemperate,
}

// ParseClimate resolves a climate name. The French labels
// "Tempéré continental" and "Tempéré maritime" are accepted as aliases.
func ParseClimate(name string) (Climate, error) {
	c, ok := climateNames[normalizeName(name)]
	if !ok {
		return 0, fmt.Errorf("%w: unknown climate %q", core.ErrUnsupportedVariant, name)
	}
	return c, nil
}

// OffsetDB returns the climate loss offset in dB.
func (c Climate) OffsetDB() float64 {
	switch c {
	case ClimateContinentalTemperate:
		return 1
	case ClimateMaritimeTemperate:
		return 2
	default:
		return 0
	}
}

func (c Climate) String() string {
	switch c {
	case ClimateContinentalTemperate:
		return "continental-temperate"
	case ClimateMaritimeTemperate:
		return "maritime-temperate"
	default:
		return "none"
	}
}
