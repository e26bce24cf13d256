package fading

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-rfchannel/dsp/core"
)

// Model selects a fading channel variant.
type Model int

const (
	// ModelNone passes the waveform through with unit gain.
	ModelNone Model = iota
	// ModelUniform draws Rayleigh taps over a uniform profile.
	ModelUniform
	// ModelUniformStatic uses fixed taps sqrt(1/N).
	ModelUniformStatic
	// ModelExponential draws Rayleigh taps over an exponential profile.
	ModelExponential
	// ModelExponentialStatic uses fixed taps over an exponential profile.
	ModelExponentialStatic
)

// ModelFromCode maps the numeric selectors 0, 1, 11, 2 and 22.
func ModelFromCode(code int) (Model, error) {
	switch code {
	case 0:
		return ModelNone, nil
	case 1:
		return ModelUniform, nil
	case 11:
		return ModelUniformStatic, nil
	case 2:
		return ModelExponential, nil
	case 22:
		return ModelExponentialStatic, nil
	default:
		return 0, fmt.Errorf("%w: unknown fading model code %d", core.ErrUnsupportedVariant, code)
	}
}

var modelNames = map[string]Model{
	"none":               ModelNone,
	"uniform":            ModelUniform,
	"uniform-static":     ModelUniformStatic,
	"exponential":        ModelExponential,
	"exponential-static": ModelExponentialStatic,
}

// ParseModel resolves a model name such as "exponential-static". Numeric
// codes are accepted as well.
func ParseModel(name string) (Model, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	if m, ok := modelNames[key]; ok {
		return m, nil
	}

	if code, err := strconv.Atoi(key); err == nil {
		return ModelFromCode(code)
	}
	return 0, fmt.Errorf("%w: unknown fading model %q", core.ErrUnsupportedVariant, name)
}

func (m Model) String() string {
	for name, v := range modelNames {
		if v == m {
			return name
		}
	}
	return fmt.Sprintf("model(%d)", int(m))
}

// Profile returns the power-delay profile of the model. ok is false for
// [ModelNone].
func (m Model) Profile() (p Profile, ok bool) {
	switch m {
	case ModelUniform, ModelUniformStatic:
		return ProfileUniform, true
	case ModelExponential, ModelExponentialStatic:
		return ProfileExponential, true
	default:
		return 0, false
	}
}

// Mode returns the gain mode of the model.
func (m Model) Mode() GainMode {
	if m == ModelUniformStatic || m == ModelExponentialStatic {
		return GainDeterministic
	}
	return GainStochastic
}

func (m Model) valid() bool {
	return m >= ModelNone && m <= ModelExponentialStatic
}
