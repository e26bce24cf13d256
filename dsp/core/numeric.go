package core

import "math"

// Epsilon is the floor applied to logarithm arguments and the default
// tolerance of NearlyEqual. Logs of zero or negative magnitudes are clamped
// to it instead of producing -Inf or NaN, so sweeps over an input range stay
// total.
const Epsilon = 1e-12

// SpeedOfLight in m/s. Path-loss wavelengths and propagation delays both
// use it.
const SpeedOfLight = 299792458.0

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = Epsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Positive reports whether x is finite and strictly greater than zero.
func Positive(x float64) bool {
	return IsFinite(x) && x > 0
}

// Log10Floor returns log10(max(x, Epsilon)).
func Log10Floor(x float64) float64 {
	if math.IsNaN(x) || x < Epsilon {
		x = Epsilon
	}

	return math.Log10(x)
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDBFloor converts linear amplitude to dB with the log argument
// floored at Epsilon, so zero maps to -240 dB rather than -Inf.
func LinearToDBFloor(linear float64) float64 {
	return 20 * Log10Floor(linear)
}

// DBPowerToLinear converts dB to linear power (10*log10 convention).
func DBPowerToLinear(db float64) float64 {
	return math.Pow(10, db/10)
}

// DBmToWatts converts a power level in dBm to watts.
func DBmToWatts(dbm float64) float64 {
	return DBPowerToLinear(dbm) / 1000
}
