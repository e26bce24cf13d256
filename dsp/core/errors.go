package core

import "errors"

// Error taxonomy shared by every engine package. Callers match with errors.Is;
// packages wrap these with the offending parameter and value.
var (
	// ErrInvalidParameter reports a non-positive or out-of-range input.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnsupportedVariant reports an unknown model, profile, environment,
	// climate or domain identifier.
	ErrUnsupportedVariant = errors.New("unsupported variant")
)
