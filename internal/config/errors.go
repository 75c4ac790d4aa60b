package config

import "errors"

// Validation errors returned by [Build] and [ParseFlags].
var (
	// ErrInvalidFlag indicates an empty or whitespace-only argv flag prefix.
	ErrInvalidFlag = errors.New("invalid argv flag prefix")
	// ErrInvalidConfigKey indicates an empty or whitespace-only config key.
	ErrInvalidConfigKey = errors.New("invalid config key")
	// ErrInvalidOutput indicates an unsupported --output format.
	ErrInvalidOutput = errors.New("invalid output format")
)
