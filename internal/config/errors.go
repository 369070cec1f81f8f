package config

import "errors"

// Sentinel errors for configuration loading.
var (
	// ErrInvalidValue is returned when a field is outside its domain.
	ErrInvalidValue = errors.New("invalid config value")

	// ErrUnknownFormat is returned for unrecognized file extensions.
	ErrUnknownFormat = errors.New("unknown config format")
)

// ParseError wraps a decoder failure with the source path.
type ParseError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return "parsing config " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying decoder error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
