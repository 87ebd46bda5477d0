package bench

import "errors"

var (
	// ErrInvalidConfig indicates an out-of-range configuration value.
	ErrInvalidConfig = errors.New("bench: invalid configuration")
	// ErrUnknownFormat indicates a report format other than text, csv or json.
	ErrUnknownFormat = errors.New("bench: unknown report format")
	// ErrNoResults indicates that every variant of a benchmark failed.
	ErrNoResults = errors.New("bench: no variant completed")
)
