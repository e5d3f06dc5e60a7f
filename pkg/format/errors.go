package format

import "errors"

// Package-specific errors
var (
	// ErrNegativeBytes is returned when a negative count is passed to Bytes.
	ErrNegativeBytes = errors.New("byte count must be non-negative")

	// ErrUnsupportedCountry is returned when no display rule exists for the
	// requested country code.
	ErrUnsupportedCountry = errors.New("unsupported country code")

	// ErrInvalidPhone is returned when a digit string does not match the
	// selected country rule.
	ErrInvalidPhone = errors.New("invalid phone number")
)
