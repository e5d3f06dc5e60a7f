package config

import "errors"

// Package-specific errors
var (
	// ErrParsingSettings is returned when environment variables cannot be
	// parsed into the settings struct
	ErrParsingSettings = errors.New("failed to parse environment variables into settings")

	// ErrLoadingLocales is returned when the locale rule table cannot be
	// read or parsed
	ErrLoadingLocales = errors.New("failed to load locale rules")

	// ErrInvalidLocale is returned when a locale table key is not a valid
	// BCP 47 tag
	ErrInvalidLocale = errors.New("invalid locale tag")
)
