package normalize

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Phone canonicalization keeps digits and vanity letters only
	nonAlphanumericRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)

	// Digit extraction
	nonDigitRegex = regexp.MustCompile(`\D`)

	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)

	// URL scheme detection (RFC 3986 scheme followed by "://")
	schemeRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)
)
