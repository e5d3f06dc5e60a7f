package normalize

import "strings"

// Whitespace collapses runs of whitespace into a single space and trims
// the result. Useful ahead of the shape-sensitive parsers in this package.
func Whitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// Digits keeps only the decimal digits of s.
func Digits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}
