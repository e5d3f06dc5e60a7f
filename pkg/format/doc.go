// Package format provides display formatters for values that are stored in
// canonical machine form: integer cents, byte counts, plain digit strings
// and integers.
//
// The formatters are pure functions configured with functional options, so
// defaults cover the common case and callers that resolve settings
// elsewhere (environment, locale tables) inject them per call:
//
//	format.Money(123456)                         // "$1,234.56"
//	format.Money(-200, format.WithSymbol("€"),
//		format.WithNegativeWrap("(", ")"))       // "(€2.00)"
//	format.Bytes(1793)                           // "1.75 kb"
//	format.Phone("15551112222")                  // "(555) 111-2222"
//	format.Ordinal(22)                           // "22nd"
//
// # Error handling
//
// Formatters assume validated input and fail fast on precondition
// violations: Bytes rejects negative counts with ErrNegativeBytes, Phone
// rejects unknown country codes with ErrUnsupportedCountry and digit
// strings of the wrong shape with ErrInvalidPhone. These signal programmer
// errors and are never silently coerced. Ordinal and Money are total.
//
// All functions are stateless and safe for concurrent use.
package format
