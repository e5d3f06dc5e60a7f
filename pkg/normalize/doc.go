// Package normalize reduces free-form user input to canonical stored form:
// phone numbers to bare digits (plus vanity letters), websites to schemed
// URLs, URLs to registrable domains, and social handles to bare account
// names.
//
// Every parser is total: any input, including the empty string, maps to a
// defined output, and malformed input normalizes to an empty or unchanged
// string instead of failing. Values headed for nullable columns have *Ptr
// variants that pass nil through unchanged.
//
//	normalize.Phone("1-555-111-2222")                // "5551112222"
//	normalize.Website("example.com")                 // "http://example.com"
//	normalize.Handle("instagram.com/ferretpapa/")    // "ferretpapa"
//
//	host, ok := normalize.Domain("http://www.google.com")
//	// host == "google.com", ok == true
//
// Domain is the one parser with a precondition worth noting: it never
// guesses a missing scheme, so chain it after Website when input may be a
// bare domain.
//
// The higher-order Apply, Compose and Ptr helpers build reusable
// normalization pipelines:
//
//	clean := normalize.Compose(normalize.Whitespace, normalize.Handle)
//
// The package is stateless and safe for concurrent use.
package normalize
