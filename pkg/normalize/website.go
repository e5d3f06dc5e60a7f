package normalize

import (
	"net/url"
	"strings"
)

// Website canonicalizes a URL-ish string by guaranteeing a scheme. Any
// existing "scheme://" prefix is kept verbatim (including non-HTTP schemes
// such as "ftp://"); everything else gets "http://" prepended. A bare
// scheme with an empty remainder normalizes to "". The function does not
// validate what follows the scheme, so it is idempotent over its own
// output.
func Website(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	if scheme := schemeRegex.FindString(s); scheme != "" {
		if scheme == s {
			return ""
		}
		return s
	}

	return "http://" + s
}

// WebsitePtr is Website with nil passthrough for nullable columns.
func WebsitePtr(s *string) *string {
	if s == nil {
		return nil
	}
	out := Website(*s)
	return &out
}

// Domain extracts the registrable host from an absolute URL. The scheme is
// required: a bare "google.com" reports ok=false rather than guessing
// (run the value through Website first when schemes may be missing). A
// single leading "www." label is stripped; any other subdomains are kept,
// so "https://maps.google.com" yields "maps.google.com".
func Domain(rawURL string) (string, bool) {
	rawURL = strings.TrimSpace(rawURL)
	if !schemeRegex.MatchString(rawURL) {
		return "", false
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "", false
	}

	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	return host, true
}

// DomainPtr maps both nil input and input without an extractable host to
// nil, matching nullable column semantics.
func DomainPtr(rawURL *string) *string {
	if rawURL == nil {
		return nil
	}
	host, ok := Domain(*rawURL)
	if !ok {
		return nil
	}
	return &host
}
