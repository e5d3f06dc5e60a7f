package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fmtkit/pkg/normalize"
)

func TestWebsite(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "   ",
			expected: "",
		},
		{
			name:     "bare domain gets http scheme",
			input:    "example.com",
			expected: "http://example.com",
		},
		{
			name:     "existing http scheme kept",
			input:    "http://example.com",
			expected: "http://example.com",
		},
		{
			name:     "existing https scheme kept",
			input:    "https://example.com/path",
			expected: "https://example.com/path",
		},
		{
			name:     "non-http scheme kept verbatim",
			input:    "ftp://example.com",
			expected: "ftp://example.com",
		},
		{
			name:     "bare scheme normalizes to empty",
			input:    "http://",
			expected: "",
		},
		{
			name:     "no validation beyond scheme presence",
			input:    "---",
			expected: "http://---",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  example.com  ",
			expected: "http://example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalize.Website(tt.input))
		})
	}
}

// Website never rewrites its own output.
func TestWebsiteIdempotence(t *testing.T) {
	inputs := []string{"example.com", "http://example.com", "ftp://example.com", "---", "", "http://"}

	for _, input := range inputs {
		once := normalize.Website(input)
		assert.Equal(t, once, normalize.Website(once), "input %q", input)
	}
}

func TestWebsitePtr(t *testing.T) {
	t.Run("nil passthrough", func(t *testing.T) {
		assert.Nil(t, normalize.WebsitePtr(nil))
	})

	t.Run("normalizes non-nil value", func(t *testing.T) {
		input := "example.com"
		result := normalize.WebsitePtr(&input)
		if assert.NotNil(t, result) {
			assert.Equal(t, "http://example.com", *result)
		}
	})
}

func TestDomain(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{
			name:  "bare domain has no scheme",
			input: "google.com",
			ok:    false,
		},
		{
			name:     "strips single www label",
			input:    "http://www.google.com",
			expected: "google.com",
			ok:       true,
		},
		{
			name:     "keeps other subdomains",
			input:    "https://maps.google.com",
			expected: "maps.google.com",
			ok:       true,
		},
		{
			name:     "lowercases the host",
			input:    "https://WWW.Google.COM",
			expected: "google.com",
			ok:       true,
		},
		{
			name:     "drops port and path",
			input:    "http://www.google.com:8080/maps?q=x",
			expected: "google.com",
			ok:       true,
		},
		{
			name:  "scheme with empty host",
			input: "http://",
			ok:    false,
		},
		{
			name:  "empty string",
			input: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := normalize.Domain(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDomainPtr(t *testing.T) {
	t.Run("nil passthrough", func(t *testing.T) {
		assert.Nil(t, normalize.DomainPtr(nil))
	})

	t.Run("scheme-less input maps to nil", func(t *testing.T) {
		input := "google.com"
		assert.Nil(t, normalize.DomainPtr(&input))
	})

	t.Run("extracts host from absolute URL", func(t *testing.T) {
		input := "http://www.google.com"
		result := normalize.DomainPtr(&input)
		if assert.NotNil(t, result) {
			assert.Equal(t, "google.com", *result)
		}
	})
}
