package format

import (
	"fmt"
	"maps"
	"strings"
)

// PhoneRule describes how one country's numbers are rendered for display.
// Prefix is the country calling code stripped from the canonical digits when
// present, Length is the national number length after stripping, and
// Template is the display pattern in which each 'X' consumes one digit.
type PhoneRule struct {
	Prefix   string
	Length   int
	Template string
}

// phoneRules is the built-in display rule table, keyed by ISO 3166-1
// alpha-2 code. CA shares the NANP rule with US. Extend or override per
// call via WithPhoneRule.
var phoneRules = map[string]PhoneRule{
	"US": {Prefix: "1", Length: 10, Template: "(XXX) XXX-XXXX"},
	"CA": {Prefix: "1", Length: 10, Template: "(XXX) XXX-XXXX"},
	"DE": {Prefix: "49", Length: 8, Template: "+49 XXXX XXXX"},
	"GB": {Prefix: "44", Length: 10, Template: "+44 XXXX XXX XXX"},
	"FR": {Prefix: "33", Length: 9, Template: "+33 X XX XX XX XX"},
}

// PhoneOption configures the Phone formatter.
type PhoneOption func(*phoneConfig)

type phoneConfig struct {
	country string
	rules   map[string]PhoneRule
}

func defaultPhoneConfig() *phoneConfig {
	return &phoneConfig{
		country: "US",
		rules:   phoneRules,
	}
}

// Country selects the display rule by ISO alpha-2 code (default "US").
// Empty codes keep the default.
func Country(code string) PhoneOption {
	return func(c *phoneConfig) {
		if code != "" {
			c.country = strings.ToUpper(code)
		}
	}
}

// WithPhoneRule adds or overrides the display rule for a country. The
// built-in table is copied, never mutated.
func WithPhoneRule(country string, rule PhoneRule) PhoneOption {
	return func(c *phoneConfig) {
		rules := make(map[string]PhoneRule, len(c.rules)+1)
		maps.Copy(rules, c.rules)
		rules[strings.ToUpper(country)] = rule
		c.rules = rules
	}
}

// Phone renders a canonical digit string for display using the selected
// country's rule: Phone("5551112222") yields "(555) 111-2222" and
// Phone("4930901820", Country("DE")) yields "+49 3090 1820". A leading
// country calling code is stripped when the digit count allows it. Unknown
// countries fail with ErrUnsupportedCountry rather than guessing a
// grouping; digit strings that do not fit the rule fail with
// ErrInvalidPhone.
func Phone(digits string, opts ...PhoneOption) (string, error) {
	cfg := defaultPhoneConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	rule, ok := cfg.rules[cfg.country]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedCountry, cfg.country)
	}

	national := digits
	if rule.Prefix != "" && len(digits) == rule.Length+len(rule.Prefix) {
		if rest, found := strings.CutPrefix(digits, rule.Prefix); found {
			national = rest
		}
	}
	if len(national) != rule.Length {
		return "", fmt.Errorf("%w: %s expects %d digits, got %d",
			ErrInvalidPhone, cfg.country, rule.Length, len(national))
	}

	var b strings.Builder
	i := 0
	for _, r := range rule.Template {
		if r == 'X' {
			b.WriteByte(national[i])
			i++
			continue
		}
		b.WriteRune(r)
	}

	return b.String(), nil
}
