package config

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fmtkit/pkg/format"
)

// LocaleRules overrides formatting defaults for one locale. Zero-value
// fields leave the formatter defaults in place.
type LocaleRules struct {
	CurrencySymbol      string `yaml:"currency_symbol"`
	CurrencySymbolAfter bool   `yaml:"currency_symbol_after"`
	NegativePrefix      string `yaml:"negative_prefix"`
	NegativeSuffix      string `yaml:"negative_suffix"`
	HideZeroCents       bool   `yaml:"hide_zero_cents"`
	ThousandsSeparator  string `yaml:"thousands_separator"`
	DecimalSeparator    string `yaml:"decimal_separator"`
	PhoneCountry        string `yaml:"phone_country"`
}

type phoneRuleYAML struct {
	Prefix   string `yaml:"prefix"`
	Length   int    `yaml:"length"`
	Template string `yaml:"template"`
}

type localesFile struct {
	Locales        map[string]LocaleRules   `yaml:"locales"`
	PhoneTemplates map[string]phoneRuleYAML `yaml:"phone_templates"`
}

// Locales is a per-locale formatting rule table, typically loaded once at
// process start and shared read-only by all callers.
type Locales struct {
	rules   map[string]LocaleRules
	phone   map[string]format.PhoneRule
	tags    []language.Tag
	matcher language.Matcher
}

// LoadLocales reads a YAML locale rule table from disk. The file carries
// per-locale currency overrides keyed by BCP 47 tag under "locales", and
// additional phone display rules keyed by country code under
// "phone_templates":
//
//	locales:
//	  de-DE:
//	    currency_symbol: "€"
//	    currency_symbol_after: true
//	    thousands_separator: "."
//	    decimal_separator: ","
//	    phone_country: DE
//	phone_templates:
//	  NL:
//	    prefix: "31"
//	    length: 9
//	    template: "+31 X XXXX XXXX"
func LoadLocales(path string) (*Locales, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrLoadingLocales, err)
	}
	return ParseLocales(data)
}

// ParseLocales parses an in-memory YAML locale rule table.
func ParseLocales(data []byte) (*Locales, error) {
	var file localesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Join(ErrLoadingLocales, err)
	}

	l := &Locales{
		rules: make(map[string]LocaleRules, len(file.Locales)),
		phone: make(map[string]format.PhoneRule, len(file.PhoneTemplates)),
	}
	for key, rules := range file.Locales {
		tag, err := language.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLocale, key)
		}
		l.tags = append(l.tags, tag)
		l.rules[tag.String()] = rules
	}
	for country, rule := range file.PhoneTemplates {
		l.phone[country] = format.PhoneRule{
			Prefix:   rule.Prefix,
			Length:   rule.Length,
			Template: rule.Template,
		}
	}
	if len(l.tags) > 0 {
		l.matcher = language.NewMatcher(l.tags)
	}

	return l, nil
}

// Resolve returns the rules best matching the given BCP 47 tag, using
// standard language matching so "en" resolves to an "en-US" entry. The
// second return value is false when no configured locale is a plausible
// match.
func (l *Locales) Resolve(locale string) (LocaleRules, bool) {
	if l.matcher == nil {
		return LocaleRules{}, false
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return LocaleRules{}, false
	}
	_, idx, conf := l.matcher.Match(tag)
	if conf == language.No {
		return LocaleRules{}, false
	}
	rules, ok := l.rules[l.tags[idx].String()]
	return rules, ok
}

// PhoneOptions returns options registering every configured phone display
// rule, to be combined with the per-call country selection.
func (l *Locales) PhoneOptions() []format.PhoneOption {
	opts := make([]format.PhoneOption, 0, len(l.phone))
	for country, rule := range l.phone {
		opts = append(opts, format.WithPhoneRule(country, rule))
	}
	return opts
}

// MoneyOptions translates locale rules into format.Money options. Unset
// fields emit no option so formatter defaults apply; the two separators
// must be set together to take effect.
func (r LocaleRules) MoneyOptions() []format.MoneyOption {
	var opts []format.MoneyOption
	if r.CurrencySymbol != "" {
		opts = append(opts, format.WithSymbol(r.CurrencySymbol))
	}
	if r.CurrencySymbolAfter {
		opts = append(opts, format.SymbolAfter())
	}
	if r.NegativePrefix != "" || r.NegativeSuffix != "" {
		opts = append(opts, format.WithNegativeWrap(r.NegativePrefix, r.NegativeSuffix))
	}
	if r.HideZeroCents {
		opts = append(opts, format.HideZeroCents())
	}
	if r.ThousandsSeparator != "" && r.DecimalSeparator != "" {
		opts = append(opts, format.WithSeparators(r.ThousandsSeparator, r.DecimalSeparator))
	}
	return opts
}

// PhoneOptions translates locale rules into format.Phone options.
func (r LocaleRules) PhoneOptions() []format.PhoneOption {
	if r.PhoneCountry == "" {
		return nil
	}
	return []format.PhoneOption{format.Country(r.PhoneCountry)}
}
