package format

import (
	"fmt"
	"strconv"
	"strings"
)

// MoneyOption configures the Money formatter.
type MoneyOption func(*moneyConfig)

// moneyConfig holds the configuration for money formatting.
type moneyConfig struct {
	symbol         string
	symbolAfter    bool
	showSymbol     bool
	negativePrefix string
	negativeSuffix string
	hideZeroCents  bool
	thousandsSep   string
	decimalSep     string
}

// defaultMoneyConfig returns US-style defaults.
func defaultMoneyConfig() *moneyConfig {
	return &moneyConfig{
		symbol:         "$",
		showSymbol:     true,
		negativePrefix: "-",
		negativeSuffix: "",
		thousandsSep:   ",",
		decimalSep:     ".",
	}
}

// WithSymbol sets the currency symbol (default "$").
func WithSymbol(symbol string) MoneyOption {
	return func(c *moneyConfig) {
		c.symbol = symbol
	}
}

// WithoutSymbol suppresses the currency symbol entirely.
func WithoutSymbol() MoneyOption {
	return func(c *moneyConfig) {
		c.showSymbol = false
	}
}

// SymbolAfter places the currency symbol after the amount ("2.00€").
func SymbolAfter() MoneyOption {
	return func(c *moneyConfig) {
		c.symbolAfter = true
	}
}

// WithNegativeWrap sets the strings emitted around negative amounts.
// WithNegativeWrap("(", ")") renders -200 cents as "($2.00)".
func WithNegativeWrap(prefix, suffix string) MoneyOption {
	return func(c *moneyConfig) {
		c.negativePrefix = prefix
		c.negativeSuffix = suffix
	}
}

// HideZeroCents omits the minor part when it is zero ("$5" instead of "$5.00").
func HideZeroCents() MoneyOption {
	return func(c *moneyConfig) {
		c.hideZeroCents = true
	}
}

// WithSeparators overrides the thousands and decimal separators. An empty
// thousands separator disables digit grouping.
func WithSeparators(thousands, decimal string) MoneyOption {
	return func(c *moneyConfig) {
		c.thousandsSep = thousands
		c.decimalSep = decimal
	}
}

// Money formats an amount of minor currency units (cents) for display.
// Amounts are integers to avoid float rounding drift; Money(123456) yields
// "$1,234.56". Negative amounts are wrapped with the configured negative
// prefix and suffix, with the symbol inside the wrap: "(€2.00)".
func Money(cents int64, opts ...MoneyOption) string {
	cfg := defaultMoneyConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	negative := cents < 0
	abs := cents
	if negative {
		abs = -abs
	}

	whole := abs / 100
	minor := abs % 100

	var b strings.Builder
	if negative {
		b.WriteString(cfg.negativePrefix)
	}
	if cfg.showSymbol && !cfg.symbolAfter {
		b.WriteString(cfg.symbol)
	}
	b.WriteString(groupDigits(strconv.FormatInt(whole, 10), cfg.thousandsSep))
	if minor != 0 || !cfg.hideZeroCents {
		b.WriteString(cfg.decimalSep)
		b.WriteString(fmt.Sprintf("%02d", minor))
	}
	if cfg.showSymbol && cfg.symbolAfter {
		b.WriteString(cfg.symbol)
	}
	if negative {
		b.WriteString(cfg.negativeSuffix)
	}

	return b.String()
}

// groupDigits inserts sep between three-digit groups counting from the right.
func groupDigits(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}
