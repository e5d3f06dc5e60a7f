package format

import (
	"strconv"
	"strings"
)

// defaultByteUnits is the ordered unit label table for 1024-based sizes.
// The casing switch at "GB" is data, not a rule: override the table via
// WithUnits for different labels.
var defaultByteUnits = []string{"b", "kb", "MB", "GB", "TB", "PB"}

// BytesOption configures the Bytes formatter.
type BytesOption func(*bytesConfig)

// bytesConfig holds the configuration for byte-size formatting.
type bytesConfig struct {
	precision int
	units     []string
	separator string
}

func defaultBytesConfig() *bytesConfig {
	return &bytesConfig{
		precision: 2,
		units:     defaultByteUnits,
		separator: " ",
	}
}

// Precision sets the maximum number of decimal digits (default 2).
// Negative values are treated as zero.
func Precision(digits int) BytesOption {
	return func(c *bytesConfig) {
		if digits < 0 {
			digits = 0
		}
		c.precision = digits
	}
}

// WithUnits replaces the ordered unit label table, smallest unit first.
// Empty tables are ignored.
func WithUnits(units []string) BytesOption {
	return func(c *bytesConfig) {
		if len(units) > 0 {
			c.units = units
		}
	}
}

// WithUnitSeparator sets the string emitted between the scaled value and
// its unit label (default a single space).
func WithUnitSeparator(sep string) BytesOption {
	return func(c *bytesConfig) {
		c.separator = sep
	}
}

// Bytes renders a byte count as a human-readable size using 1024-based
// units: Bytes(1793) yields "1.75 kb". Trailing zeros are trimmed, so the
// precision is a maximum, not a padding width. A negative count is a
// programmer error and fails with ErrNegativeBytes.
func Bytes(n int64, opts ...BytesOption) (string, error) {
	if n < 0 {
		return "", ErrNegativeBytes
	}

	cfg := defaultBytesConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	value := float64(n)
	unit := 0
	for value >= 1024 && unit < len(cfg.units)-1 {
		value /= 1024
		unit++
	}

	s := strconv.FormatFloat(value, 'f', cfg.precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}

	return s + cfg.separator + cfg.units[unit], nil
}
