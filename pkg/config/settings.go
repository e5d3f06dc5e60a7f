package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/fmtkit/pkg/format"
)

// Settings carries the formatting options resolved from the environment.
// Defaults mirror the formatter defaults documented in pkg/format, so an
// empty environment changes nothing.
type Settings struct {
	CurrencySymbol        string   `env:"CURRENCY_SYMBOL" envDefault:"$"`
	CurrencySymbolAfter   bool     `env:"CURRENCY_SYMBOL_AFTER" envDefault:"false"`
	CurrencyNegPrefix     string   `env:"CURRENCY_NEGATIVE_PREFIX" envDefault:"-"`
	CurrencyNegSuffix     string   `env:"CURRENCY_NEGATIVE_SUFFIX"`
	CurrencyHideZeroCents bool     `env:"CURRENCY_HIDE_ZERO_CENTS" envDefault:"false"`
	CurrencyThousandsSep  string   `env:"CURRENCY_THOUSANDS_SEPARATOR" envDefault:","`
	CurrencyDecimalSep    string   `env:"CURRENCY_DECIMAL_SEPARATOR" envDefault:"."`
	ByteUnits             []string `env:"BYTE_UNITS" envSeparator:"," envDefault:"b,kb,MB,GB,TB,PB"`
	BytePrecision         int      `env:"BYTE_PRECISION" envDefault:"2"`
	PhoneDefaultCountry   string   `env:"PHONE_DEFAULT_COUNTRY" envDefault:"US"`
}

var loadDotenvOnce sync.Once

// Load resolves Settings from the process environment. A .env file in the
// working directory is loaded once per process if present; missing files
// are not an error.
func Load() (Settings, error) {
	loadDotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, errors.Join(ErrParsingSettings, err)
	}
	return s, nil
}

// MoneyOptions translates the settings into format.Money options.
func (s Settings) MoneyOptions() []format.MoneyOption {
	opts := []format.MoneyOption{
		format.WithSymbol(s.CurrencySymbol),
		format.WithNegativeWrap(s.CurrencyNegPrefix, s.CurrencyNegSuffix),
		format.WithSeparators(s.CurrencyThousandsSep, s.CurrencyDecimalSep),
	}
	if s.CurrencySymbolAfter {
		opts = append(opts, format.SymbolAfter())
	}
	if s.CurrencyHideZeroCents {
		opts = append(opts, format.HideZeroCents())
	}
	return opts
}

// BytesOptions translates the settings into format.Bytes options.
func (s Settings) BytesOptions() []format.BytesOption {
	return []format.BytesOption{
		format.Precision(s.BytePrecision),
		format.WithUnits(s.ByteUnits),
	}
}

// PhoneOptions translates the settings into format.Phone options.
func (s Settings) PhoneOptions() []format.PhoneOption {
	return []format.PhoneOption{
		format.Country(s.PhoneDefaultCountry),
	}
}
