// Package config resolves formatting options for pkg/format from sources
// outside the formatters themselves: process environment variables (with
// optional .env support) and a YAML table of per-locale rules and phone
// display templates.
//
// The formatters never read the environment or files; this package turns
// resolved settings into option slices that callers inject per call:
//
//	settings, err := config.Load()
//	if err != nil {
//		return err
//	}
//	price := format.Money(cents, settings.MoneyOptions()...)
//
// Locale-aware callers load the rule table once at startup and resolve per
// request:
//
//	locales, err := config.LoadLocales("locales.yml")
//	if err != nil {
//		return err
//	}
//	if rules, ok := locales.Resolve(acceptLanguage); ok {
//		price = format.Money(cents, rules.MoneyOptions()...)
//	}
//
// Settings and Locales are read-only after construction and safe to share
// across goroutines.
package config
