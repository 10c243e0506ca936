// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency is an ISO 4217 currency code. Only the currencies the tracker
// supports are accepted.
type Currency string

const (
	CurrencyCHF Currency = "CHF"
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
)

// Currencies lists the supported currencies in display order.
var Currencies = []Currency{CurrencyCHF, CurrencyEUR, CurrencyUSD}

// ParseCurrency converts a short code string to a Currency.
func ParseCurrency(code string) (Currency, error) {
	switch Currency(code) {
	case CurrencyCHF, CurrencyEUR, CurrencyUSD:
		return Currency(code), nil
	}
	return "", fmt.Errorf("unsupported currency %q", code)
}

// String returns the short code.
func (c Currency) String() string {
	return string(c)
}

// conversionRates is a static rate table. Fetching live rates is out of
// scope; the table matches the tracker's reporting defaults.
var conversionRates = map[Currency]map[Currency]decimal.Decimal{
	CurrencyCHF: {
		CurrencyCHF: decimal.RequireFromString("1.0"),
		CurrencyEUR: decimal.RequireFromString("0.92"),
		CurrencyUSD: decimal.RequireFromString("1.08"),
	},
	CurrencyEUR: {
		CurrencyCHF: decimal.RequireFromString("1.08"),
		CurrencyEUR: decimal.RequireFromString("1.0"),
		CurrencyUSD: decimal.RequireFromString("1.18"),
	},
	CurrencyUSD: {
		CurrencyCHF: decimal.RequireFromString("0.92"),
		CurrencyEUR: decimal.RequireFromString("0.85"),
		CurrencyUSD: decimal.RequireFromString("1.0"),
	},
}

// Convert converts an amount between supported currencies using the static
// rate table.
func Convert(amount decimal.Decimal, from, to Currency) (decimal.Decimal, error) {
	rates, ok := conversionRates[from]
	if !ok {
		return decimal.Zero, fmt.Errorf("unsupported currency %q", from)
	}
	rate, ok := rates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("unsupported currency %q", to)
	}
	return amount.Mul(rate), nil
}
