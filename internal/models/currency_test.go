package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	for _, code := range []string{"CHF", "EUR", "USD"} {
		c, err := ParseCurrency(code)
		require.NoError(t, err)
		assert.Equal(t, code, c.String())
	}

	_, err := ParseCurrency("GBP")
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		from   Currency
		to     Currency
		want   string
	}{
		{"identity", "100", CurrencyCHF, CurrencyCHF, "100"},
		{"CHF to EUR", "100", CurrencyCHF, CurrencyEUR, "92"},
		{"EUR to CHF", "100", CurrencyEUR, CurrencyCHF, "108"},
		{"USD to CHF", "50", CurrencyUSD, CurrencyCHF, "46"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(decimal.RequireFromString(tt.amount), tt.from, tt.to)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestConvert_UnsupportedCurrency(t *testing.T) {
	_, err := Convert(decimal.NewFromInt(1), "GBP", CurrencyCHF)
	assert.Error(t, err)
}
