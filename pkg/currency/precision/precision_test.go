package precision_test

import (
	"math"
	"testing"

	"github.com/SscSPs/isocurrency/pkg/currency"
	"github.com/SscSPs/isocurrency/pkg/currency/precision"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency currency.Currency
		want     string
	}{
		{name: "two decimals", amount: "12.3456", currency: currency.USD, want: "12.35"},
		{name: "pads zeros", amount: "12.3", currency: currency.EUR, want: "12.30"},
		{name: "no decimals", amount: "12.3456", currency: currency.JPY, want: "12"},
		{name: "three decimals", amount: "12.3456", currency: currency.BHD, want: "12.346"},
		{name: "four decimals", amount: "1", currency: currency.CLF, want: "1.0000"},
		{name: "no exponent", amount: "12.3456", currency: currency.XAU, want: "12.3456"},
		{name: "negative", amount: "-0.005", currency: currency.USD, want: "-0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			assert.Equal(t, tt.want, precision.Format(amount, tt.currency))
		})
	}
}

func TestRound(t *testing.T) {
	amount := decimal.RequireFromString("12.3456")

	assert.True(t, decimal.RequireFromString("12.35").Equal(precision.Round(amount, currency.USD)))
	assert.True(t, decimal.NewFromInt(12).Equal(precision.Round(amount, currency.JPY)))
	assert.True(t, amount.Equal(precision.Round(amount, currency.XAU)))
}

func TestMinorUnits(t *testing.T) {
	minor, err := precision.ToMinor(decimal.RequireFromString("12.345"), currency.EUR)
	require.NoError(t, err)
	assert.Equal(t, int64(1235), minor)

	minor, err = precision.ToMinor(decimal.RequireFromString("1.0005"), currency.KWD)
	require.NoError(t, err)
	assert.Equal(t, int64(1001), minor)

	minor, err = precision.ToMinor(decimal.RequireFromString("500"), currency.JPY)
	require.NoError(t, err)
	assert.Equal(t, int64(500), minor)

	_, err = precision.ToMinor(decimal.NewFromInt(1), currency.XAU)
	assert.Error(t, err)

	_, err = precision.ToMinor(decimal.RequireFromString("100000000000000000000"), currency.EUR)
	assert.ErrorContains(t, err, "out of range")

	_, err = precision.ToMinor(decimal.RequireFromString("-100000000000000000000"), currency.EUR)
	assert.ErrorContains(t, err, "out of range")

	minor, err = precision.ToMinor(decimal.RequireFromString("92233720368547758.07"), currency.EUR)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), minor)

	_, err = precision.ToMinor(decimal.RequireFromString("92233720368547758.08"), currency.EUR)
	assert.ErrorContains(t, err, "out of range")

	amount, err := precision.FromMinor(1235, currency.EUR)
	require.NoError(t, err)
	assert.Equal(t, "12.35", amount.String())

	_, err = precision.FromMinor(1, currency.XDR)
	assert.Error(t, err)
}
