package validation_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/isocurrency/pkg/currency"
	"github.com/SscSPs/isocurrency/pkg/currency/validation"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payment struct {
	Code     string            `validate:"required,iso4217_code"`
	Numeric  int               `validate:"omitempty,iso4217_numeric"`
	Settled  uint16            `validate:"omitempty,iso4217_numeric"`
	Currency currency.Currency `validate:"iso4217_code"`
	Quote    currency.Currency `validate:"omitempty,iso4217_numeric"`
}

func TestRegister(t *testing.T) {
	v := validator.New()
	require.NoError(t, validation.Register(v))

	assert.NoError(t, v.Var("EUR", validation.CodeTag))
	assert.Error(t, v.Var("eur", validation.CodeTag))
	assert.NoError(t, v.Var(978, validation.NumericTag))
	assert.Error(t, v.Var(1000, validation.NumericTag))
	assert.NoError(t, v.Var(currency.EUR, validation.NumericTag))
	assert.NoError(t, v.Var(currency.EUR, validation.CodeTag))
	assert.Error(t, v.Var(currency.Currency(0), validation.NumericTag))
}

func TestStruct(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name      string
		in        payment
		wantField string
	}{
		{
			name: "valid",
			in:   payment{Code: "USD", Numeric: 840, Settled: 978, Currency: currency.CHF, Quote: currency.EUR},
		},
		{
			name:      "out-of-range currency under numeric tag",
			in:        payment{Code: "USD", Currency: currency.EUR, Quote: currency.Currency(9999)},
			wantField: "Quote",
		},
		{
			name: "numeric fields optional",
			in:   payment{Code: "JPY", Currency: currency.JPY},
		},
		{
			name:      "unknown code",
			in:        payment{Code: "ABC", Currency: currency.EUR},
			wantField: "Code",
		},
		{
			name:      "lower-case code",
			in:        payment{Code: "usd", Currency: currency.EUR},
			wantField: "Code",
		},
		{
			name:      "unknown numeric",
			in:        payment{Code: "USD", Numeric: 1, Currency: currency.EUR},
			wantField: "Numeric",
		},
		{
			name:      "negative numeric",
			in:        payment{Code: "USD", Numeric: -978, Currency: currency.EUR},
			wantField: "Numeric",
		},
		{
			name:      "unsigned numeric out of range",
			in:        payment{Code: "USD", Settled: 1978, Currency: currency.EUR},
			wantField: "Settled",
		},
		{
			name:      "zero currency",
			in:        payment{Code: "USD"},
			wantField: "Currency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs), "expected validation errors, got %v", err)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.wantField, verrs[0].Field())
		})
	}
}
