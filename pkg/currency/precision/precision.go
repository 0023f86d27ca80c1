// Package precision rounds and formats decimal amounts to the minor unit of
// a currency.
package precision

import (
	"fmt"

	"github.com/SscSPs/isocurrency/pkg/currency"
	"github.com/shopspring/decimal"
)

// Round rounds amount half away from zero to the exponent of c.
// Example: 12.3456 USD returns 12.35, 12.3456 JPY returns 12.
// Amounts in currencies without an exponent, such as XAU, are returned
// unchanged.
func Round(amount decimal.Decimal, c currency.Currency) decimal.Decimal {
	exp, ok := c.Exponent()
	if !ok {
		return amount
	}
	return amount.Round(int32(exp))
}

// Format formats amount with exactly as many decimal places as the exponent
// of c, padding with zeros. Example: 12.3 USD returns "12.30".
// Currencies without an exponent are formatted as-is.
func Format(amount decimal.Decimal, c currency.Currency) string {
	exp, ok := c.Exponent()
	if !ok {
		return amount.String()
	}
	return amount.StringFixed(int32(exp))
}

// ToMinor converts amount into a whole number of minor units of c, rounding
// first. Example: 12.345 EUR returns 1235. Amounts whose minor units do not
// fit in an int64 are rejected.
func ToMinor(amount decimal.Decimal, c currency.Currency) (int64, error) {
	exp, ok := c.Exponent()
	if !ok {
		return 0, fmt.Errorf("%s has no minor unit", c)
	}
	minor := amount.Round(int32(exp)).Shift(int32(exp))
	if !minor.IsInteger() {
		return 0, fmt.Errorf("failed to convert %s %s to minor units", amount, c)
	}
	if !minor.BigInt().IsInt64() {
		return 0, fmt.Errorf("%s %s is out of range for int64 minor units", amount, c)
	}
	return minor.IntPart(), nil
}

// FromMinor converts a whole number of minor units of c back to an amount.
func FromMinor(minor int64, c currency.Currency) (decimal.Decimal, error) {
	exp, ok := c.Exponent()
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%s has no minor unit", c)
	}
	return decimal.New(minor, -int32(exp)), nil
}
