package currency

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strconv"

	"golang.org/x/text/language"
)

// ErrUnknownCurrency is returned when a code or numeric code names no ISO 4217 currency.
var ErrUnknownCurrency = errors.New("not a valid ISO 4217 currency code")

// Currency is an ISO 4217 currency. The zero value is not a currency.
type Currency uint16

// Symbol is the commonly used symbol for a currency.
type Symbol struct {
	Symbol  string // e.g. "$"
	Subunit string // e.g. "¢", empty when unknown
}

func (s Symbol) String() string {
	return s.Symbol
}

type flag uint8

const (
	flagFund flag = 1 << iota
	flagSpecial
)

// Valid reports whether c is one of the generated currencies.
func (c Currency) Valid() bool {
	return c > 0 && int(c) <= count
}

// Code returns the three-letter alpha code, e.g. "EUR".
func (c Currency) Code() string {
	if !c.Valid() {
		return ""
	}
	return codes[c]
}

// String returns the alpha code, or Currency(n) for values outside the table.
func (c Currency) String() string {
	if !c.Valid() {
		return "Currency(" + strconv.Itoa(int(c)) + ")"
	}
	return codes[c]
}

// Name returns the English name of the currency.
func (c Currency) Name() string {
	if !c.Valid() {
		return ""
	}
	return names[c]
}

// Numeric returns the ISO 4217 numeric code, e.g. 978 for EUR.
func (c Currency) Numeric() int {
	if !c.Valid() {
		return 0
	}
	return int(numerics[c])
}

// Symbol returns the currency's symbol. When no symbol is known the alpha
// code stands in for it.
func (c Currency) Symbol() Symbol {
	if !c.Valid() {
		return Symbol{}
	}
	s := symbols[c]
	if s.Symbol == "" {
		s.Symbol = codes[c]
	}
	return s
}

// Exponent returns the number of decimal digits of the minor unit. It
// reports false for currencies without a minor unit, such as precious
// metals; a currency like JPY has a defined exponent of 0.
func (c Currency) Exponent() (int, bool) {
	if !c.Valid() || exponents[c] < 0 {
		return 0, false
	}
	return int(exponents[c]), true
}

// SubunitFraction returns how many minor units make up one major unit,
// i.e. 10 raised to the exponent. There are 100 cents in a Euro, so EUR
// returns 100.
func (c Currency) SubunitFraction() (int, bool) {
	exp, ok := c.Exponent()
	if !ok {
		return 0, false
	}
	fraction := 1
	for range exp {
		fraction *= 10
	}
	return fraction, true
}

// UsedBy returns the territories that use the currency, in table order. The
// use is not exclusive: a territory may use other currencies as well. The
// returned slice belongs to the caller.
func (c Currency) UsedBy() []language.Region {
	if !c.Valid() {
		return nil
	}
	return slices.Clone(usedBy[c])
}

// IsFund reports whether the code denotes a fund rather than a circulating
// currency (e.g. BOV, CLF).
func (c Currency) IsFund() bool {
	return c.Valid() && flags[c]&flagFund != 0
}

// IsSpecial reports whether the code denotes a special unit such as gold,
// silver or the IMF's Special Drawing Rights.
func (c Currency) IsSpecial() bool {
	return c.Valid() && flags[c]&flagSpecial != 0
}

// SupersededBy returns the currency that replaced c, if any.
func (c Currency) SupersededBy() (Currency, bool) {
	if !c.Valid() || supersededBy[c] == 0 {
		return 0, false
	}
	return supersededBy[c], true
}

// Parse is FromCode with an error instead of a boolean.
func Parse(code string) (Currency, error) {
	c, ok := FromCode(code)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return c, nil
}

// MustParse is like Parse but panics if code is not a known currency. It is
// meant for constants in tests and program initialization.
func MustParse(code string) Currency {
	c, err := Parse(code)
	if err != nil {
		panic("currency: " + err.Error())
	}
	return c
}

// Len returns the number of currencies in the table.
func Len() int {
	return count
}

// All returns an iterator over every currency in table order. Each call
// starts a fresh pass.
func All() iter.Seq[Currency] {
	return func(yield func(Currency) bool) {
		for c := Currency(1); int(c) <= count; c++ {
			if !yield(c) {
				return
			}
		}
	}
}

// Values returns every currency in table order as a new slice.
func Values() []Currency {
	return slices.Collect(All())
}
