package currency_test

import (
	"fmt"

	"github.com/SscSPs/isocurrency/pkg/currency"
)

func ExampleFromCode() {
	c, ok := currency.FromCode("EUR")
	if !ok {
		return
	}
	fraction, _ := c.SubunitFraction()
	fmt.Println(c.Name(), c.Numeric(), c.Symbol(), fraction)
	// Output: Euro 978 € 100
}

func ExampleFromNumeric() {
	c, ok := currency.FromNumeric(392)
	fmt.Println(c, ok)

	_, ok = currency.FromNumeric(-1)
	fmt.Println(ok)
	// Output:
	// JPY true
	// false
}

func ExampleCurrency_UsedBy() {
	for _, r := range currency.CHF.UsedBy() {
		fmt.Println(r)
	}
	// Output:
	// LI
	// CH
}
