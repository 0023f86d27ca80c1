// Package validation registers currency tags with go-playground/validator.
//
//	type Payment struct {
//		Currency string `validate:"required,iso4217_code"`
//		Numeric  int    `validate:"iso4217_numeric"`
//	}
package validation

import (
	"fmt"
	"reflect"

	"github.com/SscSPs/isocurrency/pkg/currency"
	"github.com/go-playground/validator/v10"
)

// Tags registered by Register.
const (
	CodeTag    = "iso4217_code"
	NumericTag = "iso4217_numeric"
)

var currencyType = reflect.TypeOf(currency.Currency(0))

// Register adds CodeTag and NumericTag to v.
//
// CodeTag accepts strings that are alpha codes. NumericTag accepts integers
// that are numeric codes. Both accept valid currency.Currency values.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation(CodeTag, isCode); err != nil {
		return fmt.Errorf("failed to register %s: %w", CodeTag, err)
	}
	if err := v.RegisterValidation(NumericTag, isNumeric); err != nil {
		return fmt.Errorf("failed to register %s: %w", NumericTag, err)
	}
	return nil
}

// New returns a validator with the currency tags already registered.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := Register(v); err != nil {
		panic(err)
	}
	return v
}

func isCode(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Type() == currencyType {
		return currency.Currency(field.Uint()).Valid()
	}
	if field.Kind() != reflect.String {
		return false
	}
	_, ok := currency.FromCode(field.String())
	return ok
}

func isNumeric(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Type() == currencyType {
		return currency.Currency(field.Uint()).Valid()
	}
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := field.Int()
		if n < 0 || n > 999 {
			return false
		}
		_, ok := currency.FromNumeric(int(n))
		return ok
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := field.Uint()
		if n > 999 {
			return false
		}
		_, ok := currency.FromNumeric(int(n))
		return ok
	default:
		return false
	}
}
