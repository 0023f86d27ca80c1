package currency

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// MarshalText encodes the currency as its alpha code. JSON values and map
// keys use this form.
func (c Currency) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("currency: cannot encode %s: %w", c, ErrUnknownCurrency)
	}
	return []byte(codes[c]), nil
}

// UnmarshalText decodes an exact alpha code.
func (c *Currency) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// UnmarshalJSON accepts either the alpha code as a string or the numeric
// code as a number. A JSON null leaves c unchanged.
func (c *Currency) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var code string
		if err := json.Unmarshal(data, &code); err != nil {
			return fmt.Errorf("currency: invalid JSON string: %w", err)
		}
		return c.UnmarshalText([]byte(code))
	}

	var numeric int
	if err := json.Unmarshal(data, &numeric); err != nil {
		return fmt.Errorf("currency: %s is neither a code nor a numeric code: %w", data, ErrUnknownCurrency)
	}
	return c.setNumeric(numeric)
}

// MarshalYAML encodes the currency as its alpha code.
func (c Currency) MarshalYAML() (any, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("currency: cannot encode %s: %w", c, ErrUnknownCurrency)
	}
	return codes[c], nil
}

// UnmarshalYAML accepts the alpha code or the numeric code. Numerics are read
// from the scalar text in base 10, so zero-padded forms such as 044 keep
// their ISO meaning instead of being resolved as octal.
func (c *Currency) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return fmt.Errorf("currency: cannot decode YAML: %w", err)
	}
	if v, ok := FromCode(s); ok {
		*c = v
		return nil
	}
	numeric, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownCurrency, s)
	}
	return c.setNumeric(numeric)
}

// Scan implements sql.Scanner for columns holding the alpha code (text) or
// the numeric code (integer).
func (c *Currency) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return c.UnmarshalText([]byte(v))
	case []byte:
		return c.UnmarshalText(v)
	case int64:
		return c.setNumeric(int(v))
	case nil:
		return fmt.Errorf("currency: cannot scan NULL into Currency, use NullCurrency")
	default:
		return fmt.Errorf("currency: cannot scan %T into Currency", src)
	}
}

// Value implements driver.Valuer; the alpha code is stored.
func (c Currency) Value() (driver.Value, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("currency: cannot store %s: %w", c, ErrUnknownCurrency)
	}
	return codes[c], nil
}

func (c *Currency) setNumeric(numeric int) error {
	v, ok := FromNumeric(numeric)
	if !ok {
		return fmt.Errorf("%w: numeric code %d", ErrUnknownCurrency, numeric)
	}
	*c = v
	return nil
}

// NullCurrency is a Currency that may be NULL in a database column.
type NullCurrency struct {
	Currency Currency
	Valid    bool // Valid is true if Currency is not NULL
}

// Scan implements sql.Scanner.
func (n *NullCurrency) Scan(src any) error {
	if src == nil {
		n.Currency, n.Valid = 0, false
		return nil
	}
	if err := n.Currency.Scan(src); err != nil {
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements driver.Valuer.
func (n NullCurrency) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Currency.Value()
}
