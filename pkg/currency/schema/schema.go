// Package schema describes currencies as OpenAPI 3 schemas, so API documents
// can restrict fields to the codes this module knows.
package schema

import (
	"encoding/json"

	"github.com/SscSPs/isocurrency/pkg/currency"
	"github.com/getkin/kin-openapi/openapi3"
)

// Component names used by AddComponents.
const (
	CodeComponent    = "CurrencyCode"
	NumericComponent = "CurrencyNumeric"
)

// CodeSchema returns a string schema whose enum is every alpha code.
func CodeSchema() *openapi3.Schema {
	codes := make([]any, 0, currency.Len())
	for c := range currency.All() {
		codes = append(codes, c.Code())
	}
	s := openapi3.NewStringSchema().
		WithMinLength(3).
		WithMaxLength(3).
		WithPattern("^[A-Z]{3}$").
		WithEnum(codes...)
	s.Description = "ISO 4217 alphabetic currency code"
	s.Example = currency.EUR.Code()
	return s
}

// NumericSchema returns an integer schema whose enum is every numeric code.
// Enum members are float64, the type JSON numbers decode to.
func NumericSchema() *openapi3.Schema {
	numerics := make([]any, 0, currency.Len())
	for c := range currency.All() {
		numerics = append(numerics, float64(c.Numeric()))
	}
	s := openapi3.NewIntegerSchema().
		WithMin(0).
		WithMax(999).
		WithEnum(numerics...)
	s.Description = "ISO 4217 numeric currency code"
	s.Example = float64(currency.EUR.Numeric())
	return s
}

// AddComponents registers CodeSchema and NumericSchema on doc under
// CodeComponent and NumericComponent, replacing any existing entries.
func AddComponents(doc *openapi3.T) {
	if doc.Components == nil {
		doc.Components = &openapi3.Components{}
	}
	if doc.Components.Schemas == nil {
		doc.Components.Schemas = openapi3.Schemas{}
	}
	doc.Components.Schemas[CodeComponent] = openapi3.NewSchemaRef("", CodeSchema())
	doc.Components.Schemas[NumericComponent] = openapi3.NewSchemaRef("", NumericSchema())
}

// CodeRef returns a reference to the code component for use in other schemas.
func CodeRef() *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("#/components/schemas/"+CodeComponent, nil)
}

// JSON returns CodeSchema encoded as JSON.
func JSON() ([]byte, error) {
	return json.Marshal(CodeSchema())
}
