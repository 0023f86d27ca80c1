//go:generate go run ../../cmd/isogen --table isodata.tsv --output isodata.go --package currency

// Package currency exposes every ISO 4217 currency as a value of the closed
// Currency type, with lookups between alpha code, numeric code, name, symbol,
// minor-unit exponent and the territories that use it.
//
// The data lives in isodata.tsv and is compiled into isodata.go by
// cmd/isogen; nothing is read at run time and all values are immutable, so
// every function in this package is safe for concurrent use.
//
//	c, ok := currency.FromCode("EUR")
//	if !ok {
//		// not an ISO 4217 code
//	}
//	c.Name()            // "Euro"
//	c.Numeric()         // 978
//	c.Symbol().String() // "€"
//	c.SubunitFraction() // 100, true
//
// Adapters for pgx, JSON schema, struct validation and decimal rounding live
// in subpackages so that importing this package pulls in none of them.
package currency
