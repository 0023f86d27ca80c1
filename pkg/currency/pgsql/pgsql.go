// Package pgsql maps currencies onto PostgreSQL columns through pgx. Text
// columns and enum columns holding the alpha code are both supported.
package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/isocurrency/pkg/currency"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Code is a nullable currency for pgx. It scans from and encodes to the
// alpha code.
type Code struct {
	Currency currency.Currency
	Valid    bool
}

var (
	_ pgtype.TextScanner = (*Code)(nil)
	_ pgtype.TextValuer  = Code{}
)

// ScanText implements pgtype.TextScanner.
func (c *Code) ScanText(v pgtype.Text) error {
	if !v.Valid {
		*c = Code{}
		return nil
	}
	cur, err := currency.Parse(v.String)
	if err != nil {
		return fmt.Errorf("failed to scan currency code: %w", err)
	}
	*c = Code{Currency: cur, Valid: true}
	return nil
}

// TextValue implements pgtype.TextValuer.
func (c Code) TextValue() (pgtype.Text, error) {
	if !c.Valid {
		return pgtype.Text{}, nil
	}
	if !c.Currency.Valid() {
		return pgtype.Text{}, fmt.Errorf("failed to encode %s: %w", c.Currency, currency.ErrUnknownCurrency)
	}
	return pgtype.Text{String: c.Currency.Code(), Valid: true}, nil
}

// EnumDDL returns a CREATE TYPE statement for a Postgres enum whose labels
// are every alpha code in table order.
func EnumDDL(typeName string) string {
	labels := make([]string, 0, currency.Len())
	for c := range currency.All() {
		labels = append(labels, "'"+c.Code()+"'")
	}
	return fmt.Sprintf("CREATE TYPE %s AS ENUM (%s);", pgx.Identifier{typeName}.Sanitize(), strings.Join(labels, ", "))
}

// RegisterEnum loads the enum type named typeName and registers it on the
// connection, so currency columns of that type can be scanned into Code.
func RegisterEnum(ctx context.Context, conn *pgx.Conn, typeName string) error {
	t, err := conn.LoadType(ctx, typeName)
	if err != nil {
		return fmt.Errorf("failed to load enum type %s: %w", typeName, err)
	}
	conn.TypeMap().RegisterType(t)
	return nil
}
