// Package codegen renders validated currency records as Go source for the
// currency package.
package codegen

import (
	"bytes"
	"fmt"
	"go/token"
	"strings"

	"github.com/SscSPs/isocurrency/internal/apperrors"
	"github.com/SscSPs/isocurrency/internal/isotable"
	"golang.org/x/tools/imports"
)

// Options controls the generated file.
type Options struct {
	Package string // Package clause of the generated file
	Source  string // Table name recorded in the generated header
}

type row struct {
	Code         string
	Name         string
	Numeric      uint16
	Symbol       string
	Subunit      string
	Exponent     int
	Territories  []string
	Flags        string
	SupersededBy string
}

type fileData struct {
	Package string
	Source  string
	Rows    []row
}

// Generate renders records into a formatted Go source file. The records are
// expected to come from isotable.Load, which has already enforced the table
// invariants.
func Generate(opts Options, records []isotable.Record) ([]byte, error) {
	if !token.IsIdentifier(opts.Package) {
		return nil, fmt.Errorf("%w: %q is not a valid package name", apperrors.ErrValidation, opts.Package)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no currencies to generate", apperrors.ErrValidation)
	}
	if opts.Source == "" {
		opts.Source = "isodata.tsv"
	}

	data := fileData{
		Package: opts.Package,
		Source:  opts.Source,
		Rows:    make([]row, len(records)),
	}
	for i, rec := range records {
		data.Rows[i] = toRow(rec)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render currency table: %w", err)
	}

	out, err := imports.Process("isodata.go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return out, nil
}

func toRow(rec isotable.Record) row {
	r := row{
		Code:         rec.Code,
		Name:         rec.Name,
		Numeric:      rec.Numeric,
		Symbol:       rec.Symbol,
		Subunit:      rec.SubunitSymbol,
		Exponent:     -1,
		Territories:  rec.Territories,
		SupersededBy: rec.SupersededBy,
	}
	if rec.Exponent != nil {
		r.Exponent = int(*rec.Exponent)
	}

	var fl []string
	if rec.Fund {
		fl = append(fl, "flagFund")
	}
	if rec.Special {
		fl = append(fl, "flagSpecial")
	}
	r.Flags = strings.Join(fl, " | ")
	return r
}
