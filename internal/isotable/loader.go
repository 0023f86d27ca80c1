// Package isotable reads the ISO 4217 source table used to generate the
// currency package. It runs at generation time only; malformed input is
// reported row by row and never coerced.
package isotable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/SscSPs/isocurrency/internal/apperrors"
	"go.uber.org/multierr"
	"golang.org/x/text/language"
)

const (
	territorySep = ";"
	flagSep      = ","

	flagFund       = "fund"
	flagSpecial    = "special"
	flagSuperseded = "superseded"

	maxExponent = 9
)

// LoadFile opens path and loads it with Load. Load errors are returned
// unwrapped so callers can split them with multierr.Errors.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open currency table %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Load parses and validates a tab-separated currency table. It returns every
// row error it finds, combined with multierr; on any error no records are
// returned.
func Load(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.Comment = '#'
	reader.FieldsPerRecord = len(Columns)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: table has no header", apperrors.ErrValidation)
		}
		if errors.Is(err, csv.ErrFieldCount) {
			return nil, fmt.Errorf("%w: header must have %d columns, got %d", apperrors.ErrValidation, len(Columns), len(header))
		}
		return nil, fmt.Errorf("failed to read table header: %w", err)
	}
	if !slices.Equal(header, Columns) {
		return nil, fmt.Errorf("%w: header is %q, want %q", apperrors.ErrValidation, header, Columns)
	}

	var (
		records []Record
		lines   []int
		errs    error
	)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, fmt.Errorf("failed to read currency table: %w", err)
			}
			if errors.Is(parseErr.Err, csv.ErrFieldCount) {
				err = fmt.Errorf("%w: expected %d columns, got %d", apperrors.ErrValidation, len(Columns), len(row))
			} else {
				err = fmt.Errorf("%w: at byte %d: %w", apperrors.ErrValidation, parseErr.Column, parseErr.Err)
			}
			errs = multierr.Append(errs, &RowError{Line: parseErr.StartLine, Err: err})
			continue
		}

		line, _ := reader.FieldPos(0)
		rec, err := parseRow(line, row)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		records = append(records, rec)
		lines = append(lines, line)
	}

	errs = multierr.Append(errs, checkTable(records, lines))
	if errs != nil {
		return nil, errs
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: table has no rows", apperrors.ErrValidation)
	}
	return records, nil
}

func parseRow(line int, row []string) (Record, error) {
	var errs error
	fail := func(col int, err error) {
		errs = multierr.Append(errs, rowErr(line, col, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)))
	}

	rec := Record{
		Code:          row[colCode],
		Name:          row[colName],
		Symbol:        row[colSymbol],
		SubunitSymbol: row[colSubunitSymbol],
	}

	for _, col := range []int{colName, colSymbol, colSubunitSymbol} {
		if strings.ContainsFunc(row[col], unicode.IsControl) {
			fail(col, fmt.Errorf("%q contains a control character", row[col]))
		}
	}

	if !isUpperAlpha(rec.Code, 3) {
		fail(colCode, fmt.Errorf("%q is not a three-letter upper-case code", rec.Code))
	}

	numeric, err := parseNumeric(row[colNumeric])
	if err != nil {
		fail(colNumeric, err)
	}
	rec.Numeric = numeric

	if strings.TrimSpace(rec.Name) == "" {
		fail(colName, errors.New("name is empty"))
	}

	if s := row[colExponent]; s != "" {
		exp, err := strconv.ParseUint(s, 10, 8)
		if err != nil || exp > maxExponent {
			fail(colExponent, fmt.Errorf("%q is not an exponent between 0 and %d", s, maxExponent))
		} else {
			e := uint8(exp)
			rec.Exponent = &e
		}
	}

	territories, err := parseTerritories(row[colTerritories])
	if err != nil {
		fail(colTerritories, err)
	}
	rec.Territories = territories

	if err := parseFlags(row[colFlags], &rec); err != nil {
		fail(colFlags, err)
	}

	if errs != nil {
		return Record{}, errs
	}
	return rec, nil
}

func parseNumeric(s string) (uint16, error) {
	if len(s) == 0 || len(s) > 3 {
		return 0, fmt.Errorf("%q is not a numeric code of one to three digits", s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%q is not a numeric code of one to three digits", s)
		}
	}
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("failed to parse numeric code %q: %w", s, err)
	}
	return uint16(n), nil
}

func parseTerritories(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, territorySep)
	seen := make(map[string]struct{}, len(parts))
	for i, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("territory %d is empty (stray %q separator)", i+1, territorySep)
		}
		if !isUpperAlpha(p, 2) {
			return nil, fmt.Errorf("territory %q is not a two-letter upper-case code", p)
		}
		region, err := language.ParseRegion(p)
		if err != nil {
			return nil, fmt.Errorf("territory %q is not a known region: %w", p, err)
		}
		if region.String() != p {
			return nil, fmt.Errorf("territory %q is not canonical, use %q", p, region.String())
		}
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("territory %q is listed twice", p)
		}
		seen[p] = struct{}{}
	}
	return parts, nil
}

func parseFlags(s string, rec *Record) error {
	if s == "" {
		return nil
	}
	seen := make(map[string]struct{})
	for _, f := range strings.Split(s, flagSep) {
		key := f
		switch {
		case f == flagFund:
			rec.Fund = true
		case f == flagSpecial:
			rec.Special = true
		case strings.HasPrefix(f, flagSuperseded+"("):
			target, ok := strings.CutSuffix(strings.TrimPrefix(f, flagSuperseded+"("), ")")
			if !ok || !isUpperAlpha(target, 3) {
				return fmt.Errorf("flag %q must look like superseded(XXX)", f)
			}
			rec.SupersededBy = target
			key = flagSuperseded
		default:
			return fmt.Errorf("unknown flag %q", f)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("flag %q is set twice", key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// checkTable enforces the cross-row invariants: codes and numerics are
// bijective and superseded targets exist.
func checkTable(records []Record, lines []int) error {
	var errs error
	byCode := make(map[string]int, len(records))
	byNumeric := make(map[uint16]int, len(records))

	for i, rec := range records {
		if first, ok := byCode[rec.Code]; ok {
			errs = multierr.Append(errs, rowErr(lines[i], colCode,
				fmt.Errorf("%w: code %s already defined on line %d", apperrors.ErrDuplicate, rec.Code, lines[first])))
		} else {
			byCode[rec.Code] = i
		}
		if first, ok := byNumeric[rec.Numeric]; ok {
			errs = multierr.Append(errs, rowErr(lines[i], colNumeric,
				fmt.Errorf("%w: numeric %03d already used by %s on line %d", apperrors.ErrDuplicate, rec.Numeric, records[first].Code, lines[first])))
		} else {
			byNumeric[rec.Numeric] = i
		}
	}

	for i, rec := range records {
		if rec.SupersededBy == "" {
			continue
		}
		if rec.SupersededBy == rec.Code {
			errs = multierr.Append(errs, rowErr(lines[i], colFlags,
				fmt.Errorf("%w: %s cannot supersede itself", apperrors.ErrValidation, rec.Code)))
			continue
		}
		if _, ok := byCode[rec.SupersededBy]; !ok {
			errs = multierr.Append(errs, rowErr(lines[i], colFlags,
				fmt.Errorf("%w: superseding currency %s", apperrors.ErrNotFound, rec.SupersededBy)))
		}
	}
	return errs
}

func isUpperAlpha(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
