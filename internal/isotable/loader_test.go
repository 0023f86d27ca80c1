package isotable_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SscSPs/isocurrency/internal/apperrors"
	"github.com/SscSPs/isocurrency/internal/isotable"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

const header = "code\tnumeric\tname\tsymbol\texponent\tterritories\tsubunit_symbol\tflags\n"

func table(rows ...string) string {
	return header + strings.Join(rows, "\n") + "\n"
}

func uint8Ptr(v uint8) *uint8 {
	return &v
}

func TestLoad_ValidTable(t *testing.T) {
	src := "# comment line\n" + table(
		"CHF\t756\tSwiss franc\tFr.\t2\tLI;CH\tRp.\t",
		"EUR\t978\tEuro\t€\t2\tDE;FR\tc\t",
		"HRK\t191\tCroatian kuna\tkn\t2\t\t\tsuperseded(EUR)",
		"XAU\t959\tGold (one troy ounce)\t\t\t\t\tspecial",
		"BOV\t984\tBolivian Mvdol\t\t2\tBO\t\tfund",
		"BBD\t052\tBarbados dollar\t$\t2\tBB\t\t",
	)

	records, err := isotable.Load(strings.NewReader(src))
	require.NoError(t, err)

	want := []isotable.Record{
		{Code: "CHF", Numeric: 756, Name: "Swiss franc", Symbol: "Fr.", Exponent: uint8Ptr(2), Territories: []string{"LI", "CH"}, SubunitSymbol: "Rp."},
		{Code: "EUR", Numeric: 978, Name: "Euro", Symbol: "€", Exponent: uint8Ptr(2), Territories: []string{"DE", "FR"}, SubunitSymbol: "c"},
		{Code: "HRK", Numeric: 191, Name: "Croatian kuna", Symbol: "kn", Exponent: uint8Ptr(2), SupersededBy: "EUR"},
		{Code: "XAU", Numeric: 959, Name: "Gold (one troy ounce)", Special: true},
		{Code: "BOV", Numeric: 984, Name: "Bolivian Mvdol", Exponent: uint8Ptr(2), Territories: []string{"BO"}, Fund: true},
		{Code: "BBD", Numeric: 52, Name: "Barbados dollar", Symbol: "$", Exponent: uint8Ptr(2), Territories: []string{"BB"}},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_ZeroExponentIsNotAbsent(t *testing.T) {
	records, err := isotable.Load(strings.NewReader(table("JPY\t392\tJapanese yen\t¥\t0\tJP\t\t")))
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].Exponent)
	assert.Equal(t, uint8(0), *records[0].Exponent)
}

func TestLoad_RowErrors(t *testing.T) {
	tests := []struct {
		name    string
		row     string
		column  string
		wantErr error
		errMsg  string
	}{
		{
			name:    "too few columns",
			row:     "EUR\t978\tEuro\t€\t2\tDE",
			wantErr: apperrors.ErrValidation,
			errMsg:  "expected 8 columns, got 6",
		},
		{
			name:    "too many columns",
			row:     "EUR\t978\tEuro\t€\t2\tDE\t\t\textra",
			wantErr: apperrors.ErrValidation,
			errMsg:  "expected 8 columns, got 9",
		},
		{
			name:    "bare quote",
			row:     "EUR\t978\tEu\"ro\t€\t2\tDE\t\t",
			wantErr: apperrors.ErrValidation,
			errMsg:  "bare",
		},
		{
			name:    "unterminated quote",
			row:     "EUR\t978\t\"Euro\t€\t2\tDE\t\t",
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "quoted name hiding a tab",
			row:     "EUR\t978\t\"Eu\tro\"\t€\t2\tDE\t\t",
			column:  "name",
			wantErr: apperrors.ErrValidation,
			errMsg:  "control character",
		},
		{
			name:    "quoted name hiding a newline",
			row:     "EUR\t978\t\"Eu\nro\"\t€\t2\tDE\t\t",
			column:  "name",
			wantErr: apperrors.ErrValidation,
			errMsg:  "control character",
		},
		{
			name:    "quoted symbol hiding a tab",
			row:     "EUR\t978\tEuro\t\"€\t\"\t2\tDE\t\t",
			column:  "symbol",
			wantErr: apperrors.ErrValidation,
			errMsg:  "control character",
		},
		{
			name:    "lower-case code",
			row:     "eur\t978\tEuro\t€\t2\tDE\t\t",
			column:  "code",
			wantErr: apperrors.ErrValidation,
			errMsg:  "three-letter",
		},
		{
			name:    "numeric out of range",
			row:     "EUR\t1978\tEuro\t€\t2\tDE\t\t",
			column:  "numeric",
			wantErr: apperrors.ErrValidation,
			errMsg:  "one to three digits",
		},
		{
			name:    "negative numeric",
			row:     "EUR\t-1\tEuro\t€\t2\tDE\t\t",
			column:  "numeric",
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "empty name",
			row:     "EUR\t978\t\t€\t2\tDE\t\t",
			column:  "name",
			wantErr: apperrors.ErrValidation,
			errMsg:  "name is empty",
		},
		{
			name:    "bad exponent",
			row:     "EUR\t978\tEuro\t€\ttwo\tDE\t\t",
			column:  "exponent",
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "exponent too large",
			row:     "EUR\t978\tEuro\t€\t12\tDE\t\t",
			column:  "exponent",
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "trailing territory separator",
			row:     "EUR\t978\tEuro\t€\t2\tDE;FR;\t\t",
			column:  "territories",
			wantErr: apperrors.ErrValidation,
			errMsg:  "stray",
		},
		{
			name:    "duplicate territory",
			row:     "EUR\t978\tEuro\t€\t2\tDE;DE\t\t",
			column:  "territories",
			wantErr: apperrors.ErrValidation,
			errMsg:  "listed twice",
		},
		{
			name:    "malformed territory",
			row:     "EUR\t978\tEuro\t€\t2\tDEU\t\t",
			column:  "territories",
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "unknown flag",
			row:     "EUR\t978\tEuro\t€\t2\tDE\t\tlegacy",
			column:  "flags",
			wantErr: apperrors.ErrValidation,
			errMsg:  "unknown flag",
		},
		{
			name:    "malformed superseded flag",
			row:     "EUR\t978\tEuro\t€\t2\tDE\t\tsuperseded(EU",
			column:  "flags",
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "self superseded",
			row:     "EUR\t978\tEuro\t€\t2\tDE\t\tsuperseded(EUR)",
			column:  "flags",
			wantErr: apperrors.ErrValidation,
			errMsg:  "supersede itself",
		},
		{
			name:    "unknown superseded target",
			row:     "EUR\t978\tEuro\t€\t2\tDE\t\tsuperseded(ABC)",
			column:  "flags",
			wantErr: apperrors.ErrNotFound,
			errMsg:  "ABC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := isotable.Load(strings.NewReader(table(tt.row)))
			require.Error(t, err)
			assert.Nil(t, records)
			assert.ErrorIs(t, err, tt.wantErr)

			var rowErr *isotable.RowError
			require.True(t, errors.As(err, &rowErr), "expected a RowError, got %v", err)
			assert.Equal(t, 2, rowErr.Line)
			assert.Equal(t, tt.column, rowErr.Column)
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestLoad_DuplicateIdentities(t *testing.T) {
	src := table(
		"EUR\t978\tEuro\t€\t2\tDE\t\t",
		"EUR\t979\tEuro again\t€\t2\tFR\t\t",
		"USD\t978\tUS dollar\t$\t2\tUS\t\t",
	)

	records, err := isotable.Load(strings.NewReader(src))
	require.Error(t, err)
	assert.Nil(t, records)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "line 3, column code")
	assert.Contains(t, errs[1].Error(), "line 4, column numeric")
}

func TestLoad_CollectsEveryBadRow(t *testing.T) {
	src := table(
		"EUR\t978\tEuro\t€\t2\tDE\t\t",
		"usd\t840\tUS dollar\t$\t2\tUS\t\t",
		"GBP\t826\tPound sterling",
		"JPY\t392\tJapanese yen\t¥\tx\tJP;\t\t",
	)

	_, err := isotable.Load(strings.NewReader(src))
	require.Error(t, err)

	// JPY contributes two column errors.
	errs := multierr.Errors(err)
	assert.Len(t, errs, 4)
}

func TestLoad_HeaderErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "empty input", src: ""},
		{name: "only comments", src: "# nothing here\n"},
		{name: "renamed column", src: strings.Replace(header, "flags", "notes", 1)},
		{name: "short header", src: "code\tnumeric\tname\n"},
		{name: "header without rows", src: header},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := isotable.Load(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Nil(t, records)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "isodata.tsv")
	require.NoError(t, os.WriteFile(path, []byte(table("EUR\t978\tEuro\t€\t2\tDE\t\t")), 0o600))

	records, err := isotable.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "EUR", records[0].Code)

	_, err = isotable.LoadFile(filepath.Join(dir, "missing.tsv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFile_ShippedTable(t *testing.T) {
	records, err := isotable.LoadFile(filepath.Join("..", "..", "pkg", "currency", "isodata.tsv"))
	require.NoError(t, err)
	assert.Greater(t, len(records), 150)
}
