package isotable

// Record is one validated row of the ISO 4217 source table.
type Record struct {
	Code          string   // Alpha code, unique (e.g., "EUR")
	Numeric       uint16   // Numeric code, unique (e.g., 978)
	Name          string   // English name
	Symbol        string   // Display symbol, empty when none is defined
	Exponent      *uint8   // Minor-unit digits, nil when the currency has no minor unit
	Territories   []string // ISO 3166-1 alpha-2 codes in table order
	SubunitSymbol string   // e.g. "¢", empty when unknown
	Fund          bool
	Special       bool
	SupersededBy  string // Alpha code of the replacement, empty when current
}

// Columns lists the table header in order. Every row carries all of them.
var Columns = []string{
	"code",
	"numeric",
	"name",
	"symbol",
	"exponent",
	"territories",
	"subunit_symbol",
	"flags",
}

const (
	colCode = iota
	colNumeric
	colName
	colSymbol
	colExponent
	colTerritories
	colSubunitSymbol
	colFlags
)
