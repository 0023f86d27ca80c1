package isotable

import "fmt"

// RowError locates a validation failure in the source table.
type RowError struct {
	Line   int    // 1-based line in the source file
	Column string // Column name, empty when the whole row is at fault
	Err    error
}

func (e *RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, column %s: %v", e.Line, e.Column, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

func rowErr(line, col int, err error) *RowError {
	name := ""
	if col >= 0 && col < len(Columns) {
		name = Columns[col]
	}
	return &RowError{Line: line, Column: name, Err: err}
}
