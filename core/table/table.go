package table

import "fmt"

// Table is an ordered sequence of rows with a header. Cells are nil or a
// scalar value (string as read, float64 after numeric coercion).
type Table struct {
	Header []string
	Rows   [][]any
}

// New creates a table from a header and rows. The rows slice is used as-is.
func New(header []string, rows [][]any) *Table {
	return &Table{Header: header, Rows: rows}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Columns returns the widest extent of the table: the header length or the
// longest row, whichever is larger.
func (t *Table) Columns() int {
	n := len(t.Header)
	for _, row := range t.Rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// Cell returns the value at (row, col), or nil when the row is shorter than
// col+1. Out-of-range rows also yield nil so callers can probe uniformly.
func (t *Table) Cell(row, col int) any {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return nil
	}
	return r[col]
}

// Clone returns a deep copy of the table. Row slices are copied so mutations
// of the clone never reach the original.
func (t *Table) Clone() *Table {
	header := make([]string, len(t.Header))
	copy(header, t.Header)

	rows := make([][]any, len(t.Rows))
	for i, row := range t.Rows {
		r := make([]any, len(row))
		copy(r, row)
		rows[i] = r
	}
	return &Table{Header: header, Rows: rows}
}

// PadColumns widens every row (and the header) to at least n columns,
// filling new cells with nil and new header slots with generated labels.
func (t *Table) PadColumns(n int) {
	for len(t.Header) < n {
		t.Header = append(t.Header, fmt.Sprintf("Col_%d", len(t.Header)))
	}
	for i, row := range t.Rows {
		for len(row) < n {
			row = append(row, nil)
		}
		t.Rows[i] = row
	}
}

// RequireColumns validates that the table exposes at least n columns.
func (t *Table) RequireColumns(n int) error {
	if t.Columns() < n {
		return fmt.Errorf("table has %d columns, need at least %d", t.Columns(), n)
	}
	return nil
}
