package match

import "fabric-index/core/table"

// Columns holds the zero-based column offsets the engine operates on.
// Positions are fixed offsets rather than header names because the source
// sheets carry arbitrary header labels.
type Columns struct {
	// KeyA is the first component of the composite probe key.
	KeyA int
	// KeyB is the second component of the composite probe key.
	KeyB int
	// Output is the column the resolved value (or composite key) is written to.
	Output int
	// Numeric is the column targeted by best-effort numeric coercion.
	Numeric int
}

// DefaultColumns returns the column layout of the original fabric sheets:
// keys in A and D, result in E, quantity in H.
func DefaultColumns() Columns {
	return Columns{KeyA: 0, KeyB: 3, Output: 4, Numeric: 7}
}

// Options controls a reconciliation run.
type Options struct {
	// Columns is the column layout; zero value is not usable, use
	// DefaultColumns unless configured otherwise.
	Columns Columns

	// MatchEmptyKey allows an all-empty composite key ("") to resolve
	// against an empty-string index entry. The zero value suppresses such
	// matches; the application config enables them by default.
	MatchEmptyKey bool
}

// Index maps normalized reference keys to their substitution values.
// Values are the raw, non-normalized contents of the reference value column.
type Index map[string]any

// Result is the outcome of one reconciliation run.
type Result struct {
	// Table is the annotated copy of the main table. The output column
	// holds the resolved value for matched rows and the composite key for
	// unmatched rows. Row order equals the input order.
	Table *table.Table

	// Mask is aligned 1:1 with Table rows; true marks a resolved row.
	Mask []bool

	// Summary holds aggregate counts for reporting.
	Summary Summary
}

// Summary provides aggregate statistics for a reconciliation run.
type Summary struct {
	// Total is the number of main rows processed.
	Total int `json:"total"`

	// Matched counts rows whose composite key resolved against the index.
	Matched int `json:"matched"`

	// Unmatched counts rows that fell back to the composite key.
	Unmatched int `json:"unmatched"`
}
