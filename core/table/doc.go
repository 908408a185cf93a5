// Package table defines the in-memory tabular model shared by the
// reconciliation pipeline.
//
// A Table is an ordered header plus an ordered sequence of rows. Cells are
// addressed strictly by zero-based column position, never by header label,
// because the source spreadsheets carry arbitrary (often localized) headers.
// A cell is either nil (absent in the source sheet) or a scalar; readers
// populate cells as strings and the coercion step may replace them with
// float64.
//
// Row order is load-bearing: every transformation in the pipeline preserves
// the order and count of rows, and downstream match masks are aligned to it
// by index.
package table
