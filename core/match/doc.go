// Package match implements the fabric index reconciliation engine.
//
// The engine takes two tables: a main sheet and a reference index sheet.
// It builds a key→value index from the reference sheet (column 0 → column 1),
// derives a composite probe key for every main row by concatenating the
// normalized values of two key columns, and resolves each probe against the
// index. Hits substitute the indexed value into the output column; misses
// fall back to the composite key itself. A boolean mask aligned 1:1 with the
// main rows records which rows resolved.
//
// # Key normalization
//
// Raw cell values are canonicalized before comparison: nil collapses to "",
// strings are trimmed and upper-cased, a trailing ".0" (an artifact of whole
// numbers read as floating text) is stripped, and the literal "NAN" (a
// stringified-null artifact) collapses to "". Normalization is total and
// idempotent; it never fails.
//
// # Duplicate keys
//
// Index construction is sequential map insertion: a later reference row with
// the same normalized key silently supersedes an earlier one. Downstream
// data depends on this last-one-wins behavior, so it must not be turned into
// an error or first-one-wins.
//
// # Column positions
//
// All column positions are zero-based offsets carried in a Columns struct
// (defaults: key columns 0 and 3, output column 4, numeric column 7), so the
// engine works against sheets with arbitrary header labels.
package match
