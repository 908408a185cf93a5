// Package spreadsheet handles xlsx input and output for the reconciliation
// pipeline, built on excelize.
//
// Reading is position-based: the first sheet's first row becomes the table
// header and every following row becomes a data row of text cells. Values
// are kept as the strings excelize formats them to, deliberately avoiding
// numeric reinterpretation at the boundary: the pipeline's normalizer and
// coercion step own that.
//
// Writing produces the annotated artifact: one sheet, a header row, and two
// optional style layers. Matched rows get a pure-yellow fill on the single
// resolved cell, and the coerced numeric column gets a two-decimal,
// thousands-separated display format. Any serialization failure surfaces to
// the caller; a partially written artifact is never reported as success.
package spreadsheet
