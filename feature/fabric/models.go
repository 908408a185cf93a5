package fabric

import "fabric-index/core/match"

// MatchReport is the JSON payload returned by the match endpoint. It carries
// everything a client needs to render a summary and a highlighted preview:
// aggregate counts, the full row-aligned match mask, and a bounded slice of
// result rows. Whether a preview highlights whole rows or single cells is a
// client decision; the exported artifact always highlights the single
// resolved cell.
type MatchReport struct {
	// Summary holds the aggregate match counts.
	Summary match.Summary `json:"summary"`

	// Mask marks, per result row, whether the composite key resolved.
	Mask []bool `json:"mask"`

	// Header is the result table's header row.
	Header []string `json:"header"`

	// Preview contains the first rows of the result table, capped by the
	// configured preview size.
	Preview [][]any `json:"preview"`

	// Truncated reports whether Preview omits trailing rows.
	Truncated bool `json:"truncated"`
}
