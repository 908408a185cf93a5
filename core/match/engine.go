package match

import "fabric-index/core/table"

// Reconcile resolves every main-table row against the reference index.
//
// For row i the composite probe key is NormalizeKey(row[KeyA]) +
// NormalizeKey(row[KeyB]) with no separator. On a hit the indexed value is
// written to the output column and the mask is set; on a miss the composite
// key itself is written. No row is skipped: an all-empty composite ("") is a
// legal probe, resolved only when Options.MatchEmptyKey is set and the index
// carries an empty-string entry.
//
// The input table is never mutated; the result holds a padded deep copy with
// identical row order, and the mask is aligned to it by index.
func Reconcile(main *table.Table, idx Index, opts Options) *Result {
	result := main.Clone()
	result.PadColumns(maxCol(opts.Columns.KeyA, opts.Columns.KeyB, opts.Columns.Output) + 1)

	mask := make([]bool, result.Len())
	summary := Summary{Total: result.Len()}

	for i := range result.Rows {
		composite := NormalizeKey(result.Rows[i][opts.Columns.KeyA]) +
			NormalizeKey(result.Rows[i][opts.Columns.KeyB])

		value, ok := idx[composite]
		if ok && composite == "" && !opts.MatchEmptyKey {
			ok = false
		}

		if ok {
			result.Rows[i][opts.Columns.Output] = value
			mask[i] = true
			summary.Matched++
		} else {
			result.Rows[i][opts.Columns.Output] = composite
			summary.Unmatched++
		}
	}

	return &Result{Table: result, Mask: mask, Summary: summary}
}

func maxCol(cols ...int) int {
	m := 0
	for _, c := range cols {
		if c > m {
			m = c
		}
	}
	return m
}
