package match

import (
	"fmt"

	"fabric-index/core/table"
)

// BuildIndex constructs the reference index from the lookup table. Column 0
// of every row is normalized into the key; the paired value is the raw,
// unmodified contents of column 1. Duplicate normalized keys overwrite in
// row order, so the last occurrence wins. This is deliberate: duplicate
// fabric identifiers in the index sheet resolve to their latest entry.
func BuildIndex(ref *table.Table) (Index, error) {
	if err := ref.RequireColumns(2); err != nil {
		return nil, fmt.Errorf("reference index table: %w", err)
	}

	idx := make(Index, ref.Len())
	for i := range ref.Rows {
		key := NormalizeKey(ref.Cell(i, 0))
		idx[key] = ref.Cell(i, 1)
	}
	return idx, nil
}
