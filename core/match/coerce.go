package match

import (
	"fabric-index/core/table"
	"fabric-index/core/utils"
)

// CoerceNumericColumn rewrites every cell of the designated column as a
// float64. Values that fail to parse become 0 rather than an error or a
// passthrough: downstream display formatting requires the whole column to be
// numeric. Rows too short to reach the column are left alone. Runs strictly
// after Reconcile and must never be pointed at the output column.
func CoerceNumericColumn(t *table.Table, col int) {
	if col < 0 {
		return
	}
	for i, row := range t.Rows {
		if col >= len(row) {
			continue
		}
		t.Rows[i][col] = utils.ToFloat64(row[col])
	}
}
