package match

import (
	"testing"

	"fabric-index/core/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultOptions() Options {
	return Options{Columns: DefaultColumns()}
}

func TestReconcile_MatchAndMiss(t *testing.T) {
	main := table.New(
		[]string{"A", "B", "C", "D", "E"},
		[][]any{
			{"abc", "x", "y", "123.0", nil},
			{"Z", "x", "y", "9", nil},
		},
	)
	idx := Index{"ABC123": "MATCHED"}

	res := Reconcile(main, idx, defaultOptions())

	require.Equal(t, 2, res.Table.Len())
	require.Len(t, res.Mask, 2)

	// Row 0: normalize("abc")+normalize("123.0") = "ABC123" resolves.
	assert.True(t, res.Mask[0])
	assert.Equal(t, "MATCHED", res.Table.Rows[0][4])

	// Row 1: "Z9" misses and falls back to the composite key.
	assert.False(t, res.Mask[1])
	assert.Equal(t, "Z9", res.Table.Rows[1][4])

	assert.Equal(t, Summary{Total: 2, Matched: 1, Unmatched: 1}, res.Summary)
}

func TestReconcile_PadsNarrowTable(t *testing.T) {
	main := table.New(
		[]string{"A", "B", "C"},
		[][]any{{"k", "x", "y"}},
	)

	res := Reconcile(main, Index{}, defaultOptions())

	require.Len(t, res.Table.Rows[0], 5)
	assert.Nil(t, res.Table.Rows[0][3])
	// Column 3 was padded with nil, so the composite is just the A key.
	assert.Equal(t, "K", res.Table.Rows[0][4])
	assert.False(t, res.Mask[0])
}

func TestReconcile_InputNotMutated(t *testing.T) {
	main := table.New(
		[]string{"A", "B", "C", "D", "E"},
		[][]any{{"abc", "x", "y", "123", "untouched"}},
	)

	Reconcile(main, Index{"ABC123": "MATCHED"}, defaultOptions())

	assert.Equal(t, "untouched", main.Rows[0][4])
	assert.Len(t, main.Rows[0], 5)
}

func TestReconcile_PreservesRowOrder(t *testing.T) {
	rows := [][]any{
		{"c", "", "", "3", nil},
		{"a", "", "", "1", nil},
		{"b", "", "", "2", nil},
	}
	main := table.New([]string{"A", "B", "C", "D", "E"}, rows)

	res := Reconcile(main, Index{}, defaultOptions())

	require.Equal(t, len(rows), res.Table.Len())
	assert.Equal(t, "C3", res.Table.Rows[0][4])
	assert.Equal(t, "A1", res.Table.Rows[1][4])
	assert.Equal(t, "B2", res.Table.Rows[2][4])
}

func TestReconcile_EmptyCompositeKey(t *testing.T) {
	main := table.New(
		[]string{"A", "B", "C", "D", "E"},
		[][]any{{nil, "x", "y", "nan", nil}},
	)
	idx := Index{"": "EMPTY-MATCH"}

	t.Run("SuppressedWhenDisabled", func(t *testing.T) {
		res := Reconcile(main, idx, defaultOptions())

		assert.False(t, res.Mask[0])
		assert.Equal(t, "", res.Table.Rows[0][4])
	})

	t.Run("ResolvesWhenEnabled", func(t *testing.T) {
		opts := defaultOptions()
		opts.MatchEmptyKey = true
		res := Reconcile(main, idx, opts)

		assert.True(t, res.Mask[0])
		assert.Equal(t, "EMPTY-MATCH", res.Table.Rows[0][4])
	})
}

func TestReconcile_CustomColumns(t *testing.T) {
	main := table.New(
		[]string{"K1", "K2", "Out"},
		[][]any{{"a", "b", nil}},
	)
	opts := Options{Columns: Columns{KeyA: 0, KeyB: 1, Output: 2, Numeric: -1}}

	res := Reconcile(main, Index{"AB": "hit"}, opts)

	assert.True(t, res.Mask[0])
	assert.Equal(t, "hit", res.Table.Rows[0][2])
}
