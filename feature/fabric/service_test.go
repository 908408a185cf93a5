package fabric

import (
	"bytes"
	"testing"

	"fabric-index/core/match"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func testConfig() match.Config {
	return match.Config{
		KeyColA:       0,
		KeyColB:       3,
		OutputCol:     4,
		NumericCol:    7,
		CoerceNumeric: true,
		MatchEmptyKey: true,
		SheetName:     "Result",
		PreviewRows:   100,
	}
}

// buildSheet produces an in-memory xlsx with the given rows on one sheet.
func buildSheet(t *testing.T, rows ...[]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func mainSheet(t *testing.T) *bytes.Buffer {
	return buildSheet(t,
		[]any{"A", "B", "C", "D", "E", "F", "G", "H"},
		[]any{"abc", "x", "y", "123", "", "", "", "42.5"},
		[]any{"Z", "x", "y", "9", "", "", "", "N/A"},
	)
}

func indexSheet(t *testing.T) *bytes.Buffer {
	return buildSheet(t,
		[]any{"Key", "Value"},
		[]any{"ABC123", "MATCHED"},
	)
}

func TestService_Run(t *testing.T) {
	svc := NewService(testConfig(), zap.NewNop())

	result, err := svc.Run(mainSheet(t), indexSheet(t))
	require.NoError(t, err)

	require.Equal(t, 2, result.Table.Len())
	assert.Equal(t, []bool{true, false}, result.Mask)
	assert.Equal(t, "MATCHED", result.Table.Rows[0][4])
	assert.Equal(t, "Z9", result.Table.Rows[1][4])
	assert.Equal(t, match.Summary{Total: 2, Matched: 1, Unmatched: 1}, result.Summary)

	// Numeric coercion ran on column 7.
	assert.Equal(t, 42.5, result.Table.Rows[0][7])
	assert.Equal(t, float64(0), result.Table.Rows[1][7])
}

func TestService_Run_CoercionDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.CoerceNumeric = false
	svc := NewService(cfg, zap.NewNop())

	result, err := svc.Run(mainSheet(t), indexSheet(t))
	require.NoError(t, err)

	assert.Equal(t, "42.5", result.Table.Rows[0][7])
	assert.Equal(t, "N/A", result.Table.Rows[1][7])
}

func TestService_Run_EmptyCompositeResolves(t *testing.T) {
	// Blank key cells probe the index like any other key under the default
	// configuration.
	svc := NewService(testConfig(), zap.NewNop())

	main := buildSheet(t,
		[]any{"A", "B", "C", "D", "E"},
		[]any{"", "x", "y", "", ""},
	)
	index := buildSheet(t,
		[]any{"Key", "Value"},
		[]any{"", "EMPTY-MATCH"},
	)

	result, err := svc.Run(main, index)
	require.NoError(t, err)

	assert.Equal(t, []bool{true}, result.Mask)
	assert.Equal(t, "EMPTY-MATCH", result.Table.Rows[0][4])
}

func TestService_Run_IndexTooNarrow(t *testing.T) {
	svc := NewService(testConfig(), zap.NewNop())

	_, err := svc.Run(mainSheet(t), buildSheet(t, []any{"Key"}, []any{"only-key"}))
	assert.Error(t, err)
}

func TestService_Run_UnreadableMainSheet(t *testing.T) {
	svc := NewService(testConfig(), zap.NewNop())

	_, err := svc.Run(bytes.NewBufferString("not xlsx"), indexSheet(t))
	assert.Error(t, err)
}

func TestService_Export_RoundTrip(t *testing.T) {
	svc := NewService(testConfig(), zap.NewNop())

	result, err := svc.Run(mainSheet(t), indexSheet(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(&buf, result))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Result"}, f.GetSheetList())

	val, err := f.GetCellValue("Result", "E2")
	require.NoError(t, err)
	assert.Equal(t, "MATCHED", val)

	val, err = f.GetCellValue("Result", "E3")
	require.NoError(t, err)
	assert.Equal(t, "Z9", val)
}

func TestService_Report_TruncatesPreview(t *testing.T) {
	cfg := testConfig()
	cfg.PreviewRows = 1
	svc := NewService(cfg, zap.NewNop())

	result, err := svc.Run(mainSheet(t), indexSheet(t))
	require.NoError(t, err)

	report := svc.Report(result)
	assert.Len(t, report.Preview, 1)
	assert.True(t, report.Truncated)
	assert.Len(t, report.Mask, 2, "mask is never truncated")
}
