package spreadsheet

import (
	"fmt"
	"io"

	"fabric-index/core/table"

	"github.com/xuri/excelize/v2"
)

// highlightColor is the fill applied to resolved cells, matching the
// RGB(255, 255, 0) marker of the legacy sheets.
const highlightColor = "FFFF00"

// numericFormat is the display format applied to the coerced numeric column.
const numericFormat = "#,##0.00"

// ExportOptions controls the annotated xlsx output.
type ExportOptions struct {
	// SheetName is the name of the single output sheet.
	SheetName string

	// HighlightCol is the zero-based column whose cell is filled yellow on
	// rows where the mask is true.
	HighlightCol int

	// NumericCol is the zero-based column given the numeric display format.
	// Negative disables the format layer (coercion did not run).
	NumericCol int
}

// WriteAnnotated serializes the result table to w as a single-sheet xlsx
// artifact. The header row comes first, data rows follow in table order.
// For every row where mask[i] is true, the cell at HighlightCol is written
// with a yellow background; a nil value destined for a highlighted cell is
// written as an empty string so the artifact never carries a null marker.
// Errors from excelize propagate; nothing is written to w on failure.
func WriteAnnotated(w io.Writer, t *table.Table, mask []bool, opts ExportOptions) error {
	sheet := opts.SheetName
	if sheet == "" {
		sheet = "Result"
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	// excelize seeds new files with "Sheet1"; rename rather than juggle
	// a second sheet index.
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet %s: %w", sheet, err)
	}

	header := make([]any, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	highlight, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{highlightColor}},
	})
	if err != nil {
		return fmt.Errorf("failed to create highlight style: %w", err)
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to resolve row %d: %w", i, err)
		}
		out := make([]any, len(row))
		copy(out, row)
		if i < len(mask) && mask[i] && opts.HighlightCol < len(out) && out[opts.HighlightCol] == nil {
			out[opts.HighlightCol] = ""
		}
		if err := f.SetSheetRow(sheet, cell, &out); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}

		if i < len(mask) && mask[i] {
			hc, err := excelize.CoordinatesToCellName(opts.HighlightCol+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to resolve highlight cell on row %d: %w", i, err)
			}
			if err := f.SetCellStyle(sheet, hc, hc, highlight); err != nil {
				return fmt.Errorf("failed to highlight row %d: %w", i, err)
			}
		}
	}

	if opts.NumericCol >= 0 && t.Len() > 0 {
		if err := applyNumericFormat(f, sheet, opts.NumericCol, t.Len()); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to serialize xlsx artifact: %w", err)
	}
	return nil
}

// applyNumericFormat styles the data cells of one column with the fixed
// two-decimal, thousands-separated format. The header cell is left alone.
func applyNumericFormat(f *excelize.File, sheet string, col, rows int) error {
	format := numericFormat
	style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &format})
	if err != nil {
		return fmt.Errorf("failed to create numeric style: %w", err)
	}

	top, err := excelize.CoordinatesToCellName(col+1, 2)
	if err != nil {
		return fmt.Errorf("failed to resolve numeric column: %w", err)
	}
	bottom, err := excelize.CoordinatesToCellName(col+1, rows+1)
	if err != nil {
		return fmt.Errorf("failed to resolve numeric column: %w", err)
	}
	if err := f.SetCellStyle(sheet, top, bottom, style); err != nil {
		return fmt.Errorf("failed to format numeric column: %w", err)
	}
	return nil
}
