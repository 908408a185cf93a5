package spreadsheet

import (
	"errors"
	"fmt"
	"io"

	"fabric-index/core/table"

	"github.com/xuri/excelize/v2"
)

// ReadTable parses the first sheet of an xlsx stream into a Table. The first
// row is the header; every later row becomes a data row of string cells.
// Rows keep their sheet order. Trailing absent cells stay absent (nil via
// Table.Cell), they are not padded here.
func ReadTable(r io.Reader) (*table.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx stream: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("no sheets found in xlsx stream")
	}
	sheet := sheets[0]

	iter, err := f.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to iterate sheet %s: %w", sheet, err)
	}
	defer iter.Close()

	var (
		header []string
		rows   [][]any
		first  = true
	)

	for iter.Next() {
		cols, err := iter.Columns()
		if err != nil {
			return nil, fmt.Errorf("failed to read row in sheet %s: %w", sheet, err)
		}

		// Skip leading empty rows before the header.
		if first && len(cols) == 0 {
			continue
		}
		if first {
			header = cols
			first = false
			continue
		}

		row := make([]any, len(cols))
		for i, c := range cols {
			row[i] = c
		}
		rows = append(rows, row)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("failed to scan sheet %s: %w", sheet, err)
	}

	if first {
		return nil, fmt.Errorf("sheet %s is empty", sheet)
	}

	return table.New(header, rows), nil
}
