package reader

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/avicente/tabload/pkg/tabload"
)

// XLSXReader parses Office Open XML spreadsheets. Only the first sheet is
// read. Cell values come back as formatted text, so leading zeros entered
// as text are preserved.
type XLSXReader struct{}

// NewXLSXReader creates an XLSX reader.
func NewXLSXReader() *XLSXReader {
	return &XLSXReader{}
}

func (r *XLSXReader) Read(content []byte) (*tabload.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("sheet %q is empty, no header row", sheets[0])
	}

	return tableFromCells(cells)
}

// tableFromCells assembles a Table from raw sheet rows. Spreadsheet
// libraries drop trailing empty cells, so short rows are padded back to
// header width; a row wider than the header has no column to land in and
// is an error.
func tableFromCells(cells [][]string) (*tabload.Table, error) {
	headers := cells[0]
	width := len(headers)

	rows := make([][]string, 0, len(cells)-1)
	for i, rec := range cells[1:] {
		if len(rec) > width {
			return nil, fmt.Errorf("row %d has %d cells, header has %d", i+2, len(rec), width)
		}
		row := make([]string, width)
		copy(row, rec)
		rows = append(rows, row)
	}

	return &tabload.Table{Headers: headers, Rows: rows}, nil
}

// Verify XLSXReader implements the interface at compile time
var _ tabload.TableReader = (*XLSXReader)(nil)
