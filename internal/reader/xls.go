package reader

import (
	"bytes"
	"fmt"

	"github.com/extrame/xls"

	"github.com/avicente/tabload/pkg/tabload"
)

// XLSReader parses legacy BIFF spreadsheets (.xls). Only the first sheet
// is read.
type XLSReader struct{}

// NewXLSReader creates an XLS reader.
func NewXLSReader() *XLSReader {
	return &XLSReader{}
}

func (r *XLSReader) Read(content []byte) (*tabload.Table, error) {
	wb, err := xls.OpenReader(bytes.NewReader(content), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	header := sheet.Row(0)
	if header == nil {
		return nil, fmt.Errorf("sheet %q is empty, no header row", sheet.Name)
	}
	width := header.LastCol()

	cells := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		rec := make([]string, width)
		if row != nil {
			for j := 0; j < width; j++ {
				rec[j] = row.Col(j)
			}
		}
		cells = append(cells, rec)
	}

	return tableFromCells(cells)
}

// Verify XLSReader implements the interface at compile time
var _ tabload.TableReader = (*XLSReader)(nil)
