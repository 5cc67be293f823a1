// Package workbook is the spreadsheet I/O boundary: it reads whole
// workbooks into raw cell grids and persists the merged table as a
// single flat sheet.
package workbook

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/stx-x/xlmerge/internal/table"
)

// Sheet is one worksheet read from a workbook. Err is set when the
// sheet could not be converted; the rest of the workbook is still
// usable. The tealeg reader fails whole-file at OpenFile and never
// sets it, but the pipeline honors it so readers with per-sheet
// decode failures can slot in behind the Reader interface.
type Sheet struct {
	Name string
	Grid table.RawGrid
	Err  error
}

// Workbook holds every worksheet of one file, in workbook order.
type Workbook struct {
	Sheets []Sheet
}

// XLSXReader reads .xlsx workbooks.
type XLSXReader struct{}

// Read opens the workbook at path and converts every worksheet into a
// raw grid. Worksheets are returned in file order.
func (XLSXReader) Read(path string) (*Workbook, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "workbook: open %s", path)
	}

	wb := &Workbook{Sheets: make([]Sheet, 0, len(f.Sheets))}
	for _, sheet := range f.Sheets {
		wb.Sheets = append(wb.Sheets, Sheet{
			Name: sheet.Name,
			Grid: sheetGrid(sheet),
		})
	}
	return wb, nil
}

func sheetGrid(sheet *xlsx.Sheet) table.RawGrid {
	grid := make(table.RawGrid, len(sheet.Rows))
	for i, row := range sheet.Rows {
		cells := make([]table.Cell, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cellValue(cell)
		}
		grid[i] = cells
	}
	return grid
}

func cellValue(c *xlsx.Cell) table.Cell {
	if c.Type() == xlsx.CellTypeNumeric {
		if f, err := c.Float(); err == nil {
			return table.NewNumber(f)
		}
	}
	s := c.String()
	if s == "" {
		return table.Null
	}
	return table.NewText(s)
}
