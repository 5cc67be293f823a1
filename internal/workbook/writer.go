package workbook

import (
	"github.com/rotisserie/eris"
	"github.com/xuri/excelize/v2"

	"github.com/stx-x/xlmerge/internal/table"
)

const outputSheet = "Sheet1"

// XLSXWriter persists tables as .xlsx workbooks.
type XLSXWriter struct{}

// Write saves the table to path as one flat sheet: a header row of
// column names followed by the data rows. Null cells are left empty.
func (XLSXWriter) Write(path string, t *table.Table) error {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	for i, name := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return eris.Wrap(err, "workbook: header cell name")
		}
		if err := f.SetCellValue(outputSheet, cell, name); err != nil {
			return eris.Wrapf(err, "workbook: write header %s", name)
		}
	}

	for r, row := range t.Rows {
		for c, v := range row {
			if v.IsNull() {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return eris.Wrap(err, "workbook: cell name")
			}
			var val any
			if v.Kind == table.KindNumber {
				val = v.Number
			} else {
				val = v.Text
			}
			if err := f.SetCellValue(outputSheet, cell, val); err != nil {
				return eris.Wrapf(err, "workbook: write cell %s", cell)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return eris.Wrapf(err, "workbook: save %s", path)
	}
	return nil
}
