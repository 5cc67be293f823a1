package extract

import "github.com/stx-x/xlmerge/internal/table"

// Clean strips uninformative rows and columns from an extracted region:
// fully-null rows first, then fully-null columns, then columns whose
// every cell is blank after whitespace stripping, then rows whose every
// cell is blank. Clean is idempotent.
func Clean(t table.Table) table.Table {
	rows := keepRows(t.Rows, func(r []table.Cell) bool { return !allCells(r, table.Cell.IsNull) })
	if len(rows) == 0 {
		return table.Table{}
	}

	cols, rows := keepColumns(t.Columns, rows, func(col []table.Cell) bool {
		return !allCells(col, table.Cell.IsNull)
	})
	cols, rows = keepColumns(cols, rows, func(col []table.Cell) bool {
		return !allCells(col, table.Cell.IsBlank)
	})
	if len(cols) == 0 {
		return table.Table{}
	}

	rows = keepRows(rows, func(r []table.Cell) bool { return !allCells(r, table.Cell.IsBlank) })
	if len(rows) == 0 {
		return table.Table{}
	}

	return table.Table{Columns: cols, Rows: rows}
}

func allCells(cells []table.Cell, pred func(table.Cell) bool) bool {
	for _, c := range cells {
		if !pred(c) {
			return false
		}
	}
	return true
}

func keepRows(rows [][]table.Cell, keep func([]table.Cell) bool) [][]table.Cell {
	var out [][]table.Cell
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// keepColumns rebuilds every row retaining only the columns whose cell
// slice satisfies keep.
func keepColumns(cols []string, rows [][]table.Cell, keep func([]table.Cell) bool) ([]string, [][]table.Cell) {
	var keptIdx []int
	for i := range cols {
		col := make([]table.Cell, len(rows))
		for j, r := range rows {
			col[j] = r[i]
		}
		if keep(col) {
			keptIdx = append(keptIdx, i)
		}
	}
	if len(keptIdx) == len(cols) {
		return cols, rows
	}

	newCols := make([]string, len(keptIdx))
	for k, i := range keptIdx {
		newCols[k] = cols[i]
	}
	newRows := make([][]table.Cell, len(rows))
	for j, r := range rows {
		nr := make([]table.Cell, len(keptIdx))
		for k, i := range keptIdx {
			nr[k] = r[i]
		}
		newRows[j] = nr
	}
	return newCols, newRows
}
