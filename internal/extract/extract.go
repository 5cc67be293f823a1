// Package extract turns raw worksheet grids into tagged tables: it
// locates the marker row, derives unique column names from it, cleans
// the region beneath it, and attaches provenance columns.
package extract

import "github.com/stx-x/xlmerge/internal/table"

// Status classifies the outcome of extracting one worksheet.
type Status string

const (
	StatusExtracted           Status = "extracted"
	StatusSkippedEmpty        Status = "skipped_empty"
	StatusSkippedNoMarker     Status = "skipped_no_marker"
	StatusSkippedCleanedEmpty Status = "skipped_cleaned_empty"
	StatusError               Status = "error"
)

// Outcome records what happened to a single worksheet.
type Outcome struct {
	Sheet   string `json:"sheet"`
	Status  Status `json:"status"`
	Reason  string `json:"reason,omitempty"`
	Matched bool   `json:"matched"`
	Rows    int    `json:"rows,omitempty"`
	Columns int    `json:"columns,omitempty"`
}

// ExtractSheet processes one worksheet grid. It returns the extracted
// tagged table, or nil together with a skip outcome when the sheet has
// no usable data.
func ExtractSheet(source, sheet, folder string, grid table.RawGrid, marker string) (*table.TaggedTable, Outcome) {
	if len(grid) == 0 {
		return nil, Outcome{Sheet: sheet, Status: StatusSkippedEmpty, Reason: "worksheet is empty"}
	}

	markerRow, ok := FindMarkerRow(grid, marker)
	if !ok {
		return nil, Outcome{Sheet: sheet, Status: StatusSkippedNoMarker, Reason: "marker not found"}
	}

	columns := BuildHeader(grid[markerRow])
	region := table.Table{
		Columns: columns,
		Rows:    normalizeRows(grid[markerRow+1:], len(columns)),
	}

	cleaned := Clean(region)
	if cleaned.Empty() {
		return nil, Outcome{
			Sheet:   sheet,
			Status:  StatusSkippedCleanedEmpty,
			Reason:  "empty after cleaning",
			Matched: true,
		}
	}

	tagged := table.TaggedTable{
		Table:  appendProvenance(cleaned, source, sheet, folder),
		Source: source,
		Sheet:  sheet,
		Folder: folder,
	}
	return &tagged, Outcome{
		Sheet:   sheet,
		Status:  StatusExtracted,
		Matched: true,
		Rows:    len(cleaned.Rows),
		Columns: len(cleaned.Columns),
	}
}

// normalizeRows pads or truncates ragged worksheet rows to width cells
// so every row lines up with the header.
func normalizeRows(rows [][]table.Cell, width int) [][]table.Cell {
	out := make([][]table.Cell, len(rows))
	for i, r := range rows {
		nr := make([]table.Cell, width)
		copy(nr, r)
		out[i] = nr
	}
	return out
}

// appendProvenance adds the provenance columns with constant values for
// every row. An existing column with a provenance name is overwritten.
func appendProvenance(t table.Table, source, sheet, folder string) table.Table {
	provenance := []struct {
		name  string
		value table.Cell
	}{
		{table.ColSourceFile, table.NewText(source)},
		{table.ColWorksheet, table.NewText(sheet)},
		{table.ColSourceFolder, folderCell(folder)},
	}

	cols := append([]string(nil), t.Columns...)
	rows := make([][]table.Cell, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = append([]table.Cell(nil), r...)
	}

	for _, p := range provenance {
		if idx := indexOf(cols, p.name); idx >= 0 {
			for i := range rows {
				rows[i][idx] = p.value
			}
			continue
		}
		cols = append(cols, p.name)
		for i := range rows {
			rows[i] = append(rows[i], p.value)
		}
	}

	return table.Table{Columns: cols, Rows: rows}
}

func indexOf(cols []string, name string) int {
	for i, c := range cols {
		if c == name {
			return i
		}
	}
	return -1
}

func folderCell(folder string) table.Cell {
	if folder == "" {
		return table.Null
	}
	return table.NewText(folder)
}
