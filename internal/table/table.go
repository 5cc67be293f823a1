package table

// Provenance column names appended to every extracted table, in the
// order they appear at the tail of the unified schema.
const (
	ColSourceFile   = "source_file"
	ColWorksheet    = "worksheet"
	ColSourceFolder = "source_folder"
)

// ProvenanceColumns returns the fixed provenance column order.
func ProvenanceColumns() []string {
	return []string{ColSourceFile, ColWorksheet, ColSourceFolder}
}

// IsProvenance reports whether name is one of the provenance columns.
func IsProvenance(name string) bool {
	return name == ColSourceFile || name == ColWorksheet || name == ColSourceFolder
}

// Table is an ordered set of named columns over an ordered set of rows.
// Every row has exactly len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]Cell
}

// Empty reports whether the table has no rows or no columns.
func (t Table) Empty() bool {
	return len(t.Rows) == 0 || len(t.Columns) == 0
}

// ColumnIndex returns the position of the named column, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// DataColumns returns the column names excluding provenance columns.
func (t Table) DataColumns() []string {
	var cols []string
	for _, c := range t.Columns {
		if !IsProvenance(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// TaggedTable is an extracted, cleaned data region together with the
// provenance triple shared by all of its rows.
type TaggedTable struct {
	Table

	Source string // workbook file name
	Sheet  string // worksheet name
	Folder string // containing folder name, "" when not applicable
}
