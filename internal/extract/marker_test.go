package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stx-x/xlmerge/internal/table"
)

func row(values ...string) []table.Cell {
	cells := make([]table.Cell, len(values))
	for i, v := range values {
		if v == "" {
			cells[i] = table.Null
		} else {
			cells[i] = table.NewText(v)
		}
	}
	return cells
}

func TestFindMarkerRow_FirstMatchWins(t *testing.T) {
	grid := table.RawGrid{
		row("report", "2024"),
		row("", "ID-number", "name"),
		row("also ID-number here"),
	}

	idx, ok := FindMarkerRow(grid, "ID-number")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestFindMarkerRow_SubstringMatch(t *testing.T) {
	grid := table.RawGrid{row("prefix ID-number suffix")}

	idx, ok := FindMarkerRow(grid, "ID-number")
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestFindMarkerRow_CaseSensitive(t *testing.T) {
	grid := table.RawGrid{row("id-number")}

	_, ok := FindMarkerRow(grid, "ID-number")
	assert.False(t, ok)
}

func TestFindMarkerRow_BeyondScanDepth(t *testing.T) {
	grid := make(table.RawGrid, 0, MarkerScanDepth+1)
	for i := 0; i < MarkerScanDepth; i++ {
		grid = append(grid, row("filler"))
	}
	grid = append(grid, row("ID-number"))

	_, ok := FindMarkerRow(grid, "ID-number")
	assert.False(t, ok)
}

func TestFindMarkerRow_AtScanBoundary(t *testing.T) {
	grid := make(table.RawGrid, 0, MarkerScanDepth)
	for i := 0; i < MarkerScanDepth-1; i++ {
		grid = append(grid, row("filler"))
	}
	grid = append(grid, row("ID-number"))

	idx, ok := FindMarkerRow(grid, "ID-number")
	assert.True(t, ok)
	assert.Equal(t, MarkerScanDepth-1, idx)
}

func TestFindMarkerRow_NumericCellText(t *testing.T) {
	grid := table.RawGrid{{table.NewNumber(12345)}}

	idx, ok := FindMarkerRow(grid, "234")
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestFindMarkerRow_EmptyGrid(t *testing.T) {
	_, ok := FindMarkerRow(nil, "ID-number")
	assert.False(t, ok)
}

func TestFindMarkerRow_NullCellsIgnored(t *testing.T) {
	grid := table.RawGrid{{table.Null, table.Null}}

	_, ok := FindMarkerRow(grid, "")
	assert.False(t, ok)
}
