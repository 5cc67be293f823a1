package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stx-x/xlmerge/internal/table"
)

const testMarker = "ID-number"

func TestExtractSheet_Basic(t *testing.T) {
	grid := table.RawGrid{
		row("quarterly export", ""),
		row("ID-number", "name"),
		row("110101", "alice"),
		row("110102", "bob"),
	}

	tt, outcome := ExtractSheet("book.xlsx", "Sheet1", "batch-a", grid, testMarker)
	require.NotNil(t, tt)

	assert.Equal(t, StatusExtracted, outcome.Status)
	assert.True(t, outcome.Matched)
	assert.Equal(t, 2, outcome.Rows)
	assert.Equal(t, 2, outcome.Columns)

	assert.Equal(t, []string{"ID-number", "name", table.ColSourceFile, table.ColWorksheet, table.ColSourceFolder}, tt.Columns)
	assert.Equal(t, "book.xlsx", tt.Source)
	assert.Equal(t, "Sheet1", tt.Sheet)
	assert.Equal(t, "batch-a", tt.Folder)

	for _, r := range tt.Rows {
		assert.Equal(t, "book.xlsx", r[2].String())
		assert.Equal(t, "Sheet1", r[3].String())
		assert.Equal(t, "batch-a", r[4].String())
	}
}

func TestExtractSheet_EmptyGrid(t *testing.T) {
	tt, outcome := ExtractSheet("book.xlsx", "Sheet1", "", nil, testMarker)
	assert.Nil(t, tt)
	assert.Equal(t, StatusSkippedEmpty, outcome.Status)
	assert.False(t, outcome.Matched)
}

func TestExtractSheet_NoMarker(t *testing.T) {
	grid := table.RawGrid{
		row("just", "some"),
		row("other", "data"),
	}

	tt, outcome := ExtractSheet("book.xlsx", "Sheet1", "", grid, testMarker)
	assert.Nil(t, tt)
	assert.Equal(t, StatusSkippedNoMarker, outcome.Status)
	assert.Equal(t, "marker not found", outcome.Reason)
}

func TestExtractSheet_EmptyAfterCleaning(t *testing.T) {
	grid := table.RawGrid{
		row("ID-number", "name"),
		row("", ""),
		{table.NewText("  "), table.NewText(" ")},
	}

	tt, outcome := ExtractSheet("book.xlsx", "Sheet1", "", grid, testMarker)
	assert.Nil(t, tt)
	assert.Equal(t, StatusSkippedCleanedEmpty, outcome.Status)
	assert.Equal(t, "empty after cleaning", outcome.Reason)
	assert.True(t, outcome.Matched)
}

func TestExtractSheet_RaggedRowsNormalized(t *testing.T) {
	grid := table.RawGrid{
		row("ID-number", "name", "city"),
		row("1"), // short row, padded with nulls
		row("2", "bob", "beijing", "overflow"),
	}

	tt, outcome := ExtractSheet("book.xlsx", "S", "", grid, testMarker)
	require.NotNil(t, tt)
	assert.Equal(t, StatusExtracted, outcome.Status)

	for _, r := range tt.Rows {
		assert.Len(t, r, len(tt.Columns))
	}
}

func TestExtractSheet_NoFolderLeavesProvenanceNull(t *testing.T) {
	grid := table.RawGrid{
		row("ID-number"),
		row("42"),
	}

	tt, _ := ExtractSheet("book.xlsx", "S", "", grid, testMarker)
	require.NotNil(t, tt)

	idx := tt.ColumnIndex(table.ColSourceFolder)
	require.GreaterOrEqual(t, idx, 0)
	assert.True(t, tt.Rows[0][idx].IsNull())
}

func TestExtractSheet_HeaderRowExcludedFromData(t *testing.T) {
	grid := table.RawGrid{
		row("ID-number", "v"),
		row("a", "b"),
	}

	tt, _ := ExtractSheet("f.xlsx", "S", "", grid, testMarker)
	require.NotNil(t, tt)
	require.Len(t, tt.Rows, 1)
	assert.Equal(t, "a", tt.Rows[0][0].String())
}
