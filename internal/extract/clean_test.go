package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stx-x/xlmerge/internal/table"
)

func TestClean_DropsNullRows(t *testing.T) {
	in := table.Table{
		Columns: []string{"a", "b"},
		Rows: [][]table.Cell{
			{table.NewText("x"), table.NewText("y")},
			{table.Null, table.Null},
			{table.NewText("z"), table.Null},
		},
	}

	got := Clean(in)
	assert.Len(t, got.Rows, 2)
	assert.Equal(t, "x", got.Rows[0][0].String())
	assert.Equal(t, "z", got.Rows[1][0].String())
}

func TestClean_DropsNullColumns(t *testing.T) {
	in := table.Table{
		Columns: []string{"a", "empty", "b"},
		Rows: [][]table.Cell{
			{table.NewText("1"), table.Null, table.NewText("2")},
			{table.NewText("3"), table.Null, table.NewText("4")},
		},
	}

	got := Clean(in)
	assert.Equal(t, []string{"a", "b"}, got.Columns)
	assert.Equal(t, "2", got.Rows[0][1].String())
}

func TestClean_DropsWhitespaceColumns(t *testing.T) {
	// The whitespace column survives the null pass but not the blank pass.
	in := table.Table{
		Columns: []string{"a", "ws"},
		Rows: [][]table.Cell{
			{table.NewText("1"), table.NewText("  ")},
			{table.NewText("2"), table.NewText("\t")},
		},
	}

	got := Clean(in)
	assert.Equal(t, []string{"a"}, got.Columns)
}

func TestClean_DropsWhitespaceRows(t *testing.T) {
	in := table.Table{
		Columns: []string{"a", "b"},
		Rows: [][]table.Cell{
			{table.NewText(" "), table.NewText("")},
			{table.NewText("keep"), table.NewText("me")},
		},
	}

	got := Clean(in)
	assert.Len(t, got.Rows, 1)
	assert.Equal(t, "keep", got.Rows[0][0].String())
}

func TestClean_NumericZeroSurvives(t *testing.T) {
	in := table.Table{
		Columns: []string{"n"},
		Rows:    [][]table.Cell{{table.NewNumber(0)}},
	}

	got := Clean(in)
	assert.False(t, got.Empty())
	assert.Equal(t, float64(0), got.Rows[0][0].Number)
}

func TestClean_AllEmptyYieldsEmptyTable(t *testing.T) {
	in := table.Table{
		Columns: []string{"a", "b"},
		Rows: [][]table.Cell{
			{table.Null, table.NewText(" ")},
			{table.NewText(""), table.Null},
		},
	}

	got := Clean(in)
	assert.True(t, got.Empty())
}

func TestClean_Idempotent(t *testing.T) {
	in := table.Table{
		Columns: []string{"a", "gone", "b"},
		Rows: [][]table.Cell{
			{table.NewText("1"), table.Null, table.NewText(" ")},
			{table.Null, table.Null, table.Null},
			{table.NewText("2"), table.NewText("  "), table.NewText("x")},
		},
	}

	once := Clean(in)
	twice := Clean(once)
	assert.Equal(t, once, twice)
}

func TestClean_ZeroRows(t *testing.T) {
	got := Clean(table.Table{Columns: []string{"a"}})
	assert.True(t, got.Empty())
}
