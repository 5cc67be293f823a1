package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellZeroValueIsNull(t *testing.T) {
	var c Cell
	assert.True(t, c.IsNull())
	assert.True(t, c.IsBlank())
	assert.Equal(t, "", c.String())
}

func TestCellIsBlank(t *testing.T) {
	assert.True(t, Null.IsBlank())
	assert.True(t, NewText("").IsBlank())
	assert.True(t, NewText("   \t").IsBlank())
	assert.False(t, NewText("x").IsBlank())
	assert.False(t, NewText(" x ").IsBlank())

	// Numeric cells are never blank, zero included.
	assert.False(t, NewNumber(0).IsBlank())
	assert.False(t, NewNumber(12.5).IsBlank())
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "hello", NewText("hello").String())
	assert.Equal(t, "42", NewNumber(42).String())
	assert.Equal(t, "3.5", NewNumber(3.5).String())
	assert.Equal(t, "", Null.String())
}

func TestTableColumnIndex(t *testing.T) {
	tb := Table{Columns: []string{"a", "b", "c"}}
	assert.Equal(t, 1, tb.ColumnIndex("b"))
	assert.Equal(t, -1, tb.ColumnIndex("z"))
}

func TestTableEmpty(t *testing.T) {
	assert.True(t, Table{}.Empty())
	assert.True(t, Table{Columns: []string{"a"}}.Empty())
	assert.True(t, Table{Rows: [][]Cell{{NewText("x")}}}.Empty())
	assert.False(t, Table{Columns: []string{"a"}, Rows: [][]Cell{{NewText("x")}}}.Empty())
}

func TestTableDataColumns(t *testing.T) {
	tb := Table{Columns: []string{"name", ColSourceFile, "age", ColWorksheet, ColSourceFolder}}
	assert.Equal(t, []string{"name", "age"}, tb.DataColumns())
}
