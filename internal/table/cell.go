package table

import (
	"strconv"
	"strings"
)

// CellKind discriminates the value held by a Cell.
type CellKind uint8

const (
	KindNull CellKind = iota
	KindText
	KindNumber
)

// Cell is a single spreadsheet value: absent, text, or numeric.
// The zero value is the null cell.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// Null is the absent cell.
var Null = Cell{}

// NewText returns a text cell holding s.
func NewText(s string) Cell {
	return Cell{Kind: KindText, Text: s}
}

// NewNumber returns a numeric cell holding f.
func NewNumber(f float64) Cell {
	return Cell{Kind: KindNumber, Number: f}
}

// IsNull reports whether the cell holds no value.
func (c Cell) IsNull() bool {
	return c.Kind == KindNull
}

// IsBlank reports whether the cell is null or holds only whitespace.
// Numeric cells are never blank, including zero.
func (c Cell) IsBlank() bool {
	switch c.Kind {
	case KindNull:
		return true
	case KindText:
		return strings.TrimSpace(c.Text) == ""
	default:
		return false
	}
}

// String returns the cell's text representation. Null cells render as "".
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// RawGrid is a header-less 2D region of cells as read from a worksheet.
type RawGrid [][]Cell
