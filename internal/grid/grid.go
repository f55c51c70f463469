package grid

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// Grid is an in-memory copy of one worksheet.
// Row 1 holds the headers, rows 2..MaxRow hold the responses.
// Cells beyond a row's stored length are absent and read as "".
type Grid struct {
	Sheet string
	rows  [][]string
	width int
}

// Column is one entry of a column selection: a display label and
// the 1-based position it refers to.
type Column struct {
	Label string `mapstructure:"label"`
	Index int    `mapstructure:"index"`
}

// New builds a Grid from raw rows. The rows are used as-is.
func New(rows [][]string) *Grid {
	g := &Grid{rows: rows}
	for _, row := range rows {
		if len(row) > g.width {
			g.width = len(row)
		}
	}
	return g
}

// MaxRow returns the number of rows including the header row.
func (g *Grid) MaxRow() int {
	return len(g.rows)
}

// MaxColumn returns the width of the widest row.
func (g *Grid) MaxColumn() int {
	return g.width
}

// DataRows returns the number of rows below the header.
func (g *Grid) DataRows() int {
	if len(g.rows) == 0 {
		return 0
	}
	return len(g.rows) - 1
}

// Cell returns the text at the 1-based (row, col) position.
func (g *Grid) Cell(row, col int) string {
	if row < 1 || row > len(g.rows) {
		return ""
	}
	cells := g.rows[row-1]
	if col < 1 || col > len(cells) {
		return ""
	}
	return cells[col-1]
}

// Header returns the header text of the 1-based column.
func (g *Grid) Header(col int) string {
	return g.Cell(1, col)
}

// Label converts a 1-based column index to its alphabetic name
// (1 -> A, 26 -> Z, 27 -> AA).
func Label(index int) (string, error) {
	return excelize.ColumnNumberToName(index)
}

// Present reports whether a cell value has any non-whitespace content.
func Present(value string) bool {
	return strings.TrimSpace(value) != ""
}
