package board

import (
	"fmt"
	"strings"
)

// Grid dimensions and special values
const (
	Size       = 9
	BoxSize    = 3
	CellCount  = 81
	EmptyCell  = 0
	InvalidPos = -1
)

// Grid is a 9x9 Sudoku grid stored row-major: index 9*row + col.
// A cell holds EmptyCell or a digit 1-9. Grid is a plain value type:
// assignment copies it and == compares cell for cell.
//
// Grid itself never enforces Sudoku rules; placement legality is the
// caller's concern. Use IsValid to check a grid after the fact.
type Grid [CellCount]uint8

// Get returns the value at the given position.
// Out-of-bounds positions read as EmptyCell.
func (g Grid) Get(pos int) uint8 {
	if !isValidPosition(pos) {
		return EmptyCell
	}
	return g[pos]
}

// At returns the value at the given row and column.
// Out-of-bounds coordinates read as EmptyCell.
func (g Grid) At(row, col int) uint8 {
	return g.Get(MakePos(row, col))
}

// Set writes val at the given position without rule checking.
// Out-of-bounds positions and values above 9 are ignored.
func (g *Grid) Set(pos int, val uint8) {
	if !isValidPosition(pos) || val > 9 {
		return
	}
	g[pos] = val
}

// SetAt writes val at the given row and column without rule checking.
func (g *Grid) SetAt(row, col int, val uint8) {
	g.Set(MakePos(row, col), val)
}

// EmptyCount returns the number of empty cells.
func (g Grid) EmptyCount() int {
	n := 0
	for _, cell := range g {
		if cell == EmptyCell {
			n++
		}
	}
	return n
}

// ClueCount returns the number of filled cells.
func (g Grid) ClueCount() int {
	return CellCount - g.EmptyCount()
}

// FirstEmpty returns the first empty position in row-major order.
// ok is false when the grid has no empty cell.
func (g Grid) FirstEmpty() (pos int, ok bool) {
	for pos := 0; pos < CellCount; pos++ {
		if g[pos] == EmptyCell {
			return pos, true
		}
	}
	return InvalidPos, false
}

// Parse builds a Grid from an 81-character string.
// Use '.' or '0' for empty cells, '1'-'9' for filled cells.
// Parse accepts rule-breaking digit placements; IsValid reports those.
func Parse(s string) (Grid, error) {
	var g Grid
	if len(s) != CellCount {
		return g, fmt.Errorf("%w: got %d", ErrBadLength, len(s))
	}

	for pos := 0; pos < CellCount; pos++ {
		ch := s[pos]
		switch ch {
		case '.', '0':
			// Empty cell, already zero
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			g[pos] = ch - '0'
		default:
			return Grid{}, fmt.Errorf("%w: %q at position %d", ErrBadCell, ch, pos)
		}
	}
	return g, nil
}

// String returns the grid as an 81-character string.
// Empty cells are represented as '.', filled cells as '1'-'9'.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)

	for _, cell := range g {
		if cell == EmptyCell {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('0' + cell)
		}
	}

	return sb.String()
}

// Format returns a human-readable grid representation with box borders.
func (g Grid) Format() string {
	var sb strings.Builder
	line := "+-------+-------+-------+\n"
	sb.WriteString(line)

	for row := 0; row < Size; row++ {
		sb.WriteString("| ")
		for col := 0; col < Size; col++ {
			val := g.At(row, col)
			if val == EmptyCell {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + val)
			}
			sb.WriteByte(' ')

			if (col+1)%BoxSize == 0 {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("\n")

		if (row+1)%BoxSize == 0 {
			sb.WriteString(line)
		}
	}

	return sb.String()
}

// Precomputed lookup tables mapping a position to its row, column, and
// 3x3 box. The box of (row, col) is 3*(row/3) + col/3, so the box
// origin sits at (row - row%3, col - col%3).
var (
	posToRow [CellCount]int
	posToCol [CellCount]int
	posToBox [CellCount]int
)

// MakePos transforms a row and column into a linear position.
// Returns InvalidPos if row and/or col are invalid.
func MakePos(row, col int) int {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return InvalidPos
	}
	return Size*row + col
}

// init initializes the position lookup tables.
func init() {
	for pos := 0; pos < CellCount; pos++ {
		posToRow[pos] = pos / Size
		posToCol[pos] = pos % Size
		posToBox[pos] = BoxSize*(pos/27) + (pos%Size)/BoxSize
	}
}
