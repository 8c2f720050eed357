package board

import "errors"

var (
	ErrBadLength = errors.New("grid string must be exactly 81 characters")
	ErrBadCell   = errors.New("invalid cell character")
)

// IsValid reports whether the grid satisfies Sudoku constraints:
// no digit appears twice in any row, column, or 3x3 box.
// Empty cells are ignored.
func (g Grid) IsValid() bool {
	var rowCheck, colCheck, boxCheck [Size]uint

	for pos := 0; pos < CellCount; pos++ {
		val := g[pos]
		if val == EmptyCell {
			continue
		}

		row, col, box := posToRow[pos], posToCol[pos], posToBox[pos]
		mask := uint(1) << (val - 1)

		// Check for duplicates in row, column, or box
		if rowCheck[row]&mask != 0 ||
			colCheck[col]&mask != 0 ||
			boxCheck[box]&mask != 0 {
			return false
		}

		rowCheck[row] |= mask
		colCheck[col] |= mask
		boxCheck[box] |= mask
	}

	return true
}

// IsComplete reports whether the grid is fully filled and valid,
// i.e. every row, column, and box holds each digit exactly once.
func (g Grid) IsComplete() bool {
	return g.EmptyCount() == 0 && g.IsValid()
}

// isValidPosition reports whether a given position is in bounds of a Sudoku grid.
func isValidPosition(pos int) bool {
	return pos >= 0 && pos < CellCount
}
