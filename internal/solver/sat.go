package solver

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/chunghha/tui-sudoku/internal/board"
)

// SAT solves by reduction to propositional satisfiability using the
// gini solver: one variable per (row, col, digit) triple stating that
// the digit appears at that cell.
type SAT struct{}

// satLit returns the literal for digit num (1-9) at (row, col).
func satLit(row, col int, num uint8) z.Lit {
	n := int(num-1) + col*board.Size + row*board.CellCount
	return z.Var(n + 1).Pos()
}

// Solve returns the first solution found.
func (SAT) Solve(g board.Grid) (board.Grid, error) {
	if !g.IsValid() {
		return board.Grid{}, ErrInvalidPuzzle
	}

	sat := encode(g)
	if sat.Solve() != 1 {
		return board.Grid{}, ErrNoSolution
	}
	return model(sat), nil
}

// CountSolutions counts distinct solutions, stopping at limit. Every
// model found is excluded with a blocking clause before solving again.
func (SAT) CountSolutions(g board.Grid, limit int) int {
	if limit <= 0 || !g.IsValid() {
		return 0
	}

	sat := encode(g)
	count := 0
	for count < limit {
		if sat.Solve() != 1 {
			break
		}
		count++

		// Block the model just found: some cell must differ next time.
		m := model(sat)
		for pos := range board.CellCount {
			sat.Add(satLit(rowOf(pos), colOf(pos), m.Get(pos)).Not())
		}
		sat.Add(0)
	}
	return count
}

// encode builds the one-hot Sudoku encoding: every cell holds exactly
// one digit, no digit repeats within a row, column, or box, and every
// given clue is pinned by a unit clause.
func encode(g board.Grid) *gini.Gini {
	sat := gini.New()

	// Every cell holds at least one digit...
	for row := range board.Size {
		for col := range board.Size {
			for num := uint8(1); num <= 9; num++ {
				sat.Add(satLit(row, col, num))
			}
			sat.Add(0)
		}
	}

	// ...and at most one.
	for row := range board.Size {
		for col := range board.Size {
			for a := uint8(1); a <= 9; a++ {
				for b := a + 1; b <= 9; b++ {
					sat.Add(satLit(row, col, a).Not())
					sat.Add(satLit(row, col, b).Not())
					sat.Add(0)
				}
			}
		}
	}

	// No digit twice in a row.
	for num := uint8(1); num <= 9; num++ {
		for row := range board.Size {
			for colA := range board.Size {
				for colB := colA + 1; colB < board.Size; colB++ {
					sat.Add(satLit(row, colA, num).Not())
					sat.Add(satLit(row, colB, num).Not())
					sat.Add(0)
				}
			}
		}
	}

	// No digit twice in a column.
	for num := uint8(1); num <= 9; num++ {
		for col := range board.Size {
			for rowA := range board.Size {
				for rowB := rowA + 1; rowB < board.Size; rowB++ {
					sat.Add(satLit(rowA, col, num).Not())
					sat.Add(satLit(rowB, col, num).Not())
					sat.Add(0)
				}
			}
		}
	}

	// No digit twice in a box.
	for boxRow := 0; boxRow < board.Size; boxRow += board.BoxSize {
		for boxCol := 0; boxCol < board.Size; boxCol += board.BoxSize {
			addBoxClauses(sat, boxRow, boxCol)
		}
	}

	// Pin the given clues.
	for pos := range board.CellCount {
		if val := g.Get(pos); val != board.EmptyCell {
			sat.Add(satLit(rowOf(pos), colOf(pos), val))
			sat.Add(0)
		}
	}

	return sat
}

// addBoxClauses forbids digit repeats within the 3x3 box rooted at
// (boxRow, boxCol).
func addBoxClauses(sat *gini.Gini, boxRow, boxCol int) {
	var cells [9][2]int
	n := 0
	for r := range board.BoxSize {
		for c := range board.BoxSize {
			cells[n] = [2]int{boxRow + r, boxCol + c}
			n++
		}
	}

	for num := uint8(1); num <= 9; num++ {
		for i, a := range cells {
			for _, b := range cells[i+1:] {
				sat.Add(satLit(a[0], a[1], num).Not())
				sat.Add(satLit(b[0], b[1], num).Not())
				sat.Add(0)
			}
		}
	}
}

// model extracts the solved grid from a satisfied solver.
func model(sat *gini.Gini) board.Grid {
	var g board.Grid
	for pos := range board.CellCount {
		row, col := rowOf(pos), colOf(pos)
		for num := uint8(1); num <= 9; num++ {
			if sat.Value(satLit(row, col, num)) {
				g[pos] = num
				break
			}
		}
	}
	return g
}
