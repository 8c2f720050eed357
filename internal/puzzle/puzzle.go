package puzzle

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/chunghha/tui-sudoku/internal/board"
	"github.com/chunghha/tui-sudoku/internal/generator"
)

// maxRemovals caps how many cells a puzzle may lose during
// construction, so at least 11 clues always remain.
const maxRemovals = 70

// Grid owns the three views of one running puzzle: the complete
// solution, the player-visible current grid, and the mask of fixed
// clue cells. All mutation goes through SetNumber and ClearNumber,
// which keep the invariant that fixed cells never change.
type Grid struct {
	solution   board.Grid
	current    board.Grid
	fixed      [board.CellCount]bool
	difficulty Difficulty
	seed       int64
}

// New creates a puzzle of the given difficulty from a time-based seed.
func New(d Difficulty) (*Grid, error) {
	return NewSeeded(d, 0)
}

// NewSeeded creates a puzzle of the given difficulty. A zero seed picks
// one from the clock; the effective seed is reported by Seed. The same
// seed and difficulty always rebuild the same puzzle.
//
// Construction fills a complete solution, copies it, then blanks a
// uniformly random selection of cells until only d.Clues() remain.
// Removal is unconditional: the reduced puzzle is not checked for a
// unique solution.
func NewSeeded(d Difficulty, seed int64) (*Grid, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	solution, err := generator.New(&generator.Options{Seed: seed}).Generate()
	if err != nil {
		return nil, fmt.Errorf("puzzle: %w", err)
	}

	p := &Grid{
		solution:   solution,
		current:    solution,
		difficulty: d,
		seed:       seed,
	}
	for pos := range p.fixed {
		p.fixed[pos] = true
	}

	rng := rand.New(rand.NewSource(seed))
	remove := min(board.CellCount-d.Clues(), maxRemovals)
	for _, pos := range rng.Perm(board.CellCount)[:remove] {
		p.current.Set(pos, board.EmptyCell)
		p.fixed[pos] = false
	}

	return p, nil
}

// Difficulty returns the difficulty the puzzle was built with.
func (p *Grid) Difficulty() Difficulty {
	return p.difficulty
}

// Seed returns the effective seed the puzzle was built from.
func (p *Grid) Seed() int64 {
	return p.seed
}

// Clues returns the number of fixed clue cells.
func (p *Grid) Clues() int {
	n := 0
	for _, f := range p.fixed {
		if f {
			n++
		}
	}
	return n
}

// Cell returns the value at (row, col) from the current grid, or from
// the solution when showSolution is set. ok is false when the chosen
// cell is empty or the coordinates are out of range.
func (p *Grid) Cell(row, col int, showSolution bool) (val uint8, ok bool) {
	pos := board.MakePos(row, col)
	if pos == board.InvalidPos {
		return 0, false
	}
	if showSolution {
		val = p.solution.Get(pos)
	} else {
		val = p.current.Get(pos)
	}
	return val, val != board.EmptyCell
}

// IsFixed reports whether the cell at (row, col) is a fixed clue.
// Out-of-range coordinates report false.
func (p *Grid) IsFixed(row, col int) bool {
	pos := board.MakePos(row, col)
	return pos != board.InvalidPos && p.fixed[pos]
}

// IsValidMove reports whether placing num at (row, col) would clash
// with the row, column, or 3x3 box of the current grid. The probed
// cell itself is excluded, so re-entering a cell's own value stays
// valid. Clearing (num 0) is always valid.
//
// The check is advisory: SetNumber stores rule-breaking digits too.
func (p *Grid) IsValidMove(row, col int, num uint8) bool {
	if num == board.EmptyCell {
		return true
	}
	pos := board.MakePos(row, col)
	if pos == board.InvalidPos || num > 9 {
		return false
	}

	for c := range board.Size {
		if c != col && p.current.At(row, c) == num {
			return false
		}
	}
	for r := range board.Size {
		if r != row && p.current.At(r, col) == num {
			return false
		}
	}

	boxRow, boxCol := row-row%board.BoxSize, col-col%board.BoxSize
	for r := boxRow; r < boxRow+board.BoxSize; r++ {
		for c := boxCol; c < boxCol+board.BoxSize; c++ {
			if (r != row || c != col) && p.current.At(r, c) == num {
				return false
			}
		}
	}

	return true
}

// SetNumber stores num at (row, col) in the current grid and reports
// whether the write happened. Writes to fixed cells, out-of-range
// coordinates, and values above 9 are rejected. num 0 clears the cell.
func (p *Grid) SetNumber(row, col int, num uint8) bool {
	pos := board.MakePos(row, col)
	if pos == board.InvalidPos || num > 9 || p.fixed[pos] {
		return false
	}
	p.current.Set(pos, num)
	return true
}

// ClearNumber empties the cell at (row, col) and reports whether the
// write happened. Fixed cells cannot be cleared.
func (p *Grid) ClearNumber(row, col int) bool {
	return p.SetNumber(row, col, board.EmptyCell)
}

// IsSolved reports whether the current grid matches the solution in
// every cell.
func (p *Grid) IsSolved() bool {
	return p.current == p.solution
}

// Current returns a copy of the player-visible grid.
func (p *Grid) Current() board.Grid {
	return p.current
}

// Solution returns a copy of the complete solution grid.
func (p *Grid) Solution() board.Grid {
	return p.solution
}
