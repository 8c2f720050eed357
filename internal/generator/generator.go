package generator

import (
	"errors"
	"math/rand"
	"time"

	"github.com/chunghha/tui-sudoku/internal/board"
)

// ErrGenerationFailed reports that the backtracking fill could not
// complete a grid. Filling an empty grid always succeeds, so callers
// treat this as an internal failure rather than a recoverable state.
var ErrGenerationFailed = errors.New("failed to generate complete grid")

// Generator fills Sudoku grids by randomized backtracking.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator with the given options.
// nil options or a zero seed fall back to a time-based seed.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions()
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate produces a complete grid satisfying all Sudoku constraints:
// every row, column, and 3x3 box of the result holds each digit
// exactly once.
func (g *Generator) Generate() (board.Grid, error) {
	var grid board.Grid
	if !g.fill(&grid) {
		return board.Grid{}, ErrGenerationFailed
	}
	return grid, nil
}

// fill completes the grid by depth-first search from the first empty
// cell in row-major order. Candidates are tried in a fresh random
// order at every cell. Recursion depth is bounded by the number of
// empty cells, one frame each.
func (g *Generator) fill(grid *board.Grid) bool {
	pos, ok := grid.FirstEmpty()
	if !ok {
		return true
	}

	for _, n := range g.rng.Perm(board.Size) {
		num := uint8(n + 1)
		if !safe(grid, pos, num) {
			continue
		}

		grid.Set(pos, num)
		if g.fill(grid) {
			return true
		}
		grid.Set(pos, board.EmptyCell)
	}

	return false
}

// safe reports whether num can be placed at pos without clashing with
// its row, column, or 3x3 box. The probed cell is empty while filling,
// so the scan needs no self-exclusion.
func safe(grid *board.Grid, pos int, num uint8) bool {
	row, col := pos/board.Size, pos%board.Size

	for c := 0; c < board.Size; c++ {
		if grid.At(row, c) == num {
			return false
		}
	}
	for r := 0; r < board.Size; r++ {
		if grid.At(r, col) == num {
			return false
		}
	}

	boxRow, boxCol := row-row%board.BoxSize, col-col%board.BoxSize
	for r := boxRow; r < boxRow+board.BoxSize; r++ {
		for c := boxCol; c < boxCol+board.BoxSize; c++ {
			if grid.At(r, c) == num {
				return false
			}
		}
	}

	return true
}
