package solver

import (
	"errors"
	"fmt"

	"github.com/chunghha/tui-sudoku/internal/board"
)

var (
	ErrNoSolution    = errors.New("puzzle has no solution")
	ErrInvalidPuzzle = errors.New("puzzle violates Sudoku constraints")
	ErrUnknownSolver = errors.New("unknown solver backend")
)

// Solver finds and counts the solutions of a puzzle grid.
// Implementations never modify the grid they are given; they are
// analysis tools and play no part in puzzle construction.
type Solver interface {
	// Solve returns a completed grid, ErrInvalidPuzzle when the input
	// already breaks Sudoku constraints, or ErrNoSolution.
	Solve(g board.Grid) (board.Grid, error)

	// CountSolutions counts distinct solutions, stopping at limit.
	// Invalid grids count as zero.
	CountSolutions(g board.Grid, limit int) int
}

// ByName returns the solver backend with the given name,
// either "backtrack" or "sat".
func ByName(name string) (Solver, error) {
	switch name {
	case "backtrack":
		return Backtrack{}, nil
	case "sat":
		return SAT{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, name)
	}
}
