package solver

import (
	"math/bits"

	"github.com/chunghha/tui-sudoku/internal/board"
)

// Bitmask of all nine digits; bit i represents digit i+1.
const allNine = 511

// Backtrack solves by depth-first search, always branching on the cell
// with the fewest remaining candidates (MRV) and tracking row, column,
// and box occupancy in bitmasks for O(1) candidate lookups.
type Backtrack struct{}

// Solve returns the first solution found.
func (Backtrack) Solve(g board.Grid) (board.Grid, error) {
	s, ok := newSearch(g)
	if !ok {
		return board.Grid{}, ErrInvalidPuzzle
	}
	if !s.solve() {
		return board.Grid{}, ErrNoSolution
	}
	return s.grid, nil
}

// CountSolutions counts distinct solutions, stopping at limit.
func (Backtrack) CountSolutions(g board.Grid, limit int) int {
	if limit <= 0 {
		return 0
	}
	s, ok := newSearch(g)
	if !ok {
		return 0
	}

	count := 0
	s.countAll(limit, &count)
	return count
}

// search carries the mutable solving state: the working grid plus one
// occupancy bitmask per row, column, and box.
type search struct {
	grid  board.Grid
	rows  [board.Size]uint
	cols  [board.Size]uint
	boxes [board.Size]uint
}

// newSearch seeds the occupancy masks from the given grid.
// ok is false when the grid already violates Sudoku constraints.
func newSearch(g board.Grid) (*search, bool) {
	s := &search{grid: g}

	for pos := range board.CellCount {
		val := g.Get(pos)
		if val == board.EmptyCell {
			continue
		}

		row, col, box := rowOf(pos), colOf(pos), boxOf(pos)
		mask := uint(1) << (val - 1)

		if s.rows[row]&mask != 0 || s.cols[col]&mask != 0 || s.boxes[box]&mask != 0 {
			return nil, false
		}
		s.rows[row] |= mask
		s.cols[col] |= mask
		s.boxes[box] |= mask
	}

	return s, true
}

func rowOf(pos int) int { return pos / board.Size }
func colOf(pos int) int { return pos % board.Size }
func boxOf(pos int) int { return board.BoxSize*(pos/27) + (pos%board.Size)/board.BoxSize }

// candidates returns the bitmask of digits still legal at pos.
func (s *search) candidates(pos int) uint {
	return allNine &^ s.rows[rowOf(pos)] &^ s.cols[colOf(pos)] &^ s.boxes[boxOf(pos)]
}

func (s *search) place(pos int, val uint8) {
	mask := uint(1) << (val - 1)
	s.grid.Set(pos, val)
	s.rows[rowOf(pos)] |= mask
	s.cols[colOf(pos)] |= mask
	s.boxes[boxOf(pos)] |= mask
}

func (s *search) unplace(pos int, val uint8) {
	mask := uint(1) << (val - 1)
	s.grid.Set(pos, board.EmptyCell)
	s.rows[rowOf(pos)] &^= mask
	s.cols[colOf(pos)] &^= mask
	s.boxes[boxOf(pos)] &^= mask
}

// mrv returns the empty position with the fewest candidates and its
// candidate mask. pos is InvalidPos when no empty cell remains.
// A zero mask means the grid has reached a dead end.
func (s *search) mrv() (pos int, mask uint) {
	pos = board.InvalidPos
	best := 10

	for p := range board.CellCount {
		if s.grid.Get(p) != board.EmptyCell {
			continue
		}

		m := s.candidates(p)
		if n := bits.OnesCount(m); n < best {
			pos, mask, best = p, m, n
			if n <= 1 {
				break
			}
		}
	}

	return pos, mask
}

// solve fills the grid in place, reporting success.
func (s *search) solve() bool {
	pos, mask := s.mrv()
	if pos == board.InvalidPos {
		return true
	}

	for num := uint8(1); num <= 9; num++ {
		if mask&(uint(1)<<(num-1)) == 0 {
			continue
		}
		s.place(pos, num)
		if s.solve() {
			return true
		}
		s.unplace(pos, num)
	}

	return false
}

// countAll explores every completion, stopping once *count reaches limit.
func (s *search) countAll(limit int, count *int) {
	pos, mask := s.mrv()
	if pos == board.InvalidPos {
		*count++
		return
	}

	for num := uint8(1); num <= 9; num++ {
		if *count >= limit {
			return
		}
		if mask&(uint(1)<<(num-1)) == 0 {
			continue
		}
		s.place(pos, num)
		s.countAll(limit, count)
		s.unplace(pos, num)
	}
}
