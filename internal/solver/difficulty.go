package solver

import (
	"github.com/chunghha/tui-sudoku/internal/board"
)

// scoreBudget bounds the number of search nodes Score may visit, so
// scoring sparse grids terminates in reasonable time.
const scoreBudget = 1 << 20

// Score returns an integer measure of a grid's difficulty: the total
// weight of the backtracking branch tree, where every placement tried
// adds one. Forced chains score low; grids that demand guessing score
// high. A solved or invalid grid scores 0. Grids too open to explore
// fully are scored by the portion visited within the budget.
func Score(g board.Grid) int {
	s, ok := newSearch(g)
	if !ok {
		return 0
	}
	budget := scoreBudget
	return s.traceDifficulty(&budget)
}

// traceDifficulty implements the measure of a grid's difficulty.
func (s *search) traceDifficulty(budget *int) int {
	if *budget <= 0 {
		return 0
	}
	*budget--

	pos, mask := s.mrv()
	if pos == board.InvalidPos || mask == 0 {
		// Solved, or a dead end where nothing more can be placed.
		return 0
	}

	score := 0
	for num := uint8(1); num <= 9; num++ {
		if mask&(uint(1)<<(num-1)) == 0 {
			continue
		}
		s.place(pos, num)
		score += 1 + s.traceDifficulty(budget)
		s.unplace(pos, num)
	}
	return score
}
