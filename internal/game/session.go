package game

import (
	"time"

	"github.com/chunghha/tui-sudoku/internal/board"
	"github.com/chunghha/tui-sudoku/internal/puzzle"
)

// State tracks where a session is in its life cycle. Sessions move
// from difficulty selection into a running game, then into the solved
// state the moment the grid matches its solution. A solved session
// never runs again; a new game builds a fresh puzzle.
type State int

const (
	StateSelecting State = iota
	StateRunning
	StateSolved
)

// Session drives one interactive game: a puzzle plus the cursor,
// difficulty menu, timer, and move feedback the presentation layer
// renders. Methods outside their legal state are no-ops.
type Session struct {
	state        State
	selection    int
	puzzle       *puzzle.Grid
	row, col     int
	showSolution bool
	lastValid    bool
	startedAt    time.Time
	elapsed      time.Duration
}

// NewSession creates a session at the difficulty selection screen.
func NewSession() *Session {
	return &Session{lastValid: true}
}

// State returns the session's current state.
func (s *Session) State() State {
	return s.state
}

// Selection returns the highlighted index in the difficulty menu.
func (s *Session) Selection() int {
	return s.selection
}

// MoveSelection moves the difficulty menu highlight by delta, wrapping
// around both ends.
func (s *Session) MoveSelection(delta int) {
	if s.state != StateSelecting {
		return
	}
	n := len(puzzle.Levels())
	s.selection = ((s.selection+delta)%n + n) % n
}

// Difficulty returns the currently selected difficulty.
func (s *Session) Difficulty() puzzle.Difficulty {
	return puzzle.Levels()[s.selection]
}

// SetDifficulty moves the menu highlight to the given difficulty.
func (s *Session) SetDifficulty(d puzzle.Difficulty) {
	for i, level := range puzzle.Levels() {
		if level == d {
			s.selection = i
			return
		}
	}
}

// Start builds a puzzle at the selected difficulty and begins play.
func (s *Session) Start() error {
	if s.state != StateSelecting {
		return nil
	}

	p, err := puzzle.New(s.Difficulty())
	if err != nil {
		return err
	}

	s.puzzle = p
	s.state = StateRunning
	s.row, s.col = 0, 0
	s.showSolution = false
	s.lastValid = true
	s.startedAt = time.Now()
	s.elapsed = 0
	return nil
}

// Puzzle returns the running puzzle, or nil while selecting.
func (s *Session) Puzzle() *puzzle.Grid {
	return s.puzzle
}

// Cursor returns the cursor's row and column.
func (s *Session) Cursor() (row, col int) {
	return s.row, s.col
}

// MoveCursor moves the cursor by (dr, dc), wrapping at the grid edges.
func (s *Session) MoveCursor(dr, dc int) {
	if s.state != StateRunning {
		return
	}
	s.row = ((s.row+dr)%board.Size + board.Size) % board.Size
	s.col = ((s.col+dc)%board.Size + board.Size) % board.Size
}

// CellView returns the cell value the player should see at (row, col),
// honoring the solution toggle. ok is false for empty cells.
func (s *Session) CellView(row, col int) (uint8, bool) {
	if s.puzzle == nil {
		return 0, false
	}
	return s.puzzle.Cell(row, col, s.showSolution)
}

// Enter places num (1-9) at the cursor. The move's validity is checked
// against the grid as it stands, before the digit lands, and recorded
// for the status line; the digit is stored either way so the player
// can see and fix their mistake.
func (s *Session) Enter(num uint8) {
	if s.state != StateRunning {
		return
	}
	if num < 1 || num > 9 || s.puzzle.IsFixed(s.row, s.col) {
		s.lastValid = false
		return
	}

	s.lastValid = s.puzzle.IsValidMove(s.row, s.col, num)
	s.puzzle.SetNumber(s.row, s.col, num)

	if s.puzzle.IsSolved() {
		s.elapsed = time.Since(s.startedAt)
		s.state = StateSolved
	}
}

// Clear empties the cell at the cursor.
func (s *Session) Clear() {
	if s.state != StateRunning {
		return
	}
	s.lastValid = s.puzzle.ClearNumber(s.row, s.col)
}

// ToggleSolution flips between the player's grid and the solution.
func (s *Session) ToggleSolution() {
	if s.state == StateSelecting {
		return
	}
	s.showSolution = !s.showSolution
}

// ShowingSolution reports whether the solution view is active.
func (s *Session) ShowingSolution() bool {
	return s.showSolution
}

// LastMoveValid reports whether the most recent entry was legal.
// It starts true and resets to true on every new game.
func (s *Session) LastMoveValid() bool {
	return s.lastValid
}

// Tick refreshes the elapsed time while the game runs. Once solved,
// the clock stays frozen at the winning time.
func (s *Session) Tick() {
	if s.state == StateRunning {
		s.elapsed = time.Since(s.startedAt)
	}
}

// Elapsed returns the time played so far.
func (s *Session) Elapsed() time.Duration {
	return s.elapsed
}

// ClickCell maps a terminal click at (y, x) onto the grid drawn with
// its top-left border at (originY, originX) and moves the cursor
// there. Clicks on borders, separators, or outside the grid report
// false and leave the cursor alone.
//
// The drawn grid places the digit of cell (row, col) at
// y = originY + 1 + row + row/3, x = originX + 2 + 2*col + 2*(col/3).
func (s *Session) ClickCell(y, x, originY, originX int) bool {
	if s.state != StateRunning {
		return false
	}

	relY := y - originY
	if relY < 0 || relY > 11 || relY%4 == 0 {
		return false
	}
	row := (relY/4)*3 + relY%4 - 1

	relX := x - originX
	if relX < 2 {
		return false
	}
	band, off := (relX-2)/8, (relX-2)%8
	if band > 2 || off > 5 {
		return false
	}
	col := band*3 + off/2

	s.row, s.col = row, col
	return true
}

// NewGame abandons the current puzzle and returns to the difficulty
// menu. The previous menu selection is kept.
func (s *Session) NewGame() {
	s.state = StateSelecting
	s.puzzle = nil
	s.showSolution = false
	s.lastValid = true
	s.elapsed = 0
}
