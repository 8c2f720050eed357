package game

import (
	"testing"
	"time"

	"github.com/chunghha/tui-sudoku/internal/board"
	"github.com/chunghha/tui-sudoku/internal/puzzle"
)

// startSession returns a running session at the given difficulty.
func startSession(t *testing.T, d puzzle.Difficulty) *Session {
	t.Helper()
	s := NewSession()
	s.SetDifficulty(d)
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return s
}

// moveTo walks the cursor to (row, col) using relative moves.
func moveTo(s *Session, row, col int) {
	r, c := s.Cursor()
	s.MoveCursor(row-r, col-c)
}

// findCell returns the first cell for which match reports true.
func findCell(t *testing.T, s *Session, match func(row, col int) bool) (row, col int) {
	t.Helper()
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if match(r, c) {
				return r, c
			}
		}
	}
	t.Fatal("no matching cell found")
	return 0, 0
}

func TestNewSession(t *testing.T) {
	s := NewSession()
	if s.State() != StateSelecting {
		t.Errorf("State() = %v, want StateSelecting", s.State())
	}
	if s.Puzzle() != nil {
		t.Error("Puzzle() is non-nil before Start")
	}
	if !s.LastMoveValid() {
		t.Error("LastMoveValid() = false on a fresh session")
	}
	if s.Elapsed() != 0 {
		t.Errorf("Elapsed() = %v, want 0", s.Elapsed())
	}
	if _, ok := s.CellView(0, 0); ok {
		t.Error("CellView reports a value without a puzzle")
	}
}

func TestMoveSelectionWraps(t *testing.T) {
	s := NewSession()
	n := len(puzzle.Levels())

	s.MoveSelection(-1)
	if got := s.Selection(); got != n-1 {
		t.Errorf("Selection() = %d after moving up from 0, want %d", got, n-1)
	}
	s.MoveSelection(1)
	if got := s.Selection(); got != 0 {
		t.Errorf("Selection() = %d after moving back down, want 0", got)
	}

	s.MoveSelection(1)
	if got := s.Difficulty(); got != puzzle.Medium {
		t.Errorf("Difficulty() = %v, want Medium", got)
	}

	s.SetDifficulty(puzzle.Hard)
	if got := s.Selection(); got != 2 {
		t.Errorf("Selection() = %d after SetDifficulty(Hard), want 2", got)
	}
}

func TestMoveSelectionOnlyWhileSelecting(t *testing.T) {
	s := startSession(t, puzzle.Easy)
	s.MoveSelection(1)
	if got := s.Difficulty(); got != puzzle.Easy {
		t.Errorf("Difficulty() = %v, selection moved while running", got)
	}
}

func TestStart(t *testing.T) {
	s := startSession(t, puzzle.Hard)

	if s.State() != StateRunning {
		t.Fatalf("State() = %v, want StateRunning", s.State())
	}
	p := s.Puzzle()
	if p == nil {
		t.Fatal("Puzzle() is nil after Start")
	}
	if got := p.Clues(); got != puzzle.Hard.Clues() {
		t.Errorf("Clues() = %d, want %d", got, puzzle.Hard.Clues())
	}
	if r, c := s.Cursor(); r != 0 || c != 0 {
		t.Errorf("Cursor() = (%d, %d), want (0, 0)", r, c)
	}

	// Start outside the menu is a no-op and keeps the puzzle.
	if err := s.Start(); err != nil {
		t.Fatalf("second Start failed: %v", err)
	}
	if s.Puzzle() != p {
		t.Error("second Start replaced the running puzzle")
	}
}

func TestMoveCursorWraps(t *testing.T) {
	s := startSession(t, puzzle.Medium)

	tests := []struct {
		dr, dc           int
		wantRow, wantCol int
	}{
		{-1, 0, 8, 0},
		{1, -1, 0, 8},
		{0, 1, 0, 0},
		{3, 4, 3, 4},
		{9, 9, 3, 4},
		{-4, -5, 8, 8},
	}

	for _, tt := range tests {
		s.MoveCursor(tt.dr, tt.dc)
		if r, c := s.Cursor(); r != tt.wantRow || c != tt.wantCol {
			t.Fatalf("Cursor() = (%d, %d) after MoveCursor(%d, %d), want (%d, %d)",
				r, c, tt.dr, tt.dc, tt.wantRow, tt.wantCol)
		}
	}
}

func TestEnterOnFixedCell(t *testing.T) {
	s := startSession(t, puzzle.Easy)
	p := s.Puzzle()

	fr, fc := findCell(t, s, p.IsFixed)
	before, _ := s.CellView(fr, fc)

	moveTo(s, fr, fc)
	s.Enter(5)

	if s.LastMoveValid() {
		t.Error("LastMoveValid() = true after entering on a fixed cell")
	}
	if after, _ := s.CellView(fr, fc); after != before {
		t.Errorf("fixed cell changed from %d to %d", before, after)
	}
	if s.State() != StateRunning {
		t.Errorf("State() = %v, want StateRunning", s.State())
	}
}

func TestEnterRejectsBadDigits(t *testing.T) {
	s := startSession(t, puzzle.Easy)
	er, ec := findCell(t, s, func(r, c int) bool {
		_, ok := s.CellView(r, c)
		return !ok
	})
	moveTo(s, er, ec)

	s.Enter(0)
	if s.LastMoveValid() {
		t.Error("Enter(0) left LastMoveValid true")
	}
	s.Enter(10)
	if s.LastMoveValid() {
		t.Error("Enter(10) left LastMoveValid true")
	}
	if _, ok := s.CellView(er, ec); ok {
		t.Error("rejected digit was stored")
	}
}

func TestEnterRecordsValidityBeforeStoring(t *testing.T) {
	s := startSession(t, puzzle.Easy)
	p := s.Puzzle()

	// Find an empty cell whose row already holds some digit.
	er, ec, clash := 0, 0, uint8(0)
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if _, ok := s.CellView(r, c); ok {
				continue
			}
			for cc := 0; cc < board.Size; cc++ {
				if cc == c {
					continue
				}
				if val, ok := s.CellView(r, cc); ok {
					er, ec, clash = r, c, val
					break
				}
			}
			if clash != 0 {
				break
			}
		}
		if clash != 0 {
			break
		}
	}
	if clash == 0 {
		t.Fatal("no empty cell with a row conflict available")
	}

	moveTo(s, er, ec)
	s.Enter(clash)
	if s.LastMoveValid() {
		t.Error("LastMoveValid() = true for a conflicting digit")
	}
	if val, ok := s.CellView(er, ec); !ok || val != clash {
		t.Errorf("CellView = (%d, %v), conflicting digit must still be stored", val, ok)
	}

	// Entering the cell's correct digit over the mistake is valid again:
	// the probed cell itself never counts as a conflict.
	want, _ := p.Cell(er, ec, true)
	s.Enter(want)
	if !s.LastMoveValid() {
		t.Errorf("LastMoveValid() = false after entering the solution digit %d", want)
	}
}

func TestClear(t *testing.T) {
	s := startSession(t, puzzle.Medium)
	p := s.Puzzle()

	er, ec := findCell(t, s, func(r, c int) bool {
		_, ok := s.CellView(r, c)
		return !ok
	})
	moveTo(s, er, ec)
	want, _ := p.Cell(er, ec, true)
	s.Enter(want)
	if _, ok := s.CellView(er, ec); !ok {
		t.Fatal("digit was not stored")
	}

	s.Clear()
	if _, ok := s.CellView(er, ec); ok {
		t.Error("cell still filled after Clear")
	}
	if !s.LastMoveValid() {
		t.Error("LastMoveValid() = false after clearing a player cell")
	}

	fr, fc := findCell(t, s, p.IsFixed)
	moveTo(s, fr, fc)
	s.Clear()
	if s.LastMoveValid() {
		t.Error("LastMoveValid() = true after trying to clear a fixed cell")
	}
	if _, ok := s.CellView(fr, fc); !ok {
		t.Error("fixed cell lost its digit")
	}
}

func TestToggleSolution(t *testing.T) {
	s := NewSession()

	// No effect while selecting.
	s.ToggleSolution()
	if s.ShowingSolution() {
		t.Error("ShowingSolution() = true while selecting")
	}

	s.SetDifficulty(puzzle.Hard)
	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	er, ec := findCell(t, s, func(r, c int) bool {
		_, ok := s.CellView(r, c)
		return !ok
	})

	s.ToggleSolution()
	if !s.ShowingSolution() {
		t.Fatal("ShowingSolution() = false after toggle")
	}
	if val, ok := s.CellView(er, ec); !ok || val < 1 || val > 9 {
		t.Errorf("CellView = (%d, %v) with solution shown, want a digit", val, ok)
	}

	s.ToggleSolution()
	if _, ok := s.CellView(er, ec); ok {
		t.Error("CellView still shows the solution after toggling back")
	}
}

func TestSolveTransition(t *testing.T) {
	s := startSession(t, puzzle.Easy)
	p := s.Puzzle()

	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if p.IsFixed(r, c) {
				continue
			}
			want, _ := p.Cell(r, c, true)
			moveTo(s, r, c)
			s.Enter(want)
			if !s.LastMoveValid() {
				t.Fatalf("correct digit %d at (%d, %d) was flagged invalid", want, r, c)
			}
		}
	}

	if s.State() != StateSolved {
		t.Fatalf("State() = %v after completing the grid, want StateSolved", s.State())
	}
	if s.Elapsed() <= 0 {
		t.Errorf("Elapsed() = %v after solving, want > 0", s.Elapsed())
	}

	// The clock freezes at the winning time.
	frozen := s.Elapsed()
	time.Sleep(2 * time.Millisecond)
	s.Tick()
	if s.Elapsed() != frozen {
		t.Errorf("Elapsed() = %v after Tick on a solved game, want %v", s.Elapsed(), frozen)
	}

	// Entries and cursor moves stop once solved.
	r, c := s.Cursor()
	s.MoveCursor(1, 1)
	if nr, nc := s.Cursor(); nr != r || nc != c {
		t.Error("cursor moved on a solved game")
	}
	s.Enter(1)
	if s.State() != StateSolved || !p.IsSolved() {
		t.Error("Enter modified a solved game")
	}
}

func TestTick(t *testing.T) {
	s := startSession(t, puzzle.Medium)
	time.Sleep(2 * time.Millisecond)
	s.Tick()
	if s.Elapsed() <= 0 {
		t.Errorf("Elapsed() = %v after Tick, want > 0", s.Elapsed())
	}
}

func TestClickCell(t *testing.T) {
	tests := []struct {
		name             string
		y, x             int
		wantRow, wantCol int
		wantOK           bool
	}{
		{"first cell", 1, 2, 0, 0, true},
		{"second column", 2, 4, 1, 1, true},
		{"third column", 3, 6, 2, 2, true},
		{"second band", 5, 10, 3, 3, true},
		{"center", 7, 14, 5, 5, true},
		{"third band", 9, 18, 6, 6, true},
		{"last cell", 11, 22, 8, 8, true},
		{"space after digit", 1, 3, 0, 0, true},
		{"space after last digit", 1, 23, 0, 8, true},
		{"top border", 0, 2, 0, 0, false},
		{"band separator", 4, 2, 0, 0, false},
		{"second separator", 8, 2, 0, 0, false},
		{"bottom border", 12, 2, 0, 0, false},
		{"below grid", 13, 2, 0, 0, false},
		{"above grid", -1, 2, 0, 0, false},
		{"left border", 1, 0, 0, 0, false},
		{"left padding", 1, 1, 0, 0, false},
		{"first bar", 1, 8, 0, 0, false},
		{"bar padding", 1, 9, 0, 0, false},
		{"second bar", 1, 16, 0, 0, false},
		{"right border", 1, 24, 0, 0, false},
		{"right of grid", 1, 26, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := startSession(t, puzzle.Medium)
			moveTo(s, 4, 4)

			ok := s.ClickCell(tt.y, tt.x, 0, 0)
			if ok != tt.wantOK {
				t.Fatalf("ClickCell(%d, %d) = %v, want %v", tt.y, tt.x, ok, tt.wantOK)
			}

			r, c := s.Cursor()
			if tt.wantOK {
				if r != tt.wantRow || c != tt.wantCol {
					t.Errorf("Cursor() = (%d, %d), want (%d, %d)", r, c, tt.wantRow, tt.wantCol)
				}
			} else if r != 4 || c != 4 {
				t.Errorf("Cursor() = (%d, %d), rejected click moved the cursor", r, c)
			}
		})
	}
}

func TestClickCellHonorsOrigin(t *testing.T) {
	s := startSession(t, puzzle.Medium)

	if !s.ClickCell(7, 15, 2, 3) {
		t.Fatal("ClickCell with a shifted origin missed a cell")
	}
	if r, c := s.Cursor(); r != 3 || c != 4 {
		t.Errorf("Cursor() = (%d, %d), want (3, 4)", r, c)
	}
}

func TestClickCellOnlyWhileRunning(t *testing.T) {
	s := NewSession()
	if s.ClickCell(1, 2, 0, 0) {
		t.Error("ClickCell = true while selecting")
	}
}

func TestNewGame(t *testing.T) {
	s := startSession(t, puzzle.Hard)
	s.ToggleSolution()
	s.Enter(1)
	s.NewGame()

	if s.State() != StateSelecting {
		t.Errorf("State() = %v, want StateSelecting", s.State())
	}
	if s.Puzzle() != nil {
		t.Error("Puzzle() survives NewGame")
	}
	if s.ShowingSolution() {
		t.Error("ShowingSolution() = true after NewGame")
	}
	if !s.LastMoveValid() {
		t.Error("LastMoveValid() = false after NewGame")
	}
	if s.Elapsed() != 0 {
		t.Errorf("Elapsed() = %v, want 0", s.Elapsed())
	}
	if got := s.Difficulty(); got != puzzle.Hard {
		t.Errorf("Difficulty() = %v, selection not kept", got)
	}
}
