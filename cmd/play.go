package cmd

import (
	"fmt"
	"time"

	gc "github.com/gbin/goncurses"
	"github.com/spf13/cobra"

	"github.com/chunghha/tui-sudoku/internal/board"
	"github.com/chunghha/tui-sudoku/internal/game"
	"github.com/chunghha/tui-sudoku/internal/puzzle"
)

var playDifficulty string

// Top-left corner of the drawn grid. Cell (row, col) renders its digit
// at y = gridOriginY + 1 + row + row/3, x = gridOriginX + 2 + 2*col +
// 2*(col/3); game.Session.ClickCell inverts the same mapping.
const (
	gridOriginY = 2
	gridOriginX = 2
)

const keyEscape = gc.Key(27)

// Color pairs registered with ncurses at startup.
const (
	pairTitle int16 = iota + 1
	pairEntry
	pairError
	pairGood
)

func init() {
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play Sudoku in the terminal",
		Long: `Play an interactive Sudoku game.

Keys:
  arrows / hjkl       move the cursor
  1-9                 enter a digit
  0, Del, Backspace   clear a cell
  s                   toggle the solution view
  n                   start a new game
  q, Esc              quit

Left-clicking a cell also moves the cursor there.`,
		RunE: runPlay,
	}

	playCmd.Flags().StringVarP(&playDifficulty, "difficulty", "d", "", "Skip the menu and start at this difficulty")

	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	session := game.NewSession()
	if playDifficulty != "" {
		d, err := puzzle.ParseDifficulty(playDifficulty)
		if err != nil {
			return err
		}
		session.SetDifficulty(d)
		if err := session.Start(); err != nil {
			return err
		}
	}

	stdscr, err := gc.Init()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer gc.End()

	gc.UseEnvironment(true)
	gc.Echo(false)
	gc.Raw(true)
	gc.Cursor(0)
	stdscr.Keypad(true)
	stdscr.Timeout(100)
	gc.MouseMask(gc.M_B1_PRESSED|gc.M_B1_CLICKED, nil)

	if gc.HasColors() {
		if err := gc.StartColor(); err != nil {
			return fmt.Errorf("failed to start colors: %w", err)
		}
		gc.InitPair(pairTitle, gc.C_YELLOW, gc.C_BLACK)
		gc.InitPair(pairEntry, gc.C_CYAN, gc.C_BLACK)
		gc.InitPair(pairError, gc.C_RED, gc.C_BLACK)
		gc.InitPair(pairGood, gc.C_GREEN, gc.C_BLACK)
	}

	for {
		session.Tick()
		stdscr.Erase()
		draw(stdscr, session)
		stdscr.Refresh()

		key := stdscr.GetChar()
		if key == 0 {
			// GetChar timed out; loop around for a timer refresh.
			continue
		}

		quit, err := handleKey(session, key)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// handleKey feeds one key press into the session. quit is true when
// the player asked to leave.
func handleKey(s *game.Session, key gc.Key) (quit bool, err error) {
	switch key {
	case keyEscape:
		return true, nil
	case gc.KEY_MOUSE:
		if ev := gc.GetMouse(); ev != nil {
			s.ClickCell(ev.Y, ev.X, gridOriginY, gridOriginX)
		}
		return false, nil
	case gc.KEY_ENTER, gc.Key('\n'), gc.Key('\r'):
		if s.State() == game.StateSelecting {
			return false, s.Start()
		}
		return false, nil
	case gc.KEY_BACKSPACE, gc.KEY_DC, gc.Key(127):
		s.Clear()
		return false, nil
	}

	ks := gc.KeyString(key)
	switch ks {
	case "q":
		return true, nil
	case "n":
		s.NewGame()
		return false, nil
	}

	if s.State() == game.StateSelecting {
		switch ks {
		case "up", "k":
			s.MoveSelection(-1)
		case "down", "j":
			s.MoveSelection(1)
		}
		return false, nil
	}

	switch ks {
	case "up", "k":
		s.MoveCursor(-1, 0)
	case "down", "j":
		s.MoveCursor(1, 0)
	case "left", "h":
		s.MoveCursor(0, -1)
	case "right", "l":
		s.MoveCursor(0, 1)
	case "s":
		s.ToggleSolution()
	case "0":
		s.Clear()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		s.Enter(ks[0] - '0')
	}
	return false, nil
}

func draw(w *gc.Window, s *game.Session) {
	w.AttrOn(gc.ColorPair(pairTitle) | gc.A_BOLD)
	w.MovePrint(0, gridOriginX, "SUDOKU")
	w.AttrOff(gc.ColorPair(pairTitle) | gc.A_BOLD)

	if s.State() == game.StateSelecting {
		drawMenu(w, s)
		return
	}
	drawGrid(w, s)
	drawStatus(w, s)
}

func drawMenu(w *gc.Window, s *game.Session) {
	w.MovePrint(2, gridOriginX, "Select difficulty:")

	for i, d := range puzzle.Levels() {
		line := fmt.Sprintf("  %-6s (%d clues)", d, d.Clues())
		if i == s.Selection() {
			w.AttrOn(gc.A_REVERSE)
			w.MovePrint(4+i, gridOriginX, line)
			w.AttrOff(gc.A_REVERSE)
		} else {
			w.MovePrint(4+i, gridOriginX, line)
		}
	}

	w.MovePrint(8, gridOriginX, "j/k or arrows to move, Enter to start, q to quit")
}

func drawGrid(w *gc.Window, s *game.Session) {
	border := "+-------+-------+-------+"
	for band := range 4 {
		w.MovePrint(gridOriginY+4*band, gridOriginX, border)
	}

	curRow, curCol := s.Cursor()
	for row := range board.Size {
		y := gridOriginY + 1 + row + row/board.BoxSize
		for _, off := range []int{0, 8, 16, 24} {
			w.MoveAddChar(y, gridOriginX+off, '|')
		}

		for col := range board.Size {
			x := gridOriginX + 2 + 2*col + 2*(col/board.BoxSize)
			val, filled := s.CellView(row, col)

			var attr gc.Char
			switch {
			case s.Puzzle().IsFixed(row, col):
				attr |= gc.A_BOLD
			case filled && !s.ShowingSolution() && !s.Puzzle().IsValidMove(row, col, val):
				// A placed digit that clashes with its row, column,
				// or box stays visible but turns red.
				attr |= gc.ColorPair(pairError)
			case filled:
				attr |= gc.ColorPair(pairEntry)
			}
			if s.State() == game.StateRunning && row == curRow && col == curCol {
				attr |= gc.A_REVERSE
			}

			ch := gc.Char('.')
			if filled {
				ch = gc.Char('0' + val)
			}

			w.AttrOn(attr)
			w.MoveAddChar(y, x, ch)
			w.AttrOff(attr)
		}
	}
}

func drawStatus(w *gc.Window, s *game.Session) {
	statusY := gridOriginY + 14
	w.MovePrintf(statusY, gridOriginX, "Difficulty: %s    Time: %s",
		s.Difficulty(), s.Elapsed().Round(time.Second))

	switch {
	case s.State() == game.StateSolved:
		w.AttrOn(gc.ColorPair(pairGood) | gc.A_BOLD)
		w.MovePrint(statusY+1, gridOriginX, "Congratulations! You solved it!")
		w.AttrOff(gc.ColorPair(pairGood) | gc.A_BOLD)
	case s.ShowingSolution():
		w.MovePrint(statusY+1, gridOriginX, "Showing solution (press s to hide)")
	case !s.LastMoveValid():
		w.AttrOn(gc.ColorPair(pairError) | gc.A_BOLD)
		w.MovePrint(statusY+1, gridOriginX, "Invalid move!")
		w.AttrOff(gc.ColorPair(pairError) | gc.A_BOLD)
	}

	w.MovePrint(statusY+3, gridOriginX, "hjkl/arrows move  1-9 set  0 clear  s solution  n new  q quit")
}
