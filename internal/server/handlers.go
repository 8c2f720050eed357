package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/chunghha/tui-sudoku/internal/board"
	"github.com/chunghha/tui-sudoku/internal/puzzle"
	"github.com/chunghha/tui-sudoku/internal/solver"
)

type puzzleRequest struct {
	Difficulty string `json:"difficulty"`
	Seed       int64  `json:"seed,omitempty"`
}

// puzzleResponse describes a freshly built puzzle. The solution is
// withheld; clients solve or ask /ws/play to judge their moves.
type puzzleResponse struct {
	Board      string `json:"board"`
	Fixed      string `json:"fixed"`
	Clues      int    `json:"clues"`
	Difficulty string `json:"difficulty"`
	Seed       int64  `json:"seed"`
	DurationMs int64  `json:"durationMs"`
}

type rateRequest struct {
	Board  string `json:"board"`
	Solver string `json:"solver,omitempty"`
	Score  bool   `json:"score,omitempty"`
}

type rateResponse struct {
	Clues    int  `json:"clues"`
	Valid    bool `json:"valid"`
	Solvable bool `json:"solvable"`
	Unique   bool `json:"unique"`
	Score    int  `json:"score,omitempty"`
}

func (s *Server) handlePuzzle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req puzzleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "malformed request: "+err.Error())
		return
	}

	d := puzzle.Medium
	if req.Difficulty != "" {
		var err error
		if d, err = puzzle.ParseDifficulty(req.Difficulty); err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	start := time.Now()
	p, err := puzzle.NewSeeded(d, req.Seed)
	if err != nil {
		s.log.WithError(err).Error("puzzle generation failed")
		s.writeError(w, http.StatusInternalServerError, "generation failed")
		return
	}

	s.writeJSON(w, http.StatusOK, puzzleResponse{
		Board:      p.Current().String(),
		Fixed:      fixedMask(p),
		Clues:      p.Clues(),
		Difficulty: p.Difficulty().String(),
		Seed:       p.Seed(),
		DurationMs: time.Since(start).Milliseconds(),
	})
}

func (s *Server) handleRate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req rateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "malformed request: "+err.Error())
		return
	}

	g, err := board.Parse(req.Board)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	name := req.Solver
	if name == "" {
		name = "backtrack"
	}
	backend, err := solver.ByName(name)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := rateResponse{Clues: g.ClueCount(), Valid: g.IsValid()}
	if resp.Valid {
		n := backend.CountSolutions(g, 2)
		resp.Solvable = n >= 1
		resp.Unique = n == 1
		if req.Score {
			resp.Score = solver.Score(g)
		}
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// fixedMask renders the clue mask as 81 '0'/'1' characters in
// row-major order.
func fixedMask(p *puzzle.Grid) string {
	mask := make([]byte, 0, board.CellCount)
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			if p.IsFixed(row, col) {
				mask = append(mask, '1')
			} else {
				mask = append(mask, '0')
			}
		}
	}
	return string(mask)
}
