package server

import (
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/chunghha/tui-sudoku/internal/puzzle"
)

// playMessage is one client request on the play socket.
//
// Ops: "set" places num at (row, col), "clear" empties the cell,
// "solution" returns the solved grid, "state" re-sends the current
// state, and "new" abandons the puzzle for a fresh one at the same
// difficulty.
type playMessage struct {
	Op  string `json:"op"`
	Row int    `json:"row"`
	Col int    `json:"col"`
	Num uint8  `json:"num"`
}

// playState is the reply to every message, and the greeting sent right
// after the upgrade. Board carries the current grid except for the
// "solution" op, which substitutes the solved grid.
type playState struct {
	Board      string `json:"board"`
	Fixed      string `json:"fixed"`
	Clues      int    `json:"clues"`
	Difficulty string `json:"difficulty"`
	Valid      bool   `json:"valid"`
	Solved     bool   `json:"solved"`
	Error      string `json:"error,omitempty"`
}

// handlePlay runs one interactive puzzle per websocket connection.
// Messages are read and answered one at a time, so the puzzle needs no
// locking: the connection is the session.
func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	d := puzzle.Medium
	if q := r.URL.Query().Get("difficulty"); q != "" {
		var err error
		if d, err = puzzle.ParseDifficulty(q); err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	var seed int64
	if q := r.URL.Query().Get("seed"); q != "" {
		n, err := strconv.ParseInt(q, 10, 64)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "malformed seed")
			return
		}
		seed = n
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	log := s.log.WithFields(logrus.Fields{
		"remote":     conn.RemoteAddr().String(),
		"difficulty": d.String(),
	})

	p, err := puzzle.NewSeeded(d, seed)
	if err != nil {
		log.WithError(err).Error("puzzle generation failed")
		conn.WriteJSON(playState{Error: "generation failed"})
		return
	}
	log.Info("play session started")

	state := func(valid bool) playState {
		return playState{
			Board:      p.Current().String(),
			Fixed:      fixedMask(p),
			Clues:      p.Clues(),
			Difficulty: p.Difficulty().String(),
			Valid:      valid,
			Solved:     p.IsSolved(),
		}
	}

	if err := conn.WriteJSON(state(true)); err != nil {
		log.WithError(err).Warn("write failed")
		return
	}

	for {
		var msg playMessage
		if err := conn.ReadJSON(&msg); err != nil {
			log.WithError(err).Info("play session closed")
			return
		}

		var reply playState
		switch msg.Op {
		case "set":
			// Validity is judged before the digit lands; the write
			// itself also has to be accepted (non-fixed cell, sane
			// coordinates) for the move to count as valid.
			valid := p.IsValidMove(msg.Row, msg.Col, msg.Num)
			if !p.SetNumber(msg.Row, msg.Col, msg.Num) {
				valid = false
			}
			reply = state(valid)
		case "clear":
			reply = state(p.ClearNumber(msg.Row, msg.Col))
		case "solution":
			reply = state(true)
			reply.Board = p.Solution().String()
		case "state":
			reply = state(true)
		case "new":
			fresh, err := puzzle.New(d)
			if err != nil {
				log.WithError(err).Error("puzzle generation failed")
				reply = state(true)
				reply.Error = "generation failed"
			} else {
				p = fresh
				reply = state(true)
			}
		default:
			reply = state(true)
			reply.Error = "unknown op: " + msg.Op
		}

		if reply.Solved {
			log.Info("puzzle solved")
		}
		if err := conn.WriteJSON(reply); err != nil {
			log.WithError(err).Warn("write failed")
			return
		}
	}
}
