// internal/httpserver/routes_api.go
//
// JSON API for script clients. Every successful response carries the
// session's current View:
//   - GET  /api/state
//   - GET  /api/difficulties
//   - POST /api/difficulty    {"difficulty":"easy|medium|hard"}
//   - POST /api/home
//   - POST /api/round/new
//   - POST /api/round/giveup
//   - POST /api/round/guess   {"text":"..."} → {"outcome":{...},"view":{...}}

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ShlokD/guess-food/internal/game"
	"github.com/ShlokD/guess-food/internal/shell"
)

func (s *Server) mountAPI(r chi.Router) {
	r.Get("/state", s.handleState)
	r.Get("/difficulties", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(shell.DifficultyOptions())
	})
	r.Post("/difficulty", s.handleDifficulty)
	r.Post("/home", s.handleHome)
	r.Post("/round/new", s.handleNewRound)
	r.Post("/round/giveup", s.handleGiveUp)
	r.Post("/round/guess", s.handleGuess)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(s.session(w, r).View())
}

type difficultyReq struct {
	Difficulty string `json:"difficulty"`
}

func (s *Server) handleDifficulty(w http.ResponseWriter, r *http.Request) {
	var req difficultyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	d, err := game.ParseDifficulty(req.Difficulty)
	if err != nil {
		http.Error(w, `{"error":"unknown_difficulty"}`, http.StatusBadRequest)
		return
	}
	a := s.session(w, r)
	a.SelectDifficulty(r.Context(), d)
	_ = json.NewEncoder(w).Encode(a.View())
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	a := s.session(w, r)
	a.GoHome()
	_ = json.NewEncoder(w).Encode(a.View())
}

// handleNewRound answers with the current view whether or not a new recipe
// arrived; provider failures are not reported to the player.
func (s *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	a := s.session(w, r)
	a.LoadNewRound(r.Context())
	_ = json.NewEncoder(w).Encode(a.View())
}

func (s *Server) handleGiveUp(w http.ResponseWriter, r *http.Request) {
	a := s.session(w, r)
	if err := a.GiveUp(); err != nil {
		writeRoundError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(a.View())
}

type guessReq struct {
	Text string `json:"text"`
}

type guessRes struct {
	Outcome game.Outcome `json:"outcome"`
	View    shell.View   `json:"view"`
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	a := s.session(w, r)
	out, err := a.SubmitGuess(req.Text)
	if err != nil {
		writeRoundError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(guessRes{Outcome: out, View: a.View()})
}

// writeRoundError maps engine/shell errors to 409 bodies.
func writeRoundError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shell.ErrNoRound):
		http.Error(w, `{"error":"no_round"}`, http.StatusConflict)
	case errors.Is(err, game.ErrRoundEnded):
		http.Error(w, `{"error":"round_ended"}`, http.StatusConflict)
	default:
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
	}
}
