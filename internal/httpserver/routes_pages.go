// internal/httpserver/routes_pages.go
//
// Server-rendered screens. Forms post to the routes below, which apply one
// transition and redirect back to "/" (post/redirect/get).

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/ShlokD/guess-food/internal/game"
	"github.com/ShlokD/guess-food/internal/shell"
)

// pageData is the template input for index.html.
type pageData struct {
	shell.View
	// RefreshSeconds > 0 makes the page reload once a wrong guess has cleared.
	RefreshSeconds int
}

func (s *Server) mountPages(r chi.Router) {
	r.Get("/", s.handleIndex)
	r.Post("/play", s.handlePlay)
	r.Post("/home", func(w http.ResponseWriter, r *http.Request) {
		s.session(w, r).GoHome()
		backToIndex(w, r)
	})
	r.Post("/round/new", func(w http.ResponseWriter, r *http.Request) {
		s.session(w, r).LoadNewRound(r.Context())
		backToIndex(w, r)
	})
	r.Post("/round/giveup", func(w http.ResponseWriter, r *http.Request) {
		_ = s.session(w, r).GiveUp()
		backToIndex(w, r)
	})
	r.Post("/round/guess", func(w http.ResponseWriter, r *http.Request) {
		_, _ = s.session(w, r).SubmitGuess(r.FormValue("text"))
		backToIndex(w, r)
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := pageData{View: s.session(w, r).View()}
	if data.Round != nil && data.Round.InputFlagged {
		data.RefreshSeconds = int(game.WrongGuessDelay.Seconds())
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Error().Err(err).Msg("render index")
	}
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	d, err := game.ParseDifficulty(r.FormValue("difficulty"))
	if err != nil {
		http.Error(w, "unknown difficulty", http.StatusBadRequest)
		return
	}
	s.session(w, r).SelectDifficulty(r.Context(), d)
	backToIndex(w, r)
}

func backToIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
