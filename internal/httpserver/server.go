// internal/httpserver/server.go
//
// HTTP server wiring for the Guess Food backend.
// Responsibilities:
//   - Router + middleware (request IDs, panic recovery, timeouts, access log).
//   - Public endpoints: "/health", HTML screens under "/".
//   - JSON API under "/api" (CORS for the configured client origin).
//   - One session per browser, identified by a signed cookie (session.go).
//
// Notes:
//   - Every handler renders from shell.App.View; the server holds no game state.
//   - Recipe provider failures never surface here; the view simply stays put.

package httpserver

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/ShlokD/guess-food/assets"
	"github.com/ShlokD/guess-food/internal/game"
	"github.com/ShlokD/guess-food/internal/recipes"
	"github.com/ShlokD/guess-food/internal/store"
)

// Config carries everything the server needs besides the session store.
type Config struct {
	Provider      recipes.Provider
	SessionSecret string
	SecureCookies bool
	ClientOrigin  string        // allowed CORS origin for /api
	Timeout       time.Duration // per-request bound; 0 disables
	RoundOptions  game.Options  // test hook; zero value in production
}

// Server bundles router, session store and templates.
type Server struct {
	r     *chi.Mux
	store store.Store
	cfg   Config
	tmpl  *template.Template
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, cfg Config) (*Server, error) {
	tmpl, err := assets.Templates()
	if err != nil {
		return nil, err
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "dev_secret_change_me"
	}
	if cfg.ClientOrigin == "" {
		cfg.ClientOrigin = "http://localhost:5173"
	}
	s := &Server{r: chi.NewRouter(), store: st, cfg: cfg, tmpl: tmpl}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger)
	s.r.Use(chimw.Recoverer)
	if cfg.Timeout > 0 {
		s.r.Use(chimw.Timeout(cfg.Timeout))
	}

	s.r.With(jsonContentType).Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.mountPages(s.r)
	s.r.Route("/api", func(r chi.Router) {
		r.Use(jsonContentType)
		r.Use(s.cors)
		s.mountAPI(r)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		http.Error(w, `{"error":"not_found","path":"`+template.JSEscapeString(r.URL.Path)+`"}`, http.StatusNotFound)
	})

	return s, nil
}

// Start serves HTTP on addr until ctx ends, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 10 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.cfg.ClientOrigin
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestLogger writes one access-log line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			log.Info().
				Str("reqId", chimw.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("took", time.Since(start)).
				Msg("request")
		}()
		next.ServeHTTP(ww, r)
	})
}
