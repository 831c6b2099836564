package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ShlokD/guess-food/internal/shell"
)

const (
	sessionCookieName = "guessfood_session"
	sessionLifetime   = 30 * 24 * time.Hour
)

// session returns the caller's App, starting a new one (and setting the
// cookie) when the cookie is missing, invalid, or names an evicted session.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *shell.App {
	if c, err := r.Cookie(sessionCookieName); err == nil && c.Value != "" {
		if sid, err := s.parseSessionToken(c.Value); err == nil {
			if a, err := s.store.Get(r.Context(), sid); err == nil {
				return a
			}
		}
	}

	a := shell.New(uuid.NewString(), s.cfg.Provider, s.cfg.RoundOptions)
	if err := s.store.Save(r.Context(), a); err != nil {
		log.Error().Err(err).Msg("save session")
	}
	tok, exp, err := s.signSessionToken(a.ID())
	if err != nil {
		log.Error().Err(err).Msg("sign session token")
		return a
	}
	sameSite := http.SameSiteLaxMode
	if s.cfg.SecureCookies {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.SecureCookies,
		SameSite: sameSite,
		Expires:  exp,
	})
	return a
}

// signSessionToken creates an HS256 JWT whose subject is the session ID.
func (s *Server) signSessionToken(sid string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(sessionLifetime)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sid,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := t.SignedString([]byte(s.cfg.SessionSecret))
	return ss, exp, err
}

// parseSessionToken verifies a session token and returns its session ID.
func (s *Server) parseSessionToken(tok string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.SessionSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !t.Valid || claims.Subject == "" {
		return "", errors.New("invalid session token")
	}
	return claims.Subject, nil
}
