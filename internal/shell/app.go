// internal/shell/app.go
//
// Application state for one player session.
// Responsibilities:
//   - Hold the current screen, difficulty, recipe and round.
//   - Expose named transitions: SelectDifficulty, GoHome, LoadNewRound,
//     GiveUp, SubmitGuess.
//   - Swallow provider failures: the previous recipe and round stay put.
//
// Notes:
//   - Provider fetches run without the App lock so a slow or hung fetch does
//     not block other events on the session.
//   - Lock order is App then Round; round callbacks arrive without the round lock.

package shell

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ShlokD/guess-food/internal/game"
	"github.com/ShlokD/guess-food/internal/recipes"
)

// Screen is the page the player is on.
type Screen string

const (
	ScreenHome Screen = "home"
	ScreenPlay Screen = "play"
)

var ErrNoRound = errors.New("no round in progress")

// App is one player's game session.
type App struct {
	mu sync.Mutex

	id         string
	provider   recipes.Provider
	roundOpts  game.Options
	screen     Screen
	difficulty game.Difficulty
	recipe     *recipes.Recipe
	round      *game.Round
	focusSeq   uint64 // bumped each time the input should regain focus
	lastSeen   time.Time
}

// New creates a session on the home screen. roundOpts is applied to every
// round; its OnWrongGuessCleared is replaced by the App's own hook.
func New(id string, p recipes.Provider, roundOpts game.Options) *App {
	return &App{
		id:         id,
		provider:   p,
		roundOpts:  roundOpts,
		screen:     ScreenHome,
		difficulty: game.DefaultDifficulty,
		lastSeen:   time.Now(),
	}
}

// ID identifies the session.
func (a *App) ID() string { return a.id }

// SelectDifficulty picks a level, loads a recipe and moves to the play screen.
// When the fetch fails a fresh round is started on the current recipe, if any.
func (a *App) SelectDifficulty(ctx context.Context, d game.Difficulty) {
	rec, err := a.provider.FetchRandom(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.touchLocked()
	a.difficulty = d
	if err != nil {
		log.Debug().Err(err).Str("session", a.id).Msg("recipe fetch failed")
		rec = a.recipe
	}
	if rec != nil {
		a.startRoundLocked(rec)
	}
	a.screen = ScreenPlay
}

// GoHome returns to the difficulty screen.
func (a *App) GoHome() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.touchLocked()
	a.screen = ScreenHome
}

// LoadNewRound fetches a new recipe and starts a round on it with the
// current difficulty. On failure nothing changes and false is returned.
func (a *App) LoadNewRound(ctx context.Context) bool {
	rec, err := a.provider.FetchRandom(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.touchLocked()
	if err != nil {
		log.Debug().Err(err).Str("session", a.id).Msg("recipe fetch failed")
		return false
	}
	a.startRoundLocked(rec)
	return true
}

// GiveUp ends the current round.
func (a *App) GiveUp() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.touchLocked()
	if a.round == nil {
		return ErrNoRound
	}
	a.round.GiveUp()
	return nil
}

// SubmitGuess forwards an input commit to the current round.
func (a *App) SubmitGuess(text string) (game.Outcome, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.touchLocked()
	if a.round == nil {
		return game.Outcome{Index: -1}, ErrNoRound
	}
	return a.round.SubmitGuess(text)
}

// Close drops the current round's pending timers.
func (a *App) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.round != nil {
		a.round.Close()
	}
}

// LastSeen reports when the session last handled an event.
func (a *App) LastSeen() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastSeen
}

func (a *App) touchLocked() { a.lastSeen = time.Now() }

func (a *App) startRoundLocked(rec *recipes.Recipe) {
	if a.round != nil {
		a.round.Close()
	}
	opts := a.roundOpts
	opts.OnWrongGuessCleared = a.wrongGuessCleared
	a.recipe = rec
	a.round = game.NewRound(rec.Ingredients, a.difficulty.RevealProbability(), opts)

	log.Debug().
		Str("session", a.id).
		Str("round", a.round.ID()).
		Str("recipe", rec.Title).
		Str("difficulty", string(a.difficulty)).
		Int("ingredients", len(rec.Ingredients)).
		Msg("round started")
}

// wrongGuessCleared runs on the round's timer goroutine. Resets from a
// replaced round are ignored.
func (a *App) wrongGuessCleared(r *game.Round) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.round != r {
		return
	}
	a.focusSeq++
}
