// internal/game/engine.go
//
// Core guess engine for a single round.
// Responsibilities:
//   - Seed the pre-revealed ingredients once, at round creation.
//   - Match submitted text against still-hidden ingredients
//     (case-insensitive substring, lowest index wins).
//   - Track end-of-round: everything revealed, give-up, or nothing to guess.
//   - Run the timed wrong-guess reset, ignoring stale timers.
//
// Notes:
//   - A Round is safe for concurrent use; the reset timer fires on its own goroutine.
//   - OnWrongGuessCleared is invoked without the round lock held.
package game

import (
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// WrongGuessDelay is how long a missed guess keeps the input locked.
const WrongGuessDelay = 1000 * time.Millisecond

var ErrRoundEnded = errors.New("round ended")

// Timer is the part of *time.Timer the engine needs.
type Timer interface {
	Stop() bool
}

// Options tunes a round. The zero value is the production setup.
type Options struct {
	// Float returns a number in [0,1); defaults to math/rand/v2.Float64.
	Float func() float64
	// Delay before a wrong guess is cleared; defaults to WrongGuessDelay.
	Delay time.Duration
	// AfterFunc schedules f after d; defaults to time.AfterFunc.
	AfterFunc func(d time.Duration, f func()) Timer
	// OnWrongGuessCleared runs after a current wrong-guess reset fired.
	OnWrongGuessCleared func(r *Round)
}

// Round holds the state of one playthrough with one ingredient list.
type Round struct {
	mu sync.Mutex

	id          string
	ingredients []string
	lowered     []string
	revealed    []bool
	input       string
	ended       bool
	gaveUp      bool
	wrongGuess  bool

	gen   uint64 // bumped whenever a pending reset becomes stale
	timer Timer
	opts  Options
}

// NewRound seeds a round: every index is revealed independently with
// probability p. An empty ingredient list yields a round that is already ended.
func NewRound(ingredients []string, p float64, opts Options) *Round {
	if opts.Float == nil {
		opts.Float = rand.Float64
	}
	if opts.Delay <= 0 {
		opts.Delay = WrongGuessDelay
	}
	if opts.AfterFunc == nil {
		opts.AfterFunc = func(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }
	}

	r := &Round{
		id:          uuid.NewString(),
		ingredients: append([]string(nil), ingredients...),
		lowered:     make([]string, len(ingredients)),
		revealed:    make([]bool, len(ingredients)),
		opts:        opts,
	}
	for i, ing := range r.ingredients {
		r.lowered[i] = strings.ToLower(ing)
		r.revealed[i] = opts.Float() < p
	}
	r.ended = len(r.ingredients) == 0
	return r
}

// ID identifies the round.
func (r *Round) ID() string { return r.id }

// SubmitGuess applies one input commit.
//
// Empty text only clears the input buffer. Otherwise the first hidden
// ingredient containing text (case-insensitively) is revealed; if none does,
// the round enters the wrong-guess state, keeps the text in the buffer and
// schedules the reset. A finished round is frozen and returns ErrRoundEnded.
func (r *Round) SubmitGuess(text string) (Outcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ended {
		return Outcome{Index: -1, Ended: true}, ErrRoundEnded
	}
	if text == "" {
		r.input = ""
		return Outcome{Result: ResultCleared, Index: -1}, nil
	}

	if i := r.firstHidden(strings.ToLower(text)); i >= 0 {
		r.revealed[i] = true
		r.input = ""
		r.cancelResetLocked()
		r.wrongGuess = false
		if r.allRevealedLocked() {
			r.ended = true
		}
		return Outcome{Result: ResultHit, Index: i, Ended: r.ended}, nil
	}

	r.input = text
	r.wrongGuess = true
	r.scheduleResetLocked()
	return Outcome{Result: ResultMiss, Index: -1}, nil
}

// GiveUp ends the round without revealing anything.
func (r *Round) GiveUp() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ended = true
	r.gaveUp = true
	r.cancelResetLocked()
	r.wrongGuess = false
}

// Close drops any pending wrong-guess reset. Call it when the round is replaced.
func (r *Round) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancelResetLocked()
}

// State returns a snapshot of the round.
func (r *Round) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := State{
		ID:          r.id,
		Ingredients: append([]string(nil), r.ingredients...),
		Revealed:    append([]bool(nil), r.revealed...),
		Input:       r.input,
		Ended:       r.ended,
		GaveUp:      r.gaveUp,
		WrongGuess:  r.wrongGuess,
	}
	for _, v := range r.revealed {
		if v {
			s.RevealedCount++
		}
	}
	return s
}

// firstHidden returns the lowest hidden index whose ingredient contains
// needle, or -1. needle must already be lowercased.
func (r *Round) firstHidden(needle string) int {
	for i, ing := range r.lowered {
		if !r.revealed[i] && strings.Contains(ing, needle) {
			return i
		}
	}
	return -1
}

func (r *Round) allRevealedLocked() bool {
	for _, v := range r.revealed {
		if !v {
			return false
		}
	}
	return true
}

// scheduleResetLocked replaces any pending reset with a fresh one tagged
// with a new generation.
func (r *Round) scheduleResetLocked() {
	r.cancelResetLocked()
	gen := r.gen
	r.timer = r.opts.AfterFunc(r.opts.Delay, func() { r.fireReset(gen) })
}

// cancelResetLocked stops the pending timer and makes its callback stale,
// in case it already fired and is waiting for the lock.
func (r *Round) cancelResetLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.gen++
}

func (r *Round) fireReset(gen uint64) {
	r.mu.Lock()
	if gen != r.gen {
		r.mu.Unlock()
		return
	}
	r.wrongGuess = false
	r.timer = nil
	r.gen++
	cb := r.opts.OnWrongGuessCleared
	r.mu.Unlock()

	if cb != nil {
		cb(r)
	}
}
