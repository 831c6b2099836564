// internal/game/types.go
//
// Core type definitions for the guess engine.
// Defines:
//   - Difficulty: named level mapped to a fixed reveal probability.
//   - Result/Outcome: what a single submitted guess did.
//   - State: copy-out snapshot of a round.

package game

import (
	"errors"
	"strings"
)

// Difficulty is the player's chosen level. Each level maps to the
// probability that an ingredient starts out revealed.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// DefaultDifficulty is used until the player picks one.
const DefaultDifficulty = Medium

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// difficultyConfig is the fixed level table.
var difficultyConfig = map[Difficulty]struct {
	Label             string
	RevealProbability float64
}{
	Easy:   {Label: "Easy", RevealProbability: 0.5},
	Medium: {Label: "Medium", RevealProbability: 0.25},
	Hard:   {Label: "Hard", RevealProbability: 0},
}

// Difficulties lists the levels in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty maps a name (any case) to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := difficultyConfig[d]; !ok {
		return "", ErrUnknownDifficulty
	}
	return d, nil
}

// RevealProbability returns the level's pre-reveal probability.
// Unknown levels reveal nothing.
func (d Difficulty) RevealProbability() float64 {
	return difficultyConfig[d].RevealProbability
}

// Label is the human-readable level name.
func (d Difficulty) Label() string {
	if c, ok := difficultyConfig[d]; ok {
		return c.Label
	}
	return string(d)
}

// Result classifies a submitted guess.
type Result string

const (
	ResultCleared Result = "cleared" // empty input, buffer cleared
	ResultHit     Result = "hit"
	ResultMiss    Result = "miss"
)

// Outcome reports what SubmitGuess did.
type Outcome struct {
	Result Result `json:"result"`
	Index  int    `json:"index"` // revealed ingredient index, -1 unless hit
	Ended  bool   `json:"ended"`
}

// Phase is the coarse round state.
type Phase string

const (
	PhaseInProgress Phase = "in_progress"
	PhaseComplete   Phase = "complete"
)

// State is a snapshot of a round, safe to read after the call returns.
type State struct {
	ID            string
	Ingredients   []string
	Revealed      []bool
	Input         string
	Ended         bool
	GaveUp        bool
	WrongGuess    bool
	RevealedCount int
}

// Phase derives the coarse state from Ended.
func (s State) Phase() Phase {
	if s.Ended {
		return PhaseComplete
	}
	return PhaseInProgress
}
