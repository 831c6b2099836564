package shell

import (
	"github.com/ShlokD/guess-food/internal/game"
)

// Placeholder is shown in place of an ingredient that is still hidden.
const Placeholder = "Guess"

// View is everything a page needs to render one session.
type View struct {
	Screen       Screen             `json:"screen"`
	Difficulty   game.Difficulty    `json:"difficulty"`
	Difficulties []DifficultyOption `json:"difficulties"`
	Recipe       *RecipeView        `json:"recipe,omitempty"`
	Round        *RoundView         `json:"round,omitempty"`
	FocusSeq     uint64             `json:"focusSeq"`
}

type DifficultyOption struct {
	Value             game.Difficulty `json:"value"`
	Label             string          `json:"label"`
	RevealProbability float64         `json:"revealProbability"`
}

type RecipeView struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

// RoundView applies the rendering contract to a round snapshot.
type RoundView struct {
	ID            string           `json:"id"`
	Ingredients   []IngredientView `json:"ingredients"`
	Input         string           `json:"input"`
	InputDisabled bool             `json:"inputDisabled"`
	InputFlagged  bool             `json:"inputFlagged"`
	Ended         bool             `json:"ended"`
	GaveUp        bool             `json:"gaveUp"`
	Phase         game.Phase       `json:"phase"`
	Revealed      int              `json:"revealed"`
	Total         int              `json:"total"`
}

type IngredientView struct {
	Text     string `json:"text"`
	Revealed bool   `json:"revealed"`
	// Answer marks an ingredient shown only because the round ended.
	Answer bool `json:"answer"`
}

// DifficultyOptions lists the levels for the home screen.
func DifficultyOptions() []DifficultyOption {
	out := make([]DifficultyOption, 0, 3)
	for _, d := range game.Difficulties() {
		out = append(out, DifficultyOption{Value: d, Label: d.Label(), RevealProbability: d.RevealProbability()})
	}
	return out
}

// View renders the session.
func (a *App) View() View {
	a.mu.Lock()
	defer a.mu.Unlock()

	v := View{
		Screen:       a.screen,
		Difficulty:   a.difficulty,
		Difficulties: DifficultyOptions(),
		FocusSeq:     a.focusSeq,
	}
	if a.recipe != nil {
		v.Recipe = &RecipeView{Title: a.recipe.Title, Category: a.recipe.Category, Image: a.recipe.Image}
	}
	if a.round != nil {
		v.Round = roundView(a.round.State())
	}
	return v
}

func roundView(st game.State) *RoundView {
	rv := &RoundView{
		ID:            st.ID,
		Ingredients:   make([]IngredientView, len(st.Ingredients)),
		Input:         st.Input,
		InputDisabled: st.Ended || st.WrongGuess,
		InputFlagged:  st.WrongGuess,
		Ended:         st.Ended,
		GaveUp:        st.GaveUp,
		Phase:         st.Phase(),
		Revealed:      st.RevealedCount,
		Total:         len(st.Ingredients),
	}
	for i, ing := range st.Ingredients {
		switch {
		case st.Revealed[i]:
			rv.Ingredients[i] = IngredientView{Text: ing, Revealed: true}
		case st.Ended:
			rv.Ingredients[i] = IngredientView{Text: ing, Answer: true}
		default:
			rv.Ingredients[i] = IngredientView{Text: Placeholder}
		}
	}
	return rv
}
