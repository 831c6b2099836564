// internal/recipes/recipes.go
//
// Recipe sources for the game.
//
// Responsibilities:
//   - Define the normalized Recipe record and the Provider contract.
//   - Turn TheMealDB meal objects into Recipes (Parse / parseMeal).
//   - MealDB: fetch a random meal over HTTP.
//   - Catalog: serve random meals from a local TheMealDB-format document.
//
// Every failure is reported as an error wrapping ErrProviderFailure; callers
// are expected to swallow it and keep their current recipe.

package recipes

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// maxIngredients is the number of strIngredientN slots TheMealDB exposes.
const maxIngredients = 20

var (
	ErrProviderFailure = errors.New("recipe provider failure")
	ErrNoMeal          = errors.New("response has no meal")
)

// Recipe is one meal, normalized for play.
type Recipe struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Ingredients []string `json:"ingredients"` // unique, non-empty, first-occurrence order
}

// Provider supplies recipes on demand.
type Provider interface {
	FetchRandom(ctx context.Context) (*Recipe, error)
}

// Parse reads the first meal of a TheMealDB response body.
func Parse(body []byte) (*Recipe, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: malformed json", ErrProviderFailure)
	}
	meal := gjson.GetBytes(body, "meals.0")
	if !meal.IsObject() {
		return nil, fmt.Errorf("%w: %w", ErrProviderFailure, ErrNoMeal)
	}
	return parseMeal(meal), nil
}

// parseMeal maps one meal object. Null, missing and blank ingredient
// slots are skipped; duplicates keep their first position.
func parseMeal(meal gjson.Result) *Recipe {
	seen := make(map[string]struct{}, maxIngredients)
	ingredients := make([]string, 0, maxIngredients)
	for i := 1; i <= maxIngredients; i++ {
		v := meal.Get("strIngredient" + strconv.Itoa(i))
		if v.Type != gjson.String {
			continue
		}
		s := strings.TrimSpace(v.Str)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		ingredients = append(ingredients, s)
	}

	return &Recipe{
		ID:          meal.Get("idMeal").String(),
		Title:       meal.Get("strMeal").String(),
		Category:    meal.Get("strCategory").String(),
		Image:       meal.Get("strMealThumb").String(),
		Ingredients: ingredients,
	}
}
