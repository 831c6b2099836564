package recipes

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/tidwall/gjson"
)

// Catalog serves random recipes from an in-memory list.
type Catalog struct {
	recipes []Recipe
	intN    func(n int) int
}

// NewCatalog parses every meal in a TheMealDB-format document
// ({"meals":[...]}).
func NewCatalog(doc []byte) (*Catalog, error) {
	if !gjson.ValidBytes(doc) {
		return nil, fmt.Errorf("catalog: malformed json")
	}
	c := &Catalog{intN: rand.IntN}
	gjson.GetBytes(doc, "meals").ForEach(func(_, meal gjson.Result) bool {
		if meal.IsObject() {
			c.recipes = append(c.recipes, *parseMeal(meal))
		}
		return true
	})
	return c, nil
}

// LoadCatalog reads a catalog document from disk.
func LoadCatalog(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return NewCatalog(b)
}

// Len reports the number of recipes.
func (c *Catalog) Len() int { return len(c.recipes) }

// FetchRandom returns a copy of a random recipe.
func (c *Catalog) FetchRandom(ctx context.Context) (*Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProviderFailure, err)
	}
	if len(c.recipes) == 0 {
		return nil, fmt.Errorf("%w: empty catalog", ErrProviderFailure)
	}
	r := c.recipes[c.intN(len(c.recipes))]
	r.Ingredients = append([]string(nil), r.Ingredients...)
	return &r, nil
}
