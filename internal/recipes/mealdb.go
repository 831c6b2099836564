package recipes

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultMealDBURL is TheMealDB's public random-meal endpoint.
const DefaultMealDBURL = "https://www.themealdb.com/api/json/v1/1/random.php"

// maxBody caps how much of a response is read.
const maxBody = 1 << 20

// MealDB fetches random meals from TheMealDB.
type MealDB struct {
	URL    string
	Client *http.Client
}

// NewMealDB builds a client for url (DefaultMealDBURL if empty).
// A zero timeout leaves the request bounded only by its context.
func NewMealDB(url string, timeout time.Duration) *MealDB {
	if url == "" {
		url = DefaultMealDBURL
	}
	return &MealDB{URL: url, Client: &http.Client{Timeout: timeout}}
}

// FetchRandom performs one GET and parses the first meal.
func (m *MealDB) FetchRandom(ctx context.Context) (*Recipe, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProviderFailure, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := m.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProviderFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrProviderFailure, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrProviderFailure, err)
	}
	return Parse(body)
}
