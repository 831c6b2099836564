package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ShlokD/guess-food/internal/recipes"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "RECIPE_SOURCE", "RECIPE_FETCH_TIMEOUT", "SESSION_IDLE_TTL", "NODE_ENV"} {
		t.Setenv(k, "")
	}
	cfg := loadConfig()
	if cfg.Port != "5175" || cfg.RecipeSource != "mealdb" || cfg.FetchTimeout != 0 || cfg.SessionIdleTTL != 2*time.Hour {
		t.Fatalf("defaults %+v", cfg)
	}
	if cfg.MealDBURL != recipes.DefaultMealDBURL || cfg.SecureCookies {
		t.Fatalf("defaults %+v", cfg)
	}
}

func TestEnvDuration(t *testing.T) {
	t.Setenv("X_TIMEOUT", "250ms")
	if d := envDuration("X_TIMEOUT", time.Second); d != 250*time.Millisecond {
		t.Fatalf("d = %v", d)
	}
	t.Setenv("X_TIMEOUT", "soon")
	if d := envDuration("X_TIMEOUT", time.Second); d != time.Second {
		t.Fatalf("invalid value not defaulted: %v", d)
	}
}

func TestNewProvider(t *testing.T) {
	p, err := newProvider(config{RecipeSource: "embedded"})
	if err != nil {
		t.Fatal(err)
	}
	r, err := p.FetchRandom(context.Background())
	if err != nil || r.Title == "" || len(r.Ingredients) == 0 {
		t.Fatalf("recipe %+v err %v", r, err)
	}

	if p, err := newProvider(config{RecipeSource: "mealdb"}); err != nil {
		t.Fatal(err)
	} else if _, ok := p.(*recipes.MealDB); !ok {
		t.Fatalf("provider %T", p)
	}

	if _, err := newProvider(config{RecipeSource: "carrier-pigeon"}); err == nil {
		t.Fatal("unknown source accepted")
	}

	empty := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(empty, []byte(`{"meals":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := newProvider(config{RecipeSource: "embedded", RecipeFile: empty}); err == nil {
		t.Fatal("empty catalog accepted")
	}
}
