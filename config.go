// config.go
//
// Environment-driven configuration. A `.env` file is loaded first (godotenv),
// then each setting falls back to the default below when unset or invalid.
//
//   PORT                  listen port (5175)
//   LOG_LEVEL             zerolog level (info)
//   LOG_FORMAT            json | console (json)
//   RECIPE_SOURCE         mealdb | embedded (mealdb)
//   MEALDB_URL            random-meal endpoint (TheMealDB public API)
//   RECIPE_FILE           catalog file for the embedded source (bundled catalog)
//   RECIPE_FETCH_TIMEOUT  per-fetch timeout, 0 = none (0)
//   REQUEST_TIMEOUT       per-request bound, 0 = none (30s)
//   SESSION_SECRET        HMAC key for the session cookie
//   SESSION_IDLE_TTL      idle sessions are dropped after this (2h)
//   CLIENT_ORIGIN         CORS origin for /api (http://localhost:5173)
//   NODE_ENV              "production" marks cookies Secure

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ShlokD/guess-food/assets"
	"github.com/ShlokD/guess-food/internal/recipes"
)

type config struct {
	Port           string
	LogLevel       string
	LogFormat      string
	RecipeSource   string
	MealDBURL      string
	RecipeFile     string
	FetchTimeout   time.Duration
	RequestTimeout time.Duration
	SessionSecret  string
	SessionIdleTTL time.Duration
	ClientOrigin   string
	SecureCookies  bool
}

func loadConfig() config {
	return config{
		Port:           getEnv("PORT", "5175"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		RecipeSource:   getEnv("RECIPE_SOURCE", "mealdb"),
		MealDBURL:      getEnv("MEALDB_URL", recipes.DefaultMealDBURL),
		RecipeFile:     os.Getenv("RECIPE_FILE"),
		FetchTimeout:   envDuration("RECIPE_FETCH_TIMEOUT", 0),
		RequestTimeout: envDuration("REQUEST_TIMEOUT", 30*time.Second),
		SessionSecret:  getEnv("SESSION_SECRET", "dev_secret_change_me"),
		SessionIdleTTL: envDuration("SESSION_IDLE_TTL", 2*time.Hour),
		ClientOrigin:   getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		SecureCookies:  os.Getenv("NODE_ENV") == "production",
	}
}

// newProvider builds the configured recipe source.
func newProvider(cfg config) (recipes.Provider, error) {
	switch cfg.RecipeSource {
	case "mealdb":
		return recipes.NewMealDB(cfg.MealDBURL, cfg.FetchTimeout), nil
	case "embedded":
		var (
			cat *recipes.Catalog
			err error
		)
		if cfg.RecipeFile != "" {
			cat, err = recipes.LoadCatalog(cfg.RecipeFile)
		} else {
			var doc []byte
			if doc, err = assets.RecipesJSON(); err == nil {
				cat, err = recipes.NewCatalog(doc)
			}
		}
		if err != nil {
			return nil, err
		}
		if cat.Len() == 0 {
			return nil, fmt.Errorf("recipe catalog is empty")
		}
		log.Info().Int("recipes", cat.Len()).Msg("loaded recipe catalog")
		return cat, nil
	default:
		return nil, fmt.Errorf("unknown RECIPE_SOURCE %q", cfg.RecipeSource)
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envDuration parses k as a Go duration, falling back to def.
func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Msg("invalid duration, using default")
		return def
	}
	return d
}
