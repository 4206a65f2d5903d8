// Package config loads server configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Port the HTTP server listens on.
	Port string

	// DBPath is the SQLite file backing the offline cache.
	DBPath string

	// SuggestionURL is the base URL of the ingredient suggestion
	// endpoint. Empty means the built-in local suggester is used.
	SuggestionURL string

	// SubstitutionURL is the base URL of the substitution endpoint.
	// Empty means every request is served from the local fallback table.
	SubstitutionURL string

	// SuggestDebounce is the quiet window before a suggestion lookup.
	SuggestDebounce time.Duration

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

func (c *Config) defaults() {
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.DBPath == "" {
		c.DBPath = "data/recipefinder.db"
	}
	if c.SuggestDebounce <= 0 {
		c.SuggestDebounce = 300 * time.Millisecond
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Load reads the configuration. A missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:            os.Getenv("PORT"),
		DBPath:          os.Getenv("CACHE_DB"),
		SuggestionURL:   os.Getenv("SUGGESTION_URL"),
		SubstitutionURL: os.Getenv("SUBSTITUTION_URL"),
		LogLevel:        os.Getenv("LOG_LEVEL"),
	}
	if v := os.Getenv("SUGGEST_DEBOUNCE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SuggestDebounce = d
		}
	}
	cfg.defaults()
	return cfg
}
