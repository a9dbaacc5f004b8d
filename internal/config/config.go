// Package config loads runtime configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all portal client configuration.
type Config struct {
	// APIBaseURL is the portal backend base URL.
	APIBaseURL string `env:"LEARNHUB_API_URL" envDefault:"http://localhost:3001"`

	// RequestTimeout bounds a single API request.
	RequestTimeout time.Duration `env:"LEARNHUB_TIMEOUT" envDefault:"15s"`

	// DBPath overrides the default local database location.
	DBPath string `env:"LEARNHUB_DB"`
}

// Load parses configuration from the environment. A .env file in the
// working directory is applied first when present; a missing file is
// not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
