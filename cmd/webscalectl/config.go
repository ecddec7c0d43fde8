package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Config holds the CLI configuration, loaded from the environment (with an
// optional .env file) and overridable by flags.
type Config struct {
	BaseURL string        `env:"WEBSCALE_URL"`
	APIKey  string        `env:"WEBSCALE_API_KEY"`
	Timeout time.Duration `env:"WEBSCALE_TIMEOUT" envDefault:"30s"`
	Debug   bool          `env:"WEBSCALE_DEBUG" envDefault:"false"`
}

// loadConfig reads configuration from a .env file (if present) and the
// environment.
func loadConfig() (*Config, error) {
	// A missing .env file is not an error; the environment still applies.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("WEBSCALE_URL (or --url) is required")
	}
	return nil
}

// masked returns a copy safe for logging, with the API key hidden.
func (c *Config) masked() Config {
	out := *c
	if out.APIKey != "" {
		out.APIKey = "*****"
	}
	return out
}
