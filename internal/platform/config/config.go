// Copyright (c) 2026 Diwan. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, remote sources) via constructors.
  - Optional Backends: PostgreSQL and Redis are enabled only when their URLs are set;
    the service falls back to embedded data and in-memory sessions otherwise.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Diwan API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL). Empty keeps the curated library in memory.
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath overrides the embedded SQL migrations with a directory on disk.
	MigrationPath string `env:"MIGRATION_PATH"`

	// Key-Value Store (Redis). Empty keeps session state in process memory.
	RedisURL string `env:"REDIS_URL"`

	// SessionTTL bounds how long reader state (favorites, filters, lessons) lives.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// Remote poetry catalogue
	PoetryBaseURLs     []string      `env:"POETRY_BASE_URLS"     envSeparator:"," envDefault:"https://poetry.dctabudhabi.ae,https://api.poetry.dctabudhabi.ae"`
	PoetryFetchTimeout time.Duration `env:"POETRY_FETCH_TIMEOUT" envDefault:"15s"`
	PoetryFetchBudget  time.Duration `env:"POETRY_FETCH_BUDGET"  envDefault:"45s"`
	PoetryUserAgent    string        `env:"POETRY_USER_AGENT"    envDefault:"Mozilla/5.0 (compatible; DiwanExplorer/1.0)"`

	// Text generation (OpenAI-compatible chat completions)
	LLMBaseURL string        `env:"LLM_BASE_URL" envDefault:"https://api.deepseek.com/v1"`
	LLMAPIKey  string        `env:"LLM_API_KEY"`
	LLMModel   string        `env:"LLM_MODEL"    envDefault:"deepseek-chat"`
	LLMTimeout time.Duration `env:"LLM_TIMEOUT"  envDefault:"60s"`

	// Cross-Origin Resource Sharing
	ExtraOrigins []string `env:"EXTRA_ORIGINS" envSeparator:","`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects combinations that would make the remote probing chain unusable.
func (c *Config) validate() error {
	if len(c.PoetryBaseURLs) == 0 {
		return fmt.Errorf("config: POETRY_BASE_URLS must list at least one host")
	}
	if c.PoetryFetchTimeout <= 0 || c.PoetryFetchBudget <= 0 {
		return fmt.Errorf("config: poetry fetch timeout and budget must be positive")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("config: SESSION_TTL must be positive")
	}
	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins returns the extra CORS origins configured for production.
func (c *Config) AllowedOrigins() []string {
	return c.ExtraOrigins
}

// HasDatabase reports whether a PostgreSQL backend is configured.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// HasRedis reports whether a Redis backend is configured.
func (c *Config) HasRedis() bool {
	return c.RedisURL != ""
}

// HasLLM reports whether the text-generation collaborator is configured.
func (c *Config) HasLLM() bool {
	return c.LLMAPIKey != ""
}
