// Copyright (c) 2026 TMDB-Service. All rights reserved.

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
  - DI-Friendly: Passed to core components (pool, limiter, scheduler) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// disableTokens are the CRON values (case-insensitive) that mean "inactive".
var disableTokens = map[string]struct{}{
	"":         {},
	"false":    {},
	"off":      {},
	"disable":  {},
	"disabled": {},
	"no":       {},
}

// # Configuration Schema

// Config holds all runtime configuration for the TMDB mirror service.
type Config struct {

	// Relational Database (PostgreSQL)
	DatabaseURI string `env:"DATABASE_URI,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./migrations"`

	// EnableUnaccent creates the unaccent text-search extension at init.
	EnableUnaccent bool `env:"ENABLE_UNACCENT" envDefault:"false"`

	// CRON schedules; each is a 5-field expression or a disable token.
	CronFullSweep   string `env:"CRON_FULL_SWEEP"    envDefault:"0 3 * * *"`
	CronMissingOnly string `env:"CRON_MISSING_ONLY"  envDefault:"0 5 * * *"`
	CronPrune       string `env:"CRON_PRUNE"         envDefault:"0 6 * * *"`
	CronChangesSync string `env:"CRON_CHANGES_SYNC"  envDefault:"*/30 * * * *"`

	// Logging
	LogToConsole bool `env:"LOG_TO_CONSOLE" envDefault:"true"`
	LogLvl       int  `env:"LOG_LVL"        envDefault:"20"`

	// Upstream (TMDB) access
	TMDBReadAccessToken string `env:"TMDB_READ_ACCESS_TOKEN,required"`
	TMDBRateLimit       int    `env:"TMDB_RATE_LIMIT"      envDefault:"40"`
	TMDBMaxConnections  int    `env:"TMDB_MAX_CONNECTIONS" envDefault:"16"`
	TMDBBatchInsert     int    `env:"TMDB_BATCH_INSERT"    envDefault:"500"`

	// Webhook notifier
	WebhookEnabled bool   `env:"WEBHOOK_ENABLED" envDefault:"false"`
	WebhookBotUsr  string `env:"WEBHOOK_BOT_USR"`
	WebhookBotPw   string `env:"WEBHOOK_BOT_PW"`
	WebhookURL     string `env:"WEBHOOK_URL"`

	// Optional REST frontend
	APIEnabled bool   `env:"API_ENABLED" envDefault:"true"`
	APIPort    string `env:"API_PORT"    envDefault:"8080"`
	APIKey     string `env:"API_KEY"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.TMDBRateLimit <= 0 || cfg.TMDBRateLimit > 50 {
		return nil, fmt.Errorf("config: TMDB_RATE_LIMIT must be in (0, 50], got %d", cfg.TMDBRateLimit)
	}
	if cfg.TMDBMaxConnections <= 0 || cfg.TMDBMaxConnections > 20 {
		return nil, fmt.Errorf("config: TMDB_MAX_CONNECTIONS must be in (0, 20], got %d", cfg.TMDBMaxConnections)
	}
	if cfg.TMDBBatchInsert <= 0 {
		return nil, fmt.Errorf("config: TMDB_BATCH_INSERT must be positive, got %d", cfg.TMDBBatchInsert)
	}

	return cfg, nil
}

// CronDisabled reports whether a CRON field value is one of the recognized
// disable tokens, matched case-insensitively.
func CronDisabled(schedule string) bool {
	_, disabled := disableTokens[strings.ToLower(strings.TrimSpace(schedule))]
	return disabled
}
