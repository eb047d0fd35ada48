// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A local '.env' file
is honoured through 'joho/godotenv' for development hosts.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, Discord) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/taibuivan/redherring/internal/platform/constants"
)

// # Configuration Schema

// Config holds all runtime configuration for the Red Herring bot.
type Config struct {

	// Discord gateway
	DiscordToken string `env:"DISCORD_TOKEN"`
	GuildID      string `env:"DISCORD_GUILD_ID"`

	// Storage backend: "postgres" (networked) or "sqlite" (embedded file)
	StoreDriver string `env:"STORE_DRIVER" envDefault:"postgres"`
	DatabaseURL string `env:"DATABASE_URL"`
	SQLitePath  string `env:"SQLITE_PATH"  envDefault:"./data/redherring.db"`

	// Liveness server
	Port        string `env:"PORT"        envDefault:"8000"`
	Environment string `env:"ENVIRONMENT" envDefault:"production"`
	Debug       bool   `env:"DEBUG"       envDefault:"false"`

	// Optional Redis backend for interactive panel sessions
	RedisURL string `env:"REDIS_URL"`

	// FormTimeout overrides the inactivity window of interactive panels.
	// Unset means the driver default, see [Config.SessionTTL].
	FormTimeout *time.Duration `env:"FORM_TIMEOUT"`

	// Per-member command throttling
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"2"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"5"`
}

// # Configuration Loading

// LoadDotEnv reads KEY=VALUE pairs from the given files into the process
// environment. Missing files are ignored; existing variables win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: failed to read %s: %w", path, err)
		}
	}
	return nil
}

// Load parses environment variables into a [Config] struct and checks the
// storage settings.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validateStore(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// RequireBot fails when the settings needed to connect to Discord are missing.
func (c *Config) RequireBot() error {
	if c.DiscordToken == "" {
		return errors.New("config: DISCORD_TOKEN is required")
	}
	return nil
}

// validateStore enforces driver-specific requirements.
func (c *Config) validateStore() error {
	switch c.StoreDriver {
	case constants.DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("config: DATABASE_URL is required when STORE_DRIVER=postgres")
		}
	case constants.DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("config: SQLITE_PATH must not be empty when STORE_DRIVER=sqlite")
		}
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q (want %s or %s)",
			c.StoreDriver, constants.DriverPostgres, constants.DriverSQLite)
	}
	return nil
}

// SessionTTL returns how long an idle interactive panel survives.
// Zero means panels never expire.
func (c *Config) SessionTTL() time.Duration {
	if c.FormTimeout != nil {
		return *c.FormTimeout
	}
	if c.StoreDriver == constants.DriverSQLite {
		return constants.EmbeddedSessionTTL
	}
	return 0
}

// IsDevelopment reports whether the bot runs on a developer machine, where
// logs are written as text instead of JSON.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
