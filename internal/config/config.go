// Copyright (c) 2026 IESP App Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"IGREJA_DB_PATH" envDefault:"./data/igreja.db"`
	SessionSecret string `env:"IGREJA_SESSION_SECRET,required"`
	ServerHost    string `env:"IGREJA_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"IGREJA_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"IGREJA_ENV" envDefault:"development"`
	LogLevel      string `env:"IGREJA_LOG_LEVEL" envDefault:"info"`

	// WebOrigins is the comma-separated CORS allow-list. Tokens may contain
	// wildcards ("*.vercel.app") or be bare hosts ("localhost:5173").
	WebOrigins []string `env:"IGREJA_WEB_ORIGIN" envSeparator:","`

	// Object storage (S3-compatible) for gallery media.
	StorageEndpoint  string `env:"IGREJA_STORAGE_ENDPOINT"`
	StorageRegion    string `env:"IGREJA_STORAGE_REGION" envDefault:"us-east-1"`
	StorageAccessKey string `env:"IGREJA_STORAGE_ACCESS_KEY"`
	StorageSecretKey string `env:"IGREJA_STORAGE_SECRET_KEY"`
	StorageBucket    string `env:"IGREJA_STORAGE_BUCKET" envDefault:"gallery"`
	StoragePublicURL string `env:"IGREJA_STORAGE_PUBLIC_URL"`

	// Cache configuration
	RedisURL     string `env:"IGREJA_REDIS_URL"` // Optional Redis URL for distributed caching
	CachePrefix  string `env:"IGREJA_CACHE_PREFIX" envDefault:"igreja:"`
	CacheTTL     int    `env:"IGREJA_CACHE_TTL" envDefault:"300"`       // Default cache TTL in seconds
	CacheMaxSize int    `env:"IGREJA_CACHE_MAX_SIZE" envDefault:"1000"` // Max memory cache entries

	// OrphanGraceMinutes is the grace window for the orphan sweep. Uploaded
	// objects older than this with no referencing gallery row are deleted.
	OrphanGraceMinutes int `env:"IGREJA_ORPHAN_GRACE_MINUTES" envDefault:"60"`

	// Seeding configuration
	DoSeed bool `env:"IGREJA_DO_SEED" envDefault:"false"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// StorageEnabled returns true if object storage is configured.
func (c Config) StorageEnabled() bool {
	return c.StorageEndpoint != "" && c.StorageAccessKey != ""
}

// MinSessionSecretLength is the minimum required length for the session
// secret. The cookie HMAC key should carry at least 256 bits of entropy.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("IGREJA_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("IGREJA_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	for i, origin := range cfg.WebOrigins {
		cfg.WebOrigins[i] = strings.TrimSpace(origin)
	}

	return cfg, nil
}
