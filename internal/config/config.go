// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// MinJWTSecretLength is the minimum required length for the token signing
// secret. HS256 needs at least 32 bytes of key material.
const MinJWTSecretLength = 32

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"STARLEAP_DB_PATH" envDefault:"./data/starleap.db"`
	JWTSecret  string `env:"STARLEAP_JWT_SECRET,required"`
	ServerHost string `env:"STARLEAP_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"STARLEAP_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"STARLEAP_ENV" envDefault:"development"`
	LogLevel   string `env:"STARLEAP_LOG_LEVEL" envDefault:"info"`

	// Session token lifetime. Tokens self-invalidate at expiry; there is no
	// server-side revocation.
	TokenTTL time.Duration `env:"STARLEAP_TOKEN_TTL" envDefault:"168h"`

	// Upload configuration
	UploadsDir    string `env:"STARLEAP_UPLOADS_DIR" envDefault:"./uploads"`
	MaxUploadSize int64  `env:"STARLEAP_MAX_UPLOAD_SIZE" envDefault:"5000000"` // bytes

	// CORS origins allowed to call the API (the React admin console in
	// cross-origin deployments). Empty means same-origin only.
	CORSOrigins []string `env:"STARLEAP_CORS_ORIGINS" envSeparator:","`

	// Audit log retention. Events older than this are pruned daily;
	// zero keeps everything.
	EventRetention time.Duration `env:"STARLEAP_EVENT_RETENTION" envDefault:"2160h"`

	// Seeding configuration: create an initial super_admin on startup.
	DoSeed       bool   `env:"STARLEAP_DO_SEED" envDefault:"false"`
	SeedEmail    string `env:"STARLEAP_SEED_EMAIL" envDefault:"admin@example.com"`
	SeedPassword string `env:"STARLEAP_SEED_PASSWORD"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Validate signing secret length
	if len(cfg.JWTSecret) < MinJWTSecretLength {
		return nil, fmt.Errorf("STARLEAP_JWT_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinJWTSecretLength, len(cfg.JWTSecret))
	}

	// Reject known weak/default secrets
	for _, weak := range knownWeakSecrets {
		if cfg.JWTSecret == weak {
			return nil, fmt.Errorf("STARLEAP_JWT_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	// Warn about low-entropy secrets
	if !hasMinimumEntropy(cfg.JWTSecret) {
		slog.Warn("STARLEAP_JWT_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	if cfg.MaxUploadSize <= 0 {
		return nil, fmt.Errorf("STARLEAP_MAX_UPLOAD_SIZE must be positive, got %d", cfg.MaxUploadSize)
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
