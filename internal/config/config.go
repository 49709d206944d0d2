// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging defaults, environment variables, flags and an
// optional config file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Workers Workers `envPrefix:"WORKERS_"`

	// ConfigFilePath is the optional path to a JSON or TOML config file.
	// Env: CONFIG, flag: -c / --config.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey signs and verifies key-value proxy write tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim expected on write tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of tokens minted by the server. Zero
	// mints tokens without expiry.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is reported by GET /api/info.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is where the client writes its rotated log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the database connection string. The client always uses a
// SQLite file; the server uses PostgreSQL for postgres:// DSNs and SQLite
// otherwise.
// Env: STORAGE_DB_DATABASE_URI
type DB struct {
	DSN string `env:"DATABASE_URI"`
}

// Server holds the key-value proxy listener settings.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter configures the remote document store client.
type Adapter struct {
	// Driver is "rest" (resty) or "github" (go-github).
	// Env: ADAPTER_DRIVER
	Driver string `env:"DRIVER"`

	// HTTPAddress is the API base URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit caps outbound requests per second; zero disables it.
	// Env: ADAPTER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`
}

// Workers holds background worker timing.
type Workers struct {
	// AutoSyncDelay is the quiet period before an automatic push.
	// Env: WORKERS_AUTO_SYNC_DELAY
	AutoSyncDelay time.Duration `env:"AUTO_SYNC_DELAY"`

	// BootstrapDelay is the wait before the start-up pull.
	// Env: WORKERS_BOOTSTRAP_DELAY
	BootstrapDelay time.Duration `env:"BOOTSTRAP_DELAY"`
}
