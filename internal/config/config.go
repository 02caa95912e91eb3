// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by both
// binaries.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version, logging and the
	// admin token parameters.
	App App `envPrefix:"APP_"`

	// Storage holds the client's activation database and the backend's
	// template file settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the backend's listen address, timeouts and rate limit.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the backend.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the terminal client writes its logs.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// TokenSignKey signs and verifies admin JWTs for the publish endpoint.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of admin tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of issued admin tokens.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the persistence settings.
type Storage struct {
	// DB is the client's local SQLite database.
	DB DB `envPrefix:"DB_"`

	// Template is the backend's published template file.
	Template Template `envPrefix:"TEMPLATE_"`
}

// DB holds connection settings for the client's SQLite database.
type DB struct {
	// DSN is the SQLite file path. Empty disables activation persistence.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Template holds settings of the backend's template file.
type Template struct {
	// Path is the YAML file holding the published template.
	// Env: STORAGE_TEMPLATE_PATH
	Path string `env:"PATH"`

	// ReloadDebounce coalesces bursts of file events into one reload.
	// Env: STORAGE_TEMPLATE_RELOAD_DEBOUNCE
	ReloadDebounce time.Duration `env:"RELOAD_DEBOUNCE"`
}

// Server holds network settings of the backend.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the number of config fetches allowed per client IP
	// within RateWindow. Requests above it are answered with 429.
	// Env: SERVER_RATE_LIMIT
	RateLimit int `env:"RATE_LIMIT"`

	// RateWindow is the rate limiting window.
	// Env: SERVER_RATE_WINDOW
	RateWindow time.Duration `env:"RATE_WINDOW"`
}

// Adapter holds the client's connection settings to the backend.
type Adapter struct {
	// BaseURL is the backend root, e.g. "http://localhost:8080". A bare
	// host:port is accepted and treated as http.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds one fetch round trip.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval is the period of the background refresh job.
	// Zero disables it; the client then refreshes only at start-up and on
	// user request.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// defaultConfig is merged last, so it only fills fields no other source set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:       "dev",
			LogLevel:      "info",
			TokenIssuer:   "go-remote-config",
			TokenDuration: 24 * time.Hour,
		},
		Storage: Storage{
			Template: Template{
				Path:           "remote_config_template.yaml",
				ReloadDebounce: 250 * time.Millisecond,
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 10 * time.Second,
			RateLimit:      60,
			RateWindow:     time.Minute,
		},
		Adapter: Adapter{
			BaseURL:        "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources
// (see the package documentation for precedence).
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
