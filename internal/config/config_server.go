// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerApp holds backend application settings.
type ServerApp struct {
	Version       string
	LogLevel      string
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// ServerHTTP holds the backend listener settings.
type ServerHTTP struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	RateLimit      int
	RateWindow     time.Duration
}

// ServerTemplate holds the template file settings.
type ServerTemplate struct {
	Path           string
	ReloadDebounce time.Duration
}

// ServerConfig is the configuration of cmd/server and cmd/admintoken.
type ServerConfig struct {
	App      ServerApp
	HTTP     ServerHTTP
	Template ServerTemplate
}

// GetServerConfig builds and validates the backend view of the merged
// configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App: ServerApp{
			Version:       cfg.App.Version,
			LogLevel:      cfg.App.LogLevel,
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
		},
		HTTP: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
			RateLimit:      cfg.Server.RateLimit,
			RateWindow:     cfg.Server.RateWindow,
		},
		Template: ServerTemplate{
			Path:           cfg.Storage.Template.Path,
			ReloadDebounce: cfg.Storage.Template.ReloadDebounce,
		},
	}
}
