// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.args = args
	return b
}

// ── build ────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newTestBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newTestBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// ── precedence ───────────────────────────────────────────────────────────────

func TestBuilder_FlagsBeatEnvBeatJSONBeatDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{
		"adapter": {"base_url": "http://json", "request_timeout": "7s"},
		"app": {"log_level": "error"},
		"workers": {"refresh_interval": "1m"}
	}`), 0o600))

	t.Setenv("ADAPTER_BASE_URL", "http://env")
	t.Setenv("APP_LOG_LEVEL", "warn")
	t.Setenv("CONFIG", p)

	cfg, err := newTestBuilder("-server-url", "http://flag").
		withFlags().
		withEnv().
		withJSON().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "http://flag", cfg.Adapter.BaseURL)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress, "defaults fill the rest")
}

func TestBuilder_JSONErrorIsCollected(t *testing.T) {
	t.Setenv("CONFIG", filepath.Join(t.TempDir(), "missing.json"))

	_, err := newTestBuilder().withFlags().withEnv().withJSON().build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occured during building config")
}

func TestBuilder_FlagErrorIsCollected(t *testing.T) {
	_, err := newTestBuilder("-rate-limit", "many").withFlags().build()
	require.Error(t, err)
}

// ── views and validation ─────────────────────────────────────────────────────

func TestClientConfig_DefaultsAreValid(t *testing.T) {
	cfg := newClientConfig(defaultConfig())

	require.NoError(t, cfg.validate())
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.BaseURL)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Workers.RefreshInterval)
}

func TestClientConfig_Validate(t *testing.T) {
	cfg := newClientConfig(defaultConfig())
	cfg.Adapter.BaseURL = " "
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg = newClientConfig(defaultConfig())
	cfg.Workers.RefreshInterval = -time.Second
	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
}

func TestServerConfig_Validate(t *testing.T) {
	valid := func() *ServerConfig {
		c := newServerConfig(defaultConfig())
		c.App.TokenSignKey = "secret"
		return c
	}

	require.NoError(t, valid().validate())

	tests := []struct {
		name    string
		mutate  func(c *ServerConfig)
		wantErr error
	}{
		{"missing sign key", func(c *ServerConfig) { c.App.TokenSignKey = "" }, ErrInvalidAppConfigs},
		{"missing address", func(c *ServerConfig) { c.HTTP.HTTPAddress = "" }, ErrInvalidServerConfigs},
		{"negative rate limit", func(c *ServerConfig) { c.HTTP.RateLimit = -1 }, ErrInvalidServerConfigs},
		{"rate limit without window", func(c *ServerConfig) { c.HTTP.RateWindow = 0 }, ErrInvalidServerConfigs},
		{"missing template", func(c *ServerConfig) { c.Template.Path = "" }, ErrInvalidStorageConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.True(t, errors.Is(c.validate(), tt.wantErr))
		})
	}
}
