// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-remote-config/internal/config"
	"github.com/MKhiriev/go-remote-config/internal/logger"
	"github.com/MKhiriev/go-remote-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTemplate = `version: 3
updated_at: 2026-01-02T03:04:05Z
entries:
  - {key: discount_percentage, type: integer, value: "25"}
  - {key: feature_flag_enabled, type: boolean, value: "true"}
  - {key: welcome_message, type: string, value: "Hello"}
`

func writeTemplate(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "template.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newTestTemplateSvc(t *testing.T, path string) *templateService {
	t.Helper()
	svc, err := NewTemplateService(config.ServerTemplate{Path: path, ReloadDebounce: 10 * time.Millisecond}, logger.Nop())
	require.NoError(t, err)
	return svc.(*templateService)
}

// ── NewTemplateService ───────────────────────────────────────────────────────

func TestNewTemplateService_LoadsFile(t *testing.T) {
	svc := newTestTemplateSvc(t, writeTemplate(t, t.TempDir(), sampleTemplate))

	cur := svc.Current()
	assert.Equal(t, int64(3), cur.Template.Version)
	assert.Equal(t, map[string]models.Value{
		models.DiscountPercentageKey: models.IntegerValue(25),
		models.FeatureFlagKey:        models.BooleanValue(true),
		models.WelcomeMessageKey:     models.StringValue("Hello"),
	}, cur.Values)
	assert.True(t, strings.HasPrefix(cur.ETag, `"`) && strings.HasSuffix(cur.ETag, `"`), "etag must be quoted: %s", cur.ETag)
	assert.JSONEq(t, `{"version":3,"values":{
		"discount_percentage":{"type":"integer","value":25},
		"feature_flag_enabled":{"type":"boolean","value":true},
		"welcome_message":{"type":"string","value":"Hello"}
	}}`, string(cur.Body))
}

func TestNewTemplateService_MissingFileServesEmptyTemplate(t *testing.T) {
	svc := newTestTemplateSvc(t, filepath.Join(t.TempDir(), "absent.yaml"))

	cur := svc.Current()
	assert.Equal(t, int64(0), cur.Template.Version)
	assert.JSONEq(t, `{"version":0,"values":{}}`, string(cur.Body))
}

func TestNewTemplateService_InvalidFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad literal", "version: 1\nentries:\n  - {key: a, type: integer, value: abc}\n"},
		{"unknown field", "version: 1\nowner: me\n"},
		{"syntax", "version: [1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemplate(t, t.TempDir(), tt.content)

			svc, err := NewTemplateService(config.ServerTemplate{Path: path}, logger.Nop())
			require.Error(t, err)
			assert.Nil(t, svc)
			assert.ErrorIs(t, err, ErrInvalidTemplate)
		})
	}
}

func TestNewTemplateService_EmptyPath(t *testing.T) {
	_, err := NewTemplateService(config.ServerTemplate{}, logger.Nop())
	assert.ErrorIs(t, err, ErrTemplatePathNotGiven)
}

// ── Publish ──────────────────────────────────────────────────────────────────

func TestTemplateService_Publish_ReplacesSetAndBumpsVersion(t *testing.T) {
	path := writeTemplate(t, t.TempDir(), sampleTemplate)
	svc := newTestTemplateSvc(t, path)
	before := svc.Current()

	published, err := svc.Publish(context.Background(), map[string]models.Value{
		models.DiscountPercentageKey: models.IntegerValue(40),
		models.PromoBannerRatioKey:   models.FloatValue(0.75),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4), published.Template.Version)
	assert.Equal(t, published, svc.Current())
	assert.NotEqual(t, before.ETag, published.ETag)
	assert.Equal(t, map[string]models.Value{
		models.DiscountPercentageKey: models.IntegerValue(40),
		models.PromoBannerRatioKey:   models.FloatValue(0.75),
	}, published.Values, "publish is a full replacement")

	// the file on disk must load back to the same template
	reloaded := newTestTemplateSvc(t, path)
	assert.Equal(t, published.ETag, reloaded.Current().ETag)
	assert.Equal(t, int64(4), reloaded.Current().Template.Version)
}

func TestTemplateService_Publish_Invalid(t *testing.T) {
	svc := newTestTemplateSvc(t, writeTemplate(t, t.TempDir(), sampleTemplate))
	before := svc.Current()

	_, err := svc.Publish(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidTemplate)
	assert.ErrorIs(t, err, ErrNoValuesToPublish)

	_, err = svc.Publish(context.Background(), map[string]models.Value{"broken": {}})
	assert.ErrorIs(t, err, ErrInvalidTemplate)

	_, err = svc.Publish(context.Background(), map[string]models.Value{" ": models.StringValue("x")})
	assert.ErrorIs(t, err, ErrInvalidTemplate)

	assert.Equal(t, before, svc.Current())
}

func TestTemplateService_Publish_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	svc := newTestTemplateSvc(t, filepath.Join(dir, "missing-dir", "template.yaml"))

	_, err := svc.Publish(context.Background(), map[string]models.Value{"a": models.StringValue("x")})
	assert.ErrorIs(t, err, ErrTemplateWriteFailed)
	assert.Equal(t, int64(0), svc.Current().Template.Version)
}

// ── Reload ───────────────────────────────────────────────────────────────────

func TestTemplateService_Reload_PicksUpEdits(t *testing.T) {
	dir := t.TempDir()
	path := writeTemplate(t, dir, sampleTemplate)
	svc := newTestTemplateSvc(t, path)

	writeTemplate(t, dir, "version: 7\nentries:\n  - {key: maintenance_mode, type: boolean, value: 'true'}\n")
	require.NoError(t, svc.Reload(context.Background()))

	cur := svc.Current()
	assert.Equal(t, int64(7), cur.Template.Version)
	assert.Equal(t, models.BooleanValue(true), cur.Values[models.MaintenanceModeKey])
}

func TestTemplateService_Reload_InvalidKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	path := writeTemplate(t, dir, sampleTemplate)
	svc := newTestTemplateSvc(t, path)
	before := svc.Current()

	writeTemplate(t, dir, "version: 8\nentries:\n  - {key: a, type: float, value: nope}\n")

	err := svc.Reload(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTemplate)
	assert.Equal(t, before, svc.Current())
}

// ── Watch ────────────────────────────────────────────────────────────────────

func TestTemplateService_Watch_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeTemplate(t, dir, sampleTemplate)
	svc := newTestTemplateSvc(t, path)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Watch(ctx) }()

	// fsnotify needs the watch registered before the write lands
	require.Eventually(t, func() bool {
		writeTemplate(t, dir, "version: 9\nentries:\n  - {key: app_theme, type: string, value: dark}\n")
		return svc.Current().Template.Version == 9
	}, 2*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
