// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-remote-config/models"
)

// AuthService issues and checks the bearer tokens that guard publishing.
type AuthService interface {
	CreateToken(ctx context.Context, subject string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// TemplateService owns the published template of the backend.
type TemplateService interface {
	// Current returns the template being served together with its
	// pre-encoded response body and entity tag.
	Current() models.PublishedTemplate

	// Publish replaces the whole published set with values, bumps the
	// version and writes the template file atomically.
	Publish(ctx context.Context, values map[string]models.Value) (models.PublishedTemplate, error)

	// Reload re-reads the template file. An invalid file keeps the template
	// currently served.
	Reload(ctx context.Context) error

	// Watch reloads the template whenever its file changes, until ctx is
	// done.
	Watch(ctx context.Context) error
}
