// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the remote-config
// backend.
//
// [RemoteConfigAdapter] decouples the service layer from HTTP. Transport
// failures and unexpected statuses are reported as *[models.FetchError] so
// callers classify them with [errors.Is] against [models.ErrNetwork],
// [models.ErrParse] and [models.ErrThrottled].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-remote-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_config_adapter_mock.go -package=mock

// RemoteConfigAdapter fetches the published value set from the backend.
type RemoteConfigAdapter interface {
	// Fetch retrieves the current value set. When etag is non-empty the
	// request is conditional and an unchanged set comes back with
	// NotModified set and no values.
	Fetch(ctx context.Context, etag string) (models.FetchResponse, error)
}
