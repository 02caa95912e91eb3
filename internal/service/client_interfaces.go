// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-remote-config/internal/store"
	"github.com/MKhiriev/go-remote-config/models"
)

// RemoteConfigService is the client-side facade over the config store. It
// resolves typed values and runs the fetch/activate cycle against the
// remote backend.
type RemoteConfigService interface {
	// Bootstrap restores the last persisted activation, if any, on top of
	// the defaults. A missing activation is not an error.
	Bootstrap(ctx context.Context) error

	// FetchAndActivate fetches the remote set and activates it. It returns
	// true only if the active values changed. On failure it returns a
	// *models.FetchError and the store is left as it was.
	FetchAndActivate(ctx context.Context) (bool, error)

	// GetString returns the active value for key as a string, or "" if the
	// key is unknown.
	GetString(key string) string

	// GetBoolean returns the active value for key as a bool, or false if
	// the key is unknown or not coercible.
	GetBoolean(key string) bool

	// GetInteger returns the active value for key as an int64, or 0 if the
	// key is unknown or not coercible.
	GetInteger(key string) int64

	// GetFloat returns the active value for key as a float64, or 0 if the
	// key is unknown or not coercible.
	GetFloat(key string) float64

	// Snapshot returns the active generation.
	Snapshot() *store.Snapshot

	// Info returns the fetch diagnostics.
	Info() models.FetchInfo
}

// RefreshResult is the outcome of one completed refresh.
type RefreshResult struct {
	Changed bool
	Err     error

	// Background is set for refreshes started by the periodic job.
	Background bool
}

// Refresher owns the single in-flight refresh of the client. It keeps the
// busy flag that drives the refresh indicator and coalesces concurrent
// refresh requests into one fetch.
type Refresher interface {
	// Trigger starts a refresh on behalf of the user. The busy flag is set
	// before Trigger returns. It returns false, and does nothing, while a
	// triggered refresh is still running or after Close.
	Trigger() bool

	// RefreshAndWait runs a refresh, joining the in-flight one if there is
	// any, and waits for its result.
	RefreshAndWait(ctx context.Context) (bool, error)

	// Busy reports whether a triggered refresh is in progress.
	Busy() bool

	// Results delivers every completed refresh. Delivery never blocks; a
	// slow reader misses results. The channel is closed by Close.
	Results() <-chan RefreshResult

	// Close cancels the in-flight refresh and waits for it to return.
	// Results of refreshes cancelled this way are not delivered.
	Close()
}

// RefreshJob periodically refreshes the client in the background.
type RefreshJob interface {
	// Start launches the periodic refresh. A non-positive interval leaves
	// the job idle. Any previous run is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop stops the job and waits for it to exit.
	Stop()
}
