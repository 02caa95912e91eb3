// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// FetchStatus describes the outcome of the most recent fetch attempt.
// It is used for diagnostics and busy indicators only; value resolution
// never depends on it.
type FetchStatus int

const (
	// FetchNeverFetched is the initial status before any attempt.
	FetchNeverFetched FetchStatus = iota

	// FetchInProgress is set while a fetch round trip is running.
	FetchInProgress

	// FetchSucceeded is set after a fetch completed, whether or not it
	// activated new values.
	FetchSucceeded

	// FetchFailed is set after a fetch returned a [FetchError].
	FetchFailed
)

func (s FetchStatus) String() string {
	switch s {
	case FetchNeverFetched:
		return "never-fetched"
	case FetchInProgress:
		return "in-progress"
	case FetchSucceeded:
		return "succeeded"
	case FetchFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FetchInfo is a read-only view of the fetch state of the client.
type FetchInfo struct {
	// Status is the status of the latest fetch attempt.
	Status FetchStatus `json:"status"`

	// LastFetchTime is when the latest attempt finished (zero if none).
	LastFetchTime time.Time `json:"last_fetch_time"`

	// LastSuccessTime is when the latest successful attempt finished.
	LastSuccessTime time.Time `json:"last_success_time"`

	// LastErrorKind is the kind of the latest failure; empty after a success.
	LastErrorKind FetchErrorKind `json:"last_error_kind,omitempty"`

	// Generation is the generation number of the active store snapshot.
	// 0 means the defaults are active.
	Generation uint64 `json:"generation"`

	// TemplateVersion is the server-side version of the last activated set.
	TemplateVersion int64 `json:"template_version"`
}

// FetchResponse is the decoded body of a successful remote fetch.
type FetchResponse struct {
	// Version is the server-side template version the values belong to.
	Version int64 `json:"version"`

	// Values holds the fetched key/value pairs. A response need not list
	// every known key.
	Values map[string]Value `json:"values"`

	// ETag is the entity tag the server attached to the response. It is not
	// part of the body.
	ETag string `json:"-"`

	// NotModified is set when the server answered a conditional request with
	// 304; Values is empty in that case.
	NotModified bool `json:"-"`
}
