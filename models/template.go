// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Template is the published value set served by the configuration backend.
type Template struct {
	// Version increases by one on every publish.
	Version int64 `yaml:"version" json:"version"`

	// UpdatedAt is when the template was last published.
	UpdatedAt time.Time `yaml:"updated_at" json:"updated_at"`

	// Entries are the declared values, stored in the same (key, type, value)
	// form as the bundled defaults.
	Entries []Entry `yaml:"entries" json:"entries"`
}

// PublishRequest is the body of an admin publish call. Values replace the
// whole published set.
type PublishRequest struct {
	Values map[string]Value `json:"values"`
}

// PublishedTemplate is a template ready to be served: the response body is
// encoded once per version and shared by every fetch.
type PublishedTemplate struct {
	Template Template

	// Values is the typed form of Template.Entries.
	Values map[string]Value

	// Body is the encoded [FetchResponse] served to clients.
	Body []byte

	// ETag is the quoted entity tag of Body.
	ETag string
}
