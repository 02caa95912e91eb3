// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Activation is a persisted copy of an activated store generation. The client
// replays the most recent one over the defaults on start-up so that a fetched
// configuration survives restarts without network access.
type Activation struct {
	Generation      uint64
	TemplateVersion int64
	ActivatedAt     time.Time
	Values          map[string]Value
}
