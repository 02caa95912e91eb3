// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-remote-config/internal/defaults"
	"github.com/MKhiriev/go-remote-config/models"
)

// Snapshot is one immutable generation of the config store.
// Readers holding a Snapshot never observe later replacements.
type Snapshot struct {
	// Generation is 0 for the seeded defaults and grows by one with every
	// replacement.
	Generation uint64

	// TemplateVersion is the server template version the generation was
	// activated from (0 for defaults).
	TemplateVersion int64

	values map[string]models.Value
}

// Get returns the value stored for key in this generation.
func (s *Snapshot) Get(key string) (models.Value, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Len returns the number of keys in the generation.
func (s *Snapshot) Len() int {
	return len(s.values)
}

// Values returns a copy of the generation's mapping.
func (s *Snapshot) Values() map[string]models.Value {
	out := make(map[string]models.Value, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// ConfigStore holds the active value for every known key.
//
// Reads go through an atomically swapped immutable snapshot and never block.
// Writers are serialized by mu, so concurrent replacements apply one after
// another in the order they acquire the lock and each reader observes
// exactly one complete generation.
type ConfigStore struct {
	mu   sync.Mutex
	snap atomic.Pointer[Snapshot]
}

// NewConfigStore seeds a store from the default table (generation 0).
func NewConfigStore(table *defaults.Table) *ConfigStore {
	s := &ConfigStore{}
	s.snap.Store(&Snapshot{values: table.Values()})
	return s
}

// Get returns the current value for key, or false if the key was never
// seeded nor fetched.
func (s *ConfigStore) Get(key string) (models.Value, bool) {
	return s.snap.Load().Get(key)
}

// Snapshot returns the current generation.
func (s *ConfigStore) Snapshot() *Snapshot {
	return s.snap.Load()
}

// ReplaceAll merges values over the current generation and swaps the result
// in as a new generation. Keys missing from values keep their previous
// value. The swap happens even when nothing changed.
func (s *ConfigStore) ReplaceAll(values map[string]models.Value) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.snap.Load()
	s.snap.Store(merge(cur, values, cur.TemplateVersion))
}

// Activate is ReplaceAll guarded by a change check performed inside the
// same critical section: if merging values would leave every key as it is,
// the store is not touched and false is returned. The returned snapshot is
// the generation that holds values once Activate returns.
func (s *ConfigStore) Activate(values map[string]models.Value, templateVersion int64) (*Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.snap.Load()
	if !changes(cur, values) {
		return cur, false
	}

	next := merge(cur, values, templateVersion)
	s.snap.Store(next)
	return next, true
}

// Restore installs a previously persisted generation over the defaults. It
// keeps the persisted generation number so that diagnostics stay monotonic
// across restarts.
func (s *ConfigStore) Restore(values map[string]models.Value, generation uint64, templateVersion int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := merge(s.snap.Load(), values, templateVersion)
	if generation > next.Generation {
		next.Generation = generation
	}
	s.snap.Store(next)
}

func changes(cur *Snapshot, values map[string]models.Value) bool {
	for k, v := range values {
		old, ok := cur.values[k]
		if !ok || !old.Equal(v) {
			return true
		}
	}
	return false
}

func merge(cur *Snapshot, values map[string]models.Value, templateVersion int64) *Snapshot {
	next := make(map[string]models.Value, len(cur.values)+len(values))
	for k, v := range cur.values {
		next[k] = v
	}
	for k, v := range values {
		next[k] = v
	}

	return &Snapshot{
		Generation:      cur.Generation + 1,
		TemplateVersion: templateVersion,
		values:          next,
	}
}
