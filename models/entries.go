// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
)

// Entry is one declarative (key, type, value) triple as found in the bundled
// defaults resource and in the server template file.
type Entry struct {
	Key   string `yaml:"key" json:"key"`
	Type  string `yaml:"type" json:"type"`
	Value string `yaml:"value" json:"value"`
}

// Entry validation errors.
var (
	ErrEmptyKey     = errors.New("empty key")
	ErrDuplicateKey = errors.New("duplicate key")
)

// EntriesToValues converts declared entries into typed values.
// It rejects empty keys, duplicates, unknown types and literals that do
// not match their declared type. Either every entry converts or none does.
func EntriesToValues(entries []Entry) (map[string]Value, error) {
	values := make(map[string]Value, len(entries))

	for i, e := range entries {
		key := strings.TrimSpace(e.Key)
		if key == "" {
			return nil, fmt.Errorf("entry #%d: %w", i, ErrEmptyKey)
		}
		if _, exists := values[key]; exists {
			return nil, fmt.Errorf("entry #%d (%s): %w", i, key, ErrDuplicateKey)
		}

		t, err := ParseValueType(e.Type)
		if err != nil {
			return nil, fmt.Errorf("entry #%d (%s): %w", i, key, err)
		}

		v, err := ParseValue(t, e.Value)
		if err != nil {
			return nil, fmt.Errorf("entry #%d (%s): %w", i, key, err)
		}

		values[key] = v
	}

	return values, nil
}

// ValuesToEntries is the inverse of [EntriesToValues]. The output is ordered
// by the key catalog first, then alphabetically for keys outside it.
func ValuesToEntries(values map[string]Value) []Entry {
	entries := make([]Entry, 0, len(values))
	for _, key := range SortedKeys(values) {
		v := values[key]
		entries = append(entries, Entry{Key: key, Type: v.Type.String(), Value: v.AsString()})
	}
	return entries
}
