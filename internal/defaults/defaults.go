// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package defaults loads the bundled default value table.
//
// The table is a declarative list of (key, type, value) triples parsed once
// at start-up. It is immutable after loading and provides the fallback
// values the config store is seeded with before any fetch succeeds.
package defaults

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/MKhiriev/go-remote-config/models"
	"gopkg.in/yaml.v3"
)

//go:embed remote_config_defaults.yaml
var bundled []byte

const bundledSource = "bundled:remote_config_defaults.yaml"

// Table is the immutable default value mapping.
type Table struct {
	values map[string]models.Value
}

type document struct {
	Entries []models.Entry `yaml:"entries"`
}

// Load parses the defaults resource embedded in the binary.
func Load() (*Table, error) {
	return parse(bundledSource, bytes.NewReader(bundled))
}

// LoadFile parses a defaults resource from disk. It is used when the
// bundled table is overridden through configuration.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigLoadError{Source: path, Err: err}
	}
	defer f.Close()

	return parse(path, f)
}

// Parse reads a defaults resource from r.
func Parse(r io.Reader) (*Table, error) {
	return parse("reader", r)
}

func parse(source string, r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ConfigLoadError{Source: source, Err: ErrEmptyResource}
		}
		return nil, &ConfigLoadError{Source: source, Err: fmt.Errorf("decode yaml: %w", err)}
	}

	values, err := models.EntriesToValues(doc.Entries)
	if err != nil {
		return nil, &ConfigLoadError{Source: source, Err: err}
	}

	return &Table{values: values}, nil
}

// New builds a table from an in-memory mapping. The mapping is copied.
func New(values map[string]models.Value) *Table {
	copied := make(map[string]models.Value, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &Table{values: copied}
}

// Get returns the default for key.
func (t *Table) Get(key string) (models.Value, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Len returns the number of keys in the table.
func (t *Table) Len() int {
	return len(t.values)
}

// Keys returns the table keys in alphabetical order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.values))
	for k := range t.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns a copy of the whole mapping.
func (t *Table) Values() map[string]models.Value {
	out := make(map[string]models.Value, len(t.values))
	for k, v := range t.values {
		out[k] = v
	}
	return out
}
