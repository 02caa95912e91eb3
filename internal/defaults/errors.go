// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package defaults

import (
	"errors"
	"fmt"
)

// ErrEmptyResource is returned when the defaults resource holds no document.
var ErrEmptyResource = errors.New("defaults resource is empty")

// ConfigLoadError reports a malformed defaults resource. It is fatal: no
// partially loaded table is ever returned alongside it.
type ConfigLoadError struct {
	// Source names the resource that failed (embedded name or file path).
	Source string
	Err    error
}

func (e *ConfigLoadError) Error() string {
	return fmt.Sprintf("load defaults from %s: %v", e.Source, e.Err)
}

func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}
