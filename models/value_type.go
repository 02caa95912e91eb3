// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// ValueType is the discriminant of a [Value].
// It determines which of the typed fields of a Value carries the payload.
type ValueType int

const (
	// TypeString marks a free-form text value.
	TypeString ValueType = 1

	// TypeBoolean marks a flag value.
	TypeBoolean ValueType = 2

	// TypeInteger marks a signed 64-bit integer value.
	TypeInteger ValueType = 3

	// TypeFloat marks a double-precision floating point value.
	TypeFloat ValueType = 4
)

var valueTypeNames = map[ValueType]string{
	TypeString:  "string",
	TypeBoolean: "boolean",
	TypeInteger: "integer",
	TypeFloat:   "float",
}

// String returns the wire name of the type ("string", "boolean",
// "integer", "float") or "unknown" for an invalid discriminant.
func (t ValueType) String() string {
	if name, ok := valueTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether t is one of the four supported discriminants.
func (t ValueType) Valid() bool {
	_, ok := valueTypeNames[t]
	return ok
}

// ParseValueType converts a wire name back into a [ValueType].
// Matching is case-insensitive; "bool", "int", "long" and "double" are
// accepted as aliases.
func ParseValueType(s string) (ValueType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "string":
		return TypeString, nil
	case "boolean", "bool":
		return TypeBoolean, nil
	case "integer", "int", "long":
		return TypeInteger, nil
	case "float", "double":
		return TypeFloat, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownValueType, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t ValueType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownValueType, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ValueType) UnmarshalText(b []byte) error {
	parsed, err := ParseValueType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
