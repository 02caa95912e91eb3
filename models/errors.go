// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"time"
)

// Value decoding errors.
var (
	// ErrUnknownValueType is returned when a type name or discriminant is
	// not one of string, boolean, integer or float.
	ErrUnknownValueType = errors.New("unknown value type")

	// ErrValueTypeMismatch is returned when a literal cannot be represented
	// as its declared type (e.g. "abc" declared as integer).
	ErrValueTypeMismatch = errors.New("value does not match its declared type")
)

// FetchErrorKind classifies fetch failures.
type FetchErrorKind string

const (
	// FetchErrorNetwork covers transport failures and unexpected server
	// statuses.
	FetchErrorNetwork FetchErrorKind = "network"

	// FetchErrorParse covers responses whose body could not be decoded.
	FetchErrorParse FetchErrorKind = "parse"

	// FetchErrorThrottled covers responses rejected by server-side rate
	// limiting.
	FetchErrorThrottled FetchErrorKind = "throttled"
)

// Sentinels matching each [FetchErrorKind] through errors.Is.
var (
	ErrNetwork   = errors.New("remote config fetch: network error")
	ErrParse     = errors.New("remote config fetch: malformed response")
	ErrThrottled = errors.New("remote config fetch: throttled")
)

// FetchError is the only error returned by a failed fetch. The store is
// never modified when a FetchError is returned.
type FetchError struct {
	Kind FetchErrorKind

	// RetryAfter is the server-suggested back-off for throttled responses.
	RetryAfter time.Duration

	Err error
}

// NewFetchError wraps err into a FetchError of the given kind.
func NewFetchError(kind FetchErrorKind, err error) *FetchError {
	return &FetchError{Kind: kind, Err: err}
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("remote config fetch failed (%s)", e.Kind)
	}
	return fmt.Sprintf("remote config fetch failed (%s): %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels, so errors.Is(err, ErrThrottled) works on
// any wrapped FetchError.
func (e *FetchError) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return e.Kind == FetchErrorNetwork
	case ErrParse:
		return e.Kind == FetchErrorParse
	case ErrThrottled:
		return e.Kind == FetchErrorThrottled
	}
	return false
}

// FetchErrorKindOf returns the kind of the FetchError wrapped in err, or an
// empty kind if err does not wrap one.
func FetchErrorKindOf(err error) FetchErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}
