// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrInvalidBaseURL is returned by the constructor for an unusable
	// backend address.
	ErrInvalidBaseURL = errors.New("invalid backend base url")

	// ErrUnexpectedStatus wraps non-2xx responses other than 304 and 429.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)
