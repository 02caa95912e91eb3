// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// remote-config server handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies in place of internal error details.
package app

const (
	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is either
	// expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAccessDenied is returned when a valid token lacks the admin role.
	MsgAccessDenied = "access denied"

	// MsgTooManyRequests is returned by the fetch rate limiter.
	MsgTooManyRequests = "too many requests"
)
