// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the remote-config backend.
//
// It serves the published template to clients with entity-tag
// revalidation and per-client rate limiting, accepts admin publishes
// behind bearer-token authentication, and exposes version and Prometheus
// endpoints. Tracing, access logging and compression are handled here
// before requests reach the service layer.
package http
