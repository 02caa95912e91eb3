// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the remote-config backend: the HTTP listener and the
// template file watcher, with signal handling and graceful shutdown.
package server
