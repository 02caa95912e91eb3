// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal showcase of the remote configuration.
//
// Every frame is rendered from the typed accessors, so whatever the config
// store holds at that moment is what the user sees. The "r" key requests a
// refresh through the Refresher; while it runs a spinner is shown and
// further requests are ignored.
package tui
