// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-remote-config/internal/service"

type refreshResultMsg struct {
	result service.RefreshResult
}

// resultsClosedMsg is delivered once the refresher has been closed.
type resultsClosedMsg struct{}

type copiedMsg struct {
	count int
	err   error
}

type clearStatusMsg struct{}
