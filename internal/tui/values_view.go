// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-remote-config/internal/store"
	"github.com/MKhiriev/go-remote-config/models"
)

// valueLines lists the active values as "key = value", catalog keys first.
func valueLines(snap *store.Snapshot) []string {
	if snap == nil {
		return nil
	}

	values := snap.Values()
	lines := make([]string, 0, len(values))
	for _, key := range models.SortedKeys(values) {
		lines = append(lines, key+" = "+values[key].String())
	}
	return lines
}

// renderValues is the "Configuration Values" tab: every active key with its
// type, plus the generation the snapshot belongs to.
func renderValues(snap *store.Snapshot, width int) string {
	if snap == nil || snap.Len() == 0 {
		return renderCard("⚙️ Configuration Values", width, "no values")
	}

	values := snap.Values()
	lines := make([]string, 0, len(values)+1)
	lines = append(lines, labelStyle.Render(fmt.Sprintf("generation %d · template v%d", snap.Generation, snap.TemplateVersion)))

	keyWidth := 0
	for key := range values {
		keyWidth = max(keyWidth, len(key))
	}

	for _, key := range models.SortedKeys(values) {
		v := values[key]
		lines = append(lines, fmt.Sprintf("%s  %-7s  %s",
			labelStyle.Render(key+strings.Repeat(" ", keyWidth-len(key))),
			v.Type,
			valueStyle.Render(v.String()),
		))
	}

	return renderCard("⚙️ Configuration Values", width, lines...)
}
