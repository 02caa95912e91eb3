// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	refresh key.Binding
	copy    key.Binding
	values  key.Binding
	info    key.Binding
	esc     key.Binding
	quit    key.Binding
}

var keys = keyMap{
	refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy values")),
	values:  key.NewBinding(key.WithKeys("v", "tab"), key.WithHelp("v", "values")),
	info:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "about")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// helpLine renders the hotkeys of the main screen.
func helpLine() string {
	bindings := []key.Binding{keys.refresh, keys.values, keys.copy, keys.info, keys.quit}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " · "))
}
