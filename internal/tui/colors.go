// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// namedColors are the color names Android's Color.parseColor understands.
var namedColors = map[string]lipgloss.Color{
	"black":     "#000000",
	"darkgray":  "#444444",
	"darkgrey":  "#444444",
	"gray":      "#888888",
	"grey":      "#888888",
	"lightgray": "#CCCCCC",
	"lightgrey": "#CCCCCC",
	"white":     "#FFFFFF",
	"red":       "#FF0000",
	"green":     "#00FF00",
	"blue":      "#0000FF",
	"yellow":    "#FFFF00",
	"cyan":      "#00FFFF",
	"magenta":   "#FF00FF",
	"aqua":      "#00FFFF",
	"fuchsia":   "#FF00FF",
	"lime":      "#00FF00",
	"maroon":    "#800000",
	"navy":      "#000080",
	"olive":     "#808000",
	"purple":    "#800080",
	"silver":    "#C0C0C0",
	"teal":      "#008080",
}

// parsePrimaryColor accepts "#RRGGBB", "#AARRGGBB" (alpha is dropped,
// terminals have none) and the Android color names, case-insensitively.
// Anything else falls back to the default primary color and reports false.
func parsePrimaryColor(s string) (lipgloss.Color, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		c, ok := namedColors[strings.ToLower(s)]
		if !ok {
			return defaultPrimaryColor, false
		}
		return c, true
	}

	hex := s[1:]
	switch len(hex) {
	case 6:
	case 8:
		hex = hex[2:]
	default:
		return defaultPrimaryColor, false
	}

	for _, c := range hex {
		if !isHexDigit(c) {
			return defaultPrimaryColor, false
		}
	}
	return lipgloss.Color("#" + strings.ToUpper(hex)), true
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
