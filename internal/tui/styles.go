// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

// Colors of the showcase cards.
const (
	defaultPrimaryColor = lipgloss.Color("#2196F3")
	emergencyColor      = lipgloss.Color("#F44336")
	maintenanceColor    = lipgloss.Color("#FF9800")
	announcementColor   = lipgloss.Color("#4CAF50")
	discountColor       = lipgloss.Color("#FF5722")
	flagOnColor         = lipgloss.Color("#4CAF50")
	flagOffColor        = lipgloss.Color("#F44336")
	white               = lipgloss.Color("#FFFFFF")
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(emergencyColor)
	statusStyle     = lipgloss.NewStyle().Italic(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	cardStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	labelStyle      = lipgloss.NewStyle().Faint(true)
	valueStyle      = lipgloss.NewStyle().Bold(true)
)

// bannerStyle is a filled full-width strip used for the alert banners.
func bannerStyle(bg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(white).Background(bg).Padding(0, 1)
}

// sized applies the terminal width to a block style; 0 keeps it natural.
func sized(s lipgloss.Style, width int) lipgloss.Style {
	if width <= 0 {
		return s
	}
	// borders and app padding
	return s.Width(max(width-8, 20))
}
