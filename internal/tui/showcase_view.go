// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-remote-config/models"
	"github.com/charmbracelet/lipgloss"
)

// configReader is the read side of the remote config client.
type configReader interface {
	GetString(key string) string
	GetBoolean(key string) bool
	GetInteger(key string) int64
	GetFloat(key string) float64
}

// renderShowcase renders every card from the current values. Banners are
// only shown while their controlling key asks for them.
func renderShowcase(r configReader, width int) string {
	primary, _ := parsePrimaryColor(r.GetString(models.PrimaryColorKey))

	sections := []string{renderHeader(primary, width)}

	if msg := r.GetString(models.EmergencyMessageKey); msg != "" {
		sections = append(sections, renderBanner(emergencyColor, "⚠ "+msg, width))
	}
	if r.GetBoolean(models.MaintenanceModeKey) {
		sections = append(sections, renderBanner(maintenanceColor, "🔧 Maintenance Mode Active - App is under maintenance", width))
	}
	if r.GetBoolean(models.ShowAnnouncementKey) {
		sections = append(sections, renderBanner(announcementColor, "📣 "+r.GetString(models.AnnouncementTextKey), width))
	}

	sections = append(sections,
		renderBasicsCard(r, width),
		renderThemeCard(r, primary, width),
		renderABTestingCard(r, width),
		renderFeatureFlagsCard(r, width),
		renderDynamicContentCard(r, width),
		renderPerformanceCard(r, width),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderHeader(primary lipgloss.Color, width int) string {
	header := lipgloss.JoinVertical(lipgloss.Center,
		"🚀 Remote Config",
		"Live Demo Showcase",
	)
	return sized(bannerStyle(primary).Padding(1, 2).Align(lipgloss.Center), width).Render(header)
}

func renderBanner(bg lipgloss.Color, text string, width int) string {
	return sized(bannerStyle(bg), width).Render(text)
}

func renderCard(title string, width int, lines ...string) string {
	body := append([]string{titleStyle.Render(title)}, lines...)
	return sized(cardStyle, width).Render(lipgloss.JoinVertical(lipgloss.Left, body...))
}

func renderBasicsCard(r configReader, width int) string {
	return renderCard("👋 Welcome", width,
		r.GetString(models.WelcomeMessageKey),
		row("Feature flag", onOff(r.GetBoolean(models.FeatureFlagKey))),
		row("API URL", valueOrDash(r.GetString(models.APIBaseURLKey))),
		row("App version", valueOrDash(r.GetString(models.AppVersionKey))),
		row("Max retry attempts", r.GetInteger(models.MaxRetryAttemptsKey)),
		row("Debug logging", onOff(r.GetBoolean(models.EnableDebugLoggingKey))),
	)
}

func renderThemeCard(r configReader, primary lipgloss.Color, width int) string {
	swatch := lipgloss.NewStyle().Background(primary).Render("      ")
	return renderCard("🎨 Dynamic Theme Control", width,
		row("Theme", valueOrDash(r.GetString(models.AppThemeKey))),
		row("Primary color", string(primary))+" "+swatch,
		row("Animations", onOff(r.GetBoolean(models.EnableAnimationsKey))),
	)
}

func renderABTestingCard(r configReader, width int) string {
	return renderCard("🧪 A/B Testing Demo", width,
		row("Button Style", valueOrDash(r.GetString(models.ButtonStyleKey))),
		row("Onboarding", valueOrDash(r.GetString(models.OnboardingVariantKey))),
		row("Checkout Flow", valueOrDash(r.GetString(models.CheckoutFlowKey))),
	)
}

func renderFeatureFlagsCard(r configReader, width int) string {
	return renderCard("🚩 Feature Flags", width,
		flagLine("Premium Features", r.GetBoolean(models.ShowPremiumFeaturesKey)),
		flagLine("Analytics", r.GetBoolean(models.EnableAnalyticsKey)),
	)
}

func flagLine(label string, enabled bool) string {
	color, mark := flagOffColor, "✗"
	if enabled {
		color, mark = flagOnColor, "✓"
	}
	state := lipgloss.NewStyle().Bold(true).Foreground(color).Render(mark + " " + onOff(enabled))
	return labelStyle.Render(label+": ") + state
}

func renderDynamicContentCard(r configReader, width int) string {
	var lines []string

	if discount := r.GetInteger(models.DiscountPercentageKey); discount > 0 {
		lines = append(lines, bannerStyle(discountColor).Render(fmt.Sprintf("🔥 %d%% OFF!", discount)))
	}

	lines = append(lines,
		row("Featured", valueOrDash(r.GetString(models.FeaturedProductKey))),
		row("Max items per page", r.GetInteger(models.MaxItemsPerPageKey)),
		row("Promo banner ratio", strconv.FormatFloat(r.GetFloat(models.PromoBannerRatioKey), 'f', -1, 64)),
	)

	return renderCard("📦 Dynamic Content", width, lines...)
}

func renderPerformanceCard(r configReader, width int) string {
	return renderCard("⚡ Performance Metrics", width,
		row("API Timeout", fmt.Sprintf("%ds", r.GetInteger(models.APITimeoutSecondsKey))),
		row("Max Upload", fmt.Sprintf("%d MB", r.GetInteger(models.MaxFileUploadMBKey))),
		row("Cache Duration", fmt.Sprintf("%dh", r.GetInteger(models.CacheDurationHoursKey))),
	)
}
