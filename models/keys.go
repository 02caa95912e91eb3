// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "sort"

// Known configuration keys. The set is closed for rendering purposes, but
// the store and accessors accept any key: unknown keys resolve to the zero
// value of the requested type.
const (
	// Basic configuration.
	WelcomeMessageKey     = "welcome_message"
	FeatureFlagKey        = "feature_flag_enabled"
	APIBaseURLKey         = "api_base_url"
	AppVersionKey         = "app_version"
	MaxRetryAttemptsKey   = "max_retry_attempts"
	CacheDurationHoursKey = "cache_duration_hours"
	EnableDebugLoggingKey = "enable_debug_logging"

	// Dynamic theme and UI.
	AppThemeKey            = "app_theme"
	PrimaryColorKey        = "primary_color"
	ShowPremiumFeaturesKey = "show_premium_features"
	EnableAnimationsKey    = "enable_animations"

	// A/B testing.
	ButtonStyleKey       = "button_style"
	OnboardingVariantKey = "onboarding_variant"
	CheckoutFlowKey      = "checkout_flow"

	// Emergency and notifications.
	EmergencyMessageKey = "emergency_message"
	MaintenanceModeKey  = "maintenance_mode"
	ShowAnnouncementKey = "show_announcement"
	AnnouncementTextKey = "announcement_text"

	// Dynamic content.
	FeaturedProductKey    = "featured_product"
	DiscountPercentageKey = "discount_percentage"
	MaxItemsPerPageKey    = "max_items_per_page"
	PromoBannerRatioKey   = "promo_banner_ratio"

	// Performance and limits.
	APITimeoutSecondsKey = "api_timeout_seconds"
	MaxFileUploadMBKey   = "max_file_upload_mb"
	EnableAnalyticsKey   = "enable_analytics"
)

// KeySpec describes a catalog entry: the key and the type its consumers
// read it as.
type KeySpec struct {
	Key  string
	Type ValueType
}

// KnownKeys is the catalog of keys the client renders, in display order.
var KnownKeys = []KeySpec{
	{WelcomeMessageKey, TypeString},
	{FeatureFlagKey, TypeBoolean},
	{APIBaseURLKey, TypeString},
	{AppVersionKey, TypeString},
	{MaxRetryAttemptsKey, TypeInteger},
	{CacheDurationHoursKey, TypeInteger},
	{EnableDebugLoggingKey, TypeBoolean},

	{AppThemeKey, TypeString},
	{PrimaryColorKey, TypeString},
	{ShowPremiumFeaturesKey, TypeBoolean},
	{EnableAnimationsKey, TypeBoolean},

	{ButtonStyleKey, TypeString},
	{OnboardingVariantKey, TypeString},
	{CheckoutFlowKey, TypeString},

	{EmergencyMessageKey, TypeString},
	{MaintenanceModeKey, TypeBoolean},
	{ShowAnnouncementKey, TypeBoolean},
	{AnnouncementTextKey, TypeString},

	{FeaturedProductKey, TypeString},
	{DiscountPercentageKey, TypeInteger},
	{MaxItemsPerPageKey, TypeInteger},
	{PromoBannerRatioKey, TypeFloat},

	{APITimeoutSecondsKey, TypeInteger},
	{MaxFileUploadMBKey, TypeInteger},
	{EnableAnalyticsKey, TypeBoolean},
}

// LookupKeySpec returns the catalog entry for key.
func LookupKeySpec(key string) (KeySpec, bool) {
	for _, spec := range KnownKeys {
		if spec.Key == key {
			return spec, true
		}
	}
	return KeySpec{}, false
}

// SortedKeys returns the keys of values in display order: catalog keys in
// catalog order, followed by the remaining keys sorted alphabetically.
func SortedKeys[V any](values map[string]V) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(KnownKeys))

	for _, spec := range KnownKeys {
		seen[spec.Key] = struct{}{}
		if _, ok := values[spec.Key]; ok {
			out = append(out, spec.Key)
		}
	}

	var extra []string
	for key := range values {
		if _, ok := seen[key]; !ok {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)

	return append(out, extra...)
}
