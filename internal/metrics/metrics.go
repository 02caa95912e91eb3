// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics provides Prometheus metrics for the remote-config client
// and backend. Labels are limited to small closed sets; keys and values never
// become labels.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fetch outcomes used as the "outcome" label of FetchTotal.
const (
	OutcomeActivated = "activated"
	OutcomeUpToDate  = "up_to_date"
	OutcomeNetwork   = "network"
	OutcomeParse     = "parse"
	OutcomeThrottled = "throttled"
)

// Client side.
var (
	// FetchTotal counts finished fetch/activate operations by outcome.
	FetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "remote_config_fetch_total",
		Help: "Total number of fetch/activate operations, by outcome.",
	}, []string{"outcome"})

	// FetchDuration observes the fetch round trip, activation included.
	FetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "remote_config_fetch_duration_seconds",
		Help:    "Duration of fetch/activate operations.",
		Buckets: prometheus.DefBuckets,
	})

	// ActiveGeneration is the generation number of the active snapshot.
	ActiveGeneration = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "remote_config_active_generation",
		Help: "Generation number of the active config snapshot (0 = defaults).",
	})

	// RefreshSuppressedTotal counts refresh triggers that did not start a
	// fetch of their own, by reason ("busy" or "joined").
	RefreshSuppressedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "remote_config_refresh_suppressed_total",
		Help: "Refresh triggers dropped while busy or joined to an in-flight refresh.",
	}, []string{"reason"})
)

// Backend side.
var (
	// TemplateVersion is the version of the template being served.
	TemplateVersion = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "remote_config_template_version",
		Help: "Version of the currently served config template.",
	})

	// TemplateReloadTotal counts template file reloads by result.
	TemplateReloadTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "remote_config_template_reload_total",
		Help: "Template file reloads, by result (ok/error).",
	}, []string{"result"})

	// TemplatePublishTotal counts publish requests by result.
	TemplatePublishTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "remote_config_template_publish_total",
		Help: "Template publish requests, by result (ok/invalid/error).",
	}, []string{"result"})

	// ConfigServedTotal counts answered config fetches ("full" or
	// "not_modified").
	ConfigServedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "remote_config_served_total",
		Help: "Config fetches answered by the backend, by kind.",
	}, []string{"kind"})
)

// RecordFetch records one finished fetch/activate operation.
func RecordFetch(outcome string, d time.Duration) {
	FetchTotal.WithLabelValues(outcome).Inc()
	FetchDuration.Observe(d.Seconds())
}

// SetActiveGeneration publishes the active generation number.
func SetActiveGeneration(gen uint64) {
	ActiveGeneration.Set(float64(gen))
}

// RecordRefreshSuppressed records a trigger that did not start a fetch.
func RecordRefreshSuppressed(reason string) {
	RefreshSuppressedTotal.WithLabelValues(reason).Inc()
}

// RecordTemplateReload records the result of a template reload.
func RecordTemplateReload(ok bool, version int64) {
	if !ok {
		TemplateReloadTotal.WithLabelValues("error").Inc()
		return
	}
	TemplateReloadTotal.WithLabelValues("ok").Inc()
	TemplateVersion.Set(float64(version))
}

// RecordTemplatePublish records the result of a publish request.
func RecordTemplatePublish(result string) {
	TemplatePublishTotal.WithLabelValues(result).Inc()
}

// RecordConfigServed records an answered config fetch.
func RecordConfigServed(notModified bool) {
	if notModified {
		ConfigServedTotal.WithLabelValues("not_modified").Inc()
		return
	}
	ConfigServedTotal.WithLabelValues("full").Inc()
}
