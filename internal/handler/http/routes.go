// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	configPath  = "/api/v1/config"
	versionPath = "/api/version"
	metricsPath = "/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	router.Get(versionPath, h.getServerVersion)
	router.Handle(metricsPath, promhttp.Handler())

	// client fetches
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		if h.rateLimit > 0 {
			r.Use(h.withRateLimit)
		}
		r.Get(configPath, h.getConfig)
	})

	// admin publishes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Put(configPath, h.publishConfig)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
