// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"math"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-remote-config/internal/logger"
	"github.com/go-chi/httprate"
)

// withRateLimit limits config fetches per client IP. Rejected requests get
// 429 with a Retry-After covering the whole window.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	retryAfter := strconv.Itoa(int(math.Ceil(h.rateWindow.Seconds())))

	return httprate.Limit(
		h.rateLimit,
		h.rateWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			logger.FromRequest(r).Warn().Str("remote_addr", r.RemoteAddr).Msg("config fetch throttled")

			w.Header().Set("Retry-After", retryAfter)
			writeError(w, ErrRateLimitExceeded)
		}),
	)(next)
}
