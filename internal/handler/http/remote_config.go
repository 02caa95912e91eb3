// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-remote-config/internal/logger"
	"github.com/MKhiriev/go-remote-config/internal/metrics"
	"github.com/MKhiriev/go-remote-config/internal/utils"
	"github.com/MKhiriev/go-remote-config/models"
)

// maxPublishBodySize bounds the publish request body.
const maxPublishBodySize = 1 << 20

type publishResponse struct {
	Version int64  `json:"version"`
	ETag    string `json:"etag"`
	Values  int    `json:"values"`
}

// getConfig serves the published template. A request whose If-None-Match
// matches the current entity tag gets 304 with no body.
func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	cur := h.services.TemplateService.Current()

	w.Header().Set("ETag", cur.ETag)
	w.Header().Set("Cache-Control", "no-cache")

	if etagMatches(r.Header.Get("If-None-Match"), cur.ETag) {
		metrics.RecordConfigServed(true)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	metrics.RecordConfigServed(false)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(cur.Body); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write config response")
	}
}

// publishConfig replaces the published template with the request values.
func (h *Handler) publishConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	subject, _ := utils.GetSubjectFromContext(r.Context())

	var req models.PublishRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPublishBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		if !errors.Is(err, models.ErrUnknownValueType) && !errors.Is(err, models.ErrValueTypeMismatch) {
			err = fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
		}
		log.Err(err).Str("subject", subject).Msg("rejected publish request")
		writeError(w, err)
		return
	}

	published, err := h.services.TemplateService.Publish(r.Context(), req.Values)
	if err != nil {
		log.Err(err).Str("subject", subject).Msg("publish failed")
		writeError(w, err)
		return
	}

	log.Info().Str("subject", subject).Int64("version", published.Template.Version).Msg("template published")

	w.Header().Set("ETag", published.ETag)
	if _, err = utils.WriteJSON(w, publishResponse{
		Version: published.Template.Version,
		ETag:    published.ETag,
		Values:  len(published.Values),
	}, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write publish response")
	}
}

// etagMatches implements the If-None-Match comparison: a list of tags or
// "*", compared weakly.
func etagMatches(header, etag string) bool {
	if header == "" || etag == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return true
		}
		if strings.TrimPrefix(candidate, "W/") == strings.TrimPrefix(etag, "W/") {
			return true
		}
	}
	return false
}
