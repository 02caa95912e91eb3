// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-remote-config/internal/config"
	"github.com/MKhiriev/go-remote-config/internal/logger"
	"github.com/MKhiriev/go-remote-config/internal/utils"
	"github.com/MKhiriev/go-remote-config/models"
)

// ConfigPath is the backend route serving the published value set.
const ConfigPath = "/api/v1/config"

type httpRemoteConfigAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPRemoteConfigAdapter constructs the HTTP implementation of
// [RemoteConfigAdapter]. cfg.BaseURL may omit the scheme, in which case
// http is assumed.
func NewHTTPRemoteConfigAdapter(cfg config.ClientAdapter, logger *logger.Logger) (RemoteConfigAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	return &httpRemoteConfigAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Fetch implements [RemoteConfigAdapter] with GET /api/v1/config.
func (h *httpRemoteConfigAdapter) Fetch(ctx context.Context, etag string) (models.FetchResponse, error) {
	req := h.client.R().SetContext(ctx)
	if etag != "" {
		req.SetHeader("If-None-Match", etag)
	}

	resp, err := req.Get(ConfigPath)
	if err != nil {
		h.logger.Debug().Err(err).Str("func", "httpRemoteConfigAdapter.Fetch").Msg("fetch request failed")
		return models.FetchResponse{}, models.NewFetchError(models.FetchErrorNetwork, fmt.Errorf("fetch request: %w", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FetchResponse{}, err
	}

	if resp.StatusCode() == http.StatusNotModified {
		return models.FetchResponse{ETag: etag, NotModified: true}, nil
	}

	var fr models.FetchResponse
	if err = json.Unmarshal(resp.Body(), &fr); err != nil {
		return models.FetchResponse{}, models.NewFetchError(models.FetchErrorParse, fmt.Errorf("decode fetch response: %w", err))
	}
	fr.ETag = resp.Header().Get("ETag")

	return fr, nil
}
