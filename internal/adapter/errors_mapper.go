// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-remote-config/models"
)

// mapHTTPError classifies a non-success response. 2xx and 304 map to nil.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if (code >= http.StatusOK && code < http.StatusMultipleChoices) || code == http.StatusNotModified {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	if code == http.StatusTooManyRequests {
		fe := models.NewFetchError(models.FetchErrorThrottled, fmt.Errorf("http %d: %s", code, body))
		fe.RetryAfter = parseRetryAfter(resp.Header().Get("Retry-After"), time.Now())
		return fe
	}

	return models.NewFetchError(models.FetchErrorNetwork, fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, code, body))
}

// parseRetryAfter accepts delta-seconds or an HTTP date. Unparsable or past
// values yield 0.
func parseRetryAfter(v string, now time.Time) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}

	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}

	if at, err := http.ParseTime(v); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}

	return 0
}
