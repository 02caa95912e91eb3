// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-remote-config/models"
)

// ErrNoServices is returned by [New] without client services.
var ErrNoServices = errors.New("tui: client services are not provided")

// humanizeFetchError turns a refresh failure into a line for the status bar.
func humanizeFetchError(err error) string {
	if err == nil {
		return ""
	}

	switch models.FetchErrorKindOf(err) {
	case models.FetchErrorNetwork:
		return "No network or the config server is unavailable"
	case models.FetchErrorParse:
		return "The config server returned an unreadable response"
	case models.FetchErrorThrottled:
		var fe *models.FetchError
		if errors.As(err, &fe) && fe.RetryAfter > 0 {
			return fmt.Sprintf("Too many refresh requests, retry in %s", fe.RetryAfter)
		}
		return "Too many refresh requests, try again later"
	}

	return err.Error()
}
