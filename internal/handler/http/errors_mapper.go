// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-remote-config/internal/app"
	"github.com/MKhiriev/go-remote-config/internal/service"
	"github.com/MKhiriev/go-remote-config/internal/utils"
	"github.com/MKhiriev/go-remote-config/models"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:  http.StatusUnauthorized,
	service.ErrNotAnAdmin:               http.StatusForbidden,

	ErrInvalidRequestBody:          http.StatusBadRequest,
	service.ErrInvalidTemplate:     http.StatusUnprocessableEntity,
	models.ErrUnknownValueType:     http.StatusUnprocessableEntity,
	models.ErrValueTypeMismatch:    http.StatusUnprocessableEntity,
	service.ErrTemplateWriteFailed: http.StatusInternalServerError,

	ErrRateLimitExceeded: http.StatusTooManyRequests,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFor is the response body for err. Authorization and server-side
// failures get a fixed message so internal details never reach the client.
func messageFor(err error, status int) string {
	switch status {
	case http.StatusInternalServerError:
		return app.MsgInternalServerError
	case http.StatusForbidden:
		return app.MsgAccessDenied
	case http.StatusTooManyRequests:
		return app.MsgTooManyRequests
	}
	if errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
		return app.MsgTokenIsExpiredOrInvalid
	}
	return err.Error()
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	http.Error(w, messageFor(err, status), status)
}
