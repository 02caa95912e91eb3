// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrNotAnAdmin              = errors.New("token does not grant admin role")

	ErrTemplateNotLoaded    = errors.New("template is not loaded")
	ErrInvalidTemplate      = errors.New("invalid template")
	ErrTemplateWriteFailed  = errors.New("template write failed")
	ErrRestoringActivation  = errors.New("restoring activation failed")
	ErrRefresherClosed      = errors.New("refresher is closed")
	ErrNoValuesToPublish    = errors.New("no values to publish")
	ErrTemplatePathNotGiven = errors.New("template path is not specified")
)
