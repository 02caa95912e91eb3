// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-remote-config/internal/config"
	"github.com/MKhiriev/go-remote-config/internal/logger"
)

type Services struct {
	AuthService     AuthService
	AppInfoService  AppInfoService
	TemplateService TemplateService
}

func NewServices(cfg config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	templates, err := NewTemplateService(cfg.Template, logger)
	if err != nil {
		return nil, fmt.Errorf("template service: %w", err)
	}

	return &Services{
		AuthService:     NewAuthService(cfg.App, logger),
		AppInfoService:  appInfo,
		TemplateService: templates,
	}, nil
}
