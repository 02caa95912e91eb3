// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-remote-config/internal/logger"
	"github.com/MKhiriev/go-remote-config/internal/service"
	"github.com/MKhiriev/go-remote-config/internal/workers"
)

// UI is the presentation layer run in the foreground.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, w *workers.Workers, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, ErrNoServices
	}
	if ui == nil {
		return nil, ErrNoUI
	}
	if w == nil {
		w = workers.NewWorkers()
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  w,
		logger:   logger,
	}, nil
}

// Run restores the last activation, requests the initial fetch, starts the
// background workers and blocks in the UI. Everything started here is
// stopped before Run returns.
func (a *App) Run(ctx context.Context) error {
	if err := a.services.RemoteConfig.Bootstrap(ctx); err != nil {
		// the defaults are still usable
		a.logger.Err(err).Msg("continuing without the persisted activation")
	}

	// the initial fetch runs while the UI already shows the restored values
	a.services.Refresher.Trigger()

	a.workers.Run(ctx)
	defer func() {
		a.workers.Stop()
		a.services.Close()
	}()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("client ui: %w", err)
	}
	return nil
}
