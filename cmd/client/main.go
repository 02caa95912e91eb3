// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-remote-config/internal/adapter"
	"github.com/MKhiriev/go-remote-config/internal/client"
	"github.com/MKhiriev/go-remote-config/internal/config"
	"github.com/MKhiriev/go-remote-config/internal/defaults"
	"github.com/MKhiriev/go-remote-config/internal/logger"
	"github.com/MKhiriev/go-remote-config/internal/service"
	"github.com/MKhiriev/go-remote-config/internal/store"
	"github.com/MKhiriev/go-remote-config/internal/tui"
	"github.com/MKhiriev/go-remote-config/internal/workers"
	"github.com/MKhiriev/go-remote-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("remote-config-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("remote-config-client", cfg.App.LogFile)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	table, err := defaults.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load bundled defaults")
	}

	remote, err := adapter.NewHTTPRemoteConfigAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote config adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services := service.NewClientServices(ctx, table, storages, remote, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, workers.NewWorkers(
		workers.NewRefreshWorker(services.RefreshJob, cfg.Workers, log),
	), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}
