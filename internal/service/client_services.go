// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-remote-config/internal/adapter"
	"github.com/MKhiriev/go-remote-config/internal/defaults"
	"github.com/MKhiriev/go-remote-config/internal/logger"
	"github.com/MKhiriev/go-remote-config/internal/store"
)

type ClientServices struct {
	RemoteConfig RemoteConfigService
	Refresher    Refresher
	RefreshJob   RefreshJob
}

func NewClientServices(
	ctx context.Context,
	table *defaults.Table,
	storages *store.ClientStorages,
	remote adapter.RemoteConfigAdapter,
	logger *logger.Logger,
) *ClientServices {
	remoteConfig := NewRemoteConfigService(table, store.NewConfigStore(table), remote, storages.ActivationRepository, logger)
	refresher := NewRefresher(ctx, remoteConfig, logger)

	return &ClientServices{
		RemoteConfig: remoteConfig,
		Refresher:    refresher,
		RefreshJob:   NewRefreshJob(refresher, logger),
	}
}

// Close stops the background job and waits for the in-flight refresh.
func (s *ClientServices) Close() {
	s.RefreshJob.Stop()
	s.Refresher.Close()
}
