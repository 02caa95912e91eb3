// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-remote-config/internal/config"
	"github.com/MKhiriev/go-remote-config/internal/logger"
	"github.com/MKhiriev/go-remote-config/internal/service"
)

// refreshWorker runs the periodic background refresh.
type refreshWorker struct {
	job      service.RefreshJob
	interval time.Duration
	logger   *logger.Logger
}

// NewRefreshWorker returns a worker driving job at the configured interval.
// A zero interval leaves the job idle.
func NewRefreshWorker(job service.RefreshJob, cfg config.ClientWorkers, logger *logger.Logger) Worker {
	return &refreshWorker{
		job:      job,
		interval: cfg.RefreshInterval,
		logger:   logger,
	}
}

func (w *refreshWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Info().Msg("background refresh is disabled")
		return
	}

	w.logger.Info().Dur("interval", w.interval).Msg("starting background refresh")
	w.job.Start(ctx, w.interval)
}

func (w *refreshWorker) Stop() {
	w.job.Stop()
}
