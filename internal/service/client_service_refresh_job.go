// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-remote-config/internal/logger"
	"github.com/MKhiriev/go-remote-config/models"
)

type refreshJob struct {
	refresher Refresher

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewRefreshJob creates a refreshJob that calls refresher.RefreshAndWait on
// a ticker. The job is idle until Start is called.
func NewRefreshJob(refresher Refresher, logger *logger.Logger) RefreshJob {
	return &refreshJob{refresher: refresher, logger: logger}
}

// Start implements RefreshJob. It stops any previously running job, then
// launches a background goroutine that refreshes every interval. A throttled
// refresh postpones the next tick by the back-off the server asked for. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *refreshJob) Start(ctx context.Context, interval time.Duration) {
	j.Stop()

	if interval <= 0 {
		j.logger.Debug().Msg("periodic refresh disabled")
		return
	}

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		backedOff := false
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_, err := j.refresher.RefreshAndWait(jobCtx)

				var fe *models.FetchError
				if errors.As(err, &fe) && fe.RetryAfter > interval {
					j.logger.Info().Dur("retry_after", fe.RetryAfter).Msg("backend throttled, backing off")
					t.Reset(fe.RetryAfter)
					backedOff = true
					continue
				}
				if backedOff {
					t.Reset(interval)
					backedOff = false
				}
			}
		}
	}()
}

// Stop implements RefreshJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running.
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
