// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-remote-config/internal/logger"
	"github.com/MKhiriev/go-remote-config/internal/metrics"
	"golang.org/x/sync/singleflight"
)

const refreshKey = "refresh"

// Suppression reasons reported to metrics.
const (
	suppressedBusy   = "busy"
	suppressedJoined = "joined"
	suppressedClosed = "closed"
)

type refresher struct {
	remoteConfig RemoteConfigService

	busy  atomic.Bool
	group singleflight.Group

	// ctx is owned by the refresher and outlives any caller; Close cancels it.
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	closed  bool
	wg      sync.WaitGroup
	results chan RefreshResult

	logger *logger.Logger
}

// NewRefresher creates a Refresher running fetches through remoteConfig.
// Fetches run under a context derived from ctx, not from the caller that
// requested them.
func NewRefresher(ctx context.Context, remoteConfig RemoteConfigService, logger *logger.Logger) Refresher {
	ownerCtx, cancel := context.WithCancel(ctx)

	return &refresher{
		remoteConfig: remoteConfig,
		ctx:          ownerCtx,
		cancel:       cancel,
		results:      make(chan RefreshResult, 8),
		logger:       logger,
	}
}

func (r *refresher) Trigger() bool {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		metrics.RecordRefreshSuppressed(suppressedClosed)
		return false
	}
	if !r.busy.CompareAndSwap(false, true) {
		r.mu.Unlock()
		metrics.RecordRefreshSuppressed(suppressedBusy)
		r.logger.Debug().Msg("refresh already in progress, trigger dropped")
		return false
	}
	r.wg.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.wg.Done()

		res := r.fetch()
		r.busy.Store(false)
		r.deliver(res)
	}()

	return true
}

func (r *refresher) RefreshAndWait(ctx context.Context) (bool, error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return false, ErrRefresherClosed
	}
	r.wg.Add(1)
	r.mu.Unlock()

	done := make(chan RefreshResult, 1)
	go func() {
		defer r.wg.Done()

		res := r.fetch()
		res.Background = true
		r.deliver(res)
		done <- res
	}()

	select {
	case res := <-done:
		return res.Changed, res.Err
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func (r *refresher) Busy() bool {
	return r.busy.Load()
}

func (r *refresher) Results() <-chan RefreshResult {
	return r.results
}

func (r *refresher) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()

	r.cancel()
	r.wg.Wait()
	close(r.results)
}

// fetch runs one fetch, or joins the one in flight.
func (r *refresher) fetch() RefreshResult {
	v, err, shared := r.group.Do(refreshKey, func() (any, error) {
		return r.remoteConfig.FetchAndActivate(r.ctx)
	})
	if shared {
		metrics.RecordRefreshSuppressed(suppressedJoined)
	}

	changed, _ := v.(bool)
	return RefreshResult{Changed: changed, Err: err}
}

func (r *refresher) deliver(res RefreshResult) {
	if r.ctx.Err() != nil {
		return
	}

	select {
	case r.results <- res:
	default:
		r.logger.Debug().Msg("refresh result dropped, no reader")
	}
}
