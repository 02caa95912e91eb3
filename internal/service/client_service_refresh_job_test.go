// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-remote-config/internal/logger"
	"github.com/MKhiriev/go-remote-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// spyRefresher считает вызовы RefreshAndWait и возвращает заданную ошибку.
type spyRefresher struct {
	calls atomic.Int64
	err   error
}

func (s *spyRefresher) RefreshAndWait(_ context.Context) (bool, error) {
	s.calls.Add(1)
	return false, s.err
}

func (s *spyRefresher) Trigger() bool                 { return false }
func (s *spyRefresher) Busy() bool                    { return false }
func (s *spyRefresher) Results() <-chan RefreshResult { return nil }
func (s *spyRefresher) Close()                        {}

// ── NewRefreshJob ────────────────────────────────────────────────────────────

func TestNewRefreshJob_ReturnsInterface(t *testing.T) {
	job := NewRefreshJob(&spyRefresher{}, logger.Nop())
	require.NotNil(t, job)

	var _ RefreshJob = job
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestRefreshJob_Start_RefreshesPeriodically(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	spy := &spyRefresher{}
	job := NewRefreshJob(spy, logger.Nop())

	// Интервал 10ms — за 55ms должно быть ~5 тиков
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "RefreshAndWait должен быть вызван несколько раз, вызвано: %d", got)
}

func TestRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	spy := &spyRefresher{}
	job := NewRefreshJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestRefreshJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewRefreshJob(&spyRefresher{}, logger.Nop())

	assert.NotPanics(t, func() { job.Stop() })
}

func TestRefreshJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewRefreshJob(&spyRefresher{}, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestRefreshJob_Start_NonPositiveIntervalDisables(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	for _, interval := range []time.Duration{0, -time.Second} {
		spy := &spyRefresher{}
		job := NewRefreshJob(spy, logger.Nop())

		job.Start(context.Background(), interval)
		time.Sleep(20 * time.Millisecond)
		job.Stop()

		assert.Equal(t, int64(0), spy.calls.Load(), "interval %s", interval)
	}
}

func TestRefreshJob_Restart_StopsPrevious(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	spy := &spyRefresher{}
	job := NewRefreshJob(spy, logger.Nop())
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	callsBefore := spy.calls.Load()
	assert.Greater(t, callsBefore, int64(0))

	// Start повторно на том же job — внутри вызовет Stop()
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), callsBefore)
}

func TestRefreshJob_ContextCancel_StopsJob(t *testing.T) {
	job := NewRefreshJob(&spyRefresher{}, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Stop завис после отмены контекста")
	}
}

func TestRefreshJob_ErrorDoesNotStopJob(t *testing.T) {
	spy := &spyRefresher{err: models.NewFetchError(models.FetchErrorNetwork, assert.AnError)}
	job := NewRefreshJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "несмотря на ошибки, refresh продолжает вызываться: %d", got)
}

func TestRefreshJob_ThrottledBacksOff(t *testing.T) {
	spy := &spyRefresher{err: &models.FetchError{Kind: models.FetchErrorThrottled, RetryAfter: time.Hour}}
	job := NewRefreshJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(1), spy.calls.Load(), "after a throttled refresh the job waits for Retry-After")
}
