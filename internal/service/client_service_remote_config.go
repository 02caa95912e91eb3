// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-remote-config/internal/adapter"
	"github.com/MKhiriev/go-remote-config/internal/defaults"
	"github.com/MKhiriev/go-remote-config/internal/logger"
	"github.com/MKhiriev/go-remote-config/internal/metrics"
	"github.com/MKhiriev/go-remote-config/internal/store"
	"github.com/MKhiriev/go-remote-config/models"
)

// remoteConfigService is the concrete implementation of RemoteConfigService.
type remoteConfigService struct {
	defaults    *defaults.Table
	store       *store.ConfigStore
	adapter     adapter.RemoteConfigAdapter
	activations store.ActivationRepository

	// mu guards the fields below. It is never held across the round trip.
	mu       sync.Mutex
	etag     string
	inFlight int
	info     models.FetchInfo

	// persistMu orders saves so that an older generation never overwrites a
	// newer one.
	persistMu    sync.Mutex
	persistedGen uint64

	now    func() time.Time
	logger *logger.Logger
}

// NewRemoteConfigService builds the client facade. The store must have been
// seeded from table; table is kept to tell fetched values from defaults when
// persisting an activation.
func NewRemoteConfigService(
	table *defaults.Table,
	configStore *store.ConfigStore,
	remote adapter.RemoteConfigAdapter,
	activations store.ActivationRepository,
	logger *logger.Logger,
) RemoteConfigService {
	if activations == nil {
		activations = store.NewNopActivationRepository()
	}

	return &remoteConfigService{
		defaults:    table,
		store:       configStore,
		adapter:     remote,
		activations: activations,
		now:         time.Now,
		logger:      logger,
	}
}

func (s *remoteConfigService) Bootstrap(ctx context.Context) error {
	a, err := s.activations.LoadActivation(ctx)
	if errors.Is(err, store.ErrNoActivation) {
		s.logger.Debug().Msg("no persisted activation, running on defaults")
		return nil
	}
	if err != nil {
		s.logger.Err(err).Msg("failed to restore persisted activation")
		return fmt.Errorf("%w: %w", ErrRestoringActivation, err)
	}

	s.store.Restore(a.Values, a.Generation, a.TemplateVersion)
	snap := s.store.Snapshot()

	s.mu.Lock()
	s.info.Generation = snap.Generation
	s.info.TemplateVersion = snap.TemplateVersion
	s.mu.Unlock()

	metrics.SetActiveGeneration(snap.Generation)
	s.logger.Info().
		Uint64("generation", snap.Generation).
		Int64("template_version", snap.TemplateVersion).
		Int("values", len(a.Values)).
		Msg("restored persisted activation")
	return nil
}

func (s *remoteConfigService) FetchAndActivate(ctx context.Context) (bool, error) {
	started := s.now()
	etag := s.begin()

	resp, err := s.adapter.Fetch(ctx, etag)
	if err != nil {
		fe := asFetchError(err)
		s.fail(fe)
		metrics.RecordFetch(string(fe.Kind), s.now().Sub(started))
		s.logger.Warn().Err(fe).Str("kind", string(fe.Kind)).Msg("remote config fetch failed")
		return false, fe
	}

	if resp.NotModified {
		s.succeed("", nil)
		metrics.RecordFetch(metrics.OutcomeUpToDate, s.now().Sub(started))
		s.logger.Debug().Msg("remote config not modified")
		return false, nil
	}

	active, changed := s.store.Activate(resp.Values, resp.Version)
	s.succeed(resp.ETag, active)

	if !changed {
		metrics.RecordFetch(metrics.OutcomeUpToDate, s.now().Sub(started))
		s.logger.Debug().Int64("template_version", resp.Version).Msg("fetched values already active")
		return false, nil
	}

	metrics.RecordFetch(metrics.OutcomeActivated, s.now().Sub(started))
	metrics.SetActiveGeneration(active.Generation)
	s.logActiveValues(active)
	s.persist(ctx, active)

	return true, nil
}

func (s *remoteConfigService) GetString(key string) string {
	v, _ := s.store.Get(key)
	return v.AsString()
}

func (s *remoteConfigService) GetBoolean(key string) bool {
	v, _ := s.store.Get(key)
	return v.AsBoolean()
}

func (s *remoteConfigService) GetInteger(key string) int64 {
	v, _ := s.store.Get(key)
	return v.AsInteger()
}

func (s *remoteConfigService) GetFloat(key string) float64 {
	v, _ := s.store.Get(key)
	return v.AsFloat()
}

func (s *remoteConfigService) Snapshot() *store.Snapshot {
	return s.store.Snapshot()
}

func (s *remoteConfigService) Info() models.FetchInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	info := s.info
	snap := s.store.Snapshot()
	info.Generation = snap.Generation
	info.TemplateVersion = snap.TemplateVersion
	return info
}

// begin marks a fetch as running and returns the entity tag to revalidate.
func (s *remoteConfigService) begin() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inFlight++
	s.info.Status = models.FetchInProgress
	return s.etag
}

// succeed records a completed fetch. etag is kept only while active is still
// the current generation: a response that lost the race to a later
// activation must not make the next request revalidate against values the
// store no longer holds.
func (s *remoteConfigService) succeed(etag string, active *store.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if etag != "" && active != nil && s.store.Snapshot() == active {
		s.etag = etag
	}
	s.inFlight--
	s.info.LastFetchTime = now
	s.info.LastSuccessTime = now
	s.info.LastErrorKind = ""
	if s.inFlight == 0 {
		s.info.Status = models.FetchSucceeded
	}
}

func (s *remoteConfigService) fail(fe *models.FetchError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inFlight--
	s.info.LastFetchTime = s.now()
	s.info.LastErrorKind = fe.Kind
	if s.inFlight == 0 {
		s.info.Status = models.FetchFailed
	}
}

// persist stores the fetched part of snap. Failures are logged only: the
// activation already happened in memory.
func (s *remoteConfigService) persist(ctx context.Context, snap *store.Snapshot) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	if snap.Generation <= s.persistedGen {
		return
	}

	fetched := make(map[string]models.Value, snap.Len())
	for k, v := range snap.Values() {
		if d, ok := s.defaults.Get(k); ok && d.Equal(v) {
			continue
		}
		fetched[k] = v
	}

	err := s.activations.SaveActivation(context.WithoutCancel(ctx), models.Activation{
		Generation:      snap.Generation,
		TemplateVersion: snap.TemplateVersion,
		ActivatedAt:     s.now().UTC(),
		Values:          fetched,
	})
	if err != nil {
		s.logger.Err(err).Uint64("generation", snap.Generation).Msg("failed to persist activation")
		return
	}
	s.persistedGen = snap.Generation
}

func (s *remoteConfigService) logActiveValues(snap *store.Snapshot) {
	values := snap.Values()
	for _, key := range models.SortedKeys(values) {
		v := values[key]
		s.logger.Debug().
			Uint64("generation", snap.Generation).
			Str("key", key).
			Str("type", v.Type.String()).
			Str("value", v.AsString()).
			Msg("active value")
	}
	s.logger.Info().Uint64("generation", snap.Generation).Int("values", len(values)).Msg("remote config activated")
}

// asFetchError normalizes adapter errors. Anything that is not already a
// FetchError is a transport failure.
func asFetchError(err error) *models.FetchError {
	var fe *models.FetchError
	if errors.As(err, &fe) {
		return fe
	}
	return models.NewFetchError(models.FetchErrorNetwork, err)
}
