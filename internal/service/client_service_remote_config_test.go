// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-remote-config/internal/defaults"
	"github.com/MKhiriev/go-remote-config/internal/logger"
	"github.com/MKhiriev/go-remote-config/internal/mock"
	"github.com/MKhiriev/go-remote-config/internal/store"
	"github.com/MKhiriev/go-remote-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testDefaults() *defaults.Table {
	return defaults.New(map[string]models.Value{
		models.DiscountPercentageKey: models.IntegerValue(0),
		models.FeatureFlagKey:        models.BooleanValue(false),
		models.WelcomeMessageKey:     models.StringValue("Welcome!"),
		models.PromoBannerRatioKey:   models.FloatValue(0.1),
	})
}

// newTestRemoteConfigSvc — хелпер для создания remoteConfigService с моками
func newTestRemoteConfigSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*remoteConfigService,
	*mock.MockRemoteConfigAdapter,
	*mock.MockActivationRepository,
) {
	t.Helper()
	mockAdapter := mock.NewMockRemoteConfigAdapter(ctrl)
	mockRepo := mock.NewMockActivationRepository(ctrl)

	table := testDefaults()
	svc := NewRemoteConfigService(table, store.NewConfigStore(table), mockAdapter, mockRepo, logger.Nop()).(*remoteConfigService)

	return svc, mockAdapter, mockRepo
}

func fetched(version int64, etag string, values map[string]models.Value) models.FetchResponse {
	return models.FetchResponse{Version: version, ETag: etag, Values: values}
}

// ── Typed accessors ──────────────────────────────────────────────────────────

func TestRemoteConfigService_DefaultsBeforeFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestRemoteConfigSvc(t, ctrl)

	assert.Equal(t, int64(0), svc.GetInteger(models.DiscountPercentageKey))
	assert.False(t, svc.GetBoolean(models.FeatureFlagKey))
	assert.Equal(t, "Welcome!", svc.GetString(models.WelcomeMessageKey))
	assert.Equal(t, 0.1, svc.GetFloat(models.PromoBannerRatioKey))

	info := svc.Info()
	assert.Equal(t, models.FetchNeverFetched, info.Status)
	assert.Equal(t, uint64(0), info.Generation)
}

func TestRemoteConfigService_UnknownKeyResolvesToZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestRemoteConfigSvc(t, ctrl)

	assert.Equal(t, "", svc.GetString("no_such_key"))
	assert.False(t, svc.GetBoolean("no_such_key"))
	assert.Equal(t, int64(0), svc.GetInteger("no_such_key"))
	assert.Equal(t, 0.0, svc.GetFloat("no_such_key"))
}

func TestRemoteConfigService_CrossTypeReads(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestRemoteConfigSvc(t, ctrl)

	assert.Equal(t, "0", svc.GetString(models.DiscountPercentageKey))
	assert.Equal(t, 0.0, svc.GetFloat(models.DiscountPercentageKey))
	assert.Equal(t, int64(0), svc.GetInteger(models.WelcomeMessageKey))
}

// ── FetchAndActivate ─────────────────────────────────────────────────────────

func TestRemoteConfigService_FetchAndActivate_PartialUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockRepo := newTestRemoteConfigSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Fetch(gomock.Any(), "").Return(fetched(2, `"v2"`, map[string]models.Value{
		models.DiscountPercentageKey: models.IntegerValue(25),
	}), nil)
	mockRepo.EXPECT().SaveActivation(gomock.Any(), gomock.Any()).Return(nil)

	changed, err := svc.FetchAndActivate(ctx)
	require.NoError(t, err)
	assert.True(t, changed)

	assert.Equal(t, int64(25), svc.GetInteger(models.DiscountPercentageKey))
	assert.False(t, svc.GetBoolean(models.FeatureFlagKey), "keys missing from the response keep their value")
	assert.Equal(t, "Welcome!", svc.GetString(models.WelcomeMessageKey))

	info := svc.Info()
	assert.Equal(t, models.FetchSucceeded, info.Status)
	assert.Equal(t, uint64(1), info.Generation)
	assert.Equal(t, int64(2), info.TemplateVersion)
	assert.False(t, info.LastSuccessTime.IsZero())
}

func TestRemoteConfigService_FetchAndActivate_SameSetIsNoChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockRepo := newTestRemoteConfigSvc(t, ctrl)
	ctx := context.Background()

	resp := fetched(1, `"v1"`, map[string]models.Value{models.FeatureFlagKey: models.BooleanValue(true)})
	gomock.InOrder(
		mockAdapter.EXPECT().Fetch(gomock.Any(), "").Return(resp, nil),
		mockAdapter.EXPECT().Fetch(gomock.Any(), `"v1"`).Return(fetched(1, `"v1b"`, resp.Values), nil),
	)
	mockRepo.EXPECT().SaveActivation(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	changed, err := svc.FetchAndActivate(ctx)
	require.NoError(t, err)
	require.True(t, changed)
	before := svc.Snapshot()

	changed, err = svc.FetchAndActivate(ctx)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Same(t, before, svc.Snapshot())
}

func TestRemoteConfigService_FetchAndActivate_NotModified(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockRepo := newTestRemoteConfigSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().Fetch(gomock.Any(), "").
			Return(fetched(1, `"abc"`, map[string]models.Value{models.DiscountPercentageKey: models.IntegerValue(5)}), nil),
		mockAdapter.EXPECT().Fetch(gomock.Any(), `"abc"`).
			Return(models.FetchResponse{ETag: `"abc"`, NotModified: true}, nil),
	)
	mockRepo.EXPECT().SaveActivation(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.FetchAndActivate(ctx)
	require.NoError(t, err)
	before := svc.Snapshot()

	changed, err := svc.FetchAndActivate(ctx)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Same(t, before, svc.Snapshot())
	assert.Equal(t, models.FetchSucceeded, svc.Info().Status)
}

func TestRemoteConfigService_FetchAndActivate_FailureLeavesStoreUntouched(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind models.FetchErrorKind
		sentinel error
	}{
		{"network", models.NewFetchError(models.FetchErrorNetwork, errors.New("connection refused")), models.FetchErrorNetwork, models.ErrNetwork},
		{"parse", models.NewFetchError(models.FetchErrorParse, errors.New("bad json")), models.FetchErrorParse, models.ErrParse},
		{"throttled", &models.FetchError{Kind: models.FetchErrorThrottled, RetryAfter: time.Minute}, models.FetchErrorThrottled, models.ErrThrottled},
		{"plain error is a network failure", errors.New("boom"), models.FetchErrorNetwork, models.ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, mockAdapter, _ := newTestRemoteConfigSvc(t, ctrl)
			before := svc.Snapshot()

			mockAdapter.EXPECT().Fetch(gomock.Any(), "").Return(models.FetchResponse{}, tt.err)

			changed, err := svc.FetchAndActivate(context.Background())
			require.Error(t, err)
			assert.False(t, changed)
			assert.ErrorIs(t, err, tt.sentinel)

			var fe *models.FetchError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.wantKind, fe.Kind)

			assert.Same(t, before, svc.Snapshot(), "a failed fetch must not touch the store")

			info := svc.Info()
			assert.Equal(t, models.FetchFailed, info.Status)
			assert.Equal(t, tt.wantKind, info.LastErrorKind)
		})
	}
}

func TestRemoteConfigService_DiscountAndFeatureFlagScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockRepo := newTestRemoteConfigSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(fetched(3, `"v3"`, map[string]models.Value{
		models.DiscountPercentageKey: models.IntegerValue(30),
		models.FeatureFlagKey:        models.BooleanValue(true),
	}), nil)
	mockRepo.EXPECT().SaveActivation(gomock.Any(), gomock.Any()).Return(nil)

	assert.False(t, svc.GetBoolean(models.FeatureFlagKey))
	assert.Equal(t, int64(0), svc.GetInteger(models.DiscountPercentageKey))

	changed, err := svc.FetchAndActivate(ctx)
	require.NoError(t, err)
	require.True(t, changed)

	assert.True(t, svc.GetBoolean(models.FeatureFlagKey))
	assert.Equal(t, int64(30), svc.GetInteger(models.DiscountPercentageKey))
	assert.Equal(t, "30", svc.GetString(models.DiscountPercentageKey))
}

func TestRemoteConfigService_ConcurrentFetchesLastWriterWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockRepo := newTestRemoteConfigSvc(t, ctrl)

	setA := map[string]models.Value{
		models.DiscountPercentageKey: models.IntegerValue(10),
		models.FeatureFlagKey:        models.BooleanValue(true),
	}
	setB := map[string]models.Value{
		models.DiscountPercentageKey: models.IntegerValue(20),
		models.FeatureFlagKey:        models.BooleanValue(false),
	}

	// каждый запрос ждёт своего сигнала, порядок завершения задаёт тест
	var calls atomic.Int64
	releaseA := make(chan struct{})
	releaseB := make(chan struct{})
	mockAdapter.EXPECT().Fetch(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, _ string) (models.FetchResponse, error) {
			if calls.Add(1) == 1 {
				<-releaseA
				return fetched(1, `"a"`, setA), nil
			}
			<-releaseB
			return fetched(2, `"b"`, setB), nil
		},
	)
	mockRepo.EXPECT().SaveActivation(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	fetch := func() <-chan error {
		done := make(chan error, 1)
		go func() {
			_, err := svc.FetchAndActivate(context.Background())
			done <- err
		}()
		return done
	}

	doneA := fetch()
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	doneB := fetch()
	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, time.Millisecond)

	close(releaseA)
	require.NoError(t, <-doneA)
	assert.Equal(t, int64(10), svc.GetInteger(models.DiscountPercentageKey))

	close(releaseB)
	require.NoError(t, <-doneB)

	assert.Equal(t, int64(20), svc.GetInteger(models.DiscountPercentageKey), "the later completion must win")
	assert.False(t, svc.GetBoolean(models.FeatureFlagKey))
	assert.Equal(t, uint64(2), svc.Snapshot().Generation)
}

func TestRemoteConfigService_ConcurrentFetchesNeverMixSets(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockRepo := newTestRemoteConfigSvc(t, ctrl)

	setA := map[string]models.Value{
		models.DiscountPercentageKey: models.IntegerValue(10),
		models.FeatureFlagKey:        models.BooleanValue(true),
	}
	setB := map[string]models.Value{
		models.DiscountPercentageKey: models.IntegerValue(20),
		models.FeatureFlagKey:        models.BooleanValue(false),
	}

	var calls atomic.Int64
	release := make(chan struct{})
	mockAdapter.EXPECT().Fetch(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, _ string) (models.FetchResponse, error) {
			n := calls.Add(1)
			<-release
			if n == 1 {
				return fetched(1, `"a"`, setA), nil
			}
			return fetched(2, `"b"`, setB), nil
		},
	)
	mockRepo.EXPECT().SaveActivation(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.FetchAndActivate(context.Background())
			assert.NoError(t, err)
		}()
	}
	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, time.Millisecond)
	close(release)
	wg.Wait()

	switch discount := svc.GetInteger(models.DiscountPercentageKey); discount {
	case 10:
		assert.True(t, svc.GetBoolean(models.FeatureFlagKey), "values of set A must not be mixed with set B")
	case 20:
		assert.False(t, svc.GetBoolean(models.FeatureFlagKey), "values of set B must not be mixed with set A")
	default:
		t.Fatalf("unexpected discount %d", discount)
	}
}

// ── ETag bookkeeping ─────────────────────────────────────────────────────────

func TestRemoteConfigService_SupersededResponseDoesNotKeepETag(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockRepo := newTestRemoteConfigSvc(t, ctrl)

	// новая версия активирована первой, устаревший ответ применён позже
	fresh, changed := svc.store.Activate(map[string]models.Value{models.DiscountPercentageKey: models.IntegerValue(20)}, 2)
	require.True(t, changed)
	_, changed = svc.store.Activate(map[string]models.Value{models.DiscountPercentageKey: models.IntegerValue(10)}, 1)
	require.True(t, changed)

	svc.begin()
	svc.succeed(`"fresh"`, fresh)

	// the store holds the stale set, so the next request must not be conditional
	mockAdapter.EXPECT().Fetch(gomock.Any(), "").
		Return(fetched(2, `"fresh"`, map[string]models.Value{models.DiscountPercentageKey: models.IntegerValue(20)}), nil)
	mockRepo.EXPECT().SaveActivation(gomock.Any(), gomock.Any()).Return(nil)

	changed, err := svc.FetchAndActivate(context.Background())
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, int64(20), svc.GetInteger(models.DiscountPercentageKey))
	assert.Equal(t, models.FetchSucceeded, svc.Info().Status)
}

func TestRemoteConfigService_CurrentResponseKeepsETag(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockRepo := newTestRemoteConfigSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().Fetch(gomock.Any(), "").
			Return(fetched(1, `"v1"`, map[string]models.Value{models.DiscountPercentageKey: models.IntegerValue(5)}), nil),
		// same values under a new tag: nothing to activate, but the tag is current
		mockAdapter.EXPECT().Fetch(gomock.Any(), `"v1"`).
			Return(fetched(2, `"v2"`, map[string]models.Value{models.DiscountPercentageKey: models.IntegerValue(5)}), nil),
		mockAdapter.EXPECT().Fetch(gomock.Any(), `"v2"`).
			Return(models.FetchResponse{ETag: `"v2"`, NotModified: true}, nil),
	)
	mockRepo.EXPECT().SaveActivation(gomock.Any(), gomock.Any()).Return(nil)

	for i := 0; i < 3; i++ {
		_, err := svc.FetchAndActivate(ctx)
		require.NoError(t, err)
	}
}

// ── Persistence ──────────────────────────────────────────────────────────────

func TestRemoteConfigService_PersistsOnlyFetchedValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockRepo := newTestRemoteConfigSvc(t, ctrl)

	mockAdapter.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(fetched(4, `"v4"`, map[string]models.Value{
		models.DiscountPercentageKey: models.IntegerValue(15),
		"extra_key":                  models.StringValue("x"),
	}), nil)
	mockRepo.EXPECT().SaveActivation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.Activation) error {
			assert.Equal(t, uint64(1), a.Generation)
			assert.Equal(t, int64(4), a.TemplateVersion)
			assert.Equal(t, map[string]models.Value{
				models.DiscountPercentageKey: models.IntegerValue(15),
				"extra_key":                  models.StringValue("x"),
			}, a.Values)
			return nil
		},
	)

	_, err := svc.FetchAndActivate(context.Background())
	require.NoError(t, err)
}

func TestRemoteConfigService_PersistFailureDoesNotFailFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockRepo := newTestRemoteConfigSvc(t, ctrl)

	mockAdapter.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		Return(fetched(1, "", map[string]models.Value{models.FeatureFlagKey: models.BooleanValue(true)}), nil)
	mockRepo.EXPECT().SaveActivation(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	changed, err := svc.FetchAndActivate(context.Background())
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, svc.GetBoolean(models.FeatureFlagKey))
}

// ── Bootstrap ────────────────────────────────────────────────────────────────

func TestRemoteConfigService_Bootstrap_RestoresActivation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockRepo := newTestRemoteConfigSvc(t, ctrl)

	mockRepo.EXPECT().LoadActivation(gomock.Any()).Return(models.Activation{
		Generation:      9,
		TemplateVersion: 5,
		Values:          map[string]models.Value{models.DiscountPercentageKey: models.IntegerValue(40)},
	}, nil)

	require.NoError(t, svc.Bootstrap(context.Background()))

	assert.Equal(t, int64(40), svc.GetInteger(models.DiscountPercentageKey))
	assert.Equal(t, "Welcome!", svc.GetString(models.WelcomeMessageKey))

	info := svc.Info()
	assert.Equal(t, uint64(9), info.Generation)
	assert.Equal(t, int64(5), info.TemplateVersion)
}

func TestRemoteConfigService_Bootstrap_NoActivation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockRepo := newTestRemoteConfigSvc(t, ctrl)
	before := svc.Snapshot()

	mockRepo.EXPECT().LoadActivation(gomock.Any()).Return(models.Activation{}, store.ErrNoActivation)

	require.NoError(t, svc.Bootstrap(context.Background()))
	assert.Same(t, before, svc.Snapshot())
}

func TestRemoteConfigService_Bootstrap_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockRepo := newTestRemoteConfigSvc(t, ctrl)
	before := svc.Snapshot()

	mockRepo.EXPECT().LoadActivation(gomock.Any()).Return(models.Activation{}, store.ErrCorruptActivation)

	err := svc.Bootstrap(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRestoringActivation)
	assert.ErrorIs(t, err, store.ErrCorruptActivation)
	assert.Same(t, before, svc.Snapshot())
}

func TestNewRemoteConfigService_NilRepositoryFallsBackToNop(t *testing.T) {
	table := testDefaults()
	svc := NewRemoteConfigService(table, store.NewConfigStore(table), nil, nil, logger.Nop())

	assert.NoError(t, svc.Bootstrap(context.Background()))
}
