// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-remote-config/internal/metrics"
)

func TestRecordFetch(t *testing.T) {
	before := testutil.ToFloat64(metrics.FetchTotal.WithLabelValues(metrics.OutcomeThrottled))

	metrics.RecordFetch(metrics.OutcomeThrottled, 20*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.FetchTotal.WithLabelValues(metrics.OutcomeThrottled)))
}

func TestSetActiveGeneration(t *testing.T) {
	metrics.SetActiveGeneration(7)
	assert.Equal(t, 7.0, testutil.ToFloat64(metrics.ActiveGeneration))
}

func TestRecordTemplateReload(t *testing.T) {
	errBefore := testutil.ToFloat64(metrics.TemplateReloadTotal.WithLabelValues("error"))

	metrics.RecordTemplateReload(true, 12)
	metrics.RecordTemplateReload(false, 99)

	assert.Equal(t, 12.0, testutil.ToFloat64(metrics.TemplateVersion), "failed reload keeps the served version")
	assert.Equal(t, errBefore+1, testutil.ToFloat64(metrics.TemplateReloadTotal.WithLabelValues("error")))
}

func TestRecordConfigServed(t *testing.T) {
	before := testutil.ToFloat64(metrics.ConfigServedTotal.WithLabelValues("not_modified"))
	metrics.RecordConfigServed(true)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ConfigServedTotal.WithLabelValues("not_modified")))
}

func TestPromhttpExposure(t *testing.T) {
	metrics.RecordRefreshSuppressed("busy")
	metrics.RecordTemplatePublish("ok")
	metrics.RecordFetch(metrics.OutcomeActivated, time.Millisecond)

	srv := httptest.NewServer(promhttp.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	for _, name := range []string{
		"remote_config_fetch_total",
		"remote_config_fetch_duration_seconds",
		"remote_config_refresh_suppressed_total",
		"remote_config_template_publish_total",
	} {
		assert.True(t, strings.Contains(string(body), name), "missing %s", name)
	}
}
