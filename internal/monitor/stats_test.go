// Copyright © 2026 the flarewatch authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package monitor

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flarewatch/flarewatch/internal/testutil"
)

func metricsHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

func TestGetServiceStats(t *testing.T) {
	server := testutil.HTTPTestServer(t, metricsHandler(http.StatusOK, testutil.ValidMetricsResponse))

	client := NewStatsClient(server.URL)
	stats, err := client.GetServiceStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, float64(42), stats.CacheHits)
	assert.Equal(t, float64(8), stats.CacheMisses)
	assert.Equal(t, float64(2), stats.CacheInvalidations)
	assert.Equal(t, float64(7), stats.RefreshSuccesses)
	assert.Equal(t, float64(1), stats.RefreshErrors)
	assert.InDelta(t, 0.5, stats.AvgRefreshSeconds, 1e-9)
	assert.Equal(t, float64(2), stats.Eligible)
	assert.Equal(t, float64(2), stats.Ineligible)
}

func TestGetServiceStats_MetricsPathHandling(t *testing.T) {
	var capturedPath string
	server := testutil.HTTPTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		metricsHandler(http.StatusOK, testutil.ValidMetricsResponse)(w, r)
	})

	client := NewStatsClient(server.URL)
	_, err := client.GetServiceStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/metrics", capturedPath)
}

func TestGetServiceStats_EmptyExposition(t *testing.T) {
	server := testutil.HTTPTestServer(t, metricsHandler(http.StatusOK, ""))

	client := NewStatsClient(server.URL)
	stats, err := client.GetServiceStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, float64(0), stats.CacheHits)
	assert.Equal(t, float64(0), stats.RefreshSuccesses)
	assert.Equal(t, float64(0), stats.AvgRefreshSeconds)
}

func TestGetServiceStats_HTTPError(t *testing.T) {
	server := testutil.HTTPTestServer(t, metricsHandler(http.StatusServiceUnavailable, ""))

	client := NewStatsClient(server.URL)
	stats, err := client.GetServiceStats(context.Background())

	assert.Nil(t, stats)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestGetServiceStats_UnparseableBody(t *testing.T) {
	server := testutil.HTTPTestServer(t, metricsHandler(http.StatusOK, "{not prometheus text}"))

	client := NewStatsClient(server.URL)
	stats, err := client.GetServiceStats(context.Background())

	assert.Nil(t, stats)
	assert.Error(t, err)
}

func TestParsePrometheusResponse(t *testing.T) {
	client := NewStatsClient("http://localhost:3000")

	families, err := client.parsePrometheusResponse(strings.NewReader(testutil.ValidMetricsResponse))

	require.NoError(t, err)
	assert.Contains(t, families, "flarewatch_cache_hits_total")
	assert.Contains(t, families, "flarewatch_refresh_runs_total")
	assert.Contains(t, families, "flarewatch_refresh_duration_seconds")
	assert.Contains(t, families, "flarewatch_snapshot_validators")
}

func TestServiceStats_HitRate(t *testing.T) {
	tests := []struct {
		name     string
		stats    ServiceStats
		expected float64
	}{
		{
			name:     "no requests",
			stats:    ServiceStats{},
			expected: 0,
		},
		{
			name:     "all hits",
			stats:    ServiceStats{CacheHits: 10},
			expected: 100,
		},
		{
			name:     "mixed",
			stats:    ServiceStats{CacheHits: 42, CacheMisses: 8},
			expected: 84,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.stats.HitRate(), 1e-9)
		})
	}
}
