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
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/flarewatch/flarewatch/internal/common"
)

// ServiceStats are cache and refresh counters scraped from the server's own
// /metrics endpoint.
type ServiceStats struct {
	CacheHits          float64
	CacheMisses        float64
	CacheInvalidations float64
	RefreshSuccesses   float64
	RefreshErrors      float64
	AvgRefreshSeconds  float64
	Eligible           float64
	Ineligible         float64
}

// HitRate returns the cache hit percentage, 0 when no requests were seen.
func (s *ServiceStats) HitRate() float64 {
	total := s.CacheHits + s.CacheMisses
	if total == 0 {
		return 0
	}
	return s.CacheHits / total * 100
}

// StatsClient scrapes and parses the Prometheus exposition of a flarewatch
// server.
type StatsClient struct {
	endpoint   string
	httpClient *http.Client
}

func NewStatsClient(endpoint string) *StatsClient {
	return &StatsClient{
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: common.NewHTTPClient(10 * time.Second),
	}
}

func (c *StatsClient) GetServiceStats(ctx context.Context) (*ServiceStats, error) {
	metricFamilies, err := c.fetchMetrics(ctx)
	if err != nil {
		return nil, err
	}

	stats := &ServiceStats{}
	c.parseMetrics(metricFamilies, stats)
	return stats, nil
}

func (c *StatsClient) fetchMetrics(ctx context.Context) (map[string]*io_prometheus_client.MetricFamily, error) {
	url := c.endpoint
	if !strings.HasSuffix(c.endpoint, "/metrics") {
		url = fmt.Sprintf("%s/metrics", c.endpoint)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from metrics endpoint", resp.StatusCode)
	}

	return c.parsePrometheusResponse(resp.Body)
}

func (c *StatsClient) parsePrometheusResponse(r io.Reader) (map[string]*io_prometheus_client.MetricFamily, error) {
	parser := expfmt.TextParser{}
	metricFamilies, err := parser.TextToMetricFamilies(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse metrics: %w", err)
	}
	return metricFamilies, nil
}

func (c *StatsClient) parseMetrics(metricFamilies map[string]*io_prometheus_client.MetricFamily, stats *ServiceStats) {
	stats.CacheHits = getCounterValue(metricFamilies["flarewatch_cache_hits_total"])
	stats.CacheMisses = getCounterValue(metricFamilies["flarewatch_cache_misses_total"])
	stats.CacheInvalidations = getCounterValue(metricFamilies["flarewatch_cache_invalidations_total"])

	if mf, ok := metricFamilies["flarewatch_refresh_runs_total"]; ok {
		for _, m := range mf.Metric {
			status := getLabelValue(m.Label, "status")
			if m.Counter == nil || m.Counter.Value == nil {
				continue
			}
			switch status {
			case "success":
				stats.RefreshSuccesses = *m.Counter.Value
			case "error":
				stats.RefreshErrors = *m.Counter.Value
			}
		}
	}

	if mf, ok := metricFamilies["flarewatch_refresh_duration_seconds"]; ok {
		if sum, count := getHistogramSumAndCount(mf); count > 0 {
			stats.AvgRefreshSeconds = sum / count
		}
	}

	if mf, ok := metricFamilies["flarewatch_snapshot_validators"]; ok {
		for _, m := range mf.Metric {
			partition := getLabelValue(m.Label, "partition")
			if m.Gauge == nil || m.Gauge.Value == nil {
				continue
			}
			switch partition {
			case "eligible":
				stats.Eligible = *m.Gauge.Value
			case "ineligible":
				stats.Ineligible = *m.Gauge.Value
			}
		}
	}
}

// Helper functions

func getCounterValue(mf *io_prometheus_client.MetricFamily) float64 {
	if mf == nil || len(mf.Metric) == 0 {
		return 0
	}
	if mf.Metric[0].Counter != nil && mf.Metric[0].Counter.Value != nil {
		return *mf.Metric[0].Counter.Value
	}
	return 0
}

func getLabelValue(labels []*io_prometheus_client.LabelPair, name string) string {
	for _, label := range labels {
		if label.Name != nil && *label.Name == name && label.Value != nil {
			return *label.Value
		}
	}
	return ""
}

func getHistogramSumAndCount(mf *io_prometheus_client.MetricFamily) (sum float64, count float64) {
	if mf == nil || len(mf.Metric) == 0 {
		return 0, 0
	}

	for _, m := range mf.Metric {
		if m.Histogram != nil {
			if m.Histogram.SampleSum != nil {
				sum += *m.Histogram.SampleSum
			}
			if m.Histogram.SampleCount != nil {
				count += float64(*m.Histogram.SampleCount)
			}
		}
	}

	return sum, count
}
