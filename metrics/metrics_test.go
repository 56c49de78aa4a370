// SPDX-License-Identifier: MIT

package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func value(t *testing.T, c prometheus.Collector) *dto.Metric {
	t.Helper()
	ch := make(chan prometheus.Metric, 1)
	c.Collect(ch)
	var m dto.Metric
	require.NoError(t, (<-ch).Write(&m))
	return &m
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r.GraphVertices)
	require.NotNil(t, r.RunsTotal)
	require.NotNil(t, r.MergeGain)
	require.NotNil(t, r.GetPrometheusRegistry())
	require.Same(t, DefaultRegistry(), DefaultRegistry())
}

func TestRecordMerge(t *testing.T) {
	r := NewRegistry()
	r.RecordMerge("greedy", 0.1, 5)
	r.RecordMerge("greedy", 0.05, 4)

	c, err := r.MergesTotal.GetMetricWithLabelValues("greedy")
	require.NoError(t, err)
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	require.Equal(t, 2.0, m.Counter.GetValue())

	require.Equal(t, 4.0, value(t, r.ActiveClusters).Gauge.GetValue())
	h := value(t, r.MergeGain).Histogram
	require.Equal(t, uint64(2), h.GetSampleCount())
	require.InDelta(t, 0.15, h.GetSampleSum(), 1e-12)
}

func TestRecordRun(t *testing.T) {
	r := NewRegistry()
	r.SetGraph(12, 30)
	r.RecordRun("randomized", StatusOK, 20*time.Millisecond, 0.42)
	r.RecordRun("randomized", StatusError, time.Millisecond, 0.99)

	require.Equal(t, 12.0, value(t, r.GraphVertices).Gauge.GetValue())
	require.Equal(t, 30.0, value(t, r.GraphEdges).Gauge.GetValue())
	require.Equal(t, 0.42, value(t, r.Modularity).Gauge.GetValue())

	c, err := r.RunsTotal.GetMetricWithLabelValues("randomized", StatusError)
	require.NoError(t, err)
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	require.Equal(t, 1.0, m.Counter.GetValue())
}

func TestNilRegistry(t *testing.T) {
	var r *Registry
	require.NotPanics(t, func() {
		r.SetGraph(1, 1)
		r.RecordMerge("greedy", 1, 1)
		r.RecordRun("greedy", StatusOK, time.Second, 1)
	})
}

func TestHandler(t *testing.T) {
	r := NewRegistry()
	r.RecordMerge("greedy", 0.2, 3)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	require.Equal(t, 200, rec.Code)
	require.True(t, strings.Contains(body, `modclust_merges_total{strategy="greedy"} 1`), body)
	require.Contains(t, body, "modclust_active_clusters 3")
}
