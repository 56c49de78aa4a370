// SPDX-License-Identifier: MIT

package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all clustering metrics on a private Prometheus registry.
type Registry struct {
	// Input
	GraphVertices prometheus.Gauge
	GraphEdges    prometheus.Gauge

	// Runs
	RunsTotal   *prometheus.CounterVec
	RunDuration *prometheus.HistogramVec
	Modularity  prometheus.Gauge

	// Merges
	MergesTotal    *prometheus.CounterVec
	MergeGain      prometheus.Histogram
	ActiveClusters prometheus.Gauge

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a registry with every metric initialized.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.initGraphMetrics()
	r.initRunMetrics()
	r.initMergeMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
