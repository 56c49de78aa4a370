// SPDX-License-Identifier: MIT

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphVertices = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "modclust_graph_vertices",
			Help: "Vertex count of the most recently clustered graph",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "modclust_graph_edges",
			Help: "Edge count of the most recently clustered graph",
		},
	)
}

func (r *Registry) initRunMetrics() {
	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "modclust_runs_total",
			Help: "Total number of clustering runs",
		},
		[]string{"strategy", "status"}, // greedy|randomized, ok|error|canceled
	)

	r.RunDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "modclust_run_duration_seconds",
			Help:    "Wall time of a clustering run in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30, 120},
		},
		[]string{"strategy"},
	)

	r.Modularity = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "modclust_modularity",
			Help: "Modularity of the most recent run's final partition",
		},
	)
}

func (r *Registry) initMergeMetrics() {
	r.MergesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "modclust_merges_total",
			Help: "Total number of cluster joins",
		},
		[]string{"strategy"},
	)

	r.MergeGain = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "modclust_merge_gain",
			Help:    "Modularity gain of each applied join",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 9),
		},
	)

	r.ActiveClusters = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "modclust_active_clusters",
			Help: "Clusters alive in the running merge loop",
		},
	)
}
