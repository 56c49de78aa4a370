// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus instruments for clustering runs.
// A nil *Registry is valid and records nothing.
package metrics

import "time"

// Run outcome labels.
const (
	StatusOK       = "ok"
	StatusError    = "error"
	StatusCanceled = "canceled"
)

// SetGraph records the size of the graph about to be clustered.
func (r *Registry) SetGraph(vertices, edges int) {
	if r == nil {
		return
	}
	r.GraphVertices.Set(float64(vertices))
	r.GraphEdges.Set(float64(edges))
}

// RecordMerge records one applied join and the clusters left after it.
func (r *Registry) RecordMerge(strategy string, gain float64, active int) {
	if r == nil {
		return
	}
	r.MergesTotal.WithLabelValues(strategy).Inc()
	r.MergeGain.Observe(gain)
	r.ActiveClusters.Set(float64(active))
}

// RecordRun records a finished run. modularity is ignored unless status is StatusOK.
func (r *Registry) RecordRun(strategy, status string, duration time.Duration, modularity float64) {
	if r == nil {
		return
	}
	r.RunsTotal.WithLabelValues(strategy, status).Inc()
	r.RunDuration.WithLabelValues(strategy).Observe(duration.Seconds())
	if status == StatusOK {
		r.Modularity.Set(modularity)
	}
}
