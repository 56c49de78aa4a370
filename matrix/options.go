// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the sparse clustering matrix.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
package matrix

import (
	"math"

	"github.com/rs/zerolog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by Validate and by the
	// post-construction symmetry check.
	DefaultEpsilon = 1e-9

	// presizeFactor over-allocates each row's map relative to its degree so
	// that population does not trigger a rehash.
	presizeFactor = 1.1
)

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps    float64        // >= 0; DefaultEpsilon
	logger zerolog.Logger // zerolog.Nop() unless WithLogger
}

// WithEpsilon sets the numeric tolerance used by structural checks.
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithLogger attaches a zerolog logger. Construction is logged at Debug with
// dimension and nonzero count, every JoinCluster at Debug with the pair and
// the number of moved entries.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		eps:    DefaultEpsilon,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// presize returns the map capacity hint for a row with deg entries.
func presize(deg int) int {
	return int(float64(deg)*presizeFactor) + 1
}
