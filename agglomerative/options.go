// SPDX-License-Identifier: MIT

package agglomerative

import (
	"math"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/modclust/matrix"
	"github.com/katalvlaran/modclust/metrics"
)

const (
	// DefaultSampleSize is the number of rows the Randomized strategy scans
	// per join.
	DefaultSampleSize = 2

	// DefaultSeed seeds the Randomized strategy when neither WithSeed nor
	// WithRand is given.
	DefaultSeed int64 = 1

	// DefaultMinGain is the exclusive lower bound on an accepted join's ΔQ.
	DefaultMinGain = 0.0
)

const (
	panicStrategyInvalid   = "agglomerative: WithStrategy: unknown strategy"
	panicSampleSizeInvalid = "agglomerative: WithSampleSize: size must be >= 1"
	panicRandNil           = "agglomerative: WithRand: nil *rand.Rand"
	panicMinGainInvalid    = "agglomerative: WithMinGain: gain must be finite"
	panicMaxMergesInvalid  = "agglomerative: WithMaxMerges: limit must be >= 0"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration for Run.
type Options struct {
	strategy   Strategy
	sampleSize int
	rng        *rand.Rand
	minGain    float64
	maxMerges  int // 0 means no limit
	initial    matrix.Partition
	logger     zerolog.Logger
	metrics    *metrics.Registry
	matrixOpts []matrix.Option
}

// WithStrategy selects Greedy or Randomized. Panics on any other value.
func WithStrategy(s Strategy) Option {
	if s != Greedy && s != Randomized {
		panic(panicStrategyInvalid)
	}

	return func(o *Options) { o.strategy = s }
}

// WithSampleSize sets how many rows Randomized scans per join.
func WithSampleSize(k int) Option {
	if k < 1 {
		panic(panicSampleSizeInvalid)
	}

	return func(o *Options) { o.sampleSize = k }
}

// WithSeed seeds a private source for Randomized.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand injects the random source used by Randomized. Run is then
// unsafe to call concurrently with other users of r.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}

	return func(o *Options) { o.rng = r }
}

// WithMinGain sets the bound a join's ΔQ must exceed. Negative values let
// the loop keep merging through losses.
func WithMinGain(g float64) Option {
	if math.IsNaN(g) || math.IsInf(g, 0) {
		panic(panicMinGainInvalid)
	}

	return func(o *Options) { o.minGain = g }
}

// WithMaxMerges caps the number of joins; 0 removes the cap.
func WithMaxMerges(n int) Option {
	if n < 0 {
		panic(panicMaxMergesInvalid)
	}

	return func(o *Options) { o.maxMerges = n }
}

// WithInitialPartition starts from p instead of singletons. The first
// listed vertex of each cluster becomes its row.
func WithInitialPartition(p matrix.Partition) Option {
	return func(o *Options) { o.initial = p }
}

// WithLogger attaches a zerolog logger. Run logs start and finish at Info
// and every join at Debug. The logger is also handed to the matrix.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithMetrics records merges and run outcomes into r.
func WithMetrics(r *metrics.Registry) Option {
	return func(o *Options) { o.metrics = r }
}

// WithMatrixOptions forwards options to matrix construction.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(o *Options) { o.matrixOpts = append(o.matrixOpts, opts...) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		strategy:   Greedy,
		sampleSize: DefaultSampleSize,
		minGain:    DefaultMinGain,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return o
}
