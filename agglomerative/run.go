// SPDX-License-Identifier: MIT

package agglomerative

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/modclust/bfs"
	"github.com/katalvlaran/modclust/matrix"
	"github.com/katalvlaran/modclust/metrics"
	"github.com/katalvlaran/modclust/partition"
)

// Merge records one applied join.
type Merge struct {
	Into       int     // surviving row
	From       int     // retired row
	Gain       float64 // ΔQ of the join
	Modularity float64 // Q after the join
}

// Result is the outcome of Run.
type Result struct {
	Strategy          Strategy
	Merges            []Merge
	Partition         *partition.Partition
	Modularity        float64
	InitialModularity float64
	// Components is the number of connected components of the input; no
	// positive-gain join crosses components, so it bounds the cluster count.
	Components int
	// LargestComponent is the vertex count of the biggest component.
	LargestComponent int
	Duration         time.Duration
}

// Run clusters g by repeated joins of the pair with the largest modularity
// gain. It stops when the best gain does not exceed MinGain, when MaxMerges
// joins have been applied, when one cluster is left, or when ctx is done.
//
// If ctx is done once the merge loop has started, Run returns the partial
// Result together with ctx.Err().
// Construction errors are wrapped with ErrMatrix and also match the
// underlying matrix sentinel.
func Run(ctx context.Context, g matrix.Graph, opts ...Option) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	o := gatherOptions(opts...)
	start := time.Now()
	status := metrics.StatusError
	res := &Result{Strategy: o.strategy}
	defer func() {
		res.Duration = time.Since(start)
		o.metrics.RecordRun(o.strategy.String(), status, res.Duration, res.Modularity)
	}()

	mlog := o.logger.With().Str("component", "matrix").Logger()
	mopts := append([]matrix.Option{matrix.WithLogger(mlog)}, o.matrixOpts...)
	var (
		m   *matrix.Sparse
		err error
	)
	if o.initial != nil {
		m, err = matrix.NewFromPartition(g, o.initial, mopts...)
	} else {
		m, err = matrix.New(g, mopts...)
	}
	if err != nil {
		return nil, fmt.Errorf("Run: %w: %w", ErrMatrix, err)
	}
	o.metrics.SetGraph(g.VertexCount(), g.EdgeCount())

	comps, err := bfs.Components(g,
		bfs.WithContext(ctx),
		bfs.WithOnComponent(func(idx int, members []int) error {
			if len(members) > res.LargestComponent {
				res.LargestComponent = len(members)
			}
			o.logger.Trace().Int("index", idx).Int("root", members[0]).Int("size", len(members)).Msg("component")
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("Run: components: %w", err)
	}
	res.Components = len(comps)

	members := seedMembers(g.VertexCount(), o.initial)
	q := Modularity(m)
	res.InitialModularity = q
	res.Modularity = q

	o.logger.Info().
		Str("strategy", o.strategy.String()).
		Int("vertices", g.VertexCount()).
		Int("edges", g.EdgeCount()).
		Int("clusters", m.Active()).
		Int("components", res.Components).
		Int("largest_component", res.LargestComponent).
		Float64("modularity", q).
		Msg("clustering started")

	for o.maxMerges == 0 || len(res.Merges) < o.maxMerges {
		if err = ctx.Err(); err != nil {
			break
		}
		if m.Active() < 2 {
			break
		}
		best, perr := pick(m, o.strategy, o.sampleSize, o.rng)
		if perr != nil {
			return nil, fmt.Errorf("Run: %w", perr)
		}
		if !best.ok || best.gain <= o.minGain {
			break
		}

		into, from := larger(m, best.lo, best.hi)
		if jerr := m.JoinCluster(into, from); jerr != nil {
			return nil, fmt.Errorf("Run: %w", jerr)
		}
		members[into] = append(members[into], members[from]...)
		members[from] = nil
		q += best.gain

		res.Merges = append(res.Merges, Merge{Into: into, From: from, Gain: best.gain, Modularity: q})
		o.metrics.RecordMerge(o.strategy.String(), best.gain, m.Active())
		o.logger.Debug().
			Int("into", into).
			Int("from", from).
			Float64("gain", best.gain).
			Float64("modularity", q).
			Int("active", m.Active()).
			Msg("merge")
	}

	res.Modularity = Modularity(m)
	res.Partition, err = collect(m, members)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	if cerr := ctx.Err(); cerr != nil {
		if errors.Is(cerr, context.Canceled) || errors.Is(cerr, context.DeadlineExceeded) {
			status = metrics.StatusCanceled
		}
		o.logger.Warn().Err(cerr).Int("merges", len(res.Merges)).Msg("clustering interrupted")
		return res, cerr
	}
	status = metrics.StatusOK

	o.logger.Info().
		Int("merges", len(res.Merges)).
		Int("clusters", res.Partition.Len()).
		Float64("modularity", res.Modularity).
		Dur("elapsed", time.Since(start)).
		Msg("clustering finished")

	return res, nil
}

// larger orders a pair so the row with more entries survives.
func larger(m *matrix.Sparse, i, j int) (into, from int) {
	ni, _ := m.RowEntries(i)
	nj, _ := m.RowEntries(j)
	if nj > ni {
		return j, i
	}

	return i, j
}

// seedMembers lists the vertices each row stands for at the start.
func seedMembers(n int, p matrix.Partition) [][]int {
	members := make([][]int, n)
	if p == nil {
		for v := range members {
			members[v] = []int{v}
		}
		return members
	}
	for _, c := range p.Clusters() {
		members[c[0]] = append([]int(nil), c...)
	}

	return members
}

// collect turns the alive rows into a Partition, clusters ordered by their
// row and members ascending.
func collect(m *matrix.Sparse, members [][]int) (*partition.Partition, error) {
	alive := m.Clusters()
	clusters := make([][]int, 0, len(alive))
	for _, i := range alive {
		c := members[i]
		sort.Ints(c)
		clusters = append(clusters, c)
	}

	return partition.New(clusters, len(members))
}
