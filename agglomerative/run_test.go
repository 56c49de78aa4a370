// SPDX-License-Identifier: MIT

package agglomerative_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/modclust/agglomerative"
	"github.com/katalvlaran/modclust/builder"
	"github.com/katalvlaran/modclust/core"
	"github.com/katalvlaran/modclust/matrix"
	"github.com/katalvlaran/modclust/metrics"
	"github.com/katalvlaran/modclust/partition"
)

func mustBuild(t testing.TB, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(bopts, cons...)
	require.NoError(t, err)

	return g
}

// gonumQ scores p on g with gonum's modularity at resolution 1.
func gonumQ(g *core.Graph, p *partition.Partition) float64 {
	dst := simple.NewUndirectedGraph()
	for v := 0; v < g.VertexCount(); v++ {
		dst.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		dst.SetEdge(dst.NewEdge(simple.Node(e.U), simple.Node(e.V)))
	}
	var comms [][]graph.Node
	for _, c := range p.Clusters() {
		nodes := make([]graph.Node, len(c))
		for k, v := range c {
			nodes[k] = simple.Node(v)
		}
		comms = append(comms, nodes)
	}

	return community.Q(dst, comms, 1)
}

func TestModularity_Singletons(t *testing.T) {
	m, err := matrix.New(mustBuild(t, nil, builder.Cycle(3)))
	require.NoError(t, err)
	require.InDelta(t, -1.0/3, agglomerative.Modularity(m), 1e-12)

	require.NoError(t, m.JoinCluster(0, 1))
	require.NoError(t, m.JoinCluster(0, 2))
	require.InDelta(t, 0.0, agglomerative.Modularity(m), 1e-12)
}

func TestRun_RingOfCliques(t *testing.T) {
	g := mustBuild(t, nil, builder.RingOfCliques(4, 5))

	res, err := agglomerative.Run(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, agglomerative.Greedy, res.Strategy)
	require.Equal(t, [][]int{
		{0, 1, 2, 3, 4},
		{5, 6, 7, 8, 9},
		{10, 11, 12, 13, 14},
		{15, 16, 17, 18, 19},
	}, res.Partition.Clusters())
	require.Len(t, res.Merges, 16)
	require.Equal(t, 1, res.Components)
	require.Equal(t, 20, res.LargestComponent)

	require.InDelta(t, gonumQ(g, res.Partition), res.Modularity, 1e-9)
	require.InDelta(t, gonumQ(g, partition.Singletons(20)), res.InitialModularity, 1e-9)
	require.InDelta(t, res.Modularity, res.Merges[len(res.Merges)-1].Modularity, 1e-9)
	for _, mg := range res.Merges {
		require.Greater(t, mg.Gain, 0.0)
	}
}

func TestRun_DisconnectedStaysApart(t *testing.T) {
	g := mustBuild(t, nil, builder.Complete(4), builder.Complete(4))

	res, err := agglomerative.Run(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, 2, res.Components)
	require.Equal(t, [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}}, res.Partition.Clusters())
	require.InDelta(t, 0.5, res.Modularity, 1e-9)
	require.Equal(t, 4, res.LargestComponent)
}

func TestRun_ComponentsWithIsolatedVertex(t *testing.T) {
	g := mustBuild(t, nil, builder.Complete(5), builder.Path(2))
	g.AddVertex()

	res, err := agglomerative.Run(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, 3, res.Components)
	require.Equal(t, 5, res.LargestComponent)
	require.GreaterOrEqual(t, res.Partition.Len(), res.Components)
}

func TestRun_Randomized(t *testing.T) {
	g := mustBuild(t, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(60, 0.08))

	run := func() *agglomerative.Result {
		res, err := agglomerative.Run(context.Background(), g,
			agglomerative.WithStrategy(agglomerative.Randomized),
			agglomerative.WithSampleSize(3),
			agglomerative.WithSeed(99),
		)
		require.NoError(t, err)
		return res
	}
	a, b := run(), run()
	require.Equal(t, a.Merges, b.Merges)
	require.Equal(t, a.Partition.Clusters(), b.Partition.Clusters())
	require.Greater(t, a.Modularity, a.InitialModularity)
	require.GreaterOrEqual(t, a.Partition.Len(), a.Components)
	require.InDelta(t, gonumQ(g, a.Partition), a.Modularity, 1e-9)
}

func TestRun_FullSampleEqualsGreedy(t *testing.T) {
	g := mustBuild(t, nil, builder.RingOfCliques(3, 4))

	greedy, err := agglomerative.Run(context.Background(), g)
	require.NoError(t, err)
	sampled, err := agglomerative.Run(context.Background(), g,
		agglomerative.WithStrategy(agglomerative.Randomized),
		agglomerative.WithSampleSize(g.VertexCount()),
	)
	require.NoError(t, err)
	require.Equal(t, greedy.Merges, sampled.Merges)
}

func TestRun_StopConditions(t *testing.T) {
	g := mustBuild(t, nil, builder.RingOfCliques(3, 4))

	res, err := agglomerative.Run(context.Background(), g, agglomerative.WithMaxMerges(3))
	require.NoError(t, err)
	require.Len(t, res.Merges, 3)
	require.Equal(t, 9, res.Partition.Len())

	res, err = agglomerative.Run(context.Background(), g, agglomerative.WithMinGain(1))
	require.NoError(t, err)
	require.Empty(t, res.Merges)
	require.Equal(t, res.InitialModularity, res.Modularity)

	// merging through losses ends in a single cluster with Q = 0
	res, err = agglomerative.Run(context.Background(), g, agglomerative.WithMinGain(-10))
	require.NoError(t, err)
	require.Equal(t, 1, res.Partition.Len())
	require.InDelta(t, 0.0, res.Modularity, 1e-9)
}

func TestRun_InitialPartition(t *testing.T) {
	g := mustBuild(t, nil, builder.RingOfCliques(3, 4))
	cliques, err := partition.New([][]int{{0, 1, 2, 3}, {4, 5, 6, 7}, {8, 9, 10, 11}}, 12)
	require.NoError(t, err)

	res, err := agglomerative.Run(context.Background(), g, agglomerative.WithInitialPartition(cliques))
	require.NoError(t, err)
	require.Empty(t, res.Merges)
	require.Equal(t, cliques.Clusters(), res.Partition.Clusters())
	require.InDelta(t, gonumQ(g, cliques), res.InitialModularity, 1e-9)

	bad, err := partition.New([][]int{{0, 1}}, 2)
	require.NoError(t, err)
	_, err = agglomerative.Run(context.Background(), g, agglomerative.WithInitialPartition(bad))
	require.ErrorIs(t, err, agglomerative.ErrMatrix)
	require.ErrorIs(t, err, matrix.ErrInvalidPartition)
}

func TestRun_Errors(t *testing.T) {
	_, err := agglomerative.Run(context.Background(), nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)

	empty, err := core.NewGraph(3)
	require.NoError(t, err)
	_, err = agglomerative.Run(context.Background(), empty)
	require.ErrorIs(t, err, matrix.ErrNoEdges)
}

func TestRun_Canceled(t *testing.T) {
	g := mustBuild(t, nil, builder.Complete(6))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := agglomerative.Run(ctx, g)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_MetricsAndLogging(t *testing.T) {
	g := mustBuild(t, nil, builder.RingOfCliques(3, 4))
	reg := metrics.NewRegistry()
	var buf bytes.Buffer

	res, err := agglomerative.Run(context.Background(), g,
		agglomerative.WithMetrics(reg),
		agglomerative.WithLogger(zerolog.New(&buf).Level(zerolog.InfoLevel)),
	)
	require.NoError(t, err)

	require.Equal(t, float64(len(res.Merges)), testutil.ToFloat64(reg.MergesTotal.WithLabelValues("greedy")))
	require.Equal(t, 1.0, testutil.ToFloat64(reg.RunsTotal.WithLabelValues("greedy", metrics.StatusOK)))
	require.Equal(t, 3.0, testutil.ToFloat64(reg.ActiveClusters))
	require.Equal(t, 12.0, testutil.ToFloat64(reg.GraphVertices))
	require.InDelta(t, res.Modularity, testutil.ToFloat64(reg.Modularity), 1e-12)

	require.Contains(t, buf.String(), "clustering started")
	require.Contains(t, buf.String(), "clustering finished")
	require.NotContains(t, buf.String(), `"message":"merge"`)
}

func TestParseStrategy(t *testing.T) {
	s, err := agglomerative.ParseStrategy(" Randomized ")
	require.NoError(t, err)
	require.Equal(t, agglomerative.Randomized, s)
	require.Equal(t, "randomized", s.String())

	_, err = agglomerative.ParseStrategy("louvain")
	require.ErrorIs(t, err, agglomerative.ErrUnknownStrategy)
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { agglomerative.WithSampleSize(0) })
	require.Panics(t, func() { agglomerative.WithMaxMerges(-1) })
	require.Panics(t, func() { agglomerative.WithRand(nil) })
	require.Panics(t, func() { agglomerative.WithStrategy(agglomerative.Strategy(9)) })
}
