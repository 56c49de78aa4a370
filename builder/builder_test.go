// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modclust/builder"
)

func TestConstructors_Shapes(t *testing.T) {
	cases := []struct {
		name  string
		con   builder.Constructor
		verts int
		edges int
	}{
		{"path", builder.Path(5), 5, 4},
		{"cycle", builder.Cycle(4), 4, 4},
		{"complete", builder.Complete(5), 5, 10},
		{"star", builder.Star(6), 6, 5},
		{"ring of cliques", builder.RingOfCliques(4, 5), 20, 4*10 + 4},
		{"ring of two cliques", builder.RingOfCliques(2, 3), 6, 2*3 + 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.con)
			require.NoError(t, err)
			require.Equal(t, tc.verts, g.VertexCount())
			require.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestConstructors_TooSmall(t *testing.T) {
	for _, con := range []builder.Constructor{
		builder.Path(1),
		builder.Cycle(2),
		builder.Complete(1),
		builder.Star(1),
		builder.RingOfCliques(1, 5),
		builder.RingOfCliques(3, 2),
		builder.RandomSparse(0, 0.5),
	} {
		_, err := builder.BuildGraph(nil, con)
		require.ErrorIs(t, err, builder.ErrTooFewVertices)
	}
}

func TestBuildGraph_DisjointUnion(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(4), builder.Path(3))
	require.NoError(t, err)
	require.Equal(t, 7, g.VertexCount())
	require.Equal(t, 6, g.EdgeCount())
	require.True(t, g.HasEdge(3, 0))
	require.True(t, g.HasEdge(4, 5))
	require.False(t, g.HasEdge(3, 4))
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Path(2), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRandomSparse(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.RandomSparse(5, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nil, builder.RandomSparse(5, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	full, err := builder.BuildGraph(nil, builder.RandomSparse(6, 1))
	require.NoError(t, err)
	require.Equal(t, 15, full.EdgeCount())

	opts := []builder.BuilderOption{builder.WithSeed(42)}
	a, err := builder.BuildGraph(opts, builder.RandomSparse(40, 0.1))
	require.NoError(t, err)
	b, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(40, 0.1))
	require.NoError(t, err)
	require.Equal(t, a.Edges(), b.Edges())
}

func TestWithRand_NilPanics(t *testing.T) {
	require.Panics(t, func() { builder.WithRand(nil) })
}
