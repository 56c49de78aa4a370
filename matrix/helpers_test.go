// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modclust/builder"
	"github.com/katalvlaran/modclust/core"
	"github.com/katalvlaran/modclust/matrix"
)

const tol = 1e-12

// adjGraph is a hand-written matrix.Graph used to feed malformed adjacency
// that core.Graph would refuse to hold.
type adjGraph struct {
	adj   [][]int
	edges int
}

func (g adjGraph) VertexCount() int { return len(g.adj) }
func (g adjGraph) EdgeCount() int { return g.edges }
func (g adjGraph) Neighbors(v int) ([]int, error) { return g.adj[v], nil }

// groups is a plain matrix.Partition.
type groups [][]int

func (p groups) Clusters() [][]int { return p }

func mustBuild(t testing.TB, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, cons...)
	require.NoError(t, err)

	return g
}

func mustGet(t testing.TB, m *matrix.Sparse, i, j int) float64 {
	t.Helper()
	v, err := m.Get(i, j)
	require.NoError(t, err, "Get(%d,%d)", i, j)

	return v
}

func mustRowSum(t testing.TB, m *matrix.Sparse, i int) float64 {
	t.Helper()
	v, err := m.RowSum(i)
	require.NoError(t, err, "RowSum(%d)", i)

	return v
}

// sameMatrix reports whether a and b hold the same alive rows with the same
// entries within tol.
func sameMatrix(a, b *matrix.Sparse) bool {
	ca, cb := a.Clusters(), b.Clusters()
	if len(ca) != len(cb) {
		return false
	}
	for k, i := range ca {
		if cb[k] != i {
			return false
		}
		ea, _ := a.Entries(i)
		eb, _ := b.Entries(i)
		if len(ea) != len(eb) {
			return false
		}
		for x := range ea {
			if ea[x].Col != eb[x].Col || math.Abs(ea[x].Value-eb[x].Value) > tol {
				return false
			}
		}
		sa, _ := a.RowSum(i)
		sb, _ := b.RowSum(i)
		if math.Abs(sa-sb) > tol {
			return false
		}
	}

	return true
}
