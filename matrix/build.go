// SPDX-License-Identifier: MIT

// Package matrix: constructors.
//
// Both constructors read the graph once, never retain it, and validate the
// simple-graph precondition as they go: a loop, a repeated neighbor or an
// unknown id aborts construction with a sentinel instead of producing a
// matrix whose mass is not 1.
package matrix

import (
	"fmt"
	"math"
)

const (
	methodNew              = "New"
	methodNewFromPartition = "NewFromPartition"
)

// New builds E for g with one row per vertex.
//
// Implementation:
//   - Stage 1: initValue = 1/(2|E|).
//   - Stage 2: for every vertex i and neighbor j set E[i][j] = initValue
//     (one write per adjacency entry; a repeat is ErrDuplicateNeighbor).
//   - Stage 3: rowSum[i] = initValue·deg(i).
//   - Stage 4: check Σdeg == 2|E| and that the result is symmetric.
//
// Errors:
//   - ErrGraphNil, ErrNoEdges, ErrUnknownVertex, ErrSelfLoop,
//     ErrDuplicateNeighbor, ErrEdgeCountMismatch, ErrAsymmetricGraph,
//     or the Graph's own Neighbors error (wrapped).
//
// Complexity: O(V + E) time, O(V + E) space.
func New(g Graph, opts ...Option) (*Sparse, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := gatherOptions(opts...)

	n, e := g.VertexCount(), g.EdgeCount()
	if e <= 0 {
		return nil, fmt.Errorf("%s: |E|=%d: %w", methodNew, e, ErrNoEdges)
	}
	m := newSparse(n, n, 1.0/(2.0*float64(e)), o)

	adjacency := 0
	for i := 0; i < n; i++ {
		nbs, err := g.Neighbors(i)
		if err != nil {
			return nil, fmt.Errorf("%s: Neighbors(%d): %w", methodNew, i, err)
		}
		row := make(map[int]float64, presize(len(nbs)))
		for _, j := range nbs {
			if err = checkNeighbor(methodNew, n, i, j); err != nil {
				return nil, err
			}
			if _, dup := row[j]; dup {
				return nil, fmt.Errorf("%s: vertex %d lists %d twice: %w", methodNew, i, j, ErrDuplicateNeighbor)
			}
			row[j] = m.initValue
		}
		m.rows[i] = row
		m.rowSums[i] = m.initValue * float64(len(row))
		m.alive[i] = true
		adjacency += len(nbs)
	}

	if adjacency != 2*e {
		return nil, fmt.Errorf("%s: Σdeg=%d, 2|E|=%d: %w", methodNew, adjacency, 2*e, ErrEdgeCountMismatch)
	}
	if err := m.checkSymmetric(methodNew); err != nil {
		return nil, err
	}

	m.log.Debug().
		Str("method", methodNew).
		Int("dimension", m.dimension).
		Int("nonzeros", adjacency).
		Float64("init_value", m.initValue).
		Msg("clustering matrix built")

	return m, nil
}

// NewFromPartition builds E for g with one row per cluster of p.
//
// Implementation:
//   - Stage 1: map every vertex to its cluster representative (first listed id).
//   - Stage 2: for every vertex i and neighbor j accumulate
//     E[rep(i)][rep(j)] += initValue. Edges inside a cluster land on the
//     diagonal, once per direction.
//   - Stage 3: recompute every row sum by summation.
//
// Row indices are representative vertex ids, not 0..k-1. Rows of
// non-representative vertices are retired from the start.
//
// Errors:
//   - ErrGraphNil, ErrPartitionNil, ErrNoEdges, ErrInvalidPartition,
//     ErrUnknownVertex, ErrSelfLoop, ErrDuplicateNeighbor,
//     ErrEdgeCountMismatch, ErrAsymmetricGraph.
//
// Complexity: O(V + E) time; O(V + E) temporary space for the representative
// map and the arc set.
func NewFromPartition(g Graph, p Partition, opts ...Option) (*Sparse, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if p == nil {
		return nil, ErrPartitionNil
	}
	o := gatherOptions(opts...)

	n, e := g.VertexCount(), g.EdgeCount()
	if e <= 0 {
		return nil, fmt.Errorf("%s: |E|=%d: %w", methodNewFromPartition, e, ErrNoEdges)
	}

	clusters := p.Clusters()
	rep, err := representatives(clusters, n)
	if err != nil {
		return nil, err
	}

	m := newSparse(n, len(clusters), 1.0/(2.0*float64(e)), o)
	for _, c := range clusters {
		r := c[0]
		m.rows[r] = make(map[int]float64)
		m.alive[r] = true
	}

	// mark[j] == i+1 once j has been seen in i's neighbor list.
	mark := make([]int, n)
	arcs := make(map[[2]int]struct{})
	lists := make([][]int, n)
	adjacency := 0
	for i := 0; i < n; i++ {
		nbs, err := g.Neighbors(i)
		if err != nil {
			return nil, fmt.Errorf("%s: Neighbors(%d): %w", methodNewFromPartition, i, err)
		}
		row := m.rows[rep[i]]
		for _, j := range nbs {
			if err = checkNeighbor(methodNewFromPartition, n, i, j); err != nil {
				return nil, err
			}
			if mark[j] == i+1 {
				return nil, fmt.Errorf("%s: vertex %d lists %d twice: %w", methodNewFromPartition, i, j, ErrDuplicateNeighbor)
			}
			mark[j] = i + 1
			arcs[[2]int{i, j}] = struct{}{}
			row[rep[j]] += m.initValue
		}
		lists[i] = nbs
		adjacency += len(nbs)
	}

	if adjacency != 2*e {
		return nil, fmt.Errorf("%s: Σdeg=%d, 2|E|=%d: %w", methodNewFromPartition, adjacency, 2*e, ErrEdgeCountMismatch)
	}
	// Folding into representatives can hide a one-way arc inside a cluster,
	// so symmetry is checked on the vertex adjacency first.
	for i, nbs := range lists {
		for _, j := range nbs {
			if _, ok := arcs[[2]int{j, i}]; !ok {
				return nil, fmt.Errorf("%s: vertex %d lists %d but not vice versa: %w", methodNewFromPartition, i, j, ErrAsymmetricGraph)
			}
		}
	}

	for i, row := range m.rows {
		var sum float64
		for _, v := range row {
			sum += v
		}
		m.rowSums[i] = sum
	}

	if err = m.checkSymmetric(methodNewFromPartition); err != nil {
		return nil, err
	}

	m.log.Debug().
		Str("method", methodNewFromPartition).
		Int("dimension", m.dimension).
		Int("slots", n).
		Float64("init_value", m.initValue).
		Msg("clustering matrix built")

	return m, nil
}

// representatives returns rep[v] = first id of v's cluster, validating that
// clusters are non-empty, disjoint, in range and covering 0..n-1.
func representatives(clusters [][]int, n int) ([]int, error) {
	rep := make([]int, n)
	for v := range rep {
		rep[v] = -1
	}
	for ci, c := range clusters {
		if len(c) == 0 {
			return nil, fmt.Errorf("%s: cluster %d is empty: %w", methodNewFromPartition, ci, ErrInvalidPartition)
		}
		for _, v := range c {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("%s: cluster %d: vertex %d out of range: %w", methodNewFromPartition, ci, v, ErrInvalidPartition)
			}
			if rep[v] != -1 {
				return nil, fmt.Errorf("%s: vertex %d in two clusters: %w", methodNewFromPartition, v, ErrInvalidPartition)
			}
			rep[v] = c[0]
		}
	}
	for v, r := range rep {
		if r == -1 {
			return nil, fmt.Errorf("%s: vertex %d not covered: %w", methodNewFromPartition, v, ErrInvalidPartition)
		}
	}

	return rep, nil
}

func checkNeighbor(method string, n, i, j int) error {
	if j < 0 || j >= n {
		return fmt.Errorf("%s: vertex %d lists %d: %w", method, i, j, ErrUnknownVertex)
	}
	if j == i {
		return fmt.Errorf("%s: vertex %d: %w", method, i, ErrSelfLoop)
	}

	return nil
}

// checkSymmetric verifies E[j][i] exists and matches E[i][j] for every entry.
func (m *Sparse) checkSymmetric(method string) error {
	for i, row := range m.rows {
		for j, v := range row {
			w, ok := m.rows[j][i]
			if !ok || math.Abs(v-w) > m.eps {
				return fmt.Errorf("%s: E[%d][%d]=%g, E[%d][%d]=%g: %w", method, i, j, v, j, i, w, ErrAsymmetricGraph)
			}
		}
	}

	return nil
}
