// SPDX-License-Identifier: MIT

// Package matrix: domain types. The collaborator interfaces consumed at
// construction and the Sparse matrix itself.
package matrix

import "github.com/rs/zerolog"

// Graph is the read-only view of an undirected simple graph consumed at
// construction. Vertex ids are 0..VertexCount()-1; Neighbors(v) lists every
// neighbor of v exactly once, and u∈Neighbors(v) iff v∈Neighbors(u).
// *core.Graph satisfies it.
type Graph interface {
	VertexCount() int
	EdgeCount() int
	Neighbors(v int) ([]int, error)
}

// Partition is a collection of disjoint, non-empty groups of vertex ids
// covering the graph. The first id of each group is its representative row.
// *partition.Partition satisfies it.
type Partition interface {
	Clusters() [][]int
}

// Entry is one stored (column, value) pair of a row.
type Entry struct {
	Col   int
	Value float64
}

// Sparse is the symmetric sparse matrix E of edge fractions between clusters.
//
// rows has one slot per original vertex and never shrinks. A slot is alive
// while it holds a cluster; retired slots have a nil map and a zero sum.
// rowSums[i] is maintained incrementally and always equals Σ_j rows[i][j].
//
// Sparse is not safe for concurrent use: JoinCluster mutates row a, row b and
// every row that references b. Callers serialize all access during a join.
type Sparse struct {
	rows    []map[int]float64
	rowSums []float64
	alive   []bool

	dimension int // cluster count at construction
	active    int // currently alive rows
	initValue float64

	eps float64
	log zerolog.Logger
}

func newSparse(slots, dimension int, initValue float64, o Options) *Sparse {
	return &Sparse{
		rows:      make([]map[int]float64, slots),
		rowSums:   make([]float64, slots),
		alive:     make([]bool, slots),
		dimension: dimension,
		active:    dimension,
		initValue: initValue,
		eps:       o.eps,
		log:       o.logger,
	}
}
