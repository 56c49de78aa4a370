// SPDX-License-Identifier: MIT

// Package partition holds a validated split of the vertex set 0..n-1 into
// disjoint, non-empty clusters.
//
// A Partition seeds the clustering matrix (each cluster becomes one row,
// stored under the cluster's first listed vertex) and is the final output of
// the clustering driver.
package partition

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for partition validation.
var (
	// ErrEmptyCluster indicates a cluster with no members.
	ErrEmptyCluster = errors.New("partition: empty cluster")

	// ErrDuplicateVertex indicates a vertex listed twice (within or across clusters).
	ErrDuplicateVertex = errors.New("partition: vertex assigned twice")

	// ErrVertexOutOfRange indicates a vertex id outside 0..n-1, or a negative n.
	ErrVertexOutOfRange = errors.New("partition: vertex out of range")

	// ErrUncovered indicates that some vertex belongs to no cluster.
	ErrUncovered = errors.New("partition: vertex not covered")
)

// Partition is an immutable set of disjoint clusters covering 0..n-1.
// Each cluster keeps the member order it was created with; the first member
// is the cluster's representative.
type Partition struct {
	n        int
	clusters [][]int
}

// New validates clusters against the vertex range 0..n-1 and returns a
// Partition owning a private copy of them.
//
// Errors (first violation wins, clusters scanned in order):
//   - ErrVertexOutOfRange for n < 0.
//   - ErrEmptyCluster, ErrVertexOutOfRange, ErrDuplicateVertex, ErrUncovered.
//
// Complexity: O(n + Σ|cluster|).
func New(clusters [][]int, n int) (*Partition, error) {
	if n < 0 {
		return nil, fmt.Errorf("New: n=%d: %w", n, ErrVertexOutOfRange)
	}
	seen := make([]bool, n)
	covered := 0
	cp := make([][]int, len(clusters))
	for ci, c := range clusters {
		if len(c) == 0 {
			return nil, fmt.Errorf("New: cluster %d: %w", ci, ErrEmptyCluster)
		}
		for _, v := range c {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("New: cluster %d: vertex %d (n=%d): %w", ci, v, n, ErrVertexOutOfRange)
			}
			if seen[v] {
				return nil, fmt.Errorf("New: cluster %d: vertex %d: %w", ci, v, ErrDuplicateVertex)
			}
			seen[v] = true
			covered++
		}
		cp[ci] = append([]int(nil), c...)
	}
	if covered != n {
		for v, ok := range seen {
			if !ok {
				return nil, fmt.Errorf("New: vertex %d: %w", v, ErrUncovered)
			}
		}
	}

	return &Partition{n: n, clusters: cp}, nil
}

// Singletons returns the partition {{0},{1},...,{n-1}}.
func Singletons(n int) *Partition {
	cs := make([][]int, n)
	for v := range cs {
		cs[v] = []int{v}
	}

	return &Partition{n: n, clusters: cs}
}

// FromMembership groups vertices by label. labels[v] is the cluster label of
// v; labels need not be dense. Clusters are ordered by their smallest member
// and members are ascending, so the representative is the smallest vertex.
func FromMembership(labels []int) *Partition {
	byLabel := make(map[int][]int)
	order := make([]int, 0)
	for v, l := range labels {
		if _, ok := byLabel[l]; !ok {
			order = append(order, l)
		}
		byLabel[l] = append(byLabel[l], v)
	}
	cs := make([][]int, 0, len(order))
	for _, l := range order {
		cs = append(cs, byLabel[l])
	}

	return &Partition{n: len(labels), clusters: cs}
}

// Clusters returns a deep copy of the clusters in their stored order.
func (p *Partition) Clusters() [][]int {
	out := make([][]int, len(p.clusters))
	for i, c := range p.clusters {
		out[i] = append([]int(nil), c...)
	}

	return out
}

// Len returns the number of clusters.
func (p *Partition) Len() int { return len(p.clusters) }

// VertexCount returns n, the size of the partitioned vertex set.
func (p *Partition) VertexCount() int { return p.n }

// Membership returns labels where labels[v] is the index of v's cluster.
func (p *Partition) Membership() []int {
	labels := make([]int, p.n)
	for ci, c := range p.clusters {
		for _, v := range c {
			labels[v] = ci
		}
	}

	return labels
}

// Sizes returns cluster sizes sorted descending.
func (p *Partition) Sizes() []int {
	out := make([]int, len(p.clusters))
	for i, c := range p.clusters {
		out[i] = len(c)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))

	return out
}
