// SPDX-License-Identifier: MIT

// File: methods.go
// Role: vertex/edge lifecycle and read-only queries.
//
// Determinism:
//   - Neighbors() and Edges() return ascending ids.
//
// Concurrency:
//   - Writers take mu.Lock, readers take mu.RLock; returned slices are copies.
package core

import (
	"fmt"
	"sort"
)

// AddVertex appends a new isolated vertex and returns its id.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adj = append(g.adj, make(map[int]struct{}))

	return len(g.adj) - 1
}

// AddEdge inserts the undirected edge {u, v}.
//
// Implementation:
//   - Stage 1: reject unknown ids (ErrVertexNotFound) and loops (ErrLoopNotAllowed).
//   - Stage 2: under the write lock reject an existing edge (ErrMultiEdgeNotAllowed).
//   - Stage 3: record both directions and bump the edge counter.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.valid(u) {
		return fmt.Errorf("AddEdge(%d,%d): u: %w", u, v, ErrVertexNotFound)
	}
	if !g.valid(v) {
		return fmt.Errorf("AddEdge(%d,%d): v: %w", u, v, ErrVertexNotFound)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	if _, ok := g.adj[u][v]; ok {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}

	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.edges++

	return nil
}

// HasEdge reports whether {u, v} exists. Unknown ids yield false.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(u) || !g.valid(v) {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// Neighbors returns the ascending neighbor ids of v as a fresh slice.
//
// Errors:
//   - ErrVertexNotFound if v is out of range.
//
// Complexity: O(d log d) for degree d.
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(v) {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexNotFound)
	}
	out := make([]int, 0, len(g.adj[v]))
	for w := range g.adj[v] {
		out = append(out, w)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(v) {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrVertexNotFound)
	}

	return len(g.adj[v]), nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Edges returns every edge once, as (U<V), sorted by U then V.
// Complexity: O(V + E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edges)
	for u, set := range g.adj {
		for v := range set {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{adj: make([]map[int]struct{}, len(g.adj)), edges: g.edges}
	for v, set := range g.adj {
		cp := make(map[int]struct{}, len(set))
		for w := range set {
			cp[w] = struct{}{}
		}
		c.adj[v] = cp
	}

	return c
}

// valid reports whether v is a known id. Callers hold mu.
func (g *Graph) valid(v int) bool {
	return v >= 0 && v < len(g.adj)
}
