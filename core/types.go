// SPDX-License-Identifier: MIT

// Package core defines the dense-id undirected simple Graph consumed by the
// clustering matrix and the clustering driver.
//
// Vertices are the integers 0..n-1 in insertion order. Edges are undirected,
// unweighted and simple: self-loops and parallel edges are rejected at
// insertion, which is exactly the precondition the clustering matrix places
// on its input.
//
// All methods are safe for concurrent use; a single sync.RWMutex guards the
// adjacency sets.
//
// Errors:
//
//	ErrVertexNotFound       - an id outside 0..VertexCount()-1 was referenced.
//	ErrLoopNotAllowed       - AddEdge(v, v).
//	ErrMultiEdgeNotAllowed  - the edge already exists.
//	ErrNegativeSize         - NewGraph was asked for a negative vertex count.
//	ErrGraphNil             - a nil gonum graph was handed to FromGonum.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrNegativeSize indicates a negative vertex count.
	ErrNegativeSize = errors.New("core: negative vertex count")

	// ErrGraphNil indicates a nil source graph.
	ErrGraphNil = errors.New("core: graph is nil")
)

// Edge is an undirected edge reported with U < V.
type Edge struct {
	U int
	V int
}

// Graph is an in-memory undirected simple graph over dense integer ids.
//
// adj[v] holds the neighbor set of v; every edge {u,v} is stored twice
// (adj[u][v] and adj[v][u]). edges counts undirected edges once.
type Graph struct {
	mu sync.RWMutex // guards adj and edges

	adj   []map[int]struct{}
	edges int
}

// NewGraph creates a graph with n isolated vertices 0..n-1.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	g := &Graph{adj: make([]map[int]struct{}, n)}
	for i := range g.adj {
		g.adj[i] = make(map[int]struct{})
	}

	return g, nil
}
