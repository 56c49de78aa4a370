// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search and connected components over a
// dense-id undirected graph.
//
// What
//
//   - BFS explores vertices in non-decreasing hop distance from a start
//     vertex and returns a Result with visit Order, per-vertex Depth and the
//     Parent links PathTo walks back.
//   - Components splits a graph into its connected components with one
//     shared walker, reporting each component to an optional
//     WithOnComponent hook as soon as it is closed.
//   - WithContext makes both cancellable between dequeues.
//
// Why
//
//	The clustering driver reports how many connected components the input
//	has and how large the biggest one is: a join across components never has
//	positive gain, so the component count bounds the final cluster count.
//
// Determinism
//
//	core.Graph returns neighbors in ascending order and BFS enqueues them in
//	that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0)
//	path, err := res.PathTo(5)
//	comps, err := bfs.Components(g, bfs.WithContext(ctx))
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start id is out of range.
//   - ErrNeighbors            if Neighbors fails or yields an out-of-range id.
//   - ErrNoPath               from PathTo for an unreached vertex.
//   - Wrapped errors returned by the WithOnComponent hook.
package bfs
