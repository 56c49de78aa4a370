// SPDX-License-Identifier: MIT

// Package builder provides deterministic graph fixtures over core.Graph.
//
// Constructors are composed with BuildGraph; each one appends its own block
// of fresh vertices, so BuildGraph(nil, Cycle(4), Path(3)) is the disjoint
// union of a 4-cycle (ids 0..3) and a 3-path (ids 4..6).
//
//	g, err := builder.BuildGraph(nil, builder.RingOfCliques(4, 5))
//
// Stochastic constructors (RandomSparse) need WithSeed or WithRand.
package builder
