// SPDX-License-Identifier: MIT

// Package: modclust/builder
//
// impl_ring_of_cliques.go — implementation of RingOfCliques(k, size).
//
// Contract:
//   • k ≥ 2 cliques, size ≥ 3 vertices each (else ErrTooFewVertices).
//   • Clique c occupies ids base+c·size .. base+(c+1)·size-1.
//   • The last vertex of clique c is linked to the first vertex of clique
//     (c+1) mod k, so the ring has exactly k bridge edges.
//
// The ring of cliques is the textbook fixture for modularity clustering:
// the optimum groups each clique on its own.

package builder

import (
	"fmt"

	"github.com/katalvlaran/modclust/core"
)

const (
	methodRingOfCliques = "RingOfCliques"
	minRingCliques      = 2
	minCliqueSize       = 3
)

// RingOfCliques returns a Constructor that builds k cliques of the given size
// joined in a ring by single edges.
// Complexity: O(k·size²) edges.
func RingOfCliques(k, size int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if k < minRingCliques {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodRingOfCliques, k, minRingCliques, ErrTooFewVertices)
		}
		if size < minCliqueSize {
			return fmt.Errorf("%s: size=%d < min=%d: %w", methodRingOfCliques, size, minCliqueSize, ErrTooFewVertices)
		}
		base := addVertices(g, k*size)

		for c := 0; c < k; c++ {
			first := base + c*size
			for i := 0; i < size; i++ {
				for j := i + 1; j < size; j++ {
					if err := addEdge(methodRingOfCliques, g, first+i, first+j); err != nil {
						return err
					}
				}
			}
		}
		for c := 0; c < k; c++ {
			last := base + c*size + size - 1
			next := base + ((c+1)%k)*size
			if err := addEdge(methodRingOfCliques, g, last, next); err != nil {
				return err
			}
		}

		return nil
	}
}
