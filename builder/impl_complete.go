// SPDX-License-Identifier: MIT

// Package: modclust/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices); a single vertex has no edges and
//     cannot seed a clustering matrix.
//   • Emits edges (i,j) for i<j, i asc then j asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/modclust/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor that builds the complete simple graph K_n.
// Complexity: O(n) vertices + O(n²) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := addVertices(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
