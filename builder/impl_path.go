// SPDX-License-Identifier: MIT

// Package: modclust/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1, i) for i=1..n-1 in increasing order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/modclust/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := addVertices(g, n)
		for i := 1; i < n; i++ {
			if err := addEdge(methodPath, g, base+i-1, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}
