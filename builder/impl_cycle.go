// SPDX-License-Identifier: MIT

// Package: modclust/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges i -> (i+1)%n for i=0..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/modclust/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := addVertices(g, n)
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
