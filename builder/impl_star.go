// SPDX-License-Identifier: MIT

// Package: modclust/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The first added vertex is the center; leaves follow in ascending order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/modclust/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one center and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		center := addVertices(g, n)
		for i := 1; i < n; i++ {
			if err := addEdge(methodStar, g, center, center+i); err != nil {
				return err
			}
		}

		return nil
	}
}
