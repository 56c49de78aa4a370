// SPDX-License-Identifier: MIT

package agglomerative

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/modclust/matrix"
)

// Modularity returns Q = Σ_i (E[i][i] − a_i²) over the alive rows of m.
// Complexity: O(Size()).
func Modularity(m *matrix.Sparse) float64 {
	alive := m.Clusters()
	terms := make([]float64, len(alive))
	for k, i := range alive {
		eii, _ := m.Get(i, i) // absent diagonal reads as 0
		ai, _ := m.RowSum(i)
		terms[k] = eii - ai*ai
	}

	return floats.Sum(terms)
}
