// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Validate checks every structural invariant within eps:
//   - retired slots hold no entries and a zero sum;
//   - alive rows reference only alive columns (ErrRetiredReference);
//   - E[i][j] == E[j][i] (ErrAsymmetry);
//   - rowSum[i] == Σ_j E[i][j] (ErrRowSumDrift);
//   - Σ rowSum == 1 (ErrMassDrift).
//
// Complexity: O(Size() + nonzeros).
func (m *Sparse) Validate() error {
	for i, row := range m.rows {
		if !m.alive[i] {
			if len(row) != 0 || m.rowSums[i] != 0 {
				return fmt.Errorf("Validate: retired row %d holds %d entries, sum %g: %w", i, len(row), m.rowSums[i], ErrRetiredRow)
			}
			continue
		}

		var sum float64
		for j, v := range row {
			if !m.Alive(j) {
				return fmt.Errorf("Validate: E[%d][%d]: %w", i, j, ErrRetiredReference)
			}
			w, ok := m.rows[j][i]
			if !ok || math.Abs(v-w) > m.eps {
				return fmt.Errorf("Validate: E[%d][%d]=%g, E[%d][%d]=%g: %w", i, j, v, j, i, w, ErrAsymmetry)
			}
			sum += v
		}
		if math.Abs(sum-m.rowSums[i]) > m.eps {
			return fmt.Errorf("Validate: row %d entries sum %g, stored %g: %w", i, sum, m.rowSums[i], ErrRowSumDrift)
		}
	}

	if mass := m.TotalMass(); math.Abs(mass-1) > m.eps {
		return fmt.Errorf("Validate: mass %g: %w", mass, ErrMassDrift)
	}

	return nil
}
