// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// JoinCluster merges cluster b into cluster a and retires b.
//
// With ab = E[a][b], aa = E[a][a], bb = E[b][b] (absent entries count as 0):
//   - every column c ∉ {a,b} of row b: E[a][c] = E[c][a] = E[a][c] + E[b][c],
//     and E[c][b] is removed;
//   - E[a][a] = aa + 2·ab + bb, stored only if any of the three existed;
//   - column b is removed from row a;
//   - rowSum[a] += rowSum[b]; row b is cleared, its sum zeroed, its slot retired.
//
// The diagonal picks up both directed cross entries (E[a][b] and E[b][a])
// because after the merge they are internal to a. This keeps rowSum[a] equal
// to the sum of its entries and makes New followed by joins identical to
// NewFromPartition on the same grouping.
//
// Row b is copied into a slice before any row is touched. Cost is
// O(entries of b), so pass the smaller row as b.
//
// Errors:
//   - ErrSelfJoin if a == b.
//   - ErrOutOfRange / ErrRetiredRow if either row is invalid.
func (m *Sparse) JoinCluster(a, b int) error {
	if a == b {
		return fmt.Errorf("JoinCluster(%d,%d): %w", a, b, ErrSelfJoin)
	}
	rowA, err := m.row("JoinCluster", a)
	if err != nil {
		return err
	}
	rowB, err := m.row("JoinCluster", b)
	if err != nil {
		return err
	}

	aa, hasAA := rowA[a]
	ab, hasAB := rowA[b]
	bb, hasBB := rowB[b]

	moved := make([]Entry, 0, len(rowB))
	for c, v := range rowB {
		if c == a || c == b {
			continue
		}
		moved = append(moved, Entry{Col: c, Value: v})
	}

	for _, e := range moved {
		nv := rowA[e.Col] + e.Value
		rowA[e.Col] = nv
		rowC := m.rows[e.Col]
		rowC[a] = nv
		delete(rowC, b)
	}

	delete(rowA, b)
	if hasAA || hasAB || hasBB {
		rowA[a] = aa + 2*ab + bb
	}

	m.rowSums[a] += m.rowSums[b]
	m.rowSums[b] = 0
	m.rows[b] = nil
	m.alive[b] = false
	m.active--

	m.log.Debug().
		Int("into", a).
		Int("from", b).
		Int("moved", len(moved)).
		Int("entries", len(rowA)).
		Float64("row_sum", m.rowSums[a]).
		Msg("join cluster")

	return nil
}
