// SPDX-License-Identifier: MIT

// Package matrix: read surface. Nothing here hands out a reference into the
// row storage: Row returns a copy, RangeRow yields values.
package matrix

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Dimension returns the cluster count fixed at construction.
func (m *Sparse) Dimension() int { return m.dimension }

// Size returns the number of row slots (the graph's vertex count).
func (m *Sparse) Size() int { return len(m.rows) }

// Active returns the number of rows still holding a cluster.
func (m *Sparse) Active() int { return m.active }

// InitValue returns 1/(2|E|).
func (m *Sparse) InitValue() float64 { return m.initValue }

// Alive reports whether row i holds a cluster. Out-of-range ids are not alive.
func (m *Sparse) Alive(i int) bool {
	return i >= 0 && i < len(m.alive) && m.alive[i]
}

// Clusters returns the alive row ids in ascending order.
// Complexity: O(Size()).
func (m *Sparse) Clusters() []int {
	out := make([]int, 0, m.active)
	for i, ok := range m.alive {
		if ok {
			out = append(out, i)
		}
	}

	return out
}

// Row returns a copy of row i.
// Complexity: O(entries of i).
func (m *Sparse) Row(i int) (map[int]float64, error) {
	row, err := m.row("Row", i)
	if err != nil {
		return nil, err
	}
	out := make(map[int]float64, len(row))
	for c, v := range row {
		out[c] = v
	}

	return out, nil
}

// Entries returns row i as (column, value) pairs sorted by column.
func (m *Sparse) Entries(i int) ([]Entry, error) {
	row, err := m.row("Entries", i)
	if err != nil {
		return nil, err
	}

	return snapshot(row), nil
}

// RangeRow calls fn for every entry of row i until fn returns false.
// Iteration order is unspecified. fn must not call JoinCluster.
func (m *Sparse) RangeRow(i int, fn func(col int, value float64) bool) error {
	row, err := m.row("RangeRow", i)
	if err != nil {
		return err
	}
	for c, v := range row {
		if !fn(c, v) {
			break
		}
	}

	return nil
}

// RowSum returns the maintained sum of row i in O(1).
func (m *Sparse) RowSum(i int) (float64, error) {
	if _, err := m.row("RowSum", i); err != nil {
		return 0, err
	}

	return m.rowSums[i], nil
}

// RowEntries returns the number of stored columns in row i.
func (m *Sparse) RowEntries(i int) (int, error) {
	row, err := m.row("RowEntries", i)
	if err != nil {
		return 0, err
	}

	return len(row), nil
}

// Get returns E[i][j].
//
// Errors:
//   - ErrOutOfRange for i or j outside the slot array.
//   - ErrRetiredRow if row i is retired.
//   - ErrCellNotFound if no entry is stored at (i, j); there is no zero default.
func (m *Sparse) Get(i, j int) (float64, error) {
	row, err := m.row("Get", i)
	if err != nil {
		return 0, err
	}
	if j < 0 || j >= len(m.rows) {
		return 0, fmt.Errorf("Get(%d,%d): column: %w", i, j, ErrOutOfRange)
	}
	v, ok := row[j]
	if !ok {
		return 0, fmt.Errorf("Get(%d,%d): %w", i, j, ErrCellNotFound)
	}

	return v, nil
}

// TotalMass returns Σ rowSum over all slots; retired slots contribute 0.
func (m *Sparse) TotalMass() float64 {
	return floats.Sum(m.rowSums)
}

// row resolves an alive row or reports why it cannot.
func (m *Sparse) row(method string, i int) (map[int]float64, error) {
	if i < 0 || i >= len(m.rows) {
		return nil, fmt.Errorf("%s(%d): %w", method, i, ErrOutOfRange)
	}
	if !m.alive[i] {
		return nil, fmt.Errorf("%s(%d): %w", method, i, ErrRetiredRow)
	}

	return m.rows[i], nil
}

// snapshot copies row into a column-ordered slice.
func snapshot(row map[int]float64) []Entry {
	out := make([]Entry, 0, len(row))
	for c, v := range row {
		out = append(out, Entry{Col: c, Value: v})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Col < out[b].Col })

	return out
}
