// SPDX-License-Identifier: MIT

package agglomerative

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/modclust/matrix"
)

// Strategy selects which rows are scanned for the next join.
type Strategy int

const (
	// Greedy scans every alive row and joins the globally best pair.
	Greedy Strategy = iota
	// Randomized scans SampleSize rows drawn at random and joins the best
	// pair touching one of them.
	Randomized
)

// String returns the lowercase strategy name.
func (s Strategy) String() string {
	switch s {
	case Greedy:
		return "greedy"
	case Randomized:
		return "randomized"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps "greedy" or "randomized" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "greedy":
		return Greedy, nil
	case "randomized", "random", "rg":
		return Randomized, nil
	default:
		return 0, fmt.Errorf("ParseStrategy(%q): %w", name, ErrUnknownStrategy)
	}
}

// candidate is the best join seen so far. Pairs are stored as lo < hi.
type candidate struct {
	lo, hi int
	gain   float64
	ok     bool
}

// offer keeps the higher gain; equal gains go to the smaller (lo, hi).
func (c *candidate) offer(i, j int, gain float64) {
	if i > j {
		i, j = j, i
	}
	switch {
	case !c.ok, gain > c.gain:
	case gain == c.gain && (i < c.lo || (i == c.lo && j < c.hi)):
	default:
		return
	}
	c.lo, c.hi, c.gain, c.ok = i, j, gain, true
}

// scanRow offers every off-diagonal entry of row i with
// ΔQ(i,j) = 2(E[i][j] − a_i·a_j).
func (c *candidate) scanRow(m *matrix.Sparse, i int) error {
	ai, err := m.RowSum(i)
	if err != nil {
		return err
	}

	return m.RangeRow(i, func(j int, v float64) bool {
		if j == i {
			return true
		}
		aj, _ := m.RowSum(j)
		c.offer(i, j, 2*(v-ai*aj))
		return true
	})
}

// pick returns the best join among the rows the strategy scans.
func pick(m *matrix.Sparse, s Strategy, sample int, rng *rand.Rand) (candidate, error) {
	var best candidate
	rows := m.Clusters()
	if s == Randomized && sample < len(rows) {
		// partial Fisher-Yates: the first sample slots become the draw
		for k := 0; k < sample; k++ {
			r := k + rng.Intn(len(rows)-k)
			rows[k], rows[r] = rows[r], rows[k]
		}
		rows = rows[:sample]
	}
	for _, i := range rows {
		if err := best.scanRow(m, i); err != nil {
			return candidate{}, err
		}
	}

	return best, nil
}
