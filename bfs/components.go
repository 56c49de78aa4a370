// SPDX-License-Identifier: MIT

package bfs

import "fmt"

// Components returns the connected components of g. Each component lists
// its vertices in BFS order from its smallest vertex, and components appear
// in order of that vertex. Isolated vertices form singleton components.
//
// The WithOnComponent hook sees each component as soon as it is closed.
//
// Complexity: O(V + E).
func Components(g Graph, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := gatherOptions(opts...)

	n := g.VertexCount()
	w := newWalker(g, o, n)

	var out [][]int
	for v := 0; v < n; v++ {
		if w.visited[v] {
			continue
		}
		from := len(w.res.Order)
		w.push(v, 0, Unreached)
		if err := w.drain(); err != nil {
			return nil, err
		}
		comp := make([]int, len(w.res.Order)-from)
		copy(comp, w.res.Order[from:])
		if err := o.onComponent(len(out), comp); err != nil {
			return nil, fmt.Errorf("Components: component %d: %w", len(out), err)
		}
		out = append(out, comp)
	}

	return out, nil
}
