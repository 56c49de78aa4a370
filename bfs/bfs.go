// SPDX-License-Identifier: MIT

package bfs

import "fmt"

// walker holds the frontier and the tree built so far. One walker can run
// several searches in a row; visited marks persist between them.
type walker struct {
	graph   Graph
	opts    options
	queue   []int
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrNeighbors for graph failures, or the context error on cancellation.
//
// Complexity: O(V + E) time, O(V) space.
func BFS(g Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := gatherOptions(opts...)

	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("BFS(%d): %w", start, ErrStartVertexNotFound)
	}

	w := newWalker(g, o, n)
	w.push(start, 0, Unreached)

	return w.res, w.drain()
}

func newWalker(g Graph, o options, n int) *walker {
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]int, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = Unreached
	}

	return w
}

func (w *walker) push(v, depth, parent int) {
	w.visited[v] = true
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// drain visits queued vertices until the frontier is empty.
func (w *walker) drain() error {
	for len(w.queue) > 0 {
		if err := w.opts.ctx.Err(); err != nil {
			return err
		}

		v := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, v)

		nbs, err := w.graph.Neighbors(v)
		if err != nil {
			return fmt.Errorf("%w: neighbors of %d: %v", ErrNeighbors, v, err)
		}
		for _, u := range nbs {
			if u < 0 || u >= len(w.visited) {
				return fmt.Errorf("%w: neighbor %d of %d out of range", ErrNeighbors, u, v)
			}
			if !w.visited[u] {
				w.push(u, w.res.Depth[v]+1, v)
			}
		}
	}

	return nil
}
