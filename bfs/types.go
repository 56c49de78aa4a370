// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for traversal.
var (
	// ErrStartVertexNotFound is returned when the start id is outside [0, VertexCount).
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNeighbors is returned when fetching neighbors from the graph fails
	// or yields an id outside the vertex range.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")

	// ErrNoPath is returned by PathTo for a vertex the search did not reach.
	ErrNoPath = errors.New("bfs: no path")
)

// Graph is the read surface BFS walks. Vertices are 0..VertexCount()-1.
// *core.Graph and matrix.Graph implementations satisfy it.
type Graph interface {
	VertexCount() int
	Neighbors(v int) ([]int, error)
}

// Option configures BFS and Components.
type Option func(*options)

type options struct {
	ctx         context.Context
	onComponent func(index int, members []int) error
}

func gatherOptions(opts ...Option) options {
	o := options{
		ctx:         context.Background(),
		onComponent: func(int, []int) error { return nil },
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithContext sets the context checked before every dequeue.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnComponent registers fn to run as Components closes each component.
// index counts components from 0; members is in visit order and is the same
// slice Components returns, so fn must not modify it. A non-nil error aborts
// Components.
// BFS ignores it.
func WithOnComponent(fn func(index int, members []int) error) Option {
	return func(o *options) {
		if fn != nil {
			o.onComponent = fn
		}
	}
}

// Unreached marks Depth and Parent slots of vertices the search never saw.
const Unreached = -1

// Result is a BFS tree rooted at the start vertex.
//   - Order: vertices in visit sequence.
//   - Depth: hop distance from the start, Unreached otherwise.
//   - Parent: predecessor in the tree, Unreached for the start and for
//     vertices never reached.
type Result struct {
	Order  []int
	Depth  []int
	Parent []int
}

// Reached reports whether v was visited.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] != Unreached
}

// PathTo walks parent links back from dest and returns start..dest.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("PathTo(%d): %w", dest, ErrNoPath)
	}
	path := make([]int, r.Depth[dest]+1)
	for cur, k := dest, len(path)-1; k >= 0; cur, k = r.Parent[cur], k-1 {
		path[k] = cur
	}

	return path, nil
}
