// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
)

// FromGonum copies a gonum undirected graph into a dense-id Graph.
//
// Node ids are sorted ascending and renumbered 0..n-1; the returned slice maps
// each dense id back to its gonum node id. Self-loops in the source are
// rejected with ErrLoopNotAllowed because the clustering matrix requires a
// simple graph.
//
// Complexity: O(V log V + E).
func FromGonum(src graph.Undirected) (*Graph, []int64, error) {
	if src == nil {
		return nil, nil, ErrGraphNil
	}

	nodes := graph.NodesOf(src.Nodes())
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	g, err := NewGraph(len(ids))
	if err != nil {
		return nil, nil, err
	}
	for u, uid := range ids {
		to := src.From(uid)
		for to.Next() {
			v := index[to.Node().ID()]
			if u == v {
				return nil, nil, fmt.Errorf("FromGonum: node %d: %w", uid, ErrLoopNotAllowed)
			}
			if u > v {
				continue
			}
			if err = g.AddEdge(u, v); err != nil {
				return nil, nil, fmt.Errorf("FromGonum: %w", err)
			}
		}
	}

	return g, ids, nil
}
