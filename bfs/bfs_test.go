// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/modclust/bfs"
	"github.com/katalvlaran/modclust/builder"
	"github.com/katalvlaran/modclust/core"
)

func build(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, cons...)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return g
}

// brokenGraph reports a neighbor id outside its vertex range.
type brokenGraph struct{}

func (brokenGraph) VertexCount() int { return 2 }
func (brokenGraph) Neighbors(int) ([]int, error) { return []int{7}, nil }

// TestBFS_Errors verifies that invalid inputs are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := build(t, builder.Path(2))
	if _, err := bfs.BFS(g, 5); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(g, -1); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("negative start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(brokenGraph{}, 0); !errors.Is(err, bfs.ErrNeighbors) {
		t.Errorf("broken graph: want ErrNeighbors, got %v", err)
	}
}

// TestBFS_CycleDepths covers a simple cycle and checks depths.
func TestBFS_CycleDepths(t *testing.T) {
	res, err := bfs.BFS(build(t, builder.Cycle(4)), 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 3, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{0, 1, 2, 1}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	if res.Parent[0] != bfs.Unreached || res.Parent[2] != 1 {
		t.Errorf("Parent = %v", res.Parent)
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := build(t, builder.Path(2), builder.Path(2))
	res, _ := bfs.BFS(g, 2)
	if want := []int{2, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("From 2: got %v; want %v", res.Order, want)
	}
	if res.Reached(0) || res.Reached(-1) || res.Reached(9) {
		t.Errorf("unreached vertex reported reached")
	}
	if _, err := res.PathTo(0); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo unreachable: want ErrNoPath, got %v", err)
	}
}

// TestResult_PathTo reconstructs shortest paths from parent links.
func TestResult_PathTo(t *testing.T) {
	res, err := bfs.BFS(build(t, builder.RingOfCliques(3, 3)), 0)
	if err != nil {
		t.Fatal(err)
	}
	for dest, want := range map[int][]int{
		0: {0},
		2: {0, 2},
		5: {0, 2, 3, 5},
		8: {0, 8},
	} {
		path, err := res.PathTo(dest)
		if err != nil {
			t.Fatalf("PathTo(%d): %v", dest, err)
		}
		if len(path) != len(want) || path[0] != 0 || path[len(path)-1] != dest {
			t.Errorf("PathTo(%d) = %v; want length %d", dest, path, len(want))
		}
		if len(path)-1 != res.Depth[dest] {
			t.Errorf("PathTo(%d) has %d hops; depth %d", dest, len(path)-1, res.Depth[dest])
		}
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(build(t, builder.Path(100)), 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestComponents splits a disjoint union and keeps isolated vertices.
func TestComponents(t *testing.T) {
	g := build(t, builder.Cycle(3), builder.Path(2))
	g.AddVertex()

	comps, err := bfs.Components(g)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]int{{0, 1, 2}, {3, 4}, {5}}
	if !reflect.DeepEqual(comps, want) {
		t.Errorf("Components = %v; want %v", comps, want)
	}

	if _, err = bfs.Components(nil); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	if _, err = bfs.Components(brokenGraph{}); !errors.Is(err, bfs.ErrNeighbors) {
		t.Errorf("broken graph: want ErrNeighbors, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err = bfs.Components(g, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: want context.Canceled, got %v", err)
	}
}

// TestComponents_OnComponent checks hook order and error propagation.
func TestComponents_OnComponent(t *testing.T) {
	g := build(t, builder.Complete(4), builder.Path(3), builder.Star(3))

	var seen [][]int
	var idx []int
	comps, err := bfs.Components(g, bfs.WithOnComponent(func(i int, members []int) error {
		idx = append(idx, i)
		seen = append(seen, members)
		return nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(seen, comps) {
		t.Errorf("hook saw %v; Components returned %v", seen, comps)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(idx, want) {
		t.Errorf("indices = %v; want %v", idx, want)
	}

	stop := errors.New("stop")
	calls := 0
	_, err = bfs.Components(g, bfs.WithOnComponent(func(i int, _ []int) error {
		calls++
		if i == 1 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("want stop, got %v", err)
	}
	if calls != 2 {
		t.Errorf("hook ran %d times after abort; want 2", calls)
	}
}
