// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// All constructors and methods return these sentinels (wrapped with method
// context via %w); callers and tests match them with errors.Is. No method
// panics on user-triggered conditions; panics are reserved for option
// constructors receiving nonsensical values.
package matrix

import "errors"

// ERROR PRIORITY (construction):
// graph nil -> no edges -> partition shape -> adjacency violations
// (out of range, loop, duplicate) -> edge count -> symmetry.

var (
	// ErrGraphNil indicates that a nil Graph was passed to a constructor.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrPartitionNil indicates that a nil Partition was passed to NewFromPartition.
	ErrPartitionNil = errors.New("matrix: partition is nil")

	// ErrNoEdges indicates a graph with |E| == 0; the initial value 1/(2|E|) is undefined.
	ErrNoEdges = errors.New("matrix: graph has no edges")

	// ErrSelfLoop indicates a vertex listed among its own neighbors.
	ErrSelfLoop = errors.New("matrix: self-loop in adjacency")

	// ErrDuplicateNeighbor indicates a neighbor listed twice for one vertex.
	ErrDuplicateNeighbor = errors.New("matrix: duplicate neighbor in adjacency")

	// ErrUnknownVertex indicates a neighbor id outside 0..VertexCount()-1.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")

	// ErrEdgeCountMismatch indicates Σdeg(v) != 2·EdgeCount(); the matrix mass would not be 1.
	ErrEdgeCountMismatch = errors.New("matrix: adjacency does not match edge count")

	// ErrAsymmetricGraph indicates adjacency lists that do not describe an undirected graph.
	ErrAsymmetricGraph = errors.New("matrix: adjacency is not symmetric")

	// ErrInvalidPartition indicates clusters that are empty, overlapping,
	// out of range, or that fail to cover every vertex.
	ErrInvalidPartition = errors.New("matrix: invalid partition")

	// ErrOutOfRange indicates a row or column index outside the row slot array.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrRetiredRow indicates access to a row that was merged away or never held a cluster.
	ErrRetiredRow = errors.New("matrix: row is retired")

	// ErrCellNotFound indicates a Get on a cell with no stored entry.
	ErrCellNotFound = errors.New("matrix: cell not found")

	// ErrSelfJoin indicates JoinCluster(a, a).
	ErrSelfJoin = errors.New("matrix: cannot join a cluster with itself")

	// ErrAsymmetry indicates E[i][j] != E[j][i] within eps (Validate).
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrRetiredReference indicates an alive row still holding a retired column (Validate).
	ErrRetiredReference = errors.New("matrix: entry references a retired row")

	// ErrRowSumDrift indicates a stored row sum that differs from its entries (Validate).
	ErrRowSumDrift = errors.New("matrix: row sum differs from entries")

	// ErrMassDrift indicates total mass differing from 1 (Validate).
	ErrMassDrift = errors.New("matrix: total mass differs from 1")
)
