// SPDX-License-Identifier: MIT

// Package matrix implements the sparse clustering matrix used by
// agglomerative modularity clustering.
//
// What & Why:
//
//	For an undirected simple graph with |E| edges, E[i][j] is the fraction
//	of edge endpoints joining cluster i to cluster j. Every adjacency entry
//	starts at 1/(2|E|), so the whole matrix sums to 1 and row i sums to
//	a_i, the fraction of edge endpoints incident to cluster i. A greedy
//	modularity loop reads rows and row sums to score candidate joins
//	(ΔQ = 2(E[i][j] − a_i·a_j)) and then calls JoinCluster on the winner.
//
// Layout:
//
//	One map[int]float64 per row slot plus a row-sum vector. Slots are sized
//	by the vertex count and never shrink; a joined-away cluster's slot is
//	cleared and marked retired.
//
// Invariants (checked by Validate):
//
//	E[i][j] == E[j][i]; rowSum[i] == Σ_j E[i][j]; Σ_i rowSum[i] == 1;
//	no alive row references a retired column.
//
// Complexity:
//
//	New / NewFromPartition: O(V + E).
//	RowSum, RowEntries, Get: O(1).
//	Row, Entries: O(entries); RangeRow: O(entries) without copying.
//	JoinCluster(a, b): O(entries of b).
//
// Concurrency:
//
//	None. The matrix is a single-writer structure; callers serialize joins
//	and must not read while a join runs.
package matrix
