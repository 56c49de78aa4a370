// SPDX-License-Identifier: MIT

// Package agglomerative clusters an undirected graph by greedily joining
// the pair of clusters whose union raises modularity the most.
//
// Each step reads the sparse clustering matrix E and its row sums a:
//
//	ΔQ(i,j) = 2(E[i][j] − a_i·a_j)
//	Q       = Σ_i (E[i][i] − a_i²)
//
// Only pairs sharing an entry are scored; a pair with no edge between them
// has ΔQ = −2·a_i·a_j and can never win.
//
// Strategies:
//
//	Greedy      scans every alive row (Clauset–Newman–Moore style).
//	Randomized  scans SampleSize rows drawn per step; with a fixed seed the
//	            run is reproducible.
//
// Ties on ΔQ go to the pair with the smaller (row, column).
// The row with more entries survives a join so the cost of JoinCluster
// stays proportional to the smaller row.
//
// Complexity per join: Greedy O(nonzeros), Randomized O(SampleSize·degree).
package agglomerative
