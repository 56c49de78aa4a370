// SPDX-License-Identifier: MIT

// Package modclust finds communities in undirected graphs by agglomerative
// modularity maximization.
//
// What is modclust?
//
//	A small library and CLI built around one data structure, the sparse
//	clustering matrix: E[i][j] is the fraction of edge endpoints joining
//	cluster i to cluster j. Clusters start as single vertices (or as a given
//	partition) and are joined pairwise while the join raises modularity.
//
// Layout:
//
//	core/          — dense-id undirected simple graph, gonum adapter
//	partition/     — validated disjoint vertex groups
//	matrix/        — the sparse clustering matrix and JoinCluster
//	agglomerative/ — greedy and randomized merge loops, Modularity
//	bfs/           — traversal and connected components
//	builder/       — deterministic graph fixtures (path, cycle, ring of cliques, G(n,p))
//	graphio/       — edge list and partition text formats
//	metrics/       — Prometheus instruments for runs and merges
//	cmd/modclust/  — command line front end (viper config, zerolog, promhttp)
//
// Quick example:
//
//	  0───1       3───4
//	   \ /    →    \ /      two triangles joined by 2-3
//	    2───────────5
//
//	g, _ := builder.BuildGraph(nil, builder.RingOfCliques(2, 3))
//	res, _ := agglomerative.Run(ctx, g)
//	res.Partition.Clusters() // [[0 1 2] [3 4 5]]
//
//	go install github.com/katalvlaran/modclust/cmd/modclust@latest
package modclust
