// Package spanforest is a small toolkit for weighted undirected graphs stored
// as dense adjacency matrices.
//
// Subpackages:
//
//	core/          Edge and Path types plus the shared sentinel errors
//	disjoint/      union-find (disjoint-set) with path halving and union by size
//	matrix/        validated, immutable weight matrix accessor
//	prim_kruskal/  minimum spanning trees: Prim (O(V²)) and Kruskal (O(E log E))
//	forest/        minimum spanning forests with a chosen number of trees
//	dijkstra/      single-pair and single-source shortest paths
//	converters/    bridges to gonum's mat and graph packages
//	matrixio/      .npy/.json/.yaml/.csv/.txt loading and saving
//	builder/       deterministic matrix fixtures (paths, cycles, clusters, random)
//	cmd/spanforest the command-line front end
//
// Quick example:
//
//	    0───1
//	    │ ╲ │      weights: 0-1:1  1-2:1  2-3:1  3-0:1  0-2:5
//	    3───2
//
//	m, _ := matrix.NewWeighted([][]float64{
//		{0, 1, 5, 1},
//		{1, 0, 1, 0},
//		{5, 1, 0, 1},
//		{1, 0, 1, 0},
//	})
//	mst, cost, _ := prim_kruskal.Kruskal(m)      // 3 unit edges, cost 3
//	msf, _, _ := forest.Compute(m, 2)            // 2 edges, 2 trees
//	p, _ := dijkstra.ShortestPath(m, 0, 2)       // [0 1 2], cost 2
//
// All engines treat the matrix as read-only, so one *matrix.Weighted can be
// shared by concurrent callers.
package spanforest
