// Package prim_kruskal provides two algorithms for computing the Minimum Spanning Tree (MST)
// of an undirected graph given as a dense weight matrix (*matrix.Weighted): Prim’s algorithm
// and Kruskal’s algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - Why MST matters:
//
//   - Network Design: cost-efficient cabling, pipelines, road systems.
//
//   - Clustering: cutting the heaviest MST edges yields a minimum spanning forest (see package forest).
//
// Algorithms Provided
//
//   - Kruskal(m *matrix.Weighted) ([]core.Edge, float64, error)
//
//   - Strategy: enumerate the lower triangle of the matrix row by row, stable-sort by weight,
//     and accept edges that join two different disjoint.Set components. Stop once |V|−1 edges are in.
//
//   - Complexity: O(V² + E log E) time, O(V + E) memory.
//
//   - Determinism: equal weights keep row-major (u, v) order with u > v; emitted edges have From > To.
//
//   - Prim(m *matrix.Weighted) ([]core.Edge, float64, error)
//
//   - Strategy: grow a single tree from vertex 0. Keep cost[v] (cheapest known connection to the tree)
//     and parent[v]. Repeatedly absorb the cheapest outside vertex (lowest id on ties) and relax its
//     neighbours. Emitted edges are (absorbed vertex, parent) in absorption order.
//
//   - Complexity: O(V²) time, O(V) memory; no heap is needed on a dense matrix.
//
// When to Choose Which Algorithm
//
//   - Prim is the natural fit for dense matrices: every step is a contiguous scan.
//   - Kruskal is preferable for sparse matrices and when edges in weight order are useful downstream.
//   - Both return a tree of the same minimum total weight; the chosen edges may differ when
//     several minimum trees exist.
//
// Error Conditions
//
//	- ErrNilMatrix
//	    - m is nil.
//
//	- ErrDisconnected (core.ErrDisconnected)
//	    - Prim: some vertex is never reached from vertex 0 (its cost stays +Inf).
//	    - Kruskal: the edge list is exhausted before |V|−1 edges are accepted.
//
//	- ErrUnknownMethod (Compute only)
//	    - the Method option is neither MethodPrim nor MethodKruskal.
//
// A single-vertex matrix yields an empty tree with weight 0.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
