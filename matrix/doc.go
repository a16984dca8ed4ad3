// Package matrix offers the weighted adjacency-matrix accessor shared by the
// spanforest engines.
//
// A *Weighted wraps one validated N×N matrix of an undirected graph, where a
// zero entry means "no edge". It exposes:
//
//   - Neighbors(v): adjacent vertices in ascending id order.
//   - Weight(u, v): the raw entry (unchecked) and At(u, v) (checked).
//   - Edges(): every edge once, lower triangle, row-major.
//
// Matrices are best for dense or small graphs where O(V²) memory and
// O(V²) scans are acceptable, which is exactly what Prim's linear-scan
// variant and the matrix form of Dijkstra assume.
//
// See the examples in this package for usage patterns.
package matrix
