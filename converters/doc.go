// Package converters provides two-way adapters between spanforest's
// *matrix.Weighted and gonum:
//   - gonum.org/v1/gonum/mat: any mat.Matrix becomes a validated Weighted, and
//     a Weighted can be exported as a *mat.SymDense for linear-algebra work.
//   - gonum.org/v1/gonum/graph/simple: a Weighted, or a tree/forest edge list,
//     becomes a *simple.WeightedUndirectedGraph so gonum's traversal and
//     path packages can run on the same data.
//
// Vertex v of the matrix is gonum node ID int64(v); every vertex is added as
// a node even when it has no edges.
package converters
