// Package matrixio reads adjacency matrices from files.
//
// Supported formats, chosen by file extension:
//
//	.npy          NumPy array, 2-D, float or integer dtype, C or Fortran order.
//	.json .yaml   a list of rows, or a document with a top-level "matrix" key.
//	.yml
//	.csv          comma-separated rows.
//	.txt          whitespace-separated rows, '#' starts a comment line.
//
// Loaders only decode numbers; shape, symmetry and weight checks belong to
// matrix.NewWeighted. LoadWeighted chains both steps. Save and Write encode
// rows back into any of the same formats.
package matrixio
