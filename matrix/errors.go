// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All validation in this package returns one of these sentinels wrapped with
// the offending coordinates; callers match them via errors.Is.

package matrix

import "errors"

var (
	// ErrNilMatrix indicates that a nil *Weighted was passed where a matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned for an empty matrix (no rows).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNonSquare signals that some row length differs from the number of rows.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf entry; weights must be finite.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeWeight signals an entry below zero; only non-negative weights are supported.
	ErrNegativeWeight = errors.New("matrix: negative weight")

	// ErrNonZeroDiagonal signals a self-loop entry on the diagonal.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrAsymmetry signals that weight(u,v) and weight(v,u) differ by more than epsilon.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrOutOfRange indicates a row or column index outside [0, N).
	ErrOutOfRange = errors.New("matrix: index out of range")
)
