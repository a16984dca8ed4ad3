// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - One canonical place for the structural checks NewWeighted performs.
//   - Every check is pure, deterministic and allocation-free.
//   - Checks scan in row-major order, so the reported coordinates are the
//     first violation in that order.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps a sentinel with the validator tag and coordinates.
func validatorErrorf(tag string, u, v int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", tag, u, v, err)
}

// ValidateShape ensures rows is a non-empty square matrix.
// Errors: ErrBadShape, ErrNonSquare (wrapped with the offending row).
// Complexity: O(n).
func ValidateShape(rows [][]float64) error {
	n := len(rows)
	if n == 0 {
		return fmt.Errorf("ValidateShape: %w", ErrBadShape)
	}
	for u, row := range rows {
		if len(row) != n {
			return fmt.Errorf("ValidateShape: row %d has %d columns, want %d: %w", u, len(row), n, ErrNonSquare)
		}
	}

	return nil
}

// validateEntries rejects NaN, ±Inf and negative entries.
func validateEntries(data []float64, n int) error {
	for i, x := range data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return validatorErrorf("ValidateFinite", i/n, i%n, ErrNaNInf)
		}
		if x < 0 {
			return validatorErrorf("ValidateNonNegative", i/n, i%n, ErrNegativeWeight)
		}
	}

	return nil
}

// validateDiagonal rejects self-loop entries.
func validateDiagonal(data []float64, n int) error {
	for v := 0; v < n; v++ {
		if data[v*n+v] != 0 {
			return validatorErrorf("ValidateZeroDiagonal", v, v, ErrNonZeroDiagonal)
		}
	}

	return nil
}

// validateSymmetric compares the upper triangle against the lower one.
// A pair where exactly one side is zero is an edge in one direction only and
// is rejected whatever eps is.
func validateSymmetric(data []float64, n int, eps float64) error {
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			a, b := data[u*n+v], data[v*n+u]
			if (a == 0) != (b == 0) || math.Abs(a-b) > eps {
				return validatorErrorf("ValidateSymmetric", u, v, ErrAsymmetry)
			}
		}
	}

	return nil
}

// mirrorUpper copies the upper triangle over the lower one, so pairs accepted
// within eps read back identical from both sides.
func mirrorUpper(data []float64, n int) {
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			data[v*n+u] = data[u*n+v]
		}
	}
}
