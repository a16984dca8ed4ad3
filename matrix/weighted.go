// SPDX-License-Identifier: MIT

// Package matrix - Weighted adjacency accessor.
//
// Purpose:
//   - Own one validated, immutable copy of an N×N weight matrix.
//   - Give every engine the same view of the graph: neighbour enumeration in
//     ascending id order, raw weight lookup and a deterministic edge list.
//
// Storage is a flat row-major buffer (offset = u*n + v), as in a dense matrix.
// Because nothing mutates a Weighted after NewWeighted returns, one value may
// be shared by any number of concurrent readers.
//
// Complexity quicksheet:
//   - NewWeighted: O(n²); Weight/At/HasEdge: O(1); Neighbors: O(n); Edges: O(n²).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/spanforest/core"
)

// Weighted is a validated, read-only N×N adjacency matrix of an undirected
// graph. Entry 0 means "no edge"; every other entry is a positive weight.
type Weighted struct {
	n              int       // order (rows == cols)
	data           []float64 // row-major, len == n*n
	ignoreDiagonal bool      // diagonal hidden from Neighbors/HasEdge/Edges
}

// NewWeighted validates rows and returns an immutable accessor over a copy.
//
// Validation order (first failure wins):
//  1. len(rows) > 0                       → ErrBadShape
//  2. every row has len(rows) entries     → ErrNonSquare
//  3. every entry finite                  → ErrNaNInf
//  4. every entry >= 0                    → ErrNegativeWeight
//  5. diagonal == 0 (unless ignored)      → ErrNonZeroDiagonal
//  6. |w(u,v) - w(v,u)| <= eps, and w(u,v) == 0 iff w(v,u) == 0
//     (a one-sided zero is rejected for any eps) → ErrAsymmetry
//
// Errors wrap the sentinel with the offending coordinates. On success the
// upper triangle wins: w(v,u) is set to w(u,v) for every u < v, so Weight is
// exactly symmetric even when eps tolerated a difference.
// Complexity: O(n²) time and memory.
func NewWeighted(rows [][]float64, opts ...Option) (*Weighted, error) {
	o := gatherOptions(opts...)

	if err := ValidateShape(rows); err != nil {
		return nil, err
	}
	n := len(rows)
	data := make([]float64, n*n)
	for u := 0; u < n; u++ {
		copy(data[u*n:(u+1)*n], rows[u])
	}
	if err := validateEntries(data, n); err != nil {
		return nil, err
	}
	if !o.ignoreDiagonal {
		if err := validateDiagonal(data, n); err != nil {
			return nil, err
		}
	}
	if err := validateSymmetric(data, n, o.eps); err != nil {
		return nil, err
	}
	mirrorUpper(data, n)

	return &Weighted{n: n, data: data, ignoreDiagonal: o.ignoreDiagonal}, nil
}

// MustWeighted is NewWeighted for fixtures and examples: it panics on error.
func MustWeighted(rows [][]float64, opts ...Option) *Weighted {
	w, err := NewWeighted(rows, opts...)
	if err != nil {
		panic(err)
	}

	return w
}

// Order returns N, the number of vertices.
func (w *Weighted) Order() int { return w.n }

// Contains reports whether v is a valid vertex id.
func (w *Weighted) Contains(v int) bool { return v >= 0 && v < w.n }

// Weight returns the raw entry (u, v). Indices are not checked: callers
// validate them first, and out-of-range values panic like a slice index.
func (w *Weighted) Weight(u, v int) float64 {
	return w.data[u*w.n+v]
}

// At is the bounds-checked variant of Weight.
// Returns ErrOutOfRange wrapped with the coordinates.
func (w *Weighted) At(u, v int) (float64, error) {
	if !w.Contains(u) || !w.Contains(v) {
		return 0, fmt.Errorf("Weighted.At(%d,%d): %w", u, v, ErrOutOfRange)
	}

	return w.data[u*w.n+v], nil
}

// HasEdge reports whether u and v are joined by an edge.
func (w *Weighted) HasEdge(u, v int) bool {
	if !w.Contains(u) || !w.Contains(v) {
		return false
	}
	if u == v && w.ignoreDiagonal {
		return false
	}

	return w.data[u*w.n+v] != 0
}

// Neighbors returns every w with weight(v, w) != 0 in ascending id order.
// The ascending order is what downstream tie-breaks rely on.
// An out-of-range v yields nil.
// Complexity: O(n).
func (w *Weighted) Neighbors(v int) []int {
	if !w.Contains(v) {
		return nil
	}
	row := w.data[v*w.n : (v+1)*w.n]
	out := make([]int, 0, 8)
	for x, weight := range row {
		if weight == 0 || (x == v && w.ignoreDiagonal) {
			continue
		}
		out = append(out, x)
	}

	return out
}

// Degree returns the number of neighbours of v.
func (w *Weighted) Degree(v int) int {
	return len(w.Neighbors(v))
}

// Edges enumerates every undirected edge exactly once by scanning the lower
// triangle row by row: (1,0), (2,0), (2,1), (3,0), ... Each edge has From > To.
// Complexity: O(n²).
func (w *Weighted) Edges() []core.Edge {
	edges := make([]core.Edge, 0, w.n)
	for u := 1; u < w.n; u++ {
		for v := 0; v < u; v++ {
			if weight := w.data[u*w.n+v]; weight != 0 {
				edges = append(edges, core.Edge{From: u, To: v, Weight: weight})
			}
		}
	}

	return edges
}

// Rows returns a fresh copy of the matrix as a slice of rows.
// Complexity: O(n²).
func (w *Weighted) Rows() [][]float64 {
	out := make([][]float64, w.n)
	for u := 0; u < w.n; u++ {
		row := make([]float64, w.n)
		copy(row, w.data[u*w.n:(u+1)*w.n])
		out[u] = row
	}

	return out
}
