// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spanforest/matrix"
)

// Constructor adds edges to rows (an N×N symmetric matrix, zero meaning
// "no edge") using the resolved config. Constructors validate their
// parameters first and leave rows untouched on error.
type Constructor func(rows [][]float64, cfg config) error

// Rows returns the raw n×n matrix produced by applying cons in order.
// Errors from constructors are wrapped with their position.
// Complexity: O(n²) plus the constructors' own cost.
func Rows(n int, opts []Option, cons ...Constructor) ([][]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("Build: n=%d < 1: %w", n, ErrTooFewVertices)
	}

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}

	cfg := newConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(rows, cfg); err != nil {
			return nil, fmt.Errorf("Build: constructor %d: %w", i, err)
		}
	}

	return rows, nil
}

// Build is Rows followed by matrix.NewWeighted.
func Build(n int, opts []Option, cons ...Constructor) (*matrix.Weighted, error) {
	rows, err := Rows(n, opts, cons...)
	if err != nil {
		return nil, err
	}

	return matrix.NewWeighted(rows)
}

// MustBuild is Build that panics on error; for tests and benchmarks.
func MustBuild(n int, opts []Option, cons ...Constructor) *matrix.Weighted {
	m, err := Build(n, opts, cons...)
	if err != nil {
		panic(err)
	}

	return m
}

// edgeWriter draws weights and stores them symmetrically, remembering the
// first bad weight so constructors can bail out once.
type edgeWriter struct {
	rows [][]float64
	cfg  config
	err  error
}

func (w *edgeWriter) add(u, v int) {
	if w.err != nil {
		return
	}
	wt := w.cfg.weightFn(w.cfg.rng)
	w.set(u, v, wt)
}

func (w *edgeWriter) set(u, v int, wt float64) {
	if w.err != nil {
		return
	}
	if !(wt > 0) || math.IsInf(wt, 0) {
		w.err = fmt.Errorf("edge %d-%d weight %g: %w", u, v, wt, ErrBadWeight)
		return
	}
	w.rows[u][v], w.rows[v][u] = wt, wt
}

// apply runs fill against a scratch copy and commits it only on success.
func apply(rows [][]float64, cfg config, fill func(w *edgeWriter)) error {
	scratch := make([][]float64, len(rows))
	for i := range rows {
		scratch[i] = append([]float64(nil), rows[i]...)
	}

	w := &edgeWriter{rows: scratch, cfg: cfg}
	fill(w)
	if w.err != nil {
		return w.err
	}
	for i := range rows {
		copy(rows[i], scratch[i])
	}

	return nil
}
