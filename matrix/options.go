// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for NewWeighted.
//
// Defaults are strict: symmetric within DefaultEpsilon and a zero diagonal.
// Option constructors panic only on nonsensical values (programmer error);
// data problems are always reported as errors by NewWeighted.
package matrix

import "math"

// DefaultEpsilon is the absolute tolerance used by the symmetry check.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
type Options struct {
	eps            float64 // symmetry tolerance, >= 0
	ignoreDiagonal bool    // treat diagonal entries as absent instead of rejecting them
}

// WithEpsilon sets the absolute tolerance for |w(u,v) - w(v,u)|.
// Panics if eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithIgnoreDiagonal accepts matrices with non-zero diagonal entries and hides
// them from Neighbors, HasEdge and Edges. Weight still returns the raw value.
func WithIgnoreDiagonal() Option {
	return func(o *Options) { o.ignoreDiagonal = true }
}

// gatherOptions resolves opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
