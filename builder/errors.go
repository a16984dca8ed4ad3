// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices indicates n is below the minimum of the requested topology.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic step without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadWeight indicates a weight function returned a value that cannot be
// an edge (zero, negative, NaN or Inf).
var ErrBadWeight = errors.New("builder: edge weight must be finite and > 0")

// ErrConstructFailed indicates a nil constructor was passed to Build.
var ErrConstructFailed = errors.New("builder: construction failed")
