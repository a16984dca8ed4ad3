// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodWheel        = "Wheel"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"
	methodClusters     = "Clusters"
)

func tooFew(method string, n, min int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
}

// Path joins i—(i+1) for every i.
func Path() Constructor {
	return func(rows [][]float64, cfg config) error {
		return apply(rows, cfg, func(w *edgeWriter) {
			for i := 1; i < len(rows); i++ {
				w.add(i-1, i)
			}
		})
	}
}

// Cycle is Path closed by (n-1)—0. Requires n >= 3.
func Cycle() Constructor {
	return func(rows [][]float64, cfg config) error {
		n := len(rows)
		if n < 3 {
			return tooFew(methodCycle, n, 3)
		}
		return apply(rows, cfg, func(w *edgeWriter) {
			for i := 1; i < n; i++ {
				w.add(i-1, i)
			}
			w.add(n-1, 0)
		})
	}
}

// Star joins vertex 0 to every other vertex. Requires n >= 2.
func Star() Constructor {
	return func(rows [][]float64, cfg config) error {
		n := len(rows)
		if n < 2 {
			return tooFew(methodStar, n, 2)
		}
		return apply(rows, cfg, func(w *edgeWriter) {
			for i := 1; i < n; i++ {
				w.add(0, i)
			}
		})
	}
}

// Wheel is Star plus the rim cycle 1—2—…—(n-1)—1. Requires n >= 4.
func Wheel() Constructor {
	return func(rows [][]float64, cfg config) error {
		n := len(rows)
		if n < 4 {
			return tooFew(methodWheel, n, 4)
		}
		return apply(rows, cfg, func(w *edgeWriter) {
			for i := 1; i < n; i++ {
				w.add(0, i)
			}
			for i := 2; i < n; i++ {
				w.add(i-1, i)
			}
			w.add(n-1, 1)
		})
	}
}

// Complete joins every pair i < j.
func Complete() Constructor {
	return func(rows [][]float64, cfg config) error {
		return apply(rows, cfg, func(w *edgeWriter) {
			completeBlock(w, 0, len(rows))
		})
	}
}

// RandomSparse joins each pair i < j independently with probability p.
// An RNG is required unless p is 0 or 1.
func RandomSparse(p float64) Constructor {
	return func(rows [][]float64, cfg config) error {
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("%s: p=%g not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		return apply(rows, cfg, func(w *edgeWriter) {
			n := len(rows)
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					if p == 1 || (p > 0 && cfg.rng.Float64() < p) {
						w.add(i, j)
					}
				}
			}
		})
	}
}

// Clusters splits [0, n) into k contiguous blocks whose sizes differ by at
// most one (larger blocks first), makes each block complete, and chains
// block b to block b+1 with a single bridge of weight bridge between the
// last vertex of b and the first vertex of b+1.
//
// With bridge above every in-block weight, the minimum spanning forest with k
// trees recovers exactly the blocks. Requires 1 <= k <= n.
func Clusters(k int, bridge float64) Constructor {
	return func(rows [][]float64, cfg config) error {
		n := len(rows)
		if k < 1 {
			return fmt.Errorf("%s: k=%d < min=1: %w", methodClusters, k, ErrTooFewVertices)
		}
		if n < k {
			return tooFew(methodClusters, n, k)
		}
		return apply(rows, cfg, func(w *edgeWriter) {
			start := 0
			for b, size := range BlockSizes(n, k) {
				completeBlock(w, start, start+size)
				if b > 0 {
					w.set(start-1, start, bridge)
				}
				start += size
			}
		})
	}
}

// BlockSizes returns the block sizes Clusters uses for n vertices and k blocks.
func BlockSizes(n, k int) []int {
	if k < 1 || n < k {
		return nil
	}
	sizes := make([]int, k)
	for b := range sizes {
		sizes[b] = n / k
		if b < n%k {
			sizes[b]++
		}
	}

	return sizes
}

func completeBlock(w *edgeWriter, from, to int) {
	for i := from; i < to; i++ {
		for j := i + 1; j < to; j++ {
			w.add(i, j)
		}
	}
}
