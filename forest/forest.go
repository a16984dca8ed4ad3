// Package forest computes a Minimum Spanning Forest (MSF) with a requested
// number of trees by cutting the heaviest edges of a Minimum Spanning Tree.
//
// Removing the k−1 heaviest edges of an MST splits it into exactly k trees, and
// since the MST already minimises total weight, the remaining forest has the
// minimum weight among all spanning forests with k trees. This is the classic
// single-linkage clustering construction.
//
// Errors:
//
//	ErrInvalidForestSize - trees < 1 or trees > order (core.ErrInvalidForestSize).
//	ErrNotSpanning       - the edge list handed to Prune is not |V|-1 edges long.
//	ErrDisconnected      - Compute could not build the MST (core.ErrDisconnected).
package forest

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/disjoint"
	"github.com/katalvlaran/spanforest/matrix"
	"github.com/katalvlaran/spanforest/prim_kruskal"
)

// ErrInvalidForestSize is core.ErrInvalidForestSize.
var ErrInvalidForestSize = core.ErrInvalidForestSize

// ErrDisconnected is core.ErrDisconnected.
var ErrDisconnected = core.ErrDisconnected

// ErrNotSpanning indicates that Prune received something other than a
// spanning tree edge list (len(mst) != order-1).
var ErrNotSpanning = errors.New("forest: edge list is not a spanning tree")

// ValidateSize checks 1 <= trees <= order.
// Returns ErrInvalidForestSize wrapped with both values.
func ValidateSize(order, trees int) error {
	if trees < 1 || trees > order {
		return fmt.Errorf("%w: %d trees requested for %d vertices", ErrInvalidForestSize, trees, order)
	}

	return nil
}

// Prune turns a spanning tree over order vertices into a spanning forest of
// exactly trees components by dropping its trees−1 heaviest edges.
//
// Steps:
//  1. Validate 1 <= trees <= order and len(mst) == order−1.
//  2. Stable-sort a copy of mst by ascending weight (equal weights keep input order).
//  3. Drop the last trees−1 edges.
//
// The result is ordered by ascending weight. With trees == 1 it holds the same
// edges as mst, but in that sorted order rather than mst's emission order, so
// compare the two as sets. mst itself is never modified.
// Complexity: O(V log V).
func Prune(order int, mst []core.Edge, trees int) ([]core.Edge, error) {
	if err := ValidateSize(order, trees); err != nil {
		return nil, err
	}
	if len(mst) != order-1 {
		return nil, fmt.Errorf("%w: %d edges for %d vertices", ErrNotSpanning, len(mst), order)
	}

	sorted := core.SortByWeight(mst)

	return sorted[:len(sorted)-(trees-1)], nil
}

// Compute builds the MST of m and prunes it into trees components.
//
// The MST method defaults to Prim; pass prim_kruskal.WithMethod to override.
// The size is validated before any MST work is done.
//
// Returns the forest edges (ascending weight), their total weight, and an error.
// With trees == 1 the forest is the MST's edge set re-sorted by weight, not the
// MST in the order prim_kruskal.Compute emits it. Errors:
//   - matrix.ErrNilMatrix, ErrInvalidForestSize, ErrDisconnected,
//     prim_kruskal.ErrUnknownMethod.
//
// Complexity: O(V²) for Prim, plus O(V log V) for pruning.
func Compute(m *matrix.Weighted, trees int, opts ...prim_kruskal.Option) ([]core.Edge, float64, error) {
	if m == nil {
		return nil, 0, matrix.ErrNilMatrix
	}
	if err := ValidateSize(m.Order(), trees); err != nil {
		return nil, 0, err
	}

	mstOpts := append([]prim_kruskal.Option{prim_kruskal.WithMethod(prim_kruskal.MethodPrim)}, opts...)
	mst, _, err := prim_kruskal.Compute(m, mstOpts...)
	if err != nil {
		return nil, 0, fmt.Errorf("forest: minimum spanning tree: %w", err)
	}

	msf, err := Prune(m.Order(), mst, trees)
	if err != nil {
		return nil, 0, err
	}

	return msf, core.TotalWeight(msf), nil
}

// Components groups the vertices [0, order) by the tree of edges they belong
// to. Groups are ordered by their smallest vertex and list vertices ascending.
// Edges with an endpoint outside [0, order) are ignored.
// Complexity: O((V + E) α(V)).
func Components(order int, edges []core.Edge) [][]int {
	s := disjoint.New(order)
	for _, e := range edges {
		if e.From < 0 || e.From >= order || e.To < 0 || e.To >= order {
			continue
		}
		s.Union(e.From, e.To)
	}

	return s.Groups()
}
