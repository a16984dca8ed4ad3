// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It assumes the undirected graph held by a *matrix.Weighted and produces a slice of edges forming the MST.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/disjoint"
	"github.com/katalvlaran/spanforest/matrix"
)

// Kruskal computes the Minimum Spanning Tree (MST) of the undirected graph held in m.
// It uses a disjoint-set (union-find) with path halving and union by size.
//
// Error Conditions:
//   - ErrNilMatrix    : if m is nil.
//   - ErrDisconnected : if the edge list runs out before |V|-1 edges were accepted.
//
// Steps:
//  1. Validate: m != nil. If |V| <= 1 → trivial MST (empty, weight=0).
//  2. Collect edges via m.Edges(): lower triangle, row-major, each edge once (From > To).
//  3. Sort edges by ascending Weight with a stable sort, so equal weights keep row-major order.
//  4. Initialise a disjoint.Set with every vertex as a singleton.
//  5. For each edge (u,v): if Find(u) != Find(v), Union them and include the edge.
//  6. Stop at |V|-1 edges. Fewer after the loop → ErrDisconnected.
//
// Complexity: O(V² + E log E) ≈ O(V² log V). Memory: O(E + V).
func Kruskal(m *matrix.Weighted) ([]core.Edge, float64, error) {
	// 1. Validate input.
	if m == nil {
		return nil, 0, ErrNilMatrix
	}
	numVerts := m.Order()
	if numVerts <= 1 {
		return []core.Edge{}, 0, nil
	}

	// 2–3. Enumerate and stably sort by weight.
	edges := core.SortByWeight(m.Edges())

	// 4. Every vertex starts in its own component.
	components := disjoint.New(numVerts)

	// 5. Build MST by iterating over sorted edges.
	var (
		mst         = make([]core.Edge, 0, numVerts-1)
		totalWeight float64
	)
	for _, e := range edges {
		if !components.Union(e.From, e.To) {
			// Same component already: this edge would close a cycle.
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		if len(mst) == numVerts-1 {
			break
		}
	}

	// 6. Fewer than |V|-1 edges means more than one component remains.
	if len(mst) < numVerts-1 {
		return nil, 0, fmt.Errorf("%w: %d components remain after %d edges",
			ErrDisconnected, components.Count(), len(edges))
	}

	return mst, totalWeight, nil
}
