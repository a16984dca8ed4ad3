// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the tree from vertex 0 of a *matrix.Weighted using a linear scan for the
// cheapest fringe vertex, which is optimal for dense adjacency matrices.
package prim_kruskal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/matrix"
)

// Prim computes the Minimum Spanning Tree (MST) of the undirected graph held in m
// by growing outwards from vertex 0.
//
// Error Conditions:
//   - ErrNilMatrix    : if m is nil.
//   - ErrDisconnected : if some vertex cannot be reached from vertex 0.
//
// Steps:
//  1. Initialise cost[v] = +Inf, parent[v] = -1 for all v; cost[0] = 0.
//  2. Repeat N times:
//     a. Select the unabsorbed vertex with minimum cost; ties go to the lowest id
//     because the scan is ascending and uses strict "<".
//     b. If that cost is +Inf, the remaining vertices are unreachable → ErrDisconnected.
//     c. Absorb it and emit (curr, parent[curr]) when it has a parent.
//     d. For each unabsorbed neighbour w: if weight(curr,w) < cost[w], update cost and parent.
//  3. Return the N−1 edges in absorption order and their total weight.
//
// Complexity: O(V²) time, O(V) memory.
func Prim(m *matrix.Weighted) ([]core.Edge, float64, error) {
	// 1. Validate input.
	if m == nil {
		return nil, 0, ErrNilMatrix
	}
	n := m.Order()
	if n <= 1 {
		// Single vertex (or nothing): the MST is trivially empty.
		return []core.Edge{}, 0, nil
	}

	// 2. Working state, owned by this call.
	cost := make([]float64, n)
	parent := make([]int, n)
	absorbed := make([]bool, n)
	for v := range cost {
		cost[v] = math.Inf(1)
		parent[v] = -1
	}
	cost[0] = 0 // vertex 0 is the root

	mst := make([]core.Edge, 0, n-1)
	var totalWeight float64

	// 3. Absorb one vertex per iteration.
	for it := 0; it < n; it++ {
		// 3a. Linear scan for the cheapest unabsorbed vertex.
		curr, best := -1, math.Inf(1)
		for v := 0; v < n; v++ {
			if !absorbed[v] && cost[v] < best {
				curr, best = v, cost[v]
			}
		}
		// 3b. Nothing finite left: the rest of the graph is unreachable.
		if curr < 0 {
			return nil, 0, fmt.Errorf("%w: %d of %d vertices unreachable from vertex 0",
				ErrDisconnected, n-it, n)
		}

		// 3c. Absorb and emit the connecting edge.
		absorbed[curr] = true
		if p := parent[curr]; p >= 0 {
			w := m.Weight(curr, p)
			mst = append(mst, core.Edge{From: curr, To: p, Weight: w})
			totalWeight += w
		}

		// 3d. Relax fringe vertices.
		for _, nb := range m.Neighbors(curr) {
			if absorbed[nb] {
				continue
			}
			if w := m.Weight(curr, nb); w < cost[nb] {
				cost[nb] = w
				parent[nb] = curr
			}
		}
	}

	return mst, totalWeight, nil
}
