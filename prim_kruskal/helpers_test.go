package prim_kruskal_test

import (
	"math/rand"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/disjoint"
	"github.com/katalvlaran/spanforest/matrix"
)

// buildTriangle returns the weighted triangle
//
//	0—1 (weight 1), 1—2 (weight 2), 0—2 (weight 3).
//
// Its MST consists of edges 0—1 and 1—2 with total weight 3.
func buildTriangle() *matrix.Weighted {
	return matrix.MustWeighted([][]float64{
		{0, 1, 3},
		{1, 0, 2},
		{3, 2, 0},
	})
}

// buildSquare returns the 4-cycle 0-1-2-3-0 with unit weights plus the
// heavy diagonal 0—2 (weight 5).
func buildSquare() *matrix.Weighted {
	return matrix.MustWeighted([][]float64{
		{0, 1, 5, 1},
		{1, 0, 1, 0},
		{5, 1, 0, 1},
		{1, 0, 1, 0},
	})
}

// buildTwoIslands returns two disjoint edges: 0—1 and 2—3.
func buildTwoIslands() *matrix.Weighted {
	return matrix.MustWeighted([][]float64{
		{0, 2, 0, 0},
		{2, 0, 0, 0},
		{0, 0, 0, 4},
		{0, 0, 4, 0},
	})
}

// randomConnected builds a connected symmetric weight matrix with n vertices.
//   - A chain 0—1—…—(n-1) with weights in [1..10] guarantees connectivity.
//   - Every other pair gets an edge with probability density, weight in [1..100].
//
// Weights are integers so equal-weight ties actually occur.
// The generator is seeded, so the same (n, density, seed) always gives the same matrix.
func randomConnected(n int, density float64, seed int64) [][]float64 {
	r := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	set := func(u, v int, w float64) {
		rows[u][v] = w
		rows[v][u] = w
	}
	for i := 1; i < n; i++ {
		set(i-1, i, float64(1+r.Intn(10)))
	}
	for u := 0; u < n; u++ {
		for v := u + 2; v < n; v++ {
			if r.Float64() < density {
				set(u, v, float64(1+r.Intn(100)))
			}
		}
	}

	return rows
}

// isSpanningTree reports whether edges form an acyclic set of exactly n-1
// edges that connects all n vertices.
func isSpanningTree(n int, edges []core.Edge) bool {
	if len(edges) != n-1 {
		return false
	}
	s := disjoint.New(n)
	for _, e := range edges {
		if !s.Union(e.From, e.To) {
			return false // cycle
		}
	}

	return s.Count() == 1
}
