package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/spanforest/matrix"
	"github.com/katalvlaran/spanforest/prim_kruskal"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestMSTInvariants uses property-based testing to verify MST invariants
// that must hold for every connected input.
func TestMSTInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	// Property 1: both algorithms agree on the total weight.
	properties.Property("prim and kruskal share the minimum weight", prop.ForAll(
		func(n int, density float64, seed int64) bool {
			m := matrix.MustWeighted(randomConnected(n, density, seed))
			_, totalP, errP := prim_kruskal.Prim(m)
			_, totalK, errK := prim_kruskal.Kruskal(m)

			return errP == nil && errK == nil && totalP == totalK
		},
		gen.IntRange(1, 24),
		gen.Float64Range(0, 1),
		gen.Int64(),
	))

	// Property 2: the result is an acyclic set of exactly n-1 edges covering every vertex.
	properties.Property("result is a spanning tree", prop.ForAll(
		func(n int, density float64, seed int64) bool {
			m := matrix.MustWeighted(randomConnected(n, density, seed))
			mstP, _, errP := prim_kruskal.Prim(m)
			mstK, _, errK := prim_kruskal.Kruskal(m)

			return errP == nil && errK == nil && isSpanningTree(n, mstP) && isSpanningTree(n, mstK)
		},
		gen.IntRange(1, 24),
		gen.Float64Range(0, 1),
		gen.Int64(),
	))

	// Property 3: Kruskal emits edges in non-decreasing weight order.
	properties.Property("kruskal output is weight-ordered", prop.ForAll(
		func(n int, seed int64) bool {
			m := matrix.MustWeighted(randomConnected(n, 0.5, seed))
			mst, _, err := prim_kruskal.Kruskal(m)
			if err != nil {
				return false
			}
			for i := 1; i < len(mst); i++ {
				if mst[i].Weight < mst[i-1].Weight {
					return false
				}
			}

			return true
		},
		gen.IntRange(2, 24),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
