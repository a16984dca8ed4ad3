package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/spanforest/builder"
	"github.com/katalvlaran/spanforest/matrix"
	"github.com/katalvlaran/spanforest/prim_kruskal"
)

// BenchmarkKruskal measures performance on a seeded random graph with 300 vertices.
func BenchmarkKruskal(b *testing.B) {
	m := matrix.MustWeighted(randomConnected(300, 0.1, 42)) // pre‐build matrix once
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(m)
	}
}

// BenchmarkPrim measures performance on the same graph as BenchmarkKruskal.
func BenchmarkPrim(b *testing.B) {
	m := matrix.MustWeighted(randomConnected(300, 0.1, 42))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Prim(m)
	}
}

// BenchmarkPrim_Complete measures Prim on a dense complete graph, its best case.
func BenchmarkPrim_Complete(b *testing.B) {
	m := builder.MustBuild(300,
		[]builder.Option{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 100))},
		builder.Complete())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Prim(m)
	}
}

// BenchmarkKruskal_Complete measures Kruskal on the same complete graph.
func BenchmarkKruskal_Complete(b *testing.B) {
	m := builder.MustBuild(300,
		[]builder.Option{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 100))},
		builder.Complete())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(m)
	}
}
