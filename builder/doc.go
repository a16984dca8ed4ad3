// SPDX-License-Identifier: MIT

// Package builder assembles deterministic weight matrices for tests,
// benchmarks and the CLI's generate command.
//
// A build starts from an N×N zero matrix and applies Constructors in order;
// each one adds undirected edges, overwriting any weight already stored for
// the same pair. The result goes through matrix.NewWeighted, so every built
// matrix satisfies the accessor's invariants.
//
//	m, err := builder.Build(12,
//		[]builder.Option{builder.WithSeed(7), builder.WithWeightFn(builder.IntWeightFn(1, 9))},
//		builder.Clusters(3, 100),
//	)
//
// Topologies:
//
//	Path        0—1—…—(n-1)
//	Cycle       Path plus (n-1)—0                      n ≥ 3
//	Star        0 joined to every other vertex          n ≥ 2
//	Wheel       Star plus the rim cycle 1—2—…—(n-1)—1   n ≥ 4
//	Complete    every pair
//	RandomSparse(p)   each pair independently with probability p
//	Clusters(k, w)    k complete blocks chained by single bridges of weight w
//
// Determinism: the same n, options, seed and constructor order always give
// the same matrix. Edge weights are drawn in ascending (i, j) order, i < j.
package builder
