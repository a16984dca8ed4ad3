package converters

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/matrix"
)

// ErrEdgeOutOfRange indicates an edge endpoint outside [0, order).
var ErrEdgeOutOfRange = errors.New("converters: edge endpoint out of range")

// FromGonum copies a gonum matrix into a validated *matrix.Weighted.
// The usual matrix validation applies (square, finite, non-negative, zero
// diagonal, symmetric); opts are forwarded to matrix.NewWeighted.
// Complexity: O(n²).
func FromGonum(a mat.Matrix, opts ...matrix.Option) (*matrix.Weighted, error) {
	if a == nil {
		return nil, matrix.ErrNilMatrix
	}
	r, c := a.Dims()
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			rows[i][j] = a.At(i, j)
		}
	}

	return matrix.NewWeighted(rows, opts...)
}

// ToSymDense exports m as a gonum symmetric dense matrix.
// Complexity: O(n²).
func ToSymDense(m *matrix.Weighted) (*mat.SymDense, error) {
	if m == nil {
		return nil, matrix.ErrNilMatrix
	}
	n := m.Order()
	data := make([]float64, 0, n*n)
	for _, row := range m.Rows() {
		data = append(data, row...)
	}

	return mat.NewSymDense(n, data), nil
}

// ToGonum builds a gonum weighted undirected graph with one node per vertex
// and one edge per non-zero lower-triangle entry of m. Absent edges weigh +Inf
// so gonum's shortest-path code treats them as unreachable.
// Complexity: O(n²).
func ToGonum(m *matrix.Weighted) (*simple.WeightedUndirectedGraph, error) {
	if m == nil {
		return nil, matrix.ErrNilMatrix
	}

	return edgesToGonum(m.Order(), m.Edges())
}

// ForestToGonum builds a gonum graph from a tree or forest edge list over
// vertices [0, order). Useful to hand an MST/MSF to gonum's topo package.
// Returns ErrEdgeOutOfRange when an endpoint is outside the range.
// Complexity: O(order + len(edges)).
func ForestToGonum(order int, edges []core.Edge) (*simple.WeightedUndirectedGraph, error) {
	for _, e := range edges {
		if e.From < 0 || e.From >= order || e.To < 0 || e.To >= order {
			return nil, fmt.Errorf("%w: %d-%d with order %d", ErrEdgeOutOfRange, e.From, e.To, order)
		}
	}

	return edgesToGonum(order, edges)
}

func edgesToGonum(order int, edges []core.Edge) (*simple.WeightedUndirectedGraph, error) {
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for v := 0; v < order; v++ {
		g.AddNode(simple.Node(v))
	}
	for _, e := range edges {
		if e.From == e.To {
			// gonum's simple graphs reject self-loops; the engines never emit them.
			continue
		}
		g.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(e.From),
			T: simple.Node(e.To),
			W: e.Weight,
		})
	}

	return g, nil
}
