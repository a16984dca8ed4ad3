package core

import "sort"

// Reversed returns the edge with its endpoints swapped.
// Complexity: O(1).
func (e Edge) Reversed() Edge {
	return Edge{From: e.To, To: e.From, Weight: e.Weight}
}

// Joins reports whether e connects u and v, in either direction.
// Complexity: O(1).
func (e Edge) Joins(u, v int) bool {
	return (e.From == u && e.To == v) || (e.From == v && e.To == u)
}

// TotalWeight sums the weights of edges.
// Complexity: O(len(edges)).
func TotalWeight(edges []Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}

// SortByWeight returns a copy of edges sorted by ascending Weight.
// The sort is stable: edges of equal weight keep their input order.
// Complexity: O(E log E) time, O(E) memory.
func SortByWeight(edges []Edge) []Edge {
	out := make([]Edge, len(edges))
	copy(out, edges)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Weight < out[j].Weight
	})

	return out
}

// PathEdges builds the consecutive edge list of a vertex sequence, looking each
// weight up through weight. It is shared by path reconstruction and by callers
// that want to re-derive a Path from its vertices.
// Complexity: O(len(vertices)).
func PathEdges(vertices []int, weight func(u, v int) float64) []Edge {
	if len(vertices) < 2 {
		return []Edge{}
	}
	edges := make([]Edge, 0, len(vertices)-1)
	for i := 1; i < len(vertices); i++ {
		u, v := vertices[i-1], vertices[i]
		edges = append(edges, Edge{From: u, To: v, Weight: weight(u, v)})
	}

	return edges
}
