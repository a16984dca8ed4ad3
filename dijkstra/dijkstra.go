// Package dijkstra implements Dijkstra's shortest-path algorithm on a dense,
// non-negative weight matrix.
//
// The matrix form replaces the priority queue with a linear scan over the
// unvisited vertices: every step costs O(V) to select plus O(V) to relax, which
// is optimal when the adjacency matrix is dense anyway.
//
// Complexity:
//
//   - Time:  O(V²)
//   - Space: O(V) for dist, prev and the visited flags.
//
// Notes on implementation choices:
//
//   - Selection breaks ties by lowest vertex id (ascending scan, strict "<").
//   - Relaxation uses strict "<", so the first predecessor found for a given
//     distance is kept.
//   - A selected distance of +Inf means every remaining vertex is unreachable.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/matrix"
)

// ShortestPath computes the cheapest path from source to dest in m.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMatrix).
//  2. source and dest must lie in [0, N) (ErrInvalidIndex, naming the parameter).
//
// The search stops as soon as dest is finalised. If dest is never finalised
// because it lies in another component, ErrDisconnected is returned.
//
// Returns a core.Path with:
//   - Vertices: source … dest inclusive ([source] when source == dest).
//   - Edges:    one edge per consecutive pair of Vertices.
//   - Cost:     the sum of those edge weights (0 when source == dest).
//
// Complexity: O(V²) time, O(V) memory.
func ShortestPath(m *matrix.Weighted, source, dest int) (core.Path, error) {
	// 1) Validate inputs.
	if m == nil {
		return core.Path{}, ErrNilMatrix
	}
	if err := checkIndex(m, "source", source); err != nil {
		return core.Path{}, err
	}
	if err := checkIndex(m, "destination", dest); err != nil {
		return core.Path{}, err
	}

	// 2) Run until dest is finalised.
	r := newRunner(m, source)
	if err := r.run(dest); err != nil {
		return core.Path{}, err
	}

	// 3) Walk prev pointers back from dest, then reverse.
	vertices := r.pathTo(dest)
	edges := core.PathEdges(vertices, m.Weight)

	return core.Path{
		Vertices: vertices,
		Edges:    edges,
		Cost:     core.TotalWeight(edges),
	}, nil
}

// Tree runs Dijkstra from source over the whole graph.
//
// Returns:
//
//   - dist: dist[v] is the shortest distance from source, +Inf if unreachable.
//   - prev: prev[v] is the predecessor of v on a shortest path;
//     NoPredecessor for the source and for unreachable vertices.
//   - err:  ErrNilMatrix or ErrInvalidIndex. Unreachable vertices are not an error here.
//
// Complexity: O(V²) time, O(V) memory.
func Tree(m *matrix.Weighted, source int) ([]float64, []int, error) {
	if m == nil {
		return nil, nil, ErrNilMatrix
	}
	if err := checkIndex(m, "source", source); err != nil {
		return nil, nil, err
	}

	r := newRunner(m, source)
	r.runAll()

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	m       *matrix.Weighted // read-only input
	source  int
	dist    []float64 // best known distance from source
	prev    []int     // predecessor on the best known path
	visited []bool    // finalised vertices
}

// newRunner sets dist[v] = +Inf and prev[v] = NoPredecessor for all v, and dist[source] = 0.
func newRunner(m *matrix.Weighted, source int) *runner {
	n := m.Order()
	r := &runner{
		m:       m,
		source:  source,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = math.Inf(1)
		r.prev[v] = NoPredecessor
	}
	r.dist[source] = 0

	return r
}

// run finalises vertices in order of distance until target is finalised.
//
// Returns ErrDisconnected when the cheapest unvisited vertex is at +Inf while
// target is still unvisited.
func (r *runner) run(target int) error {
	for !r.visited[target] {
		if !r.step() {
			return fmt.Errorf("%w: no path from %d to %d", ErrDisconnected, r.source, target)
		}
	}

	return nil
}

// runAll finalises every vertex reachable from the source. Unreachable
// vertices keep dist +Inf and prev NoPredecessor.
func (r *runner) runAll() {
	for r.step() {
	}
}

// step finalises one vertex and relaxes its neighbours. It reports false when
// no unvisited vertex has a finite distance.
func (r *runner) step() bool {
	// 1) Select the unvisited vertex with minimum dist (lowest id on ties).
	curr := r.selectMin()
	if curr < 0 {
		return false
	}

	// 2) Its distance is now final.
	r.visited[curr] = true

	// 3) Relax unvisited neighbours.
	r.relax(curr)

	return true
}

// selectMin returns the unvisited vertex with the smallest finite distance,
// or -1 if all unvisited vertices are at +Inf.
func (r *runner) selectMin() int {
	curr, best := -1, math.Inf(1)
	for v, d := range r.dist {
		if !r.visited[v] && d < best {
			curr, best = v, d
		}
	}

	return curr
}

// relax examines each unvisited neighbour nb of u and records u as its
// predecessor when dist[u] + weight(u, nb) is strictly shorter.
func (r *runner) relax(u int) {
	for _, nb := range r.m.Neighbors(u) {
		if r.visited[nb] {
			continue
		}
		if nd := r.dist[u] + r.m.Weight(u, nb); nd < r.dist[nb] {
			r.dist[nb] = nd
			r.prev[nb] = u
		}
	}
}

// pathTo reconstructs source … v from prev pointers. v must be finalised.
func (r *runner) pathTo(v int) []int {
	var rev []int
	for curr := v; curr != NoPredecessor; curr = r.prev[curr] {
		rev = append(rev, curr)
	}
	path := make([]int, len(rev))
	for i, x := range rev {
		path[len(rev)-1-i] = x
	}

	return path
}
