// Package core defines the shared value types and sentinel errors used by
// every spanforest engine: the undirected weighted Edge, the shortest-path
// result Path, and the error taxonomy reported by the engines.
//
// Vertices are plain integers in [0, N), where N is the order of the
// adjacency matrix the engine was given. No engine keeps a reference to a
// result after returning it; callers own every slice they receive.
//
// Errors:
//
//	ErrInvalidIndex      - a vertex id lies outside [0, N).
//	ErrDisconnected      - no spanning tree or path exists because the graph is split.
//	ErrInvalidForestSize - a forest with fewer than 1 or more than N trees was requested.
package core

import "errors"

// Sentinel errors shared by the engines. Engines wrap them with context via
// fmt.Errorf("...: %w", err); match them with errors.Is.
var (
	// ErrInvalidIndex indicates that a vertex id is outside [0, N).
	ErrInvalidIndex = errors.New("core: vertex index out of range")

	// ErrDisconnected indicates that the graph has more than one connected
	// component where a spanning structure or a path was required.
	ErrDisconnected = errors.New("core: graph is disconnected")

	// ErrInvalidForestSize indicates a spanning forest size outside [1, N].
	ErrInvalidForestSize = errors.New("core: invalid forest size")
)

// Edge is an undirected weighted connection between two distinct vertices.
//
// From and To are zero-based vertex ids. The order of the endpoints carries
// no meaning for the graph itself, but engines emit them in a documented,
// deterministic order so results can be compared verbatim.
type Edge struct {
	// From is the first endpoint.
	From int `json:"from"`

	// To is the second endpoint.
	To int `json:"to"`

	// Weight is the matrix entry for (From, To). Always > 0 for real edges.
	Weight float64 `json:"weight"`
}

// Path is the result of a single-source, single-destination shortest-path query.
//
// Vertices runs from source to destination inclusive. Edges holds one entry
// per consecutive pair of Vertices, and Cost is the sum of their weights.
type Path struct {
	// Vertices is the ordered vertex sequence, source first.
	Vertices []int `json:"vertices"`

	// Edges joins Vertices[i] to Vertices[i+1].
	Edges []Edge `json:"edges"`

	// Cost is the total weight of Edges (0 when source == destination).
	Cost float64 `json:"cost"`
}
