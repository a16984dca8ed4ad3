package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/spanforest/core"
)

// treeReport is the JSON shape of mst and msf results.
type treeReport struct {
	Command    string      `json:"command"`
	Matrix     string      `json:"matrix"`
	Algorithm  string      `json:"algorithm"`
	Trees      int         `json:"trees,omitempty"`
	Edges      []core.Edge `json:"edges"`
	Cost       float64     `json:"cost"`
	Components [][]int     `json:"components,omitempty"`
}

// pathReport is the JSON shape of path results.
type pathReport struct {
	Command     string      `json:"command"`
	Matrix      string      `json:"matrix"`
	Source      int         `json:"source"`
	Destination int         `json:"destination"`
	Vertices    []int       `json:"vertices"`
	Edges       []core.Edge `json:"edges"`
	Cost        float64     `json:"cost"`
}

// numbering shifts zero-based vertex ids into the user's numbering.
type numbering int

func numberingFor(oneIndexed bool) numbering {
	if oneIndexed {
		return 1
	}

	return 0
}

func (n numbering) vertex(v int) int { return v + int(n) }

func (n numbering) vertices(vs []int) []int {
	out := make([]int, len(vs))
	for i, v := range vs {
		out[i] = n.vertex(v)
	}

	return out
}

func (n numbering) edges(es []core.Edge) []core.Edge {
	out := make([]core.Edge, len(es))
	for i, e := range es {
		out[i] = core.Edge{From: n.vertex(e.From), To: n.vertex(e.To), Weight: e.Weight}
	}

	return out
}

func (n numbering) groups(gs [][]int) [][]int {
	out := make([][]int, len(gs))
	for i, g := range gs {
		out[i] = n.vertices(g)
	}

	return out
}

// formatEdges renders edges as "[(2, 1) (3, 2)]".
func formatEdges(es []core.Edge) string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = fmt.Sprintf("(%d, %d)", e.From, e.To)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// writeTree prints an mst/msf report; r is already renumbered.
func writeTree(w io.Writer, format string, r treeReport) error {
	if format == "json" {
		return writeJSON(w, r)
	}

	var err error
	if r.Command == "msf" {
		_, err = fmt.Fprintf(w, "MSF with %d trees for %s: %s\n", r.Trees, r.Matrix, formatEdges(r.Edges))
	} else {
		_, err = fmt.Fprintf(w, "MST edges for %s: %s\n", r.Matrix, formatEdges(r.Edges))
	}
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintf(w, "cost: %v\n", r.Cost); err != nil {
		return err
	}
	if r.Components != nil {
		_, err = fmt.Fprintf(w, "trees: %v\n", r.Components)
	}

	return err
}

// writePath prints a path report; r is already renumbered.
func writePath(w io.Writer, format string, r pathReport) error {
	if format == "json" {
		return writeJSON(w, r)
	}

	_, err := fmt.Fprintf(w, "Shortest path from %d to %d: %v\ncost: %v\nedges: %s\n",
		r.Source, r.Destination, r.Vertices, r.Cost, formatEdges(r.Edges))

	return err
}
