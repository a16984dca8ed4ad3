// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/matrix"
)

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. It is core.ErrDisconnected, so
// errors.Is matches either name.
var ErrDisconnected = core.ErrDisconnected

// ErrNilMatrix indicates that Prim or Kruskal received a nil matrix.
var ErrNilMatrix = matrix.ErrNilMatrix

// ErrUnknownMethod indicates an MSTOptions.Method that is neither MethodPrim nor MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from vertex 0 by linear-scan minimum).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string — one of MethodPrim or MethodKruskal.
//
// See: prim_kruskal.Prim, prim_kruskal.Kruskal
// Complexity: O(V²) for Prim, O(V² + E log E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal. Other values make Compute fail
// with ErrUnknownMethod.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
	}
}

// Resolve applies opts over DefaultOptions.
func Resolve(opts ...Option) MSTOptions {
	cfg := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// ParseMethod normalises user input ("Prim", " kruskal ") to a Method constant.
// Returns ErrUnknownMethod wrapped with the input otherwise.
func ParseMethod(s string) (string, error) {
	switch m := strings.ToLower(strings.TrimSpace(s)); m {
	case MethodPrim, MethodKruskal:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Compute selects and runs the MST algorithm based on the resolved Method.
//
//	– MethodKruskal: calls Kruskal(m).
//	– MethodPrim:    calls Prim(m).
//	– Otherwise:     returns ErrUnknownMethod.
//
// Returns:
//
//	[]core.Edge — edges of the MST (empty for a single vertex).
//	float64     — total weight of the MST.
//	error       — non-nil if computation cannot proceed.
func Compute(m *matrix.Weighted, opts ...Option) ([]core.Edge, float64, error) {
	cfg := Resolve(opts...)
	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(m)
	case MethodPrim:
		return Prim(m)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
}
