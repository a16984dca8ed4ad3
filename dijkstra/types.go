package dijkstra

// Errors (sentinel):
//
//	– ErrNilMatrix     if the provided matrix pointer is nil.
//	– ErrInvalidIndex  if the source or destination id lies outside [0, N).
//	– ErrDisconnected  if the destination cannot be reached from the source.

import (
	"fmt"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/matrix"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilMatrix indicates that a nil *matrix.Weighted was passed.
	ErrNilMatrix = matrix.ErrNilMatrix

	// ErrInvalidIndex indicates a source or destination outside [0, N).
	// It is core.ErrInvalidIndex.
	ErrInvalidIndex = core.ErrInvalidIndex

	// ErrDisconnected indicates that no path joins source and destination.
	// It is core.ErrDisconnected.
	ErrDisconnected = core.ErrDisconnected
)

// NoPredecessor marks prev entries of the source and of unreachable vertices.
const NoPredecessor = -1

// checkIndex validates a vertex parameter against the matrix order and
// names the offending parameter in the error.
func checkIndex(m *matrix.Weighted, name string, v int) error {
	if !m.Contains(v) {
		return fmt.Errorf("%w: %s=%d not in [0,%d)", ErrInvalidIndex, name, v, m.Order())
	}

	return nil
}
