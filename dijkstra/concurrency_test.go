package dijkstra_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/spanforest/dijkstra"
	"github.com/katalvlaran/spanforest/forest"
	"github.com/katalvlaran/spanforest/matrix"
	"github.com/katalvlaran/spanforest/prim_kruskal"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var errMismatch = errors.New("concurrent result differs from sequential run")

// TestEngines_ShareMatrix runs every engine concurrently against one matrix.
// Engines only read the matrix, so each goroutine must reproduce the
// sequential answers (run with -race to check the read-only contract).
func TestEngines_ShareMatrix(t *testing.T) {
	rows := randomGraph(40, 0.2, 99)
	for v := 1; v < len(rows); v++ {
		rows[v-1][v], rows[v][v-1] = 25, 25 // chain keeps it connected
	}
	m := matrix.MustWeighted(rows)

	_, primCost, err := prim_kruskal.Prim(m)
	require.NoError(t, err)
	_, kruskalCost, err := prim_kruskal.Kruskal(m)
	require.NoError(t, err)
	require.Equal(t, primCost, kruskalCost)
	_, forestCost, err := forest.Compute(m, 3)
	require.NoError(t, err)
	wantPath, err := dijkstra.ShortestPath(m, 0, m.Order()-1)
	require.NoError(t, err)

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			_, cost, err := prim_kruskal.Prim(m)
			if err != nil {
				return err
			}
			if cost != primCost {
				return errMismatch
			}
			return nil
		})
		g.Go(func() error {
			_, cost, err := prim_kruskal.Kruskal(m)
			if err != nil {
				return err
			}
			if cost != kruskalCost {
				return errMismatch
			}
			return nil
		})
		g.Go(func() error {
			_, cost, err := forest.Compute(m, 3)
			if err != nil {
				return err
			}
			if cost != forestCost {
				return errMismatch
			}
			return nil
		})
		g.Go(func() error {
			p, err := dijkstra.ShortestPath(m, 0, m.Order()-1)
			if err != nil {
				return err
			}
			if p.Cost != wantPath.Cost || len(p.Vertices) != len(wantPath.Vertices) {
				return errMismatch
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
