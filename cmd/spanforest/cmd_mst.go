package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/spanforest/internal/config"
	"github.com/katalvlaran/spanforest/prim_kruskal"
	"github.com/spf13/cobra"
)

var mstCmd = &cobra.Command{
	Use:   "mst",
	Short: "Compute a minimum spanning tree",
	Long: `Compute a minimum spanning tree of the matrix.

The graph must be connected. Prim grows the tree from the first vertex;
Kruskal adds edges in ascending weight order. Both give the same cost.

Examples:
  spanforest mst -m graph.npy
  spanforest mst -m graph.csv --algorithm prim --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runMST(cmd.OutOrStdout(), logger, cfg, matrixFile)
	},
}

func init() {
	addMatrixFlag(mstCmd)
}

// runMST loads path, computes the MST with the configured algorithm and
// writes the report to w.
func runMST(w io.Writer, log *slog.Logger, c *config.Config, path string) error {
	m, err := loadMatrix(log, c, path)
	if err != nil {
		return err
	}

	opts := methodOptions(c)
	algorithm := prim_kruskal.Resolve(opts...).Method

	start := time.Now()
	mst, cost, err := prim_kruskal.Compute(m, opts...)
	if err != nil {
		log.Error("minimum spanning tree failed", "algorithm", algorithm, "error", err)
		return err
	}
	log.Info("minimum spanning tree computed",
		"algorithm", algorithm, "edges", len(mst), "cost", cost, "took", time.Since(start))

	num := numberingFor(c.OneIndexed)

	return writeTree(w, c.Format, treeReport{
		Command:   "mst",
		Matrix:    path,
		Algorithm: algorithm,
		Edges:     num.edges(mst),
		Cost:      cost,
	})
}
