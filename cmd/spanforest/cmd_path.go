package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/spanforest/dijkstra"
	"github.com/katalvlaran/spanforest/internal/config"
	"github.com/spf13/cobra"
)

var (
	pathSource int
	pathDest   int
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Compute the shortest path between two vertices",
	Long: `Compute the cheapest path from --source to --destination with Dijkstra's
algorithm. Fails when the two vertices lie in different components.

Examples:
  spanforest path -m graph.npy -i 1 -j 4
  spanforest path -m graph.csv -i 0 -j 3 --one-indexed=false`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPath(cmd.OutOrStdout(), logger, cfg, matrixFile, pathSource, pathDest)
	},
}

func init() {
	addMatrixFlag(pathCmd)
	pathCmd.Flags().IntVarP(&pathSource, "source", "i", 0, "Source vertex")
	pathCmd.Flags().IntVarP(&pathDest, "destination", "j", 0, "Destination vertex")
	_ = pathCmd.MarkFlagRequired("source")
	_ = pathCmd.MarkFlagRequired("destination")
}

// runPath loads path, validates both vertices in the user's numbering and
// writes the shortest path report to w.
func runPath(w io.Writer, log *slog.Logger, c *config.Config, path string, source, dest int) error {
	m, err := loadMatrix(log, c, path)
	if err != nil {
		return err
	}
	if err := checkVertexArg(m, c, "source", source); err != nil {
		return err
	}
	if err := checkVertexArg(m, c, "destination", dest); err != nil {
		return err
	}

	start := time.Now()
	p, err := dijkstra.ShortestPath(m, vertexArg(c, source), vertexArg(c, dest))
	if err != nil {
		log.Error("shortest path failed", "source", source, "destination", dest, "error", err)
		return err
	}
	log.Info("shortest path computed",
		"hops", len(p.Edges), "cost", p.Cost, "took", time.Since(start))

	num := numberingFor(c.OneIndexed)

	return writePath(w, c.Format, pathReport{
		Command:     "path",
		Matrix:      path,
		Source:      source,
		Destination: dest,
		Vertices:    num.vertices(p.Vertices),
		Edges:       num.edges(p.Edges),
		Cost:        p.Cost,
	})
}
