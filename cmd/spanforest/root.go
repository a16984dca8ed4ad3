package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/internal/config"
	"github.com/katalvlaran/spanforest/internal/logging"
	"github.com/katalvlaran/spanforest/matrix"
	"github.com/katalvlaran/spanforest/matrixio"
	"github.com/katalvlaran/spanforest/prim_kruskal"
	"github.com/spf13/cobra"
)

var (
	// Persistent flags
	cfgFile string

	// Shared by every subcommand
	matrixFile string

	// Resolved in PersistentPreRunE
	cfg    *config.Config
	logger = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "spanforest",
	Short: "Spanning trees, spanning forests and shortest paths on weight matrices",
	Long: `spanforest reads a symmetric, non-negative adjacency matrix and runs one
of three algorithms on it:

  mst   minimum spanning tree (Prim or Kruskal)
  msf   minimum spanning forest with a given number of trees
  path  Dijkstra shortest path between two vertices

Matrices are read from .npy, .json, .yaml, .csv or .txt files.
A zero entry means "no edge".

Settings come from defaults, ./spanforest.toml (or --config), SPANFOREST_*
environment variables and flags, in increasing priority.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		c, err := config.Load(cmd.Flags(), cfgFile)
		if err != nil {
			return err
		}
		l, err := logging.New(cmd.ErrOrStderr(), c.LogLevel)
		if err != nil {
			return err
		}
		cfg, logger = c, l
		logger.Debug("configuration resolved",
			"algorithm", c.Algorithm, "format", c.Format, "one-indexed", c.OneIndexed)

		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "",
		"TOML config file (default ./"+config.DefaultFile+" if present)")

	// Values of these flags are read through config.Load, not bound to variables.
	defaults := config.Defaults()
	pf.String("algorithm", defaults["algorithm"].(string),
		"MST algorithm: prim or kruskal (default kruskal for mst, prim for msf)")
	pf.String("format", defaults["format"].(string),
		"Output format: text or json")
	pf.Bool("one-indexed", defaults["one-indexed"].(bool),
		"Number vertices from 1 in arguments and output")
	pf.String("log-level", defaults["log-level"].(string),
		"Log level: debug, info, warn, error")
	pf.Float64("epsilon", defaults["epsilon"].(float64),
		"Tolerance for the matrix symmetry check")

	rootCmd.AddCommand(mstCmd, msfCmd, pathCmd)
}

// addMatrixFlag registers the required -m/--matrix flag on cmd.
func addMatrixFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&matrixFile, "matrix", "m", "",
		"Adjacency matrix file (.npy, .json, .yaml, .csv, .txt)")
	_ = cmd.MarkFlagRequired("matrix")
}

// loadMatrix reads and validates path, logging its order and load time.
func loadMatrix(log *slog.Logger, c *config.Config, path string) (*matrix.Weighted, error) {
	start := time.Now()
	m, err := matrixio.LoadWeighted(path, matrix.WithEpsilon(c.Epsilon))
	if err != nil {
		log.Error("loading matrix failed", "path", path, "error", err)
		return nil, err
	}
	log.Info("matrix loaded", "path", path, "order", m.Order(), "took", time.Since(start))

	return m, nil
}

// methodOptions turns the configured algorithm into engine options; an empty
// name keeps the engine's default.
func methodOptions(c *config.Config) []prim_kruskal.Option {
	if c.Algorithm == "" {
		return nil
	}

	return []prim_kruskal.Option{prim_kruskal.WithMethod(c.Algorithm)}
}

// vertexArg converts a user-facing vertex number to a zero-based index.
func vertexArg(c *config.Config, v int) int {
	if c.OneIndexed {
		return v - 1
	}

	return v
}

// checkVertexArg rejects a vertex outside the matrix, naming the flag and
// reporting the value as the user typed it.
func checkVertexArg(m *matrix.Weighted, c *config.Config, flag string, v int) error {
	if m.Contains(vertexArg(c, v)) {
		return nil
	}
	lo, hi := 0, m.Order()-1
	if c.OneIndexed {
		lo, hi = 1, m.Order()
	}

	return fmt.Errorf("%w: --%s %d not in [%d, %d]", core.ErrInvalidIndex, flag, v, lo, hi)
}
