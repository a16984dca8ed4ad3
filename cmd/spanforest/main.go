// Command spanforest computes minimum spanning trees and forests and
// shortest paths on adjacency matrices stored in files.
//
//	spanforest mst  -m graph.npy [--algorithm prim|kruskal]
//	spanforest msf  -m graph.npy -n 3
//	spanforest path -m graph.csv -i 1 -j 4
//	spanforest generate --shape clusters -n 12 --clusters 3 -o graph.npy
//
// Vertices are 1-indexed on the command line and in the output unless
// one-indexed is turned off (flag, SPANFOREST_ONE_INDEXED or spanforest.toml).
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
