// Command swapgraph finds shortest paths in graph files and solves swap
// puzzles.
//
//	swapgraph path graph.in 1 7
//	swapgraph solve --grid start.in --strategy bfs
//	swapgraph solve --config run.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
