package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/swapgraph/astar"
	"github.com/katalvlaran/swapgraph/bfs"
	"github.com/katalvlaran/swapgraph/core"
	"github.com/katalvlaran/swapgraph/puzzle"
)

// errDepthWithAStar is returned when --max-depth is combined with A*, which
// bounds its work by expansions instead.
var errDepthWithAStar = errors.New("--max-depth applies to bfs only; use max_expansions in the config to bound astar")

func newPathCmd(a *app) *cobra.Command {
	var (
		strategy string
		maxDepth int
		summary  bool
	)

	cmd := &cobra.Command{
		Use:   "path FILE SRC DST",
		Short: "Shortest path between two nodes of a graph file",
		Long: `Read a graph file and print the fewest-edge path from SRC to DST.

File format:
  n m        node count, edge count
  u v        m lines, one undirected edge each, nodes 1..n

Prints "no path" when DST cannot be reached.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("source node: %w", err)
			}
			dst, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("destination node: %w", err)
			}
			name := strategy
			if name == "" {
				name = "bfs"
			}
			s, err := puzzle.ParseStrategy(name)
			if err != nil {
				return err
			}
			if s != puzzle.BFS && maxDepth != 0 {
				return errDepthWithAStar
			}

			g, err := core.ReadGraphFile(args[0])
			if err != nil {
				return err
			}
			a.log.Debug().Str("file", args[0]).Int("nodes", g.NodeCount()).Int("edges", g.EdgeCount()).Msg("graph loaded")
			if summary {
				fmt.Fprint(cmd.OutOrStdout(), g.String())
			}

			var (
				path  []int
				found bool
			)
			switch s {
			case puzzle.BFS:
				res, err := bfs.ShortestPath(g, src, dst,
					bfs.WithContext(cmd.Context()),
					bfs.WithLogger(a.log),
					bfs.WithMaxDepth(maxDepth),
				)
				if err != nil {
					return err
				}
				path, found = res.Path, res.Found
			default:
				res, err := astar.SearchFunc(g, src, dst, astar.Zero[int],
					astar.WithContext(cmd.Context()),
					astar.WithLogger(a.log),
					astar.WithMaxExpansions(a.cfg.MaxExpansions),
				)
				if err != nil {
					return err
				}
				path, found = res.Path, res.Found
			}

			if !found {
				fmt.Fprintln(cmd.OutOrStdout(), "no path")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)

			return nil
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", "", "search strategy: bfs (default) or astar")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "BFS depth limit (0 = unlimited); rejected with --strategy astar")
	cmd.Flags().BoolVar(&summary, "summary", false, "print the graph before the path")

	return cmd
}
