package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/swapgraph/puzzle"
)

// errNoStart is returned when neither --grid nor the config names a start grid.
var errNoStart = errors.New("no start grid: pass --grid or set puzzle.start in the config")

func newSolveCmd(a *app) *cobra.Command {
	var (
		gridPaths []string
		strategy  string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Sort a swap-puzzle grid with the fewest adjacent swaps",
		Long: `Solve a swap puzzle: reorder an m×n grid holding 1..m·n into the goal
(by default the sorted grid) by swapping orthogonally adjacent cells.

Grid file format:
  m n        rows, columns
  ...        m lines of n integers

Prints the swaps, one per line, then the final grid. Repeat --grid to
solve several files in turn.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := *a.cfg
			if strategy != "" {
				cfg.Strategy = strategy
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			opts, err := cfg.SolveOptions()
			if err != nil {
				return err
			}
			opts = append(opts, puzzle.WithContext(cmd.Context()), puzzle.WithLogger(a.log))

			var starts []*puzzle.Grid
			for _, p := range gridPaths {
				g, err := puzzle.ReadGridFile(p)
				if err != nil {
					return err
				}
				starts = append(starts, g)
			}
			if len(starts) == 0 {
				if len(cfg.Puzzle.Start) == 0 {
					return errNoStart
				}
				g, err := cfg.StartGrid()
				if err != nil {
					return err
				}
				starts = append(starts, g)
			}

			out := cmd.OutOrStdout()
			for i, start := range starts {
				goal, err := cfg.GoalGrid(start.M, start.N)
				if err != nil {
					return err
				}
				sol, err := puzzle.Solve(start, goal, opts...)
				if err != nil {
					return err
				}
				if len(starts) > 1 {
					fmt.Fprintf(out, "== %s\n", gridPaths[i])
				}
				if err := printSolution(out, start, sol); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().StringArrayVar(&gridPaths, "grid", nil, "grid file to solve, repeatable (overrides puzzle.start)")
	cmd.Flags().StringVar(&strategy, "strategy", "", "search strategy: astar or bfs (overrides config)")

	return cmd
}

// printSolution writes the swap count, the swaps and the resulting grid.
func printSolution(out io.Writer, start *puzzle.Grid, sol puzzle.Solution) error {
	if !sol.Found {
		fmt.Fprintln(out, "no solution")
		return nil
	}
	fmt.Fprintf(out, "%d swaps\n", len(sol.Swaps))
	for _, s := range sol.Swaps {
		fmt.Fprintln(out, s)
	}
	final := start.Clone()
	if err := final.SwapSeq(sol.Swaps); err != nil {
		return err
	}
	fmt.Fprintln(out, final)

	return nil
}
