package puzzle

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/swapgraph/astar"
	"github.com/katalvlaran/swapgraph/bfs"
)

// Solution is the outcome of Solve.
type Solution struct {
	// Path lists the states from start to goal; nil when not found.
	Path []Key
	// Swaps realises Path move by move.
	Swaps []Swap
	// Found reports whether goal was reached.
	Found bool
	// Expanded counts nodes expanded (A*) or taken off the frontier (BFS).
	Expanded int
	// States is the number of states in the searched graph.
	States int
}

// SolveOption configures Solve via functional arguments.
type SolveOption func(*solveOptions)

type solveOptions struct {
	ctx           context.Context
	strategy      Strategy
	maxExpansions int
	stateLimit    int
	logger        zerolog.Logger
}

func defaultSolveOptions() solveOptions {
	return solveOptions{
		ctx:      context.Background(),
		strategy: AStar,
		logger:   zerolog.Nop(),
	}
}

// WithStrategy selects A* (default) or BFS.
func WithStrategy(s Strategy) SolveOption {
	return func(o *solveOptions) { o.strategy = s }
}

// WithMaxExpansions bounds A* expansions (0 = no bound). Ignored by BFS.
func WithMaxExpansions(n int) SolveOption {
	return func(o *solveOptions) { o.maxExpansions = n }
}

// WithStateLimit caps the number of states explored while building the
// state graph (0 = whole space, only for grids up to MaxCells cells).
func WithStateLimit(n int) SolveOption {
	return func(o *solveOptions) { o.stateLimit = n }
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) SolveOption {
	return func(o *solveOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger routes solver and search events to l.
func WithLogger(l zerolog.Logger) SolveOption {
	return func(o *solveOptions) { o.logger = l }
}

// Solve builds the state graph reachable from start and searches it for
// goal with the selected strategy. BFS answers start == goal with the
// one-state path.
// Returns ErrDimensions for grids of different shapes, and any error of
// ReachableGraph, bfs.ShortestPath or astar.Search.
func Solve(start, goal *Grid, opts ...SolveOption) (Solution, error) {
	o := defaultSolveOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if start == nil || goal == nil {
		return Solution{}, ErrEmptyGrid
	}
	if start.M != goal.M || start.N != goal.N {
		return Solution{}, fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensions, start.M, start.N, goal.M, goal.N)
	}

	log := o.logger.With().Str("strategy", o.strategy.String()).Int("m", start.M).Int("n", start.N).Logger()
	g, err := ReachableGraph(start, o.stateLimit)
	if err != nil {
		return Solution{}, err
	}
	log.Debug().Int("states", g.NodeCount()).Int("edges", g.EdgeCount()).Msg("puzzle: state graph built")

	sol := Solution{States: g.NodeCount()}
	switch o.strategy {
	case AStar:
		res, err := astar.Search(g, start, goal, Factory(start.M, start.N),
			astar.WithContext(o.ctx),
			astar.WithLogger(log),
			astar.WithMaxExpansions(o.maxExpansions),
		)
		if err != nil {
			return Solution{}, err
		}
		sol.Path, sol.Found, sol.Expanded = res.Path, res.Found, res.Expanded
	case BFS:
		res, err := bfs.ShortestPath(g, start.Identity(), goal.Identity(),
			bfs.WithContext(o.ctx),
			bfs.WithLogger(log),
			bfs.WithTrivialPath(),
		)
		if err != nil {
			return Solution{}, err
		}
		sol.Path, sol.Found, sol.Expanded = res.Path, res.Found, res.Visited
	default:
		return Solution{}, fmt.Errorf("%w: %v", ErrUnknownStrategy, o.strategy)
	}

	if sol.Found {
		sol.Swaps, err = SwapsAlong(start.M, start.N, sol.Path)
		if err != nil {
			return Solution{}, err
		}
	}
	log.Info().Bool("found", sol.Found).Int("swaps", len(sol.Swaps)).Int("expanded", sol.Expanded).Msg("puzzle: solved")

	return sol, nil
}
