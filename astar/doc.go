// Package astar provides best-first (A*) search between two states of a
// permutation-style puzzle whose state space is stored in a core.Graph.
//
// What
//
//   - States implement State: a canonical Identity (the graph node) and a
//     DistanceTo estimate towards the goal state.
//   - A Factory rebuilds neighbor states from their identities, so the search
//     never needs to know what a state concretely is.
//   - Every move costs 1; entries are ordered by cost + estimate.
//   - A closed node is re-opened when a strictly better estimate reaches it.
//   - An exhausted open list is reported as Result.Found == false.
//
// Ordering
//
//	The open list is a binary heap keyed by estimate. Entries with equal
//	estimates leave in the order they were pushed, so results are
//	deterministic for a given graph and neighbor order.
//
// Optimality
//
//	With an admissible and consistent heuristic the returned path is a
//	shortest one (same length as bfs.ShortestPath). An inadmissible heuristic
//	still terminates on a finite graph, but may return a longer path. Zero
//	turns the search into a uniform-cost search.
//
// Usage
//
//	res, err := astar.Search(g, start, goal, puzzle.Factory(2, 2),
//	    astar.WithMaxExpansions(10_000),
//	    astar.WithLogger(logger),
//	)
//
//	res, err = astar.SearchFunc(g, 1, 3, astar.Zero[int])
//
// Errors
//
//   - ErrGraphNil, ErrNilFactory, ErrSourceNotFound for invalid input.
//   - ErrOptionViolation for negative MaxExpansions.
//   - ErrNegativeHeuristic when a state estimates < 0 or NaN.
//   - ErrFactory (wrapped) when a neighbor state cannot be rebuilt.
//   - ErrExpansionLimit when WithMaxExpansions is exceeded.
//   - context.Canceled / context.DeadlineExceeded from WithContext.
package astar
