// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Sentinel errors for BFS execution.
var (
	// ErrSourceNotFound is returned when the source node is not registered.
	ErrSourceNotFound = errors.New("bfs: source node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when ShortestPath is invoked.
type Option func(*Options)

// Options holds parameters to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Logger receives debug events for each search.
	Logger zerolog.Logger

	// MaxDepth, if > 0, stops expanding nodes at this depth, so paths of
	// more than MaxDepth edges are not reported.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// TrivialPath makes ShortestPath(g, s, s) return [s] for every s.
	TrivialPath bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - zerolog.Nop() logger
//   - no depth limit (MaxDepth == 0)
//   - no trivial-path shortcut.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Logger:      zerolog.Nop(),
		MaxDepth:    0,
		TrivialPath: false,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes search events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMaxDepth limits the search to paths of at most d edges.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithTrivialPath answers src == dst with the one-node path [src] instead of
// searching for a cycle back to src.
func WithTrivialPath() Option {
	return func(o *Options) {
		o.TrivialPath = true
	}
}

// Result holds the outcome of a search:
//   - Path: nodes from source to destination inclusive, nil if not found.
//   - Found: whether the destination was reached.
//   - Visited: number of nodes taken off the frontier.
type Result[N comparable] struct {
	Path    []N
	Found   bool
	Visited int
}

// Hops returns the number of edges on Path, or -1 when nothing was found.
func (r Result[N]) Hops() int {
	if !r.Found {
		return -1
	}

	return len(r.Path) - 1
}
