// Package astar defines the heuristic state model, options and error
// definitions for best-first search over a core.Graph.
package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/swapgraph/core"
)

// Sentinel errors for A* execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("astar: graph is nil")

	// ErrSourceNotFound is returned when the source identity is not a node of the graph.
	ErrSourceNotFound = errors.New("astar: source node not found")

	// ErrNilFactory is returned when no state factory is supplied.
	ErrNilFactory = errors.New("astar: state factory is nil")

	// ErrFactory wraps failures of the state factory during expansion.
	ErrFactory = errors.New("astar: state factory failed")

	// ErrNegativeHeuristic is returned when a state estimates a negative (or NaN)
	// distance to the goal.
	ErrNegativeHeuristic = errors.New("astar: heuristic must be non-negative")

	// ErrExpansionLimit is returned when WithMaxExpansions is exceeded.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// State is the heuristic state model consumed by Search.
//
// Identity returns the canonical key of the state; it is the node stored in
// the graph and must be equal for equal states. DistanceTo estimates the
// remaining number of moves to goal; it must be non-negative, and should be
// admissible and consistent for the returned path to be a shortest one.
type State[N comparable, S any] interface {
	Identity() N
	DistanceTo(goal S, g *core.Graph[N]) float64
}

// Factory rebuilds a state from its identity. Dimensions or any other
// context needed to decode the identity are captured by the closure.
type Factory[N comparable, S any] func(id N) (S, error)

// Heuristic estimates the distance between two plain nodes (see SearchFunc).
type Heuristic[N comparable] func(from, to N) float64

// Zero is the heuristic that always answers 0; Search then behaves like a
// uniform-cost search.
func Zero[N comparable](_, _ N) float64 { return 0 }

// Option configures Search via functional arguments.
type Option func(*Options)

// Options holds parameters for a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Logger receives debug events for each search.
	Logger zerolog.Logger

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit once
	// more than this many nodes have been expanded. 0 means no limit.
	MaxExpansions int

	err error
}

// DefaultOptions returns background context, a silent logger and no
// expansion limit.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: zerolog.Nop(),
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

// WithMaxExpansions bounds the number of node expansions.
// n < 0 is recorded as ErrOptionViolation.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// Result holds the outcome of a search.
type Result[N comparable] struct {
	// Path lists node identities from source to destination; nil when not found.
	Path []N
	// Found reports whether the destination was reached.
	Found bool
	// Cost is the number of moves on Path (-1 when not found).
	Cost int
	// Expanded counts node expansions, re-expansions included.
	Expanded int
}
