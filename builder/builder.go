package builder

import (
	"fmt"

	"github.com/katalvlaran/swapgraph/core"
)

// Constructor adds one topology to g.
type Constructor func(g *core.Graph[int], cfg config) error

// Build creates an empty graph, resolves opts and applies cons in order.
// The first constructor error is returned wrapped as "Build: %w".
func Build(opts []Option, cons ...Constructor) (*core.Graph[int], error) {
	g := core.NewGraph[int]()
	cfg := newConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// addVertices registers IDs for indices 0..n-1 in ascending order.
func addVertices(g *core.Graph[int], cfg config, n int) {
	for i := 0; i < n; i++ {
		g.AddNode(cfg.idFn(i))
	}
}

func tooFew(method string, got, min int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
}
