package builder

import (
	"fmt"

	"github.com/katalvlaran/swapgraph/core"
)

// RandomEdges returns a Constructor that registers n vertices and draws m
// edges with both endpoints uniform over them. Self-loops and parallel
// edges are kept, as AddEdge keeps them.
func RandomEdges(n, m int) Constructor {
	return func(g *core.Graph[int], cfg config) error {
		if n < 1 {
			return tooFew("RandomEdges", n, 1)
		}
		if m < 0 {
			return fmt.Errorf("RandomEdges: m=%d: %w", m, ErrInvalidCount)
		}
		if cfg.rng == nil {
			return fmt.Errorf("RandomEdges: %w", ErrNeedRandSource)
		}
		addVertices(g, cfg, n)
		for e := 0; e < m; e++ {
			g.AddEdge(cfg.idFn(cfg.rng.Intn(n)), cfg.idFn(cfg.rng.Intn(n)))
		}

		return nil
	}
}
