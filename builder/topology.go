package builder

import (
	"fmt"

	"github.com/katalvlaran/swapgraph/core"
)

// Path returns a Constructor for the path 0 — 1 — … — n-1.
func Path(n int) Constructor {
	return func(g *core.Graph[int], cfg config) error {
		if n < 1 {
			return tooFew("Path", n, 1)
		}
		addVertices(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			g.AddEdge(cfg.idFn(i), cfg.idFn(i+1))
		}

		return nil
	}
}

// Cycle returns a Constructor for the ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph[int], cfg config) error {
		if n < 3 {
			return tooFew("Cycle", n, 3)
		}
		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			g.AddEdge(cfg.idFn(i), cfg.idFn((i+1)%n))
		}

		return nil
	}
}

// Star returns a Constructor joining center 0 to leaves 1..n-1.
func Star(n int) Constructor {
	return func(g *core.Graph[int], cfg config) error {
		if n < 2 {
			return tooFew("Star", n, 2)
		}
		addVertices(g, cfg, n)
		for i := 1; i < n; i++ {
			g.AddEdge(cfg.idFn(0), cfg.idFn(i))
		}

		return nil
	}
}

// Complete returns a Constructor for K_n, pairs (i, j) with i < j in
// lexicographic order.
func Complete(n int) Constructor {
	return func(g *core.Graph[int], cfg config) error {
		if n < 1 {
			return tooFew("Complete", n, 1)
		}
		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				g.AddEdge(cfg.idFn(i), cfg.idFn(j))
			}
		}

		return nil
	}
}

// Grid returns a Constructor for a rows×cols 4-neighborhood lattice. Cell
// (r, c) has index r·cols+c; edges go right, then down.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[int], cfg config) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ 1): %w", rows, cols, ErrTooFewVertices)
		}
		addVertices(g, cfg, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := cfg.idFn(r*cols + c)
				if c+1 < cols {
					g.AddEdge(id, cfg.idFn(r*cols+c+1))
				}
				if r+1 < rows {
					g.AddEdge(id, cfg.idFn((r+1)*cols+c))
				}
			}
		}

		return nil
	}
}

// BinaryTree returns a Constructor for the complete binary tree with
// 2^depth − 1 vertices in heap layout.
func BinaryTree(depth int) Constructor {
	return func(g *core.Graph[int], cfg config) error {
		if depth < 1 {
			return tooFew("BinaryTree", depth, 1)
		}
		n := (1 << depth) - 1
		addVertices(g, cfg, n)
		for i := 0; 2*i+1 < n; i++ {
			g.AddEdge(cfg.idFn(i), cfg.idFn(2*i+1))
			g.AddEdge(cfg.idFn(i), cfg.idFn(2*i+2))
		}

		return nil
	}
}
