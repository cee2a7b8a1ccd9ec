// Package puzzle defines the swap-puzzle grid, its canonical keys and the
// search strategies used to solve it.
package puzzle

import (
	"fmt"
	"strings"
)

// MaxCells bounds StateGraph: (m·n)! states must stay enumerable.
const MaxCells = 9

// Key is the canonical identity of a grid state: the cells in row-major
// order, comma separated ("2,1,3,4"). Equal grids have equal keys.
type Key string

// Cell addresses one grid cell.
type Cell struct {
	Row, Col int
}

// Swap exchanges the contents of two orthogonally adjacent cells.
type Swap struct {
	A, B Cell
}

// String renders a swap as "(r1,c1)<->(r2,c2)".
func (s Swap) String() string {
	return fmt.Sprintf("(%d,%d)<->(%d,%d)", s.A.Row, s.A.Col, s.B.Row, s.B.Col)
}

// Strategy selects the search used by Solve.
type Strategy int

const (
	// AStar runs astar.Search with the half-Manhattan heuristic.
	AStar Strategy = iota
	// BFS runs bfs.ShortestPath on the state graph.
	BFS
)

// String returns the configuration name of s.
func (s Strategy) String() string {
	switch s {
	case AStar:
		return "astar"
	case BFS:
		return "bfs"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "astar" / "bfs" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "astar", "a*", "":
		return AStar, nil
	case "bfs":
		return BFS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Grid is an m×n swap puzzle: every cell holds a distinct tile 1..m·n.
// It is immutable through its public API except for Swap and SwapSeq.
type Grid struct {
	M, N  int
	cells [][]int
}

// neighborOffsets lists the two forward moves (right, down); together they
// cover every unordered pair of adjacent cells exactly once.
var neighborOffsets = [2][2]int{{0, 1}, {1, 0}}
