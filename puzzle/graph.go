package puzzle

import (
	"fmt"

	"github.com/katalvlaran/swapgraph/core"
)

// StateGraph returns the graph of every m×n state, with one edge per legal
// swap. Adjacent swaps generate every permutation, so this is the graph
// reachable from the sorted grid.
// Returns ErrEmptyGrid for empty shapes and ErrTooLarge when m·n > MaxCells.
// Complexity: O((m·n)! · m·n) time and memory.
func StateGraph(m, n int) (*core.Graph[Key], error) {
	if m <= 0 || n <= 0 {
		return nil, ErrEmptyGrid
	}
	if n > MaxCells/m {
		return nil, fmt.Errorf("%w: %d cells, at most %d", ErrTooLarge, m*n, MaxCells)
	}
	sorted, err := Sorted(m, n)
	if err != nil {
		return nil, err
	}

	return ReachableGraph(sorted, 0)
}

// ReachableGraph explores outwards from start, adding one edge per legal
// swap between discovered states. Nodes appear in discovery order.
//
// limit > 0 caps the number of states (ErrTooLarge beyond it); limit <= 0
// means no cap, which is only accepted for grids of at most MaxCells cells.
func ReachableGraph(start *Grid, limit int) (*core.Graph[Key], error) {
	if start == nil {
		return nil, ErrEmptyGrid
	}
	if limit <= 0 && start.M*start.N > MaxCells {
		return nil, fmt.Errorf("%w: %d cells without a limit, at most %d", ErrTooLarge, start.M*start.N, MaxCells)
	}

	startKey := start.Identity()
	g := core.NewGraph(startKey)
	seen := map[Key]bool{startKey: true}
	done := make(map[Key]bool)
	queue := []*Grid{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		uk := u.Identity()
		for _, v := range u.Neighbors() {
			vk := v.Identity()
			if done[vk] {
				continue
			}
			g.AddEdge(uk, vk)
			if seen[vk] {
				continue
			}
			seen[vk] = true
			if limit > 0 && len(seen) > limit {
				return nil, fmt.Errorf("%w: more than %d states", ErrTooLarge, limit)
			}
			queue = append(queue, v)
		}
		done[uk] = true
	}

	return g, nil
}

// SwapsAlong converts a path of m×n states into the swaps between
// consecutive states. Returns ErrBadKey for undecodable keys and
// ErrIllegalSwap when two consecutive states are not one swap apart.
func SwapsAlong(m, n int, path []Key) ([]Swap, error) {
	if len(path) < 2 {
		return []Swap{}, nil
	}
	prev, err := FromKey(m, n, path[0])
	if err != nil {
		return nil, err
	}
	swaps := make([]Swap, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		next, err := FromKey(m, n, path[i])
		if err != nil {
			return nil, err
		}
		s, err := diff(prev, next)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		swaps = append(swaps, s)
		prev = next
	}

	return swaps, nil
}

// diff finds the single swap turning a into b.
func diff(a, b *Grid) (Swap, error) {
	var changed []Cell
	for r := 0; r < a.M; r++ {
		for c := 0; c < a.N; c++ {
			if a.cells[r][c] != b.cells[r][c] {
				changed = append(changed, Cell{Row: r, Col: c})
			}
		}
	}
	if len(changed) != 2 {
		return Swap{}, fmt.Errorf("%w: %d cells differ", ErrIllegalSwap, len(changed))
	}
	s := Swap{A: changed[0], B: changed[1]}
	if abs(s.A.Row-s.B.Row)+abs(s.A.Col-s.B.Col) != 1 {
		return Swap{}, fmt.Errorf("%w: %v", ErrIllegalSwap, s)
	}

	return s, nil
}
