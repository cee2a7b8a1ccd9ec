package puzzle

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/swapgraph/astar"
	"github.com/katalvlaran/swapgraph/core"
)

// New constructs an m×n Grid from cells, which must be a rectangular m×n
// permutation of 1..m·n. The input is deep-copied.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrNotPermutation.
// Complexity: O(m·n).
func New(m, n int, cells [][]int) (*Grid, error) {
	if m <= 0 || n <= 0 || len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if len(cells) != m {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrNonRectangular, len(cells), m)
	}
	for i, row := range cells {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, len(row), n)
		}
	}

	// shape matches the input, so m·n is the real cell count
	cp := make([][]int, m)
	seen := make([]bool, m*n+1)
	for i, row := range cells {
		cp[i] = make([]int, n)
		for j, v := range row {
			if v < 1 || v > m*n || seen[v] {
				return nil, fmt.Errorf("%w: value %d at (%d,%d)", ErrNotPermutation, v, i, j)
			}
			seen[v] = true
			cp[i][j] = v
		}
	}

	return &Grid{M: m, N: n, cells: cp}, nil
}

// Sorted returns the goal grid: row i holds i·n+1 … (i+1)·n.
// Returns ErrEmptyGrid, or ErrTooLarge when m·n overflows an int.
func Sorted(m, n int) (*Grid, error) {
	if m <= 0 || n <= 0 {
		return nil, ErrEmptyGrid
	}
	if n > math.MaxInt/m {
		return nil, fmt.Errorf("%w: %dx%d cells overflow", ErrTooLarge, m, n)
	}
	cells := make([][]int, m)
	for i := range cells {
		cells[i] = make([]int, n)
		for j := range cells[i] {
			cells[i][j] = i*n + j + 1
		}
	}

	return &Grid{M: m, N: n, cells: cells}, nil
}

// FromKey decodes an m×n grid from its Key.
// Returns ErrBadKey (wrapping the decode failure) for malformed keys.
func FromKey(m, n int, key Key) (*Grid, error) {
	if m <= 0 || n <= 0 {
		return nil, ErrEmptyGrid
	}
	parts := strings.Split(string(key), ",")
	if n > math.MaxInt/m || len(parts) != m*n {
		return nil, fmt.Errorf("%w: %q has %d cells, want %d", ErrBadKey, key, len(parts), m*n)
	}
	cells := make([][]int, m)
	for i := range cells {
		cells[i] = make([]int, n)
		for j := range cells[i] {
			v, err := strconv.Atoi(parts[i*n+j])
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrBadKey, key, err)
			}
			cells[i][j] = v
		}
	}
	g, err := New(m, n, cells)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadKey, err)
	}

	return g, nil
}

// Factory returns the function that rebuilds m×n grids from keys, in the
// shape astar.Search expects.
func Factory(m, n int) astar.Factory[Key, *Grid] {
	return func(k Key) (*Grid, error) { return FromKey(m, n, k) }
}

// Identity returns the canonical Key of the grid.
// Complexity: O(m·n).
func (g *Grid) Identity() Key {
	var sb strings.Builder
	for i, row := range g.cells {
		for j, v := range row {
			if i > 0 || j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(v))
		}
	}

	return Key(sb.String())
}

// At returns the tile in cell (r, c). It panics when out of range, like
// slice indexing.
func (g *Grid) At(r, c int) int {
	return g.cells[r][c]
}

// Cells returns a deep copy of the tiles.
func (g *Grid) Cells() [][]int {
	out := make([][]int, g.M)
	for i := range g.cells {
		out[i] = make([]int, g.N)
		copy(out[i], g.cells[i])
	}

	return out
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{M: g.M, N: g.N, cells: g.Cells()}
}

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.M && c.Col >= 0 && c.Col < g.N
}

// IsSorted reports whether g equals Sorted(g.M, g.N).
func (g *Grid) IsSorted() bool {
	for i, row := range g.cells {
		for j, v := range row {
			if v != i*g.N+j+1 {
				return false
			}
		}
	}

	return true
}

// Swap exchanges cells a and b in place.
// Returns ErrIllegalSwap unless both are in range and orthogonally adjacent.
func (g *Grid) Swap(a, b Cell) error {
	if !g.InBounds(a) || !g.InBounds(b) || abs(a.Row-b.Row)+abs(a.Col-b.Col) != 1 {
		return fmt.Errorf("%w: %v", ErrIllegalSwap, Swap{A: a, B: b})
	}
	g.cells[a.Row][a.Col], g.cells[b.Row][b.Col] = g.cells[b.Row][b.Col], g.cells[a.Row][a.Col]

	return nil
}

// SwapSeq applies swaps in order, stopping at the first illegal one.
// Swaps applied before the failure are kept.
func (g *Grid) SwapSeq(swaps []Swap) error {
	for i, s := range swaps {
		if err := g.Swap(s.A, s.B); err != nil {
			return fmt.Errorf("swap %d: %w", i, err)
		}
	}

	return nil
}

// Neighbors returns every grid one swap away, in row-major order of the
// first cell, right swap before down swap.
// Complexity: O((m·n)²).
func (g *Grid) Neighbors() []*Grid {
	out := make([]*Grid, 0, 2*g.M*g.N)
	for r := 0; r < g.M; r++ {
		for c := 0; c < g.N; c++ {
			for _, d := range neighborOffsets {
				b := Cell{Row: r + d[0], Col: c + d[1]}
				if !g.InBounds(b) {
					continue
				}
				next := g.Clone()
				next.cells[r][c], next.cells[b.Row][b.Col] = next.cells[b.Row][b.Col], next.cells[r][c]
				out = append(out, next)
			}
		}
	}

	return out
}

// DistanceTo estimates the number of swaps separating g from goal: half the
// sum over tiles of the Manhattan distance between their cells in g and in
// goal. The graph argument is unused; it is part of the state contract.
// Grids of different shapes are incomparable and yield +Inf.
// Complexity: O(m·n).
func (g *Grid) DistanceTo(goal *Grid, _ *core.Graph[Key]) float64 {
	if goal == nil || goal.M != g.M || goal.N != g.N {
		return math.Inf(1)
	}
	pos := make([]Cell, g.M*g.N+1)
	for i, row := range goal.cells {
		for j, v := range row {
			pos[v] = Cell{Row: i, Col: j}
		}
	}
	total := 0
	for i, row := range g.cells {
		for j, v := range row {
			p := pos[v]
			total += abs(p.Row-i) + abs(p.Col-j)
		}
	}

	return float64(total) / 2
}

// String prints one bracketed row per line:
//
//	[1 2 3]
//	[4 5 6]
func (g *Grid) String() string {
	var sb strings.Builder
	for i, row := range g.cells {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprint(&sb, row)
	}

	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
