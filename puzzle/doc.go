// Package puzzle implements the swap puzzle: an m×n grid holding the tiles
// 1..m·n, where one move swaps two orthogonally adjacent cells. The goal is
// usually the sorted grid (1..n on the first row, and so on).
//
// What:
//
//   - Grid validates shape and permutation on construction and deep-copies input.
//   - Key is the canonical, comparable identity of a state; FromKey and
//     Factory rebuild a Grid from a Key, which is what astar needs to expand
//     neighbors.
//   - DistanceTo is the A* heuristic: half the total Manhattan displacement
//     of the tiles. One swap moves two tiles by one step each, so it never
//     overestimates and is consistent.
//   - StateGraph enumerates every permutation (m·n ≤ MaxCells);
//     ReachableGraph grows the graph outwards from a start state.
//   - Solve builds the state graph and runs A* or BFS, returning both the
//     state path and the swaps that realise it.
//   - ReadGrid parses the "m n" + m rows text format.
//
// Complexity:
//
//   - Neighbors / DistanceTo: O(m·n).
//   - StateGraph: O((m·n)! · m·n) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrNotPermutation: bad construction input.
//   - ErrDimensions: grids of different shapes.
//   - ErrIllegalSwap: swap of non-adjacent or out-of-range cells.
//   - ErrBadKey: Key that does not decode to the requested shape.
//   - ErrTooLarge: state space above the enumeration bound.
//   - ErrFormat: malformed grid text.
//   - ErrUnknownStrategy: unsupported strategy name.
package puzzle
