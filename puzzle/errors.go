package puzzle

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("puzzle: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths, or rows that do
	// not match the declared dimensions.
	ErrNonRectangular = errors.New("puzzle: all rows must have the declared length")
	// ErrNotPermutation indicates cells that are not exactly 1..m·n.
	ErrNotPermutation = errors.New("puzzle: cells must be a permutation of 1..m*n")
	// ErrDimensions indicates two grids of different shapes.
	ErrDimensions = errors.New("puzzle: grid dimensions differ")
	// ErrIllegalSwap indicates a swap of cells that are not orthogonal neighbors.
	ErrIllegalSwap = errors.New("puzzle: cells are not adjacent")
	// ErrBadKey indicates a Key that does not decode to a grid of the given shape.
	ErrBadKey = errors.New("puzzle: malformed state key")
	// ErrTooLarge indicates a state space above the enumeration bound.
	ErrTooLarge = errors.New("puzzle: state space too large")
	// ErrFormat indicates a malformed grid text file.
	ErrFormat = errors.New("puzzle: malformed grid text")
	// ErrUnknownStrategy indicates a strategy name other than "astar" or "bfs".
	ErrUnknownStrategy = errors.New("puzzle: unknown strategy")
)
