package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")
	// ErrInvalidCount indicates a negative edge count.
	ErrInvalidCount = errors.New("builder: count must be non-negative")
	// ErrNeedRandSource indicates a random constructor used without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")
	// ErrConstructFailed indicates a nil Constructor passed to Build.
	ErrConstructFailed = errors.New("builder: construction failed")
)
