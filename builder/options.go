package builder

import "math/rand"

// Option customizes the builder configuration.
type Option func(*config)

// config is resolved once per Build and passed by value to constructors.
type config struct {
	idFn func(int) int
	rng  *rand.Rand
}

func newConfig(opts ...Option) config {
	cfg := config{idFn: func(i int) int { return i }}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDOffset shifts every vertex ID by off.
func WithIDOffset(off int) Option {
	return func(c *config) {
		c.idFn = func(i int) int { return i + off }
	}
}

// WithIDScheme sets the index → ID mapping. Panics on nil.
func WithIDScheme(fn func(int) int) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) { c.idFn = fn }
}

// WithRand provides the RNG for random constructors. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed seeds a fresh RNG for random constructors.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}
