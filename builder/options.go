// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// Option customizes a build. Option constructors panic on nil arguments.
type Option func(*config)

// config is passed by value to constructors.
type config struct {
	rng      *rand.Rand // nil: deterministic topologies only
	weightFn WeightFn
}

// WithSeed attaches a rand.Rand seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithWeightFn overrides the edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *config) { c.weightFn = fn }
}

// newConfig applies opts in order over the defaults (no RNG, unit weights).
func newConfig(opts ...Option) config {
	cfg := config{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
