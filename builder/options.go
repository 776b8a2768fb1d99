// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Functional options for the builder package.
// Policy:
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     topology constructors themselves never panic, only return errors.
//   - Determinism is explicit: seeding goes through WithSeed or WithRand.
//   - No hidden globals; everything flows through builderConfig.

package builder

import "math/rand"

// BuilderOption customizes construction by mutating a builderConfig before
// any constructor runs.
// Complexity: applying N options costs O(N).
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic junction ID generator: index -> ID.
// Panics on nil to surface programmer error early.
// Complexity: O(1).
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors and weight
// draws. Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1).
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a seeded RNG, locking stochastic outcomes for tests and
// examples.
// Complexity: O(1).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-road weight generator. The function must be
// pure with respect to the RNG state to preserve determinism. Panics on nil.
// Complexity: O(1).
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
