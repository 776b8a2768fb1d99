// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: Internal configuration and deterministic defaults.
// Policy:
//   - builderConfig is the single source of truth for all builder knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuilderConfig applies options in order, later overrides earlier.

package builder

import "math/rand"

// builderConfig aggregates the knobs used by constructors. It is passed by
// value, so one constructor cannot leak changes into the next.
type builderConfig struct {
	// idFn maps a junction index to its ID, deterministically.
	idFn IDFn

	// rng drives stochastic choices; nil means no randomness.
	rng *rand.Rand

	// weightFn prices each road as it is drawn.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults (decimal
// junction IDs, no RNG, constant unit weights) and applies all options in
// order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
