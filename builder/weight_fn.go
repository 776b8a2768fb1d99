// Package builder: road-weight distributions for the topology constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultRoadWeight is assigned to each road when no custom WeightFn is set.
const DefaultRoadWeight float64 = 1

// WeightFn produces a road weight given an optional *rand.Rand source. It
// must be deterministic for a given RNG state. Unlike distances, weights may
// be negative: the routing model reads negative values as tolls.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultRoadWeight.
// Complexity: O(1). Never panics.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultRoadWeight
}

// ConstantWeightFn returns a WeightFn that always yields value. Negative
// values are legal and model tolls.
// Complexity: O(1).
func ConstantWeightFn(value float64) WeightFn {
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly over [min, max).
// Panics if max < min. With a nil RNG it falls back to DefaultRoadWeight.
// Complexity: O(1).
func UniformWeightFn(min, max float64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min <= max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultRoadWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// NormalWeightFn returns a WeightFn sampling from N(mean, stddev). The left
// tail is not clipped; occasional negative draws read as tolls.
// Panics if stddev < 0. With a nil RNG it falls back to DefaultRoadWeight.
// Complexity: O(1).
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be >= 0, got %g", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultRoadWeight
		}

		return rng.NormFloat64()*stddev + mean
	}
}

// ExponentialWeightFn returns a WeightFn sampling from Exp(rate), a skewed
// positive distribution suiting road lengths.
// Panics if rate <= 0. With a nil RNG it falls back to DefaultRoadWeight.
// Complexity: O(1).
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %g", rate))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultRoadWeight
		}

		return rng.ExpFloat64() / rate
	}
}

// WithConstantWeight sets a fixed road weight via ConstantWeightFn.
// Complexity: O(1).
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights uniform over [min,max) via UniformWeightFn.
// Complexity: O(1).
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithNormalWeight sets Gaussian weights via NormalWeightFn.
// Complexity: O(1).
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}

// WithExponentialWeight sets exponential weights via ExponentialWeightFn.
// Complexity: O(1).
func WithExponentialWeight(rate float64) BuilderOption {
	return WithWeightFn(ExponentialWeightFn(rate))
}
