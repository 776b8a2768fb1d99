// Package builder provides functional-options-style constructors for common
// road-network topologies. It sits on top of the network package and exists
// to keep fixtures, examples and benchmarks DRY: the same few lines produce
// a chain of junctions, a ring road, a hub with spokes, a city grid or a
// seeded random network, deterministically.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the RNG, ID scheme and weight function.
//   - Junction ID schemes (IDFn implementations):
//     – DefaultIDFn:      decimal strings ("0","1",...).
//     – SymbolIDFn:       single letters ("A".."Z").
//     – ExcelColumnIDFn:  letter columns ("A","Z","AA",...).
//     – AlphanumericIDFn: base-36 strings.
//     – HexIDFn:          lowercase hexadecimal.
//     – SymbolNumberIDFn: prefix plus decimal ("J0","J1",...).
//   - Road-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:     constant DefaultRoadWeight.
//     – ConstantWeightFn:    fixed value, negative tolls included.
//     – UniformWeightFn:     uniform over [min,max).
//     – NormalWeightFn:      Gaussian around a mean length.
//     – ExponentialWeightFn: skewed positive lengths.
//   - Topology constructors:
//     – Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse.
//
// Guarantees:
//
//   - Determinism: the same options, seed and constructor order produce an
//     identical network, and therefore identical snapshots.
//   - Fast-fail on invalid option parameters via panics in the With*
//     constructors; topology constructors themselves only return errors.
//   - Sentinel errors (ErrTooFewNodes, ErrInvalidProbability, ...) wrapped
//     with method context, branchable via errors.Is.
//
// See also: network (the mutable model being built), core, route, structure.
package builder
