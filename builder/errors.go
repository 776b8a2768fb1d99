// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors for the builder package.
// Policy:
//   - Only package-level sentinels; callers branch with errors.Is.
//   - Constructors attach method context via %w wrapping, never by
//     stringifying parameters into the sentinel itself.

package builder

import "errors"

// ErrTooFewNodes reports a size parameter below the constructor's minimum
// (n, rows, cols).
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability reports a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource reports a stochastic constructor invoked without an RNG;
// set one with WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed reports an unusable composition: a nil constructor or a
// nil target network.
var ErrConstructFailed = errors.New("builder: construction failed")
