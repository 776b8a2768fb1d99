// SPDX-License-Identifier: MIT
//
// File: impl_random_sparse.go
// Role: RandomSparse(n, p) constructor.
// Contract:
//   - n >= MinSparseNodes, else ErrTooFewNodes.
//   - p in [0,1], else ErrInvalidProbability.
//   - Requires cfg.rng (WithSeed/WithRand), else ErrNeedRandSource.
//   - Junctions idFn(0..n-1); each unordered pair i<j drawn independently
//     with probability p, scanned in lexicographic order.
// Determinism: identical networks for a fixed seed, options and n, p.

package builder

import (
	"fmt"

	"github.com/UnstableBlob/ambulance-shortest-route/network"
)

// RandomSparse returns a Constructor that wires each junction pair with
// probability p, yielding an Erdos-Renyi style road network.
// Complexity: O(n^2) pair draws.
func RandomSparse(n int, p float64) Constructor {
	return func(net *network.Network, cfg builderConfig) error {
		// 1) Validate parameter domain early: size, probability, RNG.
		if err := validateMin(methodSparse, n, MinSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(methodSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodSparse, ErrNeedRandSource)
		}

		// 2) Add junctions with deterministic IDs.
		ids, err := addJunctions(net, n, cfg, methodSparse)
		if err != nil {
			return err
		}

		// 3) Draw each unordered pair once, in stable scan order.
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					if err = addRoad(net, ids[i], ids[j], cfg, methodSparse); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
