// SPDX-License-Identifier: MIT
//
// File: impl_path.go
// Role: Path(n) constructor.
// Contract:
//   - n >= MinPathNodes, else ErrTooFewNodes.
//   - Junctions idFn(0..n-1) in ascending index order.
//   - Roads (i-1)-(i) for i=1..n-1 in stable increasing order.
// Determinism: stable IDs via cfg.idFn, stable emission order, weights fixed
// by cfg.rng seed.

package builder

import "github.com/UnstableBlob/ambulance-shortest-route/network"

// Path returns a Constructor that builds the chain P_n.
// Complexity: O(n) junctions and O(n-1) roads.
func Path(n int) Constructor {
	return func(net *network.Network, cfg builderConfig) error {
		// 1) Validate parameter domain early.
		if err := validateMin(methodPath, n, MinPathNodes); err != nil {
			return err
		}

		// 2) Add junctions with deterministic IDs.
		ids, err := addJunctions(net, n, cfg, methodPath)
		if err != nil {
			return err
		}

		// 3) Join consecutive junctions.
		var i int
		for i = 1; i < n; i++ {
			if err = addRoad(net, ids[i-1], ids[i], cfg, methodPath); err != nil {
				return err
			}
		}

		return nil
	}
}
