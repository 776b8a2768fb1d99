// SPDX-License-Identifier: MIT
//
// File: impl_cycle.go
// Role: Cycle(n) constructor.
// Contract:
//   - n >= MinCycleNodes, else ErrTooFewNodes.
//   - Junctions idFn(0..n-1); roads join consecutive indices, then the ring
//     closes with (n-1)-(0).
// Determinism: stable IDs, stable emission order, weights fixed by seed.

package builder

import "github.com/UnstableBlob/ambulance-shortest-route/network"

// Cycle returns a Constructor that builds the ring road C_n.
// Complexity: O(n) junctions and O(n) roads.
func Cycle(n int) Constructor {
	return func(net *network.Network, cfg builderConfig) error {
		// 1) Validate parameter domain early.
		if err := validateMin(methodCycle, n, MinCycleNodes); err != nil {
			return err
		}

		// 2) Add junctions with deterministic IDs.
		ids, err := addJunctions(net, n, cfg, methodCycle)
		if err != nil {
			return err
		}

		// 3) Join consecutive junctions, then close the ring.
		var i int
		for i = 1; i < n; i++ {
			if err = addRoad(net, ids[i-1], ids[i], cfg, methodCycle); err != nil {
				return err
			}
		}

		return addRoad(net, ids[n-1], ids[0], cfg, methodCycle)
	}
}
