// SPDX-License-Identifier: MIT
//
// File: impl_complete.go
// Role: Complete(n) constructor.
// Contract:
//   - n >= MinCompleteNodes, else ErrTooFewNodes.
//   - Junctions idFn(0..n-1); one road per unordered pair i<j, emitted in
//     lexicographic (i asc, then j asc) order.
// Determinism: stable IDs, stable emission order, weights fixed by seed.

package builder

import "github.com/UnstableBlob/ambulance-shortest-route/network"

// Complete returns a Constructor that builds the complete network K_n.
// Complexity: O(n) junctions and O(n^2) roads.
func Complete(n int) Constructor {
	return func(net *network.Network, cfg builderConfig) error {
		// 1) Validate parameter domain early.
		if err := validateMin(methodComplete, n, MinCompleteNodes); err != nil {
			return err
		}

		// 2) Add junctions with deterministic IDs.
		ids, err := addJunctions(net, n, cfg, methodComplete)
		if err != nil {
			return err
		}

		// 3) Join every unordered pair once.
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err = addRoad(net, ids[i], ids[j], cfg, methodComplete); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
