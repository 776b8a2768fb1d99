// SPDX-License-Identifier: MIT
//
// File: impl_star.go
// Role: Star(n) constructor.
// Contract:
//   - n >= MinStarNodes, else ErrTooFewNodes.
//   - Junction idFn(0) is the hub; idFn(1..n-1) are the spoke ends.
//   - Spokes emitted in ascending leaf order.
// Determinism: stable IDs, stable emission order, weights fixed by seed.

package builder

import "github.com/UnstableBlob/ambulance-shortest-route/network"

// Star returns a Constructor that builds a hub with n-1 spokes.
// Complexity: O(n) junctions and O(n-1) roads.
func Star(n int) Constructor {
	return func(net *network.Network, cfg builderConfig) error {
		// 1) Validate parameter domain early.
		if err := validateMin(methodStar, n, MinStarNodes); err != nil {
			return err
		}

		// 2) Add junctions; index 0 is the hub.
		ids, err := addJunctions(net, n, cfg, methodStar)
		if err != nil {
			return err
		}

		// 3) Radiate spokes from the hub.
		var i int
		for i = 1; i < n; i++ {
			if err = addRoad(net, ids[0], ids[i], cfg, methodStar); err != nil {
				return err
			}
		}

		return nil
	}
}
