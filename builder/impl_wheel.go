// SPDX-License-Identifier: MIT
//
// File: impl_wheel.go
// Role: Wheel(n) constructor.
// Contract:
//   - n >= MinWheelNodes, else ErrTooFewNodes.
//   - Junction idFn(0) is the hub; idFn(1..n-1) form the beltway ring.
//   - Emission order: ring roads first (consecutive, then closing), then
//     radial spokes hub-(i) in ascending order.
// Determinism: stable IDs, stable emission order, weights fixed by seed.

package builder

import "github.com/UnstableBlob/ambulance-shortest-route/network"

// Wheel returns a Constructor that builds a beltway around a hub: the ring
// C_{n-1} plus a spoke from the hub to every ring junction.
// Complexity: O(n) junctions and O(2n-2) roads.
func Wheel(n int) Constructor {
	return func(net *network.Network, cfg builderConfig) error {
		// 1) Validate parameter domain early.
		if err := validateMin(methodWheel, n, MinWheelNodes); err != nil {
			return err
		}

		// 2) Add junctions; index 0 is the hub, the rest the ring.
		ids, err := addJunctions(net, n, cfg, methodWheel)
		if err != nil {
			return err
		}

		// 3) Beltway over ids[1..n-1].
		var i int
		for i = 2; i < n; i++ {
			if err = addRoad(net, ids[i-1], ids[i], cfg, methodWheel); err != nil {
				return err
			}
		}
		if err = addRoad(net, ids[n-1], ids[1], cfg, methodWheel); err != nil {
			return err
		}

		// 4) Radial spokes from the hub.
		for i = 1; i < n; i++ {
			if err = addRoad(net, ids[0], ids[i], cfg, methodWheel); err != nil {
				return err
			}
		}

		return nil
	}
}
