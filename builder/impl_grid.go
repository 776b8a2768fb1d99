// SPDX-License-Identifier: MIT
//
// File: impl_grid.go
// Role: Grid(rows, cols) constructor.
// Contract:
//   - rows >= MinGridDim and cols >= MinGridDim, else ErrTooFewNodes.
//   - Junction IDs use the fixed scheme "r,c" in row-major order. This is a
//     deliberate exception to cfg.idFn: city-block coordinates stay legible.
//   - For each cell, roads to the right (r,c+1) and bottom (r+1,c) neighbors
//     where they exist, right before bottom.
// Determinism: stable row-major order, weights fixed by seed.

package builder

import (
	"fmt"

	"github.com/UnstableBlob/ambulance-shortest-route/network"
)

// Grid returns a Constructor that builds a rows x cols block of city
// streets with a 4-neighborhood.
// Complexity: O(rows*cols) junctions and roads.
func Grid(rows, cols int) Constructor {
	return func(net *network.Network, cfg builderConfig) error {
		// 1) Validate parameter domain early.
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
				methodGrid, rows, cols, MinGridDim, ErrTooFewNodes)
		}

		// 2) Add junctions in row-major order with coordinate IDs.
		var (
			r, c int
			id   string
		)
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				id = fmt.Sprintf(gridIDFmt, r, c)
				if _, err := net.AddNode(id, id); err != nil {
					return fmt.Errorf("%s: AddNode(%s): %w", methodGrid, id, err)
				}
			}
		}

		// 3) Join each cell to its right and bottom neighbors.
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				id = fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					if err := addRoad(net, id, fmt.Sprintf(gridIDFmt, r, c+1), cfg, methodGrid); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addRoad(net, id, fmt.Sprintf(gridIDFmt, r+1, c), cfg, methodGrid); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
