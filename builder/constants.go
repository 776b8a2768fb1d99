// SPDX-License-Identifier: MIT
//
// File: constants.go
// Role: Shared minima, bounds and method tags; no magic literals in impls.

package builder

// Parameter minima for the topology constructors.
const (
	// MinPathNodes is the smallest chain.
	MinPathNodes = 2

	// MinCycleNodes is the smallest ring road.
	MinCycleNodes = 3

	// MinStarNodes is the smallest star: a hub plus one spoke.
	MinStarNodes = 2

	// MinWheelNodes is the smallest wheel: a three-junction ring plus hub.
	MinWheelNodes = 4

	// MinCompleteNodes is the smallest complete network.
	MinCompleteNodes = 1

	// MinSparseNodes is the smallest random sparse network.
	MinSparseNodes = 1

	// MinGridDim is the smallest grid extent per axis.
	MinGridDim = 1
)

// Probability bounds for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// Method tags for deterministic error context.
const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodComplete = "Complete"
	methodGrid     = "Grid"
	methodSparse   = "RandomSparse"
)

// gridIDFmt composes the fixed "r,c" junction IDs used by Grid.
const gridIDFmt = "%d,%d"

// roadIDFmt composes road IDs from the two junction IDs.
const roadIDFmt = "%s-%s"
