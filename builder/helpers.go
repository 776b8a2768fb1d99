// SPDX-License-Identifier: MIT
//
// File: helpers.go
// Role: Shared validation and emission helpers for the impl_*.go files.

package builder

import (
	"fmt"

	"github.com/UnstableBlob/ambulance-shortest-route/network"
)

// validateMin checks an integer size parameter against its minimum.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewNodes)
	}

	return nil
}

// validateProbability checks p against the closed interval [0,1].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%g outside [%g,%g]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// addJunctions inserts count junctions with IDs cfg.idFn(0..count-1), labels
// matching IDs, and returns the IDs in index order.
func addJunctions(net *network.Network, count int, cfg builderConfig, method string) ([]string, error) {
	ids := make([]string, count)
	var i int
	for i = 0; i < count; i++ {
		ids[i] = cfg.idFn(i)
		if _, err := net.AddNode(ids[i], ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addRoad draws one weighted segment under the composed "u-v" ID.
func addRoad(net *network.Network, u, v string, cfg builderConfig, method string) error {
	id := fmt.Sprintf(roadIDFmt, u, v)
	w := cfg.weightFn(cfg.rng)
	if _, err := net.AddRoad(id, u, v, w); err != nil {
		return fmt.Errorf("%s: AddRoad(%s, w=%g): %w", method, id, w, err)
	}

	return nil
}
