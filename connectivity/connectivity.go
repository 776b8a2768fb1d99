// Package connectivity implements the degree and connected-component sweep
// over a snapshot's unblocked adjacency.
//
// The sweep is an iterative depth-first traversal with an explicit stack:
// recursion depth would otherwise track component diameter, and editor
// networks can be long chains.
package connectivity

import (
	"sort"

	"github.com/UnstableBlob/ambulance-shortest-route/core"
)

// Analyze computes open degrees and connected components for the snapshot.
// It cannot fail; every snapshot yields a well-formed Info.
//
// Complexity: O(V + E log E) time, O(V + E) space.
func Analyze(s core.Snapshot) Info {
	// 1) Build the derived views once; both honor the blocked/dangling rules.
	adj := s.Adjacency()
	deg := s.Degrees()

	// 2) Sweep nodes in sorted ID order so component discovery order is
	//    deterministic and components come out ordered by smallest member.
	ids := make([]string, 0, len(adj))
	for id := range adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	seen := make(map[string]bool, len(ids))
	components := make([][]string, 0)

	var (
		stack   []string
		members []string
		start   string
		u       string
		nb      core.Neighbor
	)
	for _, start = range ids {
		if seen[start] {
			continue
		}

		// 3) Flood one component depth-first from its smallest member.
		members = nil
		stack = append(stack[:0], start)
		seen[start] = true
		for len(stack) > 0 {
			u = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			members = append(members, u)

			for _, nb = range adj[u] {
				if !seen[nb.To] {
					seen[nb.To] = true
					stack = append(stack, nb.To)
				}
			}
		}

		// 4) Sorted membership keeps the report stable across runs.
		sort.Strings(members)
		components = append(components, members)
	}

	return Info{
		Degrees:        deg,
		Connected:      len(components) <= 1,
		ComponentCount: len(components),
		Components:     components,
	}
}
