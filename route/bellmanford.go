// Package route: Bellman-Ford relaxation with negative-cycle taint analysis.
//
// Undirected segments are relaxed as two opposing arcs, which makes a single
// negative segment a negative cycle in its own right (out and back along the
// same segment). After at most |V|-1 full passes the labels are either final
// or witnesses to a negative cycle; one more pass finds the still-relaxable
// arc heads, and a worklist flood marks everything reachable from them as
// tainted.
//
// Complexity:
//
//   - Time:  O(V * E) for the passes, O(V + E) for detection and flood.
//   - Space: O(V + E) for labels, predecessors, the arc list, and the queue.
package route

import (
	"math"
	"sort"

	"github.com/UnstableBlob/ambulance-shortest-route/core"
)

// bfArc is one direction of an open segment, flattened for pass iteration.
type bfArc struct {
	from, to string
	weight   float64
}

// runBellmanFord relaxes all open segments from origin and reports which
// labels a negative cycle makes unreliable.
//
// Returns:
//
//   - dist:    node ID to best-known distance, +Inf where unreached.
//   - prev:    node ID to predecessor on that route, "" where none.
//   - tainted: node IDs whose label is undefined because a negative cycle
//     reaches them; empty when the snapshot is cycle-clean.
func runBellmanFord(adj map[string][]core.Neighbor, originID string) (map[string]float64, map[string]string, map[string]bool) {
	// 1) Flatten the adjacency into a deterministic arc list: node IDs in
	//    sorted order, each node's (already sorted) neighbors in turn. The
	//    pass outcome is order-independent at the fixpoint, but deterministic
	//    iteration keeps intermediate predecessors reproducible.
	ids := make([]string, 0, len(adj))
	for id := range adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	arcs := make([]bfArc, 0, 2*len(adj))
	var (
		id string
		nb core.Neighbor
	)
	for _, id = range ids {
		for _, nb = range adj[id] {
			arcs = append(arcs, bfArc{from: id, to: nb.To, weight: nb.Weight})
		}
	}

	// 2) Initialize labels: origin at 0, everything else unreached.
	dist := make(map[string]float64, len(ids))
	prev := make(map[string]string, len(ids))
	for _, id = range ids {
		dist[id] = math.Inf(1)
		prev[id] = ""
	}
	dist[originID] = 0

	// 3) Up to |V|-1 relaxation passes with early exit: a pass that improves
	//    nothing means the fixpoint is reached.
	var (
		a       bfArc
		newDist float64
		changed bool
	)
	for pass := 1; pass < len(ids); pass++ {
		changed = false
		for _, a = range arcs {
			if math.IsInf(dist[a.from], 1) {
				continue
			}
			newDist = dist[a.from] + a.weight
			if newDist < dist[a.to] {
				dist[a.to] = newDist
				prev[a.to] = a.from
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	// 4) Detection pass: an arc that still relaxes has its head on or behind
	//    a negative cycle. Seed the worklist with every such head.
	tainted := make(map[string]bool)
	queue := make([]string, 0)
	for _, a = range arcs {
		if math.IsInf(dist[a.from], 1) {
			continue
		}
		if dist[a.from]+a.weight < dist[a.to] && !tainted[a.to] {
			tainted[a.to] = true
			queue = append(queue, a.to)
		}
	}

	// 5) Worklist flood: any node reachable from a tainted node inherits the
	//    taint, since a walk may detour through the cycle first.
	var u string
	for len(queue) > 0 {
		u = queue[0]
		queue = queue[1:]
		for _, nb = range adj[u] {
			if !tainted[nb.To] {
				tainted[nb.To] = true
				queue = append(queue, nb.To)
			}
		}
	}

	return dist, prev, tainted
}
