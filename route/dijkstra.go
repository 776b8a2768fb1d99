// Package route: Dijkstra relaxation over the unblocked adjacency view.
//
// The loop processes nodes in order of increasing tentative distance using a
// binary min-heap with the lazy decrease-key pattern: improvements push a
// fresh heap entry and stale entries are discarded on pop via the visited
// set. The search stops the moment the destination is settled, since its
// label can only grow afterwards.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is settled at most once: V pops that do work.
//   - Each relaxation may push one entry: up to E pushes.
//   - Every heap operation costs O(log N), N ≤ V + E.
//   - Space: O(V + E) for labels, predecessors, and the heap.
package route

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/UnstableBlob/ambulance-shortest-route/core"
)

// runDijkstra computes tentative distances from origin until destination is
// settled (or the open component of origin is exhausted).
//
// Returns:
//
//   - dist: node ID to best-known distance, +Inf where unreached.
//   - prev: node ID to predecessor on the cheapest route, "" where none.
//   - err:  only when a negative weight slips past the caller's pre-scan.
func runDijkstra(adj map[string][]core.Neighbor, originID, destinationID string) (map[string]float64, map[string]string, error) {
	r := &dijkstraRunner{
		adj:     adj,
		dist:    make(map[string]float64, len(adj)),
		prev:    make(map[string]string, len(adj)),
		visited: make(map[string]bool, len(adj)),
		pq:      make(nodePQ, 0, len(adj)),
	}

	r.init(originID)
	if err := r.process(destinationID); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// dijkstraRunner holds the mutable state of one search.
type dijkstraRunner struct {
	adj     map[string][]core.Neighbor // read-only traversal view
	dist    map[string]float64         // node ID -> best-known distance
	prev    map[string]string          // node ID -> predecessor on that route
	visited map[string]bool            // node ID -> label finalized
	pq      nodePQ                     // min-heap with lazy decrease-key
}

// init seeds every label at +Inf, the origin at 0, and pushes the origin.
func (r *dijkstraRunner) init(originID string) {
	// 1) All nodes start unreached and unvisited.
	for id := range r.adj {
		r.dist[id] = math.Inf(1)
		r.prev[id] = ""
		r.visited[id] = false
	}

	// 2) The origin is its own zero-cost route.
	r.dist[originID] = 0

	// 3) Establish heap invariants, then push the origin at distance 0.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: originID, dist: 0})
}

// process pops the closest unsettled node, stops on the destination, and
// relaxes outgoing segments otherwise.
func (r *dijkstraRunner) process(destinationID string) error {
	var (
		item *nodeItem
		u    string
	)
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance entry.
		item = heap.Pop(&r.pq).(*nodeItem)
		u = item.id

		// 2) Stale entry for an already-settled node: discard.
		if r.visited[u] {
			continue
		}

		// 3) Settle u; its label is final.
		r.visited[u] = true

		// 4) The destination just settled; nothing beyond it can matter.
		if u == destinationID {
			break
		}

		// 5) Try to improve every neighbor through u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve each neighbor of u via u's open segments.
// Assumes dist[u] is final.
func (r *dijkstraRunner) relax(u string) error {
	var (
		nb      core.Neighbor
		newDist float64
	)
	for _, nb = range r.adj[u] {
		// The entry path pre-scans for negative weights; this guard only
		// fires if a caller bypassed FindPath.
		if nb.Weight < 0 {
			return fmt.Errorf("%w: segment %s (%s-%s) weight=%g",
				ErrNegativeWeight, nb.EdgeID, u, nb.To, nb.Weight)
		}

		newDist = r.dist[u] + nb.Weight

		// Strict improvement only; equal-cost duplicates stay out of the heap.
		if newDist >= r.dist[nb.To] {
			continue
		}

		r.dist[nb.To] = newDist
		r.prev[nb.To] = u
		heap.Push(&r.pq, &nodeItem{id: nb.To, dist: newDist})
	}

	return nil
}

// nodeItem pairs a node with its tentative distance for heap ordering.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending. Improvements
// push duplicates; pop-side filtering against visited discards the stale ones.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less ranks smaller distances first.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two heap slots.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push with a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last slot; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
