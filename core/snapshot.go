// SPDX-License-Identifier: MIT
//
// File: snapshot.go
// Role: Read-only helpers and derived views over a Snapshot.
// Policy:
//   - No mutation: every method leaves the receiver untouched.
//   - Deterministic output: derived collections are sorted so that equal
//     snapshots always produce identical views.
//   - Dangling edge endpoints are skipped, never rejected.

package core

import "sort"

// NodeCount reports how many nodes the snapshot holds.
// Complexity: O(1)
func (s Snapshot) NodeCount() int { return len(s.Nodes) }

// EdgeCount reports how many segments the snapshot holds, blocked included.
// Complexity: O(1)
func (s Snapshot) EdgeCount() int { return len(s.Edges) }

// HasNode reports whether a node with the given ID exists in the snapshot.
// Complexity: O(V)
func (s Snapshot) HasNode(id string) bool {
	var n Node
	for _, n = range s.Nodes {
		if n.ID == id {
			return true
		}
	}

	return false
}

// NodeByID returns the node with the given ID and whether it was found.
// Complexity: O(V)
func (s Snapshot) NodeByID(id string) (Node, bool) {
	var n Node
	for _, n = range s.Nodes {
		if n.ID == id {
			return n, true
		}
	}

	return Node{}, false
}

// Origin returns the node marked RoleOrigin, if any. When an ill-formed
// snapshot carries several, the first in Nodes order wins.
// Complexity: O(V)
func (s Snapshot) Origin() (Node, bool) { return s.firstWithRole(RoleOrigin) }

// Destination returns the node marked RoleDestination, if any. When an
// ill-formed snapshot carries several, the first in Nodes order wins.
// Complexity: O(V)
func (s Snapshot) Destination() (Node, bool) { return s.firstWithRole(RoleDestination) }

func (s Snapshot) firstWithRole(role Role) (Node, bool) {
	var n Node
	for _, n = range s.Nodes {
		if n.Role == role {
			return n, true
		}
	}

	return Node{}, false
}

// UnblockedEdgeCount reports how many segments are open for traversal:
// not blocked and with both endpoints present in Nodes.
// Complexity: O(V + E)
func (s Snapshot) UnblockedEdgeCount() int {
	present := s.nodeSet()

	count := 0
	var e Edge
	for _, e = range s.Edges {
		if !e.usable(present) {
			continue
		}
		count++
	}

	return count
}

// Clone returns a deep copy of the snapshot. The copy shares nothing with the
// receiver, so later mutation of either side cannot leak into the other.
// Complexity: O(V + E)
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Nodes: make([]Node, len(s.Nodes)),
		Edges: make([]Edge, len(s.Edges)),
	}
	copy(out.Nodes, s.Nodes)
	copy(out.Edges, s.Edges)

	return out
}

// Adjacency builds the unblocked adjacency view used by every traversal in
// this module.
//
// Every node in Nodes gets an entry, isolated nodes included (nil slice).
// Each open segment contributes a Neighbor in both directions; a self-loop
// contributes exactly one entry on its node. Segments that are blocked or
// reference a missing endpoint are skipped. Neighbor lists are sorted by
// (To, EdgeID) so iteration order is deterministic.
//
// Complexity: O(V + E log E) time, O(V + E) space.
func (s Snapshot) Adjacency() map[string][]Neighbor {
	present := s.nodeSet()

	adj := make(map[string][]Neighbor, len(s.Nodes))
	var n Node
	for _, n = range s.Nodes {
		adj[n.ID] = nil
	}

	var e Edge
	for _, e = range s.Edges {
		if !e.usable(present) {
			continue
		}
		adj[e.A] = append(adj[e.A], Neighbor{To: e.B, Weight: e.Weight, EdgeID: e.ID})
		if e.A != e.B {
			adj[e.B] = append(adj[e.B], Neighbor{To: e.A, Weight: e.Weight, EdgeID: e.ID})
		}
	}

	var list []Neighbor
	for id := range adj {
		list = adj[id]
		sort.Slice(list, func(i, j int) bool {
			if list[i].To != list[j].To {
				return list[i].To < list[j].To
			}

			return list[i].EdgeID < list[j].EdgeID
		})
	}

	return adj
}

// Degrees returns each node's open degree: +1 for every endpoint of an open
// incident segment, so a self-loop adds 2. Every node in Nodes gets an entry,
// isolated nodes at 0. Blocked and dangling segments contribute nothing.
// Complexity: O(V + E)
func (s Snapshot) Degrees() map[string]int {
	present := s.nodeSet()

	deg := make(map[string]int, len(s.Nodes))
	var n Node
	for _, n = range s.Nodes {
		deg[n.ID] = 0
	}

	var e Edge
	for _, e = range s.Edges {
		if !e.usable(present) {
			continue
		}
		deg[e.A]++
		deg[e.B]++
	}

	return deg
}

// MinEdgeWeights returns, per ordered node pair (u, v), the weight of the
// cheapest open segment joining them. Parallel segments collapse to their
// minimum, which is the only weight a shortest-path relaxation can settle on,
// so route reconstruction reads step costs from this view.
//
// Complexity: O(V + E) time, O(V + E) space.
func (s Snapshot) MinEdgeWeights() map[string]map[string]float64 {
	present := s.nodeSet()

	min := make(map[string]map[string]float64, len(s.Nodes))
	record := func(u, v string, w float64) {
		row, ok := min[u]
		if !ok {
			row = make(map[string]float64)
			min[u] = row
		}
		if cur, seen := row[v]; !seen || w < cur {
			row[v] = w
		}
	}

	var e Edge
	for _, e = range s.Edges {
		if !e.usable(present) {
			continue
		}
		record(e.A, e.B, e.Weight)
		if e.A != e.B {
			record(e.B, e.A, e.Weight)
		}
	}

	return min
}

// nodeSet collects the IDs present in Nodes for O(1) endpoint checks.
func (s Snapshot) nodeSet() map[string]struct{} {
	present := make(map[string]struct{}, len(s.Nodes))
	var n Node
	for _, n = range s.Nodes {
		present[n.ID] = struct{}{}
	}

	return present
}

// usable reports whether the segment participates in analysis: open, with
// both endpoints present in the snapshot.
func (e Edge) usable(present map[string]struct{}) bool {
	if e.Blocked {
		return false
	}
	if _, ok := present[e.A]; !ok {
		return false
	}
	if _, ok := present[e.B]; !ok {
		return false
	}

	return true
}
