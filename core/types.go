// Package core: value types for one immutable road-network snapshot.
//
// This file declares Role, Node, Edge, Snapshot, and Neighbor. Derived read
// views (adjacency, cheapest-edge lookup) live in snapshot.go.
package core

// Role marks a node's routing function inside a snapshot.
//
// A well-formed snapshot carries at most one RoleOrigin and at most one
// RoleDestination; enforcing that is the job of the editor producing the
// snapshot (see the network package). Core reads roles, it never assigns them.
type Role uint8

const (
	// RoleNormal is an ordinary intersection with no routing function.
	RoleNormal Role = iota

	// RoleOrigin marks the dispatch point routes start from.
	RoleOrigin

	// RoleDestination marks the target routes must reach.
	RoleDestination
)

// String returns a human-readable role name for logs and traces.
// Complexity: O(1)
func (r Role) String() string {
	switch r {
	case RoleOrigin:
		return "origin"
	case RoleDestination:
		return "destination"
	case RoleNormal:
		return "normal"
	default:
		return "unknown"
	}
}

// Node is an intersection in the road network.
type Node struct {
	// ID uniquely identifies this node within its Snapshot.
	ID string `json:"id"`

	// Label is the display name shown by the editor; empty is fine.
	Label string `json:"label,omitempty"`

	// Role is the routing marker (normal, origin, destination).
	Role Role `json:"role,omitempty"`
}

// Edge is an undirected road segment between two intersections.
//
// A and B are an unordered endpoint pair: traversal is legal in both
// directions whenever Blocked is false. A == B is a permitted self-loop and
// parallel segments between the same pair are permitted as well.
type Edge struct {
	// ID uniquely identifies this segment within its Snapshot.
	ID string `json:"id"`

	// A is one endpoint node ID.
	A string `json:"a"`

	// B is the other endpoint node ID (may equal A).
	B string `json:"b"`

	// Weight is the traversal cost. Negative values model tolls paid to the
	// driver (refund lanes); routing decides per call whether to accept them.
	Weight float64 `json:"weight"`

	// Blocked marks the segment closed. Blocked segments are invisible to
	// every analysis: routing, degrees, connectivity, structural checks.
	Blocked bool `json:"blocked,omitempty"`
}

// Snapshot is one immutable picture of the road network.
//
// It is plain data passed by value. Analysis packages treat it as read-only;
// use Clone when a caller needs an isolated copy to hand elsewhere.
type Snapshot struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Neighbor is one traversable hop in the unblocked adjacency view.
type Neighbor struct {
	// To is the node reached by taking the segment.
	To string

	// Weight is the segment's traversal cost.
	Weight float64

	// EdgeID identifies which segment provides this hop, letting callers
	// distinguish parallel segments between the same pair.
	EdgeID string
}
