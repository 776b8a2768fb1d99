package network

import (
	"fmt"
	"sort"
	"sync"

	"github.com/UnstableBlob/ambulance-shortest-route/core"
)

// Network is the live editor model. The zero value is not usable; construct
// with New.
type Network struct {
	mu    sync.RWMutex
	idGen func() string

	nodes map[string]core.Node
	roads map[string]core.Edge
}

// New builds an empty network.
// Complexity: O(len(opts)).
func New(opts ...Option) *Network {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Network{
		idGen: o.IDGen,
		nodes: make(map[string]core.Node),
		roads: make(map[string]core.Edge),
	}
}

// AddNode inserts a junction. An empty id is filled from the generator; the
// ID actually stored is returned.
// Returns ErrDuplicateID.
// Complexity: O(1) amortized.
func (n *Network) AddNode(id, label string) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if id == "" {
		id = n.generateID(func(c string) bool {
			_, ok := n.nodes[c]

			return ok
		})
	} else if _, ok := n.nodes[id]; ok {
		return "", fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	n.nodes[id] = core.Node{ID: id, Label: label}

	return id, nil
}

// RemoveNode deletes a junction and every segment touching it, marker
// included.
// Returns ErrEmptyID, ErrNodeNotFound.
// Complexity: O(R) over stored segments.
func (n *Network) RemoveNode(id string) error {
	if id == "" {
		return ErrEmptyID
	}
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.nodes[id]; !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	// 1) Cascade: erase segments anchored at the junction.
	var (
		rid string
		r   core.Edge
	)
	for rid, r = range n.roads {
		if r.A == id || r.B == id {
			delete(n.roads, rid)
		}
	}

	// 2) Drop the junction itself.
	delete(n.nodes, id)

	return nil
}

// AddRoad draws a segment between two existing junctions. An empty id is
// filled from the generator; the ID actually stored is returned. Self-loops,
// parallel segments and negative weights are all legal, blocking starts off.
// Returns ErrDuplicateID, ErrNodeNotFound.
// Complexity: O(1) amortized.
func (n *Network) AddRoad(id, a, b string, weight float64) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	// 1) Both endpoints must already be junctions; roads are drawn between
	// existing points, never conjure them.
	if _, ok := n.nodes[a]; !ok {
		return "", fmt.Errorf("%w: endpoint %q", ErrNodeNotFound, a)
	}
	if _, ok := n.nodes[b]; !ok {
		return "", fmt.Errorf("%w: endpoint %q", ErrNodeNotFound, b)
	}

	// 2) Settle identity.
	if id == "" {
		id = n.generateID(func(c string) bool {
			_, ok := n.roads[c]

			return ok
		})
	} else if _, ok := n.roads[id]; ok {
		return "", fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}

	// 3) Store.
	n.roads[id] = core.Edge{ID: id, A: a, B: b, Weight: weight}

	return id, nil
}

// RemoveRoad erases a segment.
// Returns ErrRoadNotFound.
// Complexity: O(1).
func (n *Network) RemoveRoad(id string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.roads[id]; !ok {
		return fmt.Errorf("%w: %q", ErrRoadNotFound, id)
	}
	delete(n.roads, id)

	return nil
}

// SetBlocked flips a segment's blocked flag.
// Returns ErrRoadNotFound.
// Complexity: O(1).
func (n *Network) SetBlocked(id string, blocked bool) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	r, ok := n.roads[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrRoadNotFound, id)
	}
	r.Blocked = blocked
	n.roads[id] = r

	return nil
}

// SetWeight reprices a segment; negative values model tolls.
// Returns ErrRoadNotFound.
// Complexity: O(1).
func (n *Network) SetWeight(id string, weight float64) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	r, ok := n.roads[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrRoadNotFound, id)
	}
	r.Weight = weight
	n.roads[id] = r

	return nil
}

// SetLabel renames a junction.
// Returns ErrNodeNotFound.
// Complexity: O(1).
func (n *Network) SetLabel(id, label string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	node, ok := n.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	node.Label = label
	n.nodes[id] = node

	return nil
}

// SetOrigin moves the origin marker onto the junction, clearing the previous
// holder and displacing whatever role the target held.
// Returns ErrNodeNotFound.
// Complexity: O(V).
func (n *Network) SetOrigin(id string) error {
	return n.setMarker(id, core.RoleOrigin)
}

// SetDestination moves the destination marker onto the junction, clearing
// the previous holder and displacing whatever role the target held.
// Returns ErrNodeNotFound.
// Complexity: O(V).
func (n *Network) SetDestination(id string) error {
	return n.setMarker(id, core.RoleDestination)
}

// ClearOrigin removes the origin marker; a no-op when unset.
// Complexity: O(V).
func (n *Network) ClearOrigin() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.clearMarkerLocked(core.RoleOrigin)
}

// ClearDestination removes the destination marker; a no-op when unset.
// Complexity: O(V).
func (n *Network) ClearDestination() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.clearMarkerLocked(core.RoleDestination)
}

// Node returns a copy of the junction.
// Complexity: O(1).
func (n *Network) Node(id string) (core.Node, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	node, ok := n.nodes[id]

	return node, ok
}

// Road returns a copy of the segment.
// Complexity: O(1).
func (n *Network) Road(id string) (core.Edge, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	r, ok := n.roads[id]

	return r, ok
}

// Origin returns the junction holding the origin marker, if any.
// Complexity: O(V).
func (n *Network) Origin() (core.Node, bool) {
	return n.holder(core.RoleOrigin)
}

// Destination returns the junction holding the destination marker, if any.
// Complexity: O(V).
func (n *Network) Destination() (core.Node, bool) {
	return n.holder(core.RoleDestination)
}

// NodeCount reports the number of junctions.
// Complexity: O(1).
func (n *Network) NodeCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.nodes)
}

// RoadCount reports the number of segments.
// Complexity: O(1).
func (n *Network) RoadCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.roads)
}

// Snapshot freezes the current state for the analysis packages. Nodes and
// edges come out sorted by ID, so an unchanged network snapshots
// identically; the copies share nothing with the live model.
// Complexity: O(V log V + R log R).
func (n *Network) Snapshot() core.Snapshot {
	n.mu.RLock()
	defer n.mu.RUnlock()

	s := core.Snapshot{
		Nodes: make([]core.Node, 0, len(n.nodes)),
		Edges: make([]core.Edge, 0, len(n.roads)),
	}
	var node core.Node
	for _, node = range n.nodes {
		s.Nodes = append(s.Nodes, node)
	}
	var r core.Edge
	for _, r = range n.roads {
		s.Edges = append(s.Edges, r)
	}
	sort.Slice(s.Nodes, func(i, j int) bool { return s.Nodes[i].ID < s.Nodes[j].ID })
	sort.Slice(s.Edges, func(i, j int) bool { return s.Edges[i].ID < s.Edges[j].ID })

	return s
}

// generateID draws from the generator until it yields a usable fresh ID.
func (n *Network) generateID(taken func(string) bool) string {
	id := n.idGen()
	for id == "" || taken(id) {
		id = n.idGen()
	}

	return id
}

// setMarker is the shared body of SetOrigin and SetDestination.
func (n *Network) setMarker(id string, role core.Role) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	target, ok := n.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	// 1) Clear the marker wherever it currently sits.
	n.clearMarkerLocked(role)

	// 2) Plant it, displacing whatever role the target held.
	target.Role = role
	n.nodes[id] = target

	return nil
}

// clearMarkerLocked strips role from every holder; callers hold mu.
func (n *Network) clearMarkerLocked(role core.Role) {
	var (
		id   string
		node core.Node
	)
	for id, node = range n.nodes {
		if node.Role == role {
			node.Role = core.RoleNormal
			n.nodes[id] = node
		}
	}
}

// holder scans for the junction carrying role.
func (n *Network) holder(role core.Role) (core.Node, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	var node core.Node
	for _, node = range n.nodes {
		if node.Role == role {
			return node, true
		}
	}

	return core.Node{}, false
}
