// Package core defines the immutable road-network snapshot consumed by every
// analysis package in this module: nodes (intersections), edges (road
// segments), role markers, and the derived read views the algorithms run on.
//
// Overview:
//
//   - A Snapshot is plain data: two slices, Nodes and Edges, passed by value.
//     Analysis functions never mutate a Snapshot; concurrent reads are safe
//     because nothing writes.
//   - Edges are undirected. A segment {A, B, weight, blocked} is traversable
//     in both directions; a blocked segment is traversable in neither and is
//     excluded from every derived view.
//   - Weights are float64 and may be negative (a toll refund or incentive
//     lane). Routing decides per call whether negative weights are acceptable.
//   - Roles mark at most one origin and one destination among the nodes.
//     The editor owning the network keeps that invariant; core only reports
//     what it finds.
//
// Derived views:
//
//   - Adjacency() builds the unblocked adjacency map used by traversal,
//     registering each open segment in both directions (once for self-loops)
//     with neighbor lists sorted for deterministic iteration.
//   - MinEdgeWeights() collapses parallel open segments between a pair of
//     nodes to the cheapest one, which is exactly the weight any shortest-path
//     relaxation can settle on.
//
// Tolerated input defects:
//
//   - An edge whose endpoint ID does not appear in Nodes is ignored by every
//     derived view rather than rejected. Snapshots come from an external
//     editor; a dangling reference is its bug, not a reason to fail analysis.
//
// See also:
//
//   - connectivity: degrees and connected components over a Snapshot.
//   - route: shortest paths (Dijkstra / Bellman-Ford) over a Snapshot.
//   - structure: Eulerian and Hamiltonian analysis over a Snapshot.
//   - network: the mutable editor-side model that projects Snapshots.
package core
