// Package route computes the shortest drivable route between the origin and
// destination of a road-network snapshot, using Dijkstra for non-negative
// networks and Bellman-Ford when toll segments carry negative weights.
//
// Overview:
//
//   - FindPath is the single entry point. It validates the requested
//     endpoints, builds the unblocked adjacency view once, resolves the
//     advisory algorithm hint, runs the chosen relaxation, and assembles a
//     Result with the node path, per-segment steps, and total cost.
//   - Dijkstra is a greedy label-setting search over a binary min-heap with
//     lazy decrease-key; it stops the moment the destination is settled.
//     It refuses snapshots containing an open negative segment (fail-fast
//     pre-scan) because its greedy invariant does not survive them.
//   - Bellman-Ford relaxes every open segment in both directions for up to
//     |V|-1 passes with an early exit once a pass changes nothing. One extra
//     pass then marks nodes still relaxable; a worklist flood propagates that
//     taint along open adjacency, and a tainted destination is reported as
//     HasNegativeCycle instead of a route, since "shortest" is undefined
//     when cost can be driven arbitrarily low by looping.
//   - The Auto hint (default) picks Bellman-Ford exactly when some open
//     segment has negative weight, Dijkstra otherwise.
//
// Result semantics:
//
//   - Found route: Path runs origin to destination inclusive, Steps lists
//     each hop with the cheapest open segment weight for that pair, and
//     TotalCost equals the sum of step costs exactly (identical float
//     additions in identical order, not merely within an epsilon).
//   - Unreachable destination: Found=false, Reason=ReasonNoPath. A normal
//     outcome, not a Go error.
//   - Destination tainted by a negative cycle: Found=false,
//     HasNegativeCycle=true, Reason=ReasonNegativeCycle. Reported
//     distinctly from ReasonNoPath so a caller can explain "undefined"
//     rather than "no route". Note that an undirected negative segment is
//     itself a negative cycle (out and back along the same segment), so any
//     open negative segment reachable from the origin taints its whole
//     component.
//   - Origin equal to destination: trivially Found with a single-node path,
//     zero cost, and no steps.
//
// Errors (sentinel):
//
//   - ErrNodeNotFound     if the origin or destination ID is absent.
//   - ErrNegativeWeight   if Dijkstra was explicitly requested on a snapshot
//     with an open negative segment.
//   - ErrUnknownAlgorithm if the hint is not Auto, Dijkstra, or BellmanFord.
//
// Complexity:
//
//   - Dijkstra:     O((V + E) log V) time, O(V + E) space.
//   - Bellman-Ford: O(V * E) time worst case, O(V + E) space.
//
// Thread safety: FindPath is a pure function of its arguments; concurrent
// calls on distinct snapshots are safe because nothing is shared.
//
// See also:
//
//   - core: the Snapshot model and the adjacency view both algorithms run on.
//   - connectivity: component analysis explaining why a route may not exist.
package route
