// Package route implements the shortest-route entry point shared by both
// relaxation strategies: validation, hint resolution, dispatch, and result
// assembly live here; the algorithm loops live in dijkstra.go and
// bellmanford.go.
package route

import (
	"fmt"
	"math"

	"github.com/UnstableBlob/ambulance-shortest-route/core"
)

// FindPath computes the cheapest route from originID to destinationID over
// the snapshot's open segments. It accepts functional options to pin the
// algorithm (WithAlgorithm); by default Auto inspects the snapshot and picks
// Bellman-Ford exactly when an open segment carries a negative weight.
//
// Returns:
//
//   - Result: the complete route record (see Result); also populated with a
//     Reason on the no-route outcomes, which are not Go errors.
//   - err: ErrNodeNotFound, ErrNegativeWeight, or ErrUnknownAlgorithm for
//     precondition failures; nil otherwise.
//
// Preconditions and validation (in order):
//  1. originID must exist in the snapshot (ErrNodeNotFound).
//  2. destinationID must exist in the snapshot (ErrNodeNotFound).
//  3. originID == destinationID short-circuits to a zero-cost route.
//  4. Explicit Dijkstra on an open negative segment fails (ErrNegativeWeight).
//
// Complexity: O((V + E) log V) under Dijkstra, O(V * E) under Bellman-Ford.
func FindPath(s core.Snapshot, originID, destinationID string, opts ...Option) (Result, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Both endpoints must exist before anything else is inspected.
	if !s.HasNode(originID) {
		return unrouted(ReasonNodeNotFound), fmt.Errorf("%w: origin %q", ErrNodeNotFound, originID)
	}
	if !s.HasNode(destinationID) {
		return unrouted(ReasonNodeNotFound), fmt.Errorf("%w: destination %q", ErrNodeNotFound, destinationID)
	}

	// 3) Origin equal to destination is a zero-cost route with no steps.
	if originID == destinationID {
		return Result{Found: true, Path: []string{originID}, TotalCost: 0}, nil
	}

	// 4) One adjacency build serves hint resolution and both algorithms.
	adj := s.Adjacency()

	// 5) Locate the first open negative segment in declaration order, if any.
	//    Auto routes on it; explicit Dijkstra is rejected because of it.
	neg := firstOpenNegative(s, adj)

	algo := cfg.Algorithm
	if algo == Auto {
		if neg != nil {
			algo = BellmanFord
		} else {
			algo = Dijkstra
		}
	}

	// 6) Dispatch to the chosen relaxation and assemble the record.
	switch algo {
	case Dijkstra:
		if neg != nil {
			return unrouted(ReasonNone), fmt.Errorf("%w: segment %s (%s-%s) weight=%g",
				ErrNegativeWeight, neg.ID, neg.A, neg.B, neg.Weight)
		}
		dist, prev, err := runDijkstra(adj, originID, destinationID)
		if err != nil {
			return unrouted(ReasonNone), err
		}

		return assemble(s, dist, prev, nil, originID, destinationID), nil

	case BellmanFord:
		dist, prev, tainted := runBellmanFord(adj, originID)

		return assemble(s, dist, prev, tainted, originID, destinationID), nil

	default:
		return unrouted(ReasonNone), fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(cfg.Algorithm))
	}
}

// unrouted builds the no-route record shell: not found, infinite cost,
// classified by reason.
func unrouted(r Reason) Result {
	return Result{TotalCost: math.Inf(1), Reason: r}
}

// firstOpenNegative returns the first open segment with negative weight in
// Edges declaration order, or nil. Iterating the slice rather than the
// adjacency map keeps the reported segment deterministic.
func firstOpenNegative(s core.Snapshot, adj map[string][]core.Neighbor) *core.Edge {
	var e *core.Edge
	for i := range s.Edges {
		e = &s.Edges[i]
		if e.Blocked || e.Weight >= 0 {
			continue
		}
		if _, ok := adj[e.A]; !ok {
			continue
		}
		if _, ok := adj[e.B]; !ok {
			continue
		}

		return e
	}

	return nil
}

// assemble turns raw relaxation output into the editor-facing record: taint
// beats reachability, reachability beats reconstruction.
func assemble(s core.Snapshot, dist map[string]float64, prev map[string]string, tainted map[string]bool, originID, destinationID string) Result {
	// 1) A tainted destination means "shortest" is undefined, not merely absent.
	if tainted[destinationID] {
		res := unrouted(ReasonNegativeCycle)
		res.HasNegativeCycle = true

		return res
	}

	// 2) Still at +Inf after relaxation: no open walk reaches the destination.
	if math.IsInf(dist[destinationID], 1) {
		return unrouted(ReasonNoPath)
	}

	// 3) Walk the predecessor chain back from the destination and reverse.
	path := reconstructPath(prev, originID, destinationID)

	// 4) Price each hop at the cheapest open segment for that pair, which is
	//    the exact weight relaxation settled on, so the step sum reproduces
	//    dist[destinationID] bit for bit.
	minW := s.MinEdgeWeights()
	steps := make([]Step, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		steps = append(steps, Step{
			From: path[i-1],
			To:   path[i],
			Cost: minW[path[i-1]][path[i]],
		})
	}

	return Result{
		Found:     true,
		Path:      path,
		TotalCost: dist[destinationID],
		Steps:     steps,
	}
}

// reconstructPath follows prev pointers from destination back to origin and
// reverses in place. Callers guarantee the destination was reached, so the
// chain terminates.
// Complexity: O(path length)
func reconstructPath(prev map[string]string, originID, destinationID string) []string {
	path := []string{destinationID}
	for cur := destinationID; cur != originID; {
		cur = prev[cur]
		path = append(path, cur)
	}

	// Reverse into origin-to-destination order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
