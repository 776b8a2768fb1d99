// Package route: result records, algorithm hints, options, and sentinel
// errors for shortest-route computation.
//
// Errors:
//
//	ErrNodeNotFound     - origin or destination ID absent from the snapshot.
//	ErrNegativeWeight   - Dijkstra requested on a snapshot with an open
//	                      negative segment.
//	ErrUnknownAlgorithm - algorithm hint outside the declared enum.
package route

import "errors"

// Sentinel errors returned by FindPath.
var (
	// ErrNodeNotFound indicates the requested origin or destination ID does
	// not exist in the snapshot. Fatal to the call, nothing is retried.
	ErrNodeNotFound = errors.New("route: node not found in snapshot")

	// ErrNegativeWeight indicates Dijkstra was explicitly requested although
	// an open segment carries a negative weight. Use BellmanFord or Auto.
	ErrNegativeWeight = errors.New("route: negative segment weight requires Bellman-Ford")

	// ErrUnknownAlgorithm indicates an algorithm hint outside the enum.
	ErrUnknownAlgorithm = errors.New("route: unknown algorithm")
)

// Algorithm selects the shortest-path strategy FindPath runs.
//
// The hint is advisory in the same sense the editor's caller contract is:
// Auto inspects the snapshot and picks for you, and an explicit Dijkstra on
// a negative-weight snapshot is rejected rather than silently mis-answered.
type Algorithm uint8

const (
	// Auto picks BellmanFord when any open segment has negative weight,
	// Dijkstra otherwise. The default.
	Auto Algorithm = iota

	// Dijkstra is the greedy label-setting search. Non-negative weights only.
	Dijkstra

	// BellmanFord handles arbitrary weights and detects negative cycles.
	BellmanFord
)

// String returns the algorithm name for logs and error context.
// Complexity: O(1)
func (a Algorithm) String() string {
	switch a {
	case Auto:
		return "auto"
	case Dijkstra:
		return "dijkstra"
	case BellmanFord:
		return "bellman-ford"
	default:
		return "unknown"
	}
}

// Reason classifies why a Result carries no route, mirroring the error
// taxonomy the editor renders: a reason is an expected outcome recorded
// in-band, not a Go error.
type Reason uint8

const (
	// ReasonNone: a route was found, or the call failed before routing.
	ReasonNone Reason = iota

	// ReasonNodeNotFound accompanies ErrNodeNotFound in the result record.
	ReasonNodeNotFound

	// ReasonNoPath: destination unreachable along open segments.
	ReasonNoPath

	// ReasonNegativeCycle: destination reachable from a negative cycle,
	// making "shortest" undefined.
	ReasonNegativeCycle
)

// String returns the reason name for logs and traces.
// Complexity: O(1)
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonNodeNotFound:
		return "nodeNotFound"
	case ReasonNoPath:
		return "noPath"
	case ReasonNegativeCycle:
		return "negativeCycle"
	default:
		return "unknown"
	}
}

// Step is one hop of a found route: the segment taken from one node to the
// next and the cost paid for it.
type Step struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Cost float64 `json:"cost"`
}

// Result is the route record handed back to the editor after every call.
//
// When Found is true: Path starts at the origin and ends at the destination,
// Steps has exactly len(Path)-1 entries, and TotalCost equals the sum of the
// step costs exactly. When Found is false, TotalCost is +Inf and Reason says
// why; marshal such records only after checking Found, since JSON has no
// rendering for infinity.
type Result struct {
	Found            bool     `json:"found"`
	Path             []string `json:"path,omitempty"`
	TotalCost        float64  `json:"totalCost"`
	Steps            []Step   `json:"steps,omitempty"`
	HasNegativeCycle bool     `json:"hasNegativeCycle,omitempty"`
	Reason           Reason   `json:"reason,omitempty"`
}

// Options configures FindPath.
//
// Algorithm - advisory strategy hint; Auto resolves per snapshot.
type Options struct {
	Algorithm Algorithm
}

// Option is a functional option for configuring FindPath.
type Option func(*Options)

// WithAlgorithm pins the shortest-path strategy instead of letting Auto
// inspect the snapshot.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// DefaultOptions returns the options FindPath starts from before applying
// functional overrides.
//
// Defaults:
//   - Algorithm: Auto (BellmanFord iff an open segment is negative).
func DefaultOptions() Options {
	return Options{
		Algorithm: Auto,
	}
}
