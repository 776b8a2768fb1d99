// Package structure: verdict records, certainty levels, reasoning traces,
// and the exhaustive-search bound for the structural analyzers.
package structure

import "github.com/UnstableBlob/ambulance-shortest-route/connectivity"

// MaxExhaustiveNodes bounds the backtracking Hamiltonian search. Above this
// size the analyzer answers Indeterminate instead of paying factorial cost:
// deciding Hamiltonian existence is NP-complete in general, and the editor
// would rather render "unknown" than stall.
const MaxExhaustiveNodes = 8

// Verdict is a three-valued existence answer.
type Verdict uint8

const (
	// VerdictNo: the property definitely does not hold.
	VerdictNo Verdict = iota

	// VerdictYes: the property definitely holds.
	VerdictYes

	// VerdictUnknown: existence undecided; only ever paired with
	// Indeterminate certainty.
	VerdictUnknown
)

// String returns the verdict name for logs and traces.
// Complexity: O(1)
func (v Verdict) String() string {
	switch v {
	case VerdictNo:
		return "no"
	case VerdictYes:
		return "yes"
	case VerdictUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Certainty distinguishes proven answers from declined ones.
type Certainty uint8

const (
	// Definite: the verdicts are proven, positively or negatively.
	Definite Certainty = iota

	// Indeterminate: the analyzer refused exponential work; verdicts are
	// VerdictUnknown and the caller must render "cannot decide".
	Indeterminate
)

// String returns the certainty name for logs and traces.
// Complexity: O(1)
func (c Certainty) String() string {
	switch c {
	case Definite:
		return "definite"
	case Indeterminate:
		return "indeterminate"
	default:
		return "invalid"
	}
}

// TraceStep is one recorded decision: which check ran, what it measured, and
// what it concluded. The trace is informational output for rendering "why"
// next to "what"; control flow never reads it back.
type TraceStep struct {
	// Title names the check, e.g. "degree parity" or "Dirac condition".
	Title string `json:"title"`

	// Detail describes the inputs examined, empty when the title suffices.
	Detail string `json:"detail,omitempty"`

	// Value is the check's key number: an odd-vertex count, a minimum
	// degree, a node count.
	Value int `json:"value"`

	// Conclusion states what the check decided, in display-ready prose.
	Conclusion string `json:"conclusion"`
}

// Result is the outcome of one structural analysis, Eulerian or Hamiltonian.
type Result struct {
	// Circuit reports existence of a closed traversal (returns to start).
	Circuit Verdict `json:"circuitExists"`

	// Path reports existence of an open traversal (free endpoints).
	Path Verdict `json:"pathExists"`

	// Certainty is Definite unless the analyzer declined exhaustive work.
	Certainty Certainty `json:"certainty"`

	// Witness is a concrete traversal when one was constructed: node IDs in
	// walk order, with the start repeated at the end for circuits. Empty when
	// existence was proven without construction (Dirac/Ore) or denied.
	Witness []string `json:"witnessPath,omitempty"`

	// Trace records every decision stage in order.
	Trace []TraceStep `json:"reasoningTrace"`
}

// Report bundles one editor refresh: connectivity computed once and shared
// by both analyzers.
type Report struct {
	Connectivity connectivity.Info `json:"connectivity"`
	Eulerian     Result            `json:"eulerian"`
	Hamiltonian  Result            `json:"hamiltonian"`
}
