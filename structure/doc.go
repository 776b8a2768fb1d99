// Package structure decides whether a road-network snapshot admits Eulerian
// or Hamiltonian traversals, explaining every verdict with a reasoning trace
// the editor can render verbatim.
//
// Overview:
//
//   - AnalyzeEulerian applies Euler's theorem: with the open subnetwork
//     connected, a circuit exists iff no node has odd degree, and an open
//     path exists iff exactly two do. The answer is always Definite, and
//     positive verdicts come with a witness walk built by Hierholzer's
//     algorithm (every open segment exactly once).
//   - AnalyzeHamiltonian is staged from cheapest to most expensive and stops
//     at the first conclusive stage: trivial sizes, the connectivity gate,
//     Dirac's condition (2·deg(v) ≥ n everywhere), Ore's condition (every
//     non-adjacent pair sums to ≥ n), then a complete backtracking search
//     for n ≤ MaxExhaustiveNodes. Larger snapshots that no sufficient
//     condition covers are answered Indeterminate: the general decision
//     problem is NP-complete, and a declined search is reported as such
//     rather than disguised as a negative.
//   - Analyze runs both analyzers over one shared connectivity sweep and
//     returns the combined Report, the natural call after every edit.
//
// Verdict semantics:
//
//   - Certainty is Definite unless the analyzer explicitly declined the
//     exhaustive stage; a Definite VerdictNo is a proof of absence, not a
//     shrug. VerdictUnknown appears only together with Indeterminate.
//   - Dirac and Ore prove existence without constructing a tour, so those
//     results carry no witness. The exhaustive stage and the Eulerian
//     analyzer return concrete witnesses; circuits repeat the start node at
//     the end of the walk.
//   - Blocked segments and segments referencing missing nodes are invisible
//     here, exactly as they are to routing: degree parity shifts when a
//     segment is blocked, and the analyzers see the shifted parity.
//
// There are no errors and no options: every snapshot, however degenerate,
// yields a complete Result with its trace.
//
// Complexity:
//
//   - Eulerian: O(V + E log E) analysis, O(E) witness construction.
//   - Hamiltonian: stages 1-4 are O(V^2); the bounded exhaustive stage is
//     O(n · n!) with n ≤ MaxExhaustiveNodes, a small constant in practice.
//
// See also:
//
//   - connectivity: the shared component sweep both analyzers gate on.
package structure
