package structure

import (
	"fmt"
	"sort"

	"github.com/UnstableBlob/ambulance-shortest-route/connectivity"
	"github.com/UnstableBlob/ambulance-shortest-route/core"
)

// AnalyzeHamiltonian decides Hamiltonian circuit and path existence for the
// snapshot's open subnetwork. Stages run from cheapest to most expensive and
// stop at the first conclusive one: trivial sizes, connectivity, Dirac's
// condition, Ore's condition, then bounded exhaustive search. Networks above
// MaxExhaustiveNodes that pass no sufficient condition come back
// Indeterminate rather than paying factorial cost.
// Complexity: O(V^2 + E) up to the search stage; the search itself is O(V!)
// bounded by MaxExhaustiveNodes.
func AnalyzeHamiltonian(s core.Snapshot) Result {
	return analyzeHamiltonian(s, connectivity.Analyze(s))
}

// analyzeHamiltonian is the shared body; Analyze passes its own sweep in.
func analyzeHamiltonian(s core.Snapshot, conn connectivity.Info) Result {
	res := Result{Certainty: Definite}
	n := s.NodeCount()

	// 1) Trivial sizes: everything below three nodes is decided by
	// inspection. A two-node tour can never close, so only the path
	// question remains there.
	if n == 0 {
		res.Circuit, res.Path = VerdictYes, VerdictYes
		res.Trace = append(res.Trace, TraceStep{
			Title:      "trivial size",
			Value:      0,
			Conclusion: "no nodes; trivially satisfied",
		})

		return res
	}
	if n == 1 {
		res.Circuit, res.Path = VerdictYes, VerdictYes
		res.Witness = []string{s.Nodes[0].ID}
		res.Trace = append(res.Trace, TraceStep{
			Title:      "trivial size",
			Value:      1,
			Conclusion: "single node; trivially satisfied",
		})

		return res
	}
	if n == 2 {
		a, b := s.Nodes[0].ID, s.Nodes[1].ID
		if joined(s.Adjacency(), a, b) {
			res.Path = VerdictYes
			res.Witness = []string{a, b}
			res.Trace = append(res.Trace, TraceStep{
				Title:      "trivial size",
				Value:      2,
				Conclusion: "two nodes joined by an open segment; path only",
			})

			return res
		}
		res.Trace = append(res.Trace, TraceStep{
			Title:      "trivial size",
			Value:      2,
			Conclusion: "two nodes with no open segment between them",
		})

		return res
	}
	res.Trace = append(res.Trace, TraceStep{
		Title:      "trivial size",
		Value:      n,
		Conclusion: "three or more nodes; continue",
	})

	// 2) Connectivity gate: a tour visits every node, which is impossible
	// across components.
	if !conn.Connected {
		res.Trace = append(res.Trace, TraceStep{
			Title:      "connectivity",
			Value:      conn.ComponentCount,
			Conclusion: "disconnected; a tour cannot bridge components",
		})

		return res
	}
	res.Trace = append(res.Trace, TraceStep{
		Title:      "connectivity",
		Value:      conn.ComponentCount,
		Conclusion: "single component; continue",
	})

	// Dirac, Ore and the search all work on the simple projection: parallel
	// segments collapse and self-loops drop, since neither can extend a tour.
	ids, matrix, deg := simpleView(s)

	// 3) Dirac's condition: minimum degree at least n/2 forces a circuit.
	minDeg := deg[0]
	for _, d := range deg[1:] {
		if d < minDeg {
			minDeg = d
		}
	}
	if 2*minDeg >= n {
		res.Circuit, res.Path = VerdictYes, VerdictYes
		res.Trace = append(res.Trace, TraceStep{
			Title:      "Dirac condition",
			Detail:     fmt.Sprintf("minimum %d distinct neighbors over %d nodes", minDeg, n),
			Value:      minDeg,
			Conclusion: "every degree at least n/2; circuit guaranteed",
		})

		return res
	}
	res.Trace = append(res.Trace, TraceStep{
		Title:      "Dirac condition",
		Detail:     fmt.Sprintf("minimum %d distinct neighbors over %d nodes", minDeg, n),
		Value:      minDeg,
		Conclusion: "minimum degree below n/2; not conclusive",
	})

	// 4) Ore's condition: every non-adjacent pair must sum to at least n.
	// Dirac failing guarantees at least one such pair exists.
	worst, wu, wv := oreWorstPair(ids, matrix, deg)
	if worst >= n {
		res.Circuit, res.Path = VerdictYes, VerdictYes
		res.Trace = append(res.Trace, TraceStep{
			Title:      "Ore condition",
			Detail:     fmt.Sprintf("weakest non-adjacent pair %s, %s sums to %d", wu, wv, worst),
			Value:      worst,
			Conclusion: "every non-adjacent pair sums to at least n; circuit guaranteed",
		})

		return res
	}
	res.Trace = append(res.Trace, TraceStep{
		Title:      "Ore condition",
		Detail:     fmt.Sprintf("weakest non-adjacent pair %s, %s sums to %d", wu, wv, worst),
		Value:      worst,
		Conclusion: "a non-adjacent pair sums below n; not conclusive",
	})

	// 5) Exhaustive search only pays off up to the threshold.
	if n > MaxExhaustiveNodes {
		res.Circuit, res.Path = VerdictUnknown, VerdictUnknown
		res.Certainty = Indeterminate
		res.Trace = append(res.Trace, TraceStep{
			Title:      "search threshold",
			Detail:     fmt.Sprintf("%d nodes exceed the exhaustive bound of %d", n, MaxExhaustiveNodes),
			Value:      n,
			Conclusion: "Hamiltonian decision is NP-complete; declining exponential search",
		})

		return res
	}
	res.Trace = append(res.Trace, TraceStep{
		Title:      "search threshold",
		Detail:     fmt.Sprintf("%d nodes within the exhaustive bound of %d", n, MaxExhaustiveNodes),
		Value:      n,
		Conclusion: "small enough; search is conclusive either way",
	})

	// 6) Complete backtracking search; at this size absence is proof.
	hs := newHamSearcher(ids, matrix)
	hs.run()
	switch {
	case hs.circuitWitness != nil:
		res.Circuit, res.Path = VerdictYes, VerdictYes
		res.Witness = hs.circuitWitness
		res.Trace = append(res.Trace, TraceStep{
			Title:      "exhaustive search",
			Detail:     fmt.Sprintf("%d partial routes explored", hs.expansions),
			Value:      hs.expansions,
			Conclusion: "circuit found",
		})
	case hs.pathWitness != nil:
		res.Path = VerdictYes
		res.Witness = hs.pathWitness
		res.Trace = append(res.Trace, TraceStep{
			Title:      "exhaustive search",
			Detail:     fmt.Sprintf("%d partial routes explored", hs.expansions),
			Value:      hs.expansions,
			Conclusion: "path found; no circuit closes",
		})
	default:
		res.Trace = append(res.Trace, TraceStep{
			Title:      "exhaustive search",
			Detail:     fmt.Sprintf("%d partial routes explored", hs.expansions),
			Value:      hs.expansions,
			Conclusion: "search exhausted; neither exists",
		})
	}

	return res
}

// joined reports whether an open segment runs between a and b.
func joined(adj map[string][]core.Neighbor, a, b string) bool {
	var nb core.Neighbor
	for _, nb = range adj[a] {
		if nb.To == b {
			return true
		}
	}

	return false
}

// simpleView projects the open subnetwork onto distinct neighbors: node IDs
// in sorted order, a symmetric boolean adjacency matrix over their indices,
// and per-node distinct-neighbor counts. Self-loops are skipped.
func simpleView(s core.Snapshot) (ids []string, matrix [][]bool, deg []int) {
	adj := s.Adjacency()

	ids = make([]string, 0, len(adj))
	for id := range adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	matrix = make([][]bool, len(ids))
	for i := range matrix {
		matrix[i] = make([]bool, len(ids))
	}
	var (
		i  int
		id string
		nb core.Neighbor
	)
	for i, id = range ids {
		for _, nb = range adj[id] {
			if j := index[nb.To]; j != i {
				matrix[i][j] = true
			}
		}
	}

	deg = make([]int, len(ids))
	for i = range ids {
		for j := range ids {
			if matrix[i][j] {
				deg[i]++
			}
		}
	}

	return ids, matrix, deg
}

// oreWorstPair returns the smallest degree sum among distinct non-adjacent
// pairs, with the pair's IDs. Ties keep the lexicographically first pair.
func oreWorstPair(ids []string, matrix [][]bool, deg []int) (worst int, u, v string) {
	worst = -1
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if matrix[i][j] {
				continue
			}
			if sum := deg[i] + deg[j]; worst < 0 || sum < worst {
				worst, u, v = sum, ids[i], ids[j]
			}
		}
	}

	return worst, u, v
}
