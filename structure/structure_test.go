package structure_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UnstableBlob/ambulance-shortest-route/connectivity"
	"github.com/UnstableBlob/ambulance-shortest-route/core"
	"github.com/UnstableBlob/ambulance-shortest-route/structure"
)

// nodesOf builds plain junction records from IDs.
func nodesOf(ids ...string) []core.Node {
	out := make([]core.Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, core.Node{ID: id, Label: id})
	}

	return out
}

// seg builds an open unit-weight segment.
func seg(id, a, b string) core.Edge {
	return core.Edge{ID: id, A: a, B: b, Weight: 1}
}

// traceTitles flattens a trace into its stage titles.
func traceTitles(r structure.Result) []string {
	titles := make([]string, 0, len(r.Trace))
	for _, step := range r.Trace {
		titles = append(titles, step.Title)
	}

	return titles
}

// requireEulerWitness checks that w walks every open segment of s exactly
// once along existing endpoints.
func requireEulerWitness(t *testing.T, s core.Snapshot, w []string) {
	t.Helper()

	open := s.UnblockedEdgeCount()
	require.Len(t, w, open+1, "witness must cover every open segment")

	// Pool of open segments still unused, keyed by ID.
	pool := make(map[string]core.Edge, open)
	for _, e := range s.Edges {
		if !e.Blocked {
			pool[e.ID] = e
		}
	}
	for i := 0; i+1 < len(w); i++ {
		found := ""
		for id, e := range pool {
			if (e.A == w[i] && e.B == w[i+1]) || (e.B == w[i] && e.A == w[i+1]) {
				found = id

				break
			}
		}
		require.NotEmpty(t, found, "no unused open segment joins %s and %s", w[i], w[i+1])
		delete(pool, found)
	}
	require.Empty(t, pool, "witness left segments unwalked")
}

// ---------------------------------------------------------------------------
// Eulerian
// ---------------------------------------------------------------------------

func TestAnalyzeEulerian_EmptyNetwork(t *testing.T) {
	res := structure.AnalyzeEulerian(core.Snapshot{})

	assert.Equal(t, structure.VerdictYes, res.Circuit)
	assert.Equal(t, structure.VerdictYes, res.Path)
	assert.Equal(t, structure.Definite, res.Certainty)
	assert.Empty(t, res.Witness)
	assert.Equal(t, []string{"open segments"}, traceTitles(res))
}

func TestAnalyzeEulerian_SingleNode(t *testing.T) {
	res := structure.AnalyzeEulerian(core.Snapshot{Nodes: nodesOf("A")})

	assert.Equal(t, structure.VerdictYes, res.Circuit)
	assert.Equal(t, structure.VerdictYes, res.Path)
	assert.Equal(t, []string{"A"}, res.Witness)
}

func TestAnalyzeEulerian_SeveralNodesNoSegments(t *testing.T) {
	res := structure.AnalyzeEulerian(core.Snapshot{Nodes: nodesOf("A", "B", "C")})

	assert.Equal(t, structure.VerdictNo, res.Circuit)
	assert.Equal(t, structure.VerdictNo, res.Path)
	assert.Equal(t, structure.Definite, res.Certainty)
	assert.Empty(t, res.Witness)
}

func TestAnalyzeEulerian_FourCycle(t *testing.T) {
	s := core.Snapshot{
		Nodes: nodesOf("A", "B", "C", "D"),
		Edges: []core.Edge{seg("e1", "A", "B"), seg("e2", "B", "C"), seg("e3", "C", "D"), seg("e4", "D", "A")},
	}
	res := structure.AnalyzeEulerian(s)

	assert.Equal(t, structure.VerdictYes, res.Circuit)
	assert.Equal(t, structure.VerdictYes, res.Path)
	assert.Equal(t, structure.Definite, res.Certainty)
	assert.Equal(t,
		[]string{"open segments", "connectivity", "degree parity", "Euler theorem"},
		traceTitles(res))

	requireEulerWitness(t, s, res.Witness)
	assert.Equal(t, "A", res.Witness[0], "circuit starts at the smallest node")
	assert.Equal(t, "A", res.Witness[len(res.Witness)-1], "circuit returns to its start")
}

func TestAnalyzeEulerian_PathGraph(t *testing.T) {
	s := core.Snapshot{
		Nodes: nodesOf("A", "B", "C"),
		Edges: []core.Edge{seg("e1", "A", "B"), seg("e2", "B", "C")},
	}
	res := structure.AnalyzeEulerian(s)

	assert.Equal(t, structure.VerdictNo, res.Circuit)
	assert.Equal(t, structure.VerdictYes, res.Path)
	assert.Equal(t, []string{"A", "B", "C"}, res.Witness, "path runs odd node to odd node")
}

func TestAnalyzeEulerian_Disconnected(t *testing.T) {
	s := core.Snapshot{
		Nodes: nodesOf("A", "B", "C", "D"),
		Edges: []core.Edge{seg("e1", "A", "B"), seg("e2", "C", "D")},
	}
	res := structure.AnalyzeEulerian(s)

	assert.Equal(t, structure.VerdictNo, res.Circuit)
	assert.Equal(t, structure.VerdictNo, res.Path)
	assert.Equal(t, structure.Definite, res.Certainty)
	assert.Equal(t, []string{"open segments", "connectivity"}, traceTitles(res))
}

func TestAnalyzeEulerian_BlockedChordIgnored(t *testing.T) {
	// The open subnetwork is a clean 4-cycle; the blocked chord would have
	// tipped B and D to odd degree.
	s := core.Snapshot{
		Nodes: nodesOf("A", "B", "C", "D"),
		Edges: []core.Edge{
			seg("e1", "A", "B"), seg("e2", "B", "C"), seg("e3", "C", "D"), seg("e4", "D", "A"),
			{ID: "chord", A: "B", B: "D", Weight: 1, Blocked: true},
		},
	}
	res := structure.AnalyzeEulerian(s)

	assert.Equal(t, structure.VerdictYes, res.Circuit)
	requireEulerWitness(t, s, res.Witness)
}

func TestAnalyzeEulerian_KoenigsbergBridges(t *testing.T) {
	// Four land masses, seven bridges, four odd-degree nodes.
	s := core.Snapshot{
		Nodes: nodesOf("A", "B", "C", "D"),
		Edges: []core.Edge{
			seg("b1", "A", "B"), seg("b2", "A", "B"),
			seg("b3", "A", "C"), seg("b4", "A", "C"),
			seg("b5", "A", "D"), seg("b6", "B", "D"), seg("b7", "C", "D"),
		},
	}
	res := structure.AnalyzeEulerian(s)

	assert.Equal(t, structure.VerdictNo, res.Circuit)
	assert.Equal(t, structure.VerdictNo, res.Path)

	last := res.Trace[len(res.Trace)-1]
	assert.Equal(t, "Euler theorem", last.Title)
	assert.Equal(t, 4, last.Value, "all four nodes have odd degree")
}

func TestAnalyzeEulerian_ParallelSegmentsWalkedSeparately(t *testing.T) {
	s := core.Snapshot{
		Nodes: nodesOf("A", "B"),
		Edges: []core.Edge{seg("e1", "A", "B"), seg("e2", "A", "B")},
	}
	res := structure.AnalyzeEulerian(s)

	assert.Equal(t, structure.VerdictYes, res.Circuit)
	assert.Equal(t, []string{"A", "B", "A"}, res.Witness, "each parallel segment walked once")
}

func TestAnalyzeEulerian_SelfLoopWitness(t *testing.T) {
	s := core.Snapshot{
		Nodes: nodesOf("A"),
		Edges: []core.Edge{seg("loop", "A", "A")},
	}
	res := structure.AnalyzeEulerian(s)

	assert.Equal(t, structure.VerdictYes, res.Circuit)
	assert.Equal(t, []string{"A", "A"}, res.Witness)
}

// ---------------------------------------------------------------------------
// Hamiltonian
// ---------------------------------------------------------------------------

func TestAnalyzeHamiltonian_EmptyNetwork(t *testing.T) {
	res := structure.AnalyzeHamiltonian(core.Snapshot{})

	assert.Equal(t, structure.VerdictYes, res.Circuit)
	assert.Equal(t, structure.VerdictYes, res.Path)
	assert.Equal(t, structure.Definite, res.Certainty)
	assert.Empty(t, res.Witness)
}

func TestAnalyzeHamiltonian_SingleNode(t *testing.T) {
	res := structure.AnalyzeHamiltonian(core.Snapshot{Nodes: nodesOf("A")})

	assert.Equal(t, structure.VerdictYes, res.Circuit)
	assert.Equal(t, structure.VerdictYes, res.Path)
	assert.Equal(t, []string{"A"}, res.Witness)
}

func TestAnalyzeHamiltonian_TwoNodesJoined(t *testing.T) {
	s := core.Snapshot{Nodes: nodesOf("A", "B"), Edges: []core.Edge{seg("e1", "A", "B")}}
	res := structure.AnalyzeHamiltonian(s)

	assert.Equal(t, structure.VerdictNo, res.Circuit, "two nodes cannot close a tour")
	assert.Equal(t, structure.VerdictYes, res.Path)
	assert.Equal(t, []string{"A", "B"}, res.Witness)
}

func TestAnalyzeHamiltonian_TwoNodesBlockedApart(t *testing.T) {
	s := core.Snapshot{
		Nodes: nodesOf("A", "B"),
		Edges: []core.Edge{{ID: "e1", A: "A", B: "B", Weight: 1, Blocked: true}},
	}
	res := structure.AnalyzeHamiltonian(s)

	assert.Equal(t, structure.VerdictNo, res.Circuit)
	assert.Equal(t, structure.VerdictNo, res.Path)
	assert.Empty(t, res.Witness)
}

func TestAnalyzeHamiltonian_Disconnected(t *testing.T) {
	s := core.Snapshot{
		Nodes: nodesOf("A", "B", "C", "D"),
		Edges: []core.Edge{seg("e1", "A", "B"), seg("e2", "C", "D")},
	}
	res := structure.AnalyzeHamiltonian(s)

	assert.Equal(t, structure.VerdictNo, res.Circuit)
	assert.Equal(t, structure.VerdictNo, res.Path)
	assert.Equal(t, []string{"trivial size", "connectivity"}, traceTitles(res))
}

func TestAnalyzeHamiltonian_CompleteFourByDirac(t *testing.T) {
	s := core.Snapshot{
		Nodes: nodesOf("A", "B", "C", "D"),
		Edges: []core.Edge{
			seg("e1", "A", "B"), seg("e2", "A", "C"), seg("e3", "A", "D"),
			seg("e4", "B", "C"), seg("e5", "B", "D"), seg("e6", "C", "D"),
		},
	}
	res := structure.AnalyzeHamiltonian(s)

	assert.Equal(t, structure.VerdictYes, res.Circuit)
	assert.Equal(t, structure.VerdictYes, res.Path)
	assert.Equal(t, structure.Definite, res.Certainty)
	assert.Empty(t, res.Witness, "sufficient conditions prove without constructing")

	last := res.Trace[len(res.Trace)-1]
	assert.Equal(t, "Dirac condition", last.Title)
	assert.Equal(t, 3, last.Value, "minimum degree in a complete four-network")
}

func TestAnalyzeHamiltonian_StarFiveRefutedBySearch(t *testing.T) {
	// Any tour would have to pass through the hub between every pair of
	// leaves, revisiting it.
	s := core.Snapshot{
		Nodes: nodesOf("hub", "a", "b", "c", "d"),
		Edges: []core.Edge{
			seg("e1", "hub", "a"), seg("e2", "hub", "b"),
			seg("e3", "hub", "c"), seg("e4", "hub", "d"),
		},
	}
	res := structure.AnalyzeHamiltonian(s)

	assert.Equal(t, structure.VerdictNo, res.Circuit)
	assert.Equal(t, structure.VerdictNo, res.Path)
	assert.Equal(t, structure.Definite, res.Certainty, "exhaustive absence is conclusive")
	assert.Empty(t, res.Witness)

	last := res.Trace[len(res.Trace)-1]
	assert.Equal(t, "exhaustive search", last.Title)
	assert.Equal(t, "search exhausted; neither exists", last.Conclusion)
}

func TestAnalyzeHamiltonian_OreCatchesWhatDiracMisses(t *testing.T) {
	// Node u has only two neighbors, failing Dirac on five nodes, yet every
	// non-adjacent pair still sums to at least five.
	s := core.Snapshot{
		Nodes: nodesOf("u", "a", "b", "c", "d"),
		Edges: []core.Edge{
			seg("e1", "u", "a"), seg("e2", "u", "b"),
			seg("e3", "a", "c"), seg("e4", "a", "d"),
			seg("e5", "b", "c"), seg("e6", "b", "d"),
			seg("e7", "c", "d"),
		},
	}
	res := structure.AnalyzeHamiltonian(s)

	assert.Equal(t, structure.VerdictYes, res.Circuit)
	assert.Equal(t, structure.VerdictYes, res.Path)
	assert.Empty(t, res.Witness)

	last := res.Trace[len(res.Trace)-1]
	assert.Equal(t, "Ore condition", last.Title)
	assert.Equal(t, 5, last.Value, "weakest non-adjacent pair exactly meets the bound")
}

func TestAnalyzeHamiltonian_NineCycleIndeterminate(t *testing.T) {
	// A nine-node ring obviously has a circuit, but it satisfies neither
	// sufficient condition and sits above the search bound; the analyzer
	// must admit it cannot decide rather than guess.
	nodes := nodesOf("n1", "n2", "n3", "n4", "n5", "n6", "n7", "n8", "n9")
	edges := make([]core.Edge, 0, len(nodes))
	for i := range nodes {
		next := nodes[(i+1)%len(nodes)]
		edges = append(edges, seg("e"+nodes[i].ID, nodes[i].ID, next.ID))
	}
	res := structure.AnalyzeHamiltonian(core.Snapshot{Nodes: nodes, Edges: edges})

	assert.Equal(t, structure.VerdictUnknown, res.Circuit)
	assert.Equal(t, structure.VerdictUnknown, res.Path)
	assert.Equal(t, structure.Indeterminate, res.Certainty)
	assert.Empty(t, res.Witness)

	last := res.Trace[len(res.Trace)-1]
	assert.Equal(t, "search threshold", last.Title)
	assert.Equal(t, 9, last.Value)
}

func TestAnalyzeHamiltonian_EightCycleFoundBySearch(t *testing.T) {
	// Same ring one node smaller: now the search runs and proves the circuit.
	nodes := nodesOf("a", "b", "c", "d", "e", "f", "g", "h")
	edges := make([]core.Edge, 0, len(nodes))
	for i := range nodes {
		next := nodes[(i+1)%len(nodes)]
		edges = append(edges, seg("e"+nodes[i].ID, nodes[i].ID, next.ID))
	}
	res := structure.AnalyzeHamiltonian(core.Snapshot{Nodes: nodes, Edges: edges})

	assert.Equal(t, structure.VerdictYes, res.Circuit)
	assert.Equal(t, structure.VerdictYes, res.Path)
	assert.Equal(t, structure.Definite, res.Certainty)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g", "h", "a"}, res.Witness)
}

func TestAnalyzeHamiltonian_PathGraphPathOnly(t *testing.T) {
	s := core.Snapshot{
		Nodes: nodesOf("a", "b", "c", "d"),
		Edges: []core.Edge{seg("e1", "a", "b"), seg("e2", "b", "c"), seg("e3", "c", "d")},
	}
	res := structure.AnalyzeHamiltonian(s)

	assert.Equal(t, structure.VerdictNo, res.Circuit)
	assert.Equal(t, structure.VerdictYes, res.Path)
	assert.Equal(t, []string{"a", "b", "c", "d"}, res.Witness)

	last := res.Trace[len(res.Trace)-1]
	assert.Equal(t, "path found; no circuit closes", last.Conclusion)
}

func TestAnalyzeHamiltonian_BlockedSegmentFlipsVerdict(t *testing.T) {
	open := core.Snapshot{
		Nodes: nodesOf("a", "b", "c"),
		Edges: []core.Edge{seg("e1", "a", "b"), seg("e2", "b", "c"), seg("e3", "a", "c")},
	}
	blocked := open.Clone()
	blocked.Edges[2].Blocked = true

	withAll := structure.AnalyzeHamiltonian(open)
	assert.Equal(t, structure.VerdictYes, withAll.Circuit, "open triangle closes a tour")

	withBlocked := structure.AnalyzeHamiltonian(blocked)
	assert.Equal(t, structure.VerdictNo, withBlocked.Circuit)
	assert.Equal(t, structure.VerdictYes, withBlocked.Path)
	assert.Equal(t, []string{"a", "b", "c"}, withBlocked.Witness)
}

func TestAnalyzeHamiltonian_LoopsAndParallelsDoNotHelp(t *testing.T) {
	// Extra copies of a-b and a self-loop at b change no tour question.
	s := core.Snapshot{
		Nodes: nodesOf("a", "b", "c"),
		Edges: []core.Edge{
			seg("e1", "a", "b"), seg("e2", "b", "c"),
			seg("dup", "a", "b"), seg("loop", "b", "b"),
		},
	}
	res := structure.AnalyzeHamiltonian(s)

	assert.Equal(t, structure.VerdictNo, res.Circuit)
	assert.Equal(t, structure.VerdictYes, res.Path)
	assert.Equal(t, []string{"a", "b", "c"}, res.Witness)
}

// ---------------------------------------------------------------------------
// Combined report and serialization
// ---------------------------------------------------------------------------

func TestAnalyze_MatchesStandaloneAnalyzers(t *testing.T) {
	s := core.Snapshot{
		Nodes: nodesOf("A", "B", "C", "D", "Z"),
		Edges: []core.Edge{
			seg("e1", "A", "B"), seg("e2", "B", "C"), seg("e3", "C", "D"), seg("e4", "D", "A"),
			{ID: "chord", A: "A", B: "C", Weight: 1, Blocked: true},
		},
	}
	report := structure.Analyze(s)

	require.Equal(t, connectivity.Analyze(s), report.Connectivity)
	require.Equal(t, structure.AnalyzeEulerian(s), report.Eulerian)
	require.Equal(t, structure.AnalyzeHamiltonian(s), report.Hamiltonian)
}

func TestResult_JSONShape(t *testing.T) {
	s := core.Snapshot{
		Nodes: nodesOf("A", "B", "C"),
		Edges: []core.Edge{seg("e1", "A", "B"), seg("e2", "B", "C")},
	}
	raw, err := json.Marshal(structure.AnalyzeEulerian(s))
	require.NoError(t, err)

	js := string(raw)
	assert.Contains(t, js, `"circuitExists":0`)
	assert.Contains(t, js, `"pathExists":1`)
	assert.Contains(t, js, `"certainty":0`)
	assert.Contains(t, js, `"witnessPath":["A","B","C"]`)
	assert.Contains(t, js, `"reasoningTrace":[`)
}
