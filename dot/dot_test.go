package dot_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UnstableBlob/ambulance-shortest-route/core"
	"github.com/UnstableBlob/ambulance-shortest-route/dot"
	"github.com/UnstableBlob/ambulance-shortest-route/network"
)

// dispatchMap builds a small network with both markers, a toll and a closure.
func dispatchMap(t *testing.T) *network.Network {
	t.Helper()
	net := network.New()

	_, err := net.AddNode("A", "Main Depot")
	require.NoError(t, err)
	_, err = net.AddNode("B", "Hospital")
	require.NoError(t, err)
	_, err = net.AddNode("C", "")
	require.NoError(t, err)

	_, err = net.AddRoad("r1", "A", "B", 2.5)
	require.NoError(t, err)
	_, err = net.AddRoad("r2", "B", "C", -1)
	require.NoError(t, err)
	require.NoError(t, net.SetBlocked("r2", true))

	require.NoError(t, net.SetOrigin("A"))
	require.NoError(t, net.SetDestination("B"))

	return net
}

func TestExport_EncodesRolesWeightsAndBlocking(t *testing.T) {
	out, err := dot.Export(dispatchMap(t).Snapshot())
	require.NoError(t, err)

	assert.Contains(t, out, "graph road_network")
	assert.Contains(t, out, "Main Depot")
	assert.Contains(t, out, "doublecircle")
	assert.Contains(t, out, "green")
	assert.Contains(t, out, "red")
	assert.Contains(t, out, "2.5")
	assert.Contains(t, out, "-1")
	assert.Contains(t, out, "dashed")
	assert.Contains(t, out, "gray")
	assert.Equal(t, 2, strings.Count(out, "--"), "two undirected roads")
}

func TestExport_NameAndRankDir(t *testing.T) {
	out, err := dot.Export(dispatchMap(t).Snapshot(),
		dot.WithName("city"), dot.WithRankDir("LR"))
	require.NoError(t, err)

	assert.Contains(t, out, "graph city")
	assert.Contains(t, out, "rankdir=LR")
}

func TestExport_EmptySnapshot(t *testing.T) {
	out, err := dot.Export(core.Snapshot{})
	require.NoError(t, err)
	assert.Contains(t, out, "graph road_network")
}

func TestExport_Deterministic(t *testing.T) {
	net := dispatchMap(t)
	first, err := dot.Export(net.Snapshot())
	require.NoError(t, err)
	second, err := dot.Export(net.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// roadFacts projects edges onto their stable fields, road IDs regenerate on
// Parse so they cannot be compared.
func roadFacts(s core.Snapshot) []core.Edge {
	facts := make([]core.Edge, 0, len(s.Edges))
	for _, e := range s.Edges {
		e.ID = ""
		facts = append(facts, e)
	}
	sort.Slice(facts, func(i, j int) bool {
		if facts[i].A != facts[j].A {
			return facts[i].A < facts[j].A
		}
		if facts[i].B != facts[j].B {
			return facts[i].B < facts[j].B
		}

		return facts[i].Weight < facts[j].Weight
	})

	return facts
}

func TestParse_RoundTrip(t *testing.T) {
	original := dispatchMap(t)
	_, err := original.AddRoad("r3", "A", "B", 7) // parallel road survives too
	require.NoError(t, err)

	out, err := dot.Export(original.Snapshot())
	require.NoError(t, err)

	loaded, err := dot.Parse(out)
	require.NoError(t, err)

	want, got := original.Snapshot(), loaded.Snapshot()
	assert.Equal(t, want.Nodes, got.Nodes, "IDs, labels and markers round-trip")
	assert.Equal(t, roadFacts(want), roadFacts(got))
}

func TestParse_HandwrittenDocument(t *testing.T) {
	src := `
graph sketch {
	depot [ label="Main Depot", shape=doublecircle, color=green ];
	er [ label=ER, shape=doublecircle, color=red ];
	depot -- er [ label=4.5 ];
	depot -- er [ style=dashed ];
}`
	net, err := dot.Parse(src)
	require.NoError(t, err)

	assert.Equal(t, 2, net.NodeCount())
	assert.Equal(t, 2, net.RoadCount())

	origin, ok := net.Origin()
	require.True(t, ok)
	assert.Equal(t, "depot", origin.ID)
	assert.Equal(t, "Main Depot", origin.Label)

	destination, ok := net.Destination()
	require.True(t, ok)
	assert.Equal(t, "er", destination.ID)

	s := net.Snapshot()
	weights := map[float64]bool{}
	for _, e := range s.Edges {
		weights[e.Weight] = e.Blocked
	}
	assert.Equal(t, map[float64]bool{4.5: false, 1: true}, weights,
		"explicit weight stays open, unlabeled dashed road defaults to 1")
}

func TestParse_ImplicitJunctions(t *testing.T) {
	net, err := dot.Parse(`graph g { a -- b; }`)
	require.NoError(t, err)

	assert.Equal(t, 2, net.NodeCount())
	assert.Equal(t, 1, net.RoadCount())
}

func TestParse_RejectsDirected(t *testing.T) {
	_, err := dot.Parse(`digraph g { a -> b; }`)
	assert.ErrorIs(t, err, dot.ErrDirected)
}

func TestParse_RejectsBadSource(t *testing.T) {
	_, err := dot.Parse(`graph g {`)
	assert.ErrorIs(t, err, dot.ErrSyntax)

	_, err = dot.Parse(`graph g { a -- b [ label=heavy ]; }`)
	assert.ErrorIs(t, err, dot.ErrSyntax, "a weight label must be numeric")
}

func TestOptionConstructors_PanicOnBadInput(t *testing.T) {
	assert.Panics(t, func() { dot.WithName("") })
	assert.Panics(t, func() { dot.WithRankDir("NE") })
}
