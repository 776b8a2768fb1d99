package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UnstableBlob/ambulance-shortest-route/builder"
	"github.com/UnstableBlob/ambulance-shortest-route/connectivity"
	"github.com/UnstableBlob/ambulance-shortest-route/core"
	"github.com/UnstableBlob/ambulance-shortest-route/network"
	"github.com/UnstableBlob/ambulance-shortest-route/structure"
)

// edgeIDs collects a snapshot's road IDs in slice order.
func edgeIDs(s core.Snapshot) []string {
	ids := make([]string, 0, len(s.Edges))
	for _, e := range s.Edges {
		ids = append(ids, e.ID)
	}

	return ids
}

func TestPath_ShapeAndWeights(t *testing.T) {
	net, err := builder.BuildNetwork(nil,
		[]builder.BuilderOption{builder.WithSymbolIDs(), builder.WithConstantWeight(2.5)},
		builder.Path(4))
	require.NoError(t, err)

	s := net.Snapshot()
	require.Equal(t, 4, s.NodeCount())
	assert.Equal(t, []string{"A-B", "B-C", "C-D"}, edgeIDs(s))
	for _, e := range s.Edges {
		assert.Equal(t, 2.5, e.Weight)
		assert.False(t, e.Blocked)
	}

	deg := connectivity.Analyze(s).Degrees
	assert.Equal(t, map[string]int{"A": 1, "B": 2, "C": 2, "D": 1}, deg)
}

func TestPath_TooFewNodes(t *testing.T) {
	net, err := builder.BuildNetwork(nil, nil, builder.Path(1))

	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
	assert.Nil(t, net)
}

func TestCycle_ClosesTheRing(t *testing.T) {
	net, err := builder.BuildNetwork(nil, nil, builder.Cycle(5))
	require.NoError(t, err)
	assert.Equal(t, 5, net.RoadCount())

	res := structure.AnalyzeEulerian(net.Snapshot())
	assert.Equal(t, structure.VerdictYes, res.Circuit, "a ring road is an Eulerian circuit")
}

func TestStar_HubAndSpokes(t *testing.T) {
	net, err := builder.BuildNetwork(nil,
		[]builder.BuilderOption{builder.WithIDPrefix("J")},
		builder.Star(5))
	require.NoError(t, err)

	deg := connectivity.Analyze(net.Snapshot()).Degrees
	assert.Equal(t, 4, deg["J0"], "hub carries every spoke")
	for _, leaf := range []string{"J1", "J2", "J3", "J4"} {
		assert.Equal(t, 1, deg[leaf])
	}
}

func TestWheel_BeltwayIsHamiltonian(t *testing.T) {
	net, err := builder.BuildNetwork(nil, nil, builder.Wheel(6))
	require.NoError(t, err)
	assert.Equal(t, 6, net.NodeCount())
	assert.Equal(t, 10, net.RoadCount(), "five ring roads plus five spokes")

	res := structure.AnalyzeHamiltonian(net.Snapshot())
	assert.Equal(t, structure.VerdictYes, res.Circuit)
	assert.Equal(t, "Dirac condition", res.Trace[len(res.Trace)-1].Title,
		"ring degree three meets n/2 on six junctions")
}

func TestComplete_PairCounts(t *testing.T) {
	net, err := builder.BuildNetwork(nil, nil, builder.Complete(5))
	require.NoError(t, err)
	assert.Equal(t, 10, net.RoadCount())

	single, err := builder.BuildNetwork(nil, nil, builder.Complete(1))
	require.NoError(t, err)
	assert.Equal(t, 1, single.NodeCount())
	assert.Equal(t, 0, single.RoadCount())
}

func TestGrid_CityBlocks(t *testing.T) {
	net, err := builder.BuildNetwork(nil, nil, builder.Grid(2, 3))
	require.NoError(t, err)

	s := net.Snapshot()
	assert.Equal(t, 6, s.NodeCount())
	assert.Equal(t, 7, s.EdgeCount(), "2*(3-1) horizontal plus (2-1)*3 vertical")
	assert.True(t, s.HasNode("1,2"))
	assert.Contains(t, edgeIDs(s), "0,0-0,1")
	assert.Contains(t, edgeIDs(s), "0,0-1,0")

	_, err = builder.BuildNetwork(nil, nil, builder.Grid(0, 3))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}

func TestRandomSparse_Validation(t *testing.T) {
	_, err := builder.BuildNetwork(nil, nil, builder.RandomSparse(0, 0.5))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)

	_, err = builder.BuildNetwork(nil, nil, builder.RandomSparse(4, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildNetwork(nil, nil, builder.RandomSparse(4, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource, "stochastic constructor without a seed")
}

func TestRandomSparse_SeedDeterminism(t *testing.T) {
	build := func() core.Snapshot {
		net, err := builder.BuildNetwork(nil,
			[]builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 10)},
			builder.RandomSparse(8, 0.4))
		require.NoError(t, err)

		return net.Snapshot()
	}
	require.Equal(t, build(), build(), "same seed, same network")

	dense, err := builder.BuildNetwork(nil,
		[]builder.BuilderOption{builder.WithSeed(1)},
		builder.RandomSparse(4, 1))
	require.NoError(t, err)
	assert.Equal(t, 6, dense.RoadCount(), "p=1 wires every pair")

	empty, err := builder.BuildNetwork(nil,
		[]builder.BuilderOption{builder.WithSeed(1)},
		builder.RandomSparse(4, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.RoadCount(), "p=0 wires nothing")
}

func TestInto_ComposesOverExisting(t *testing.T) {
	net := network.New()
	_, err := net.AddNode("X", "depot")
	require.NoError(t, err)

	require.NoError(t, builder.Into(net,
		[]builder.BuilderOption{builder.WithIDPrefix("p")},
		builder.Path(3)))
	assert.Equal(t, 4, net.NodeCount())
	assert.Equal(t, 2, net.RoadCount())

	// Composing the same topology again collides on junction IDs.
	err = builder.Into(net, []builder.BuilderOption{builder.WithIDPrefix("p")}, builder.Path(3))
	assert.ErrorIs(t, err, network.ErrDuplicateID)
}

func TestOrchestration_NilInputs(t *testing.T) {
	assert.ErrorIs(t, builder.Into(nil, nil, builder.Path(2)), builder.ErrConstructFailed)

	_, err := builder.BuildNetwork(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestWeightFns(t *testing.T) {
	net, err := builder.BuildNetwork(nil,
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(3, 9)},
		builder.Path(6))
	require.NoError(t, err)
	for _, e := range net.Snapshot().Edges {
		assert.GreaterOrEqual(t, e.Weight, 3.0)
		assert.Less(t, e.Weight, 9.0)
	}

	tolled, err := builder.BuildNetwork(nil,
		[]builder.BuilderOption{builder.WithConstantWeight(-2)},
		builder.Path(3))
	require.NoError(t, err)
	for _, e := range tolled.Snapshot().Edges {
		assert.Equal(t, -2.0, e.Weight, "negative tolls are a legal weight policy")
	}

	// Distribution fns fall back to the default weight without an RNG.
	assert.Equal(t, builder.DefaultRoadWeight, builder.NormalWeightFn(10, 2)(nil))
	assert.Equal(t, builder.DefaultRoadWeight, builder.ExponentialWeightFn(0.5)(nil))
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "7", builder.DefaultIDFn(7))
	assert.Equal(t, "Z", builder.SymbolIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "10", builder.AlphanumericIDFn(36))
	assert.Equal(t, "ff", builder.HexIDFn(255))
	assert.Equal(t, "J3", builder.SymbolNumberIDFn("J")(3))
}

func TestOptionConstructors_PanicOnBadInput(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 1) })
	assert.Panics(t, func() { builder.NormalWeightFn(0, -1) })
	assert.Panics(t, func() { builder.ExponentialWeightFn(0) })
	assert.Panics(t, func() { builder.SymbolIDFn(26) })
}
