package builder_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/builder"
	"github.com/katalvlaran/stepviz/dfs"
	"github.com/katalvlaran/stepviz/dijkstra"
	"github.com/katalvlaran/stepviz/graph"
	"github.com/katalvlaran/stepviz/gridgraph"
	"github.com/katalvlaran/stepviz/snapshot"
)

func TestArray_RangeAndDeterminism(t *testing.T) {
	a, err := builder.Array(builder.WithSeed(7))
	require.NoError(t, err)
	require.Len(t, a, builder.DefaultArraySize)
	for _, e := range a {
		assert.GreaterOrEqual(t, e.Value, builder.DefaultValueMin)
		assert.LessOrEqual(t, e.Value, builder.DefaultValueMax)
		assert.Equal(t, snapshot.Default, e.Status)
	}

	b, err := builder.Array(builder.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := builder.Array(builder.WithSeed(7), builder.WithSize(5), builder.WithValueRange(3, 3))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3, 3, 3, 3}, snapshot.Values(c))
}

func TestArray_NeedsRand(t *testing.T) {
	_, err := builder.Array()
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestGrid_Defaults(t *testing.T) {
	g, s, tg, err := builder.Grid()
	require.NoError(t, err)
	assert.Equal(t, builder.DefaultGridRows, g.Rows)
	assert.Equal(t, builder.DefaultGridCols, g.Cols)
	assert.Equal(t, builder.DefaultStart, s)
	assert.Equal(t, builder.DefaultTarget, tg)
	assert.Zero(t, g.Count(snapshot.Wall), "no rng means an open grid")
}

func TestGrid_RandomTerrain(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g, s, tg, err := builder.Grid(builder.WithSeed(seed), builder.WithWallDensity(0.4), builder.WithWeightDensity(0.5))
		require.NoError(t, err)
		assert.NotEqual(t, snapshot.Wall, g.At(s).Status)
		assert.NotEqual(t, snapshot.Wall, g.At(tg).Status)
		assert.NotEqual(t, snapshot.Weight, g.At(s).Status)
	}

	a, _, _, err := builder.Grid(builder.WithSeed(3))
	require.NoError(t, err)
	b, _, _, err := builder.Grid(builder.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
	assert.Positive(t, a.Count(snapshot.Wall))
}

func TestGrid_CustomSizeUsesCorners(t *testing.T) {
	g, s, tg, err := builder.Grid(builder.WithGridSize(3, 5))
	require.NoError(t, err)
	assert.Equal(t, 15, g.Size())
	assert.Equal(t, gridgraph.Position{Row: 0, Col: 0}, s)
	assert.Equal(t, gridgraph.Position{Row: 2, Col: 4}, tg)
}

func TestGrid_Errors(t *testing.T) {
	_, _, _, err := builder.Grid(builder.WithGridSize(1, 1))
	assert.ErrorIs(t, err, builder.ErrBadSize)

	p := gridgraph.Position{Row: 1, Col: 1}
	_, _, _, err = builder.Grid(builder.WithGridSize(3, 3), builder.WithEndpoints(p, p))
	assert.ErrorIs(t, err, builder.ErrBadEndpoints)

	_, _, _, err = builder.Grid(builder.WithGridSize(3, 3), builder.WithEndpoints(p, gridgraph.Position{Row: 5, Col: 0}))
	assert.ErrorIs(t, err, builder.ErrBadEndpoints)
}

func TestDAG_IsAcyclic(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		g, err := builder.DAG(7, builder.WithSeed(seed))
		require.NoError(t, err)
		require.NoError(t, g.Validate())
		assert.GreaterOrEqual(t, len(g.Edges), 6)
		for _, e := range g.Edges {
			assert.Less(t, e.Source, e.Target, "edges point forward")
		}
		_, err = dfs.TopologicalSort(t.Context(), g)
		assert.NoError(t, err)
		assert.Equal(t, "3", g.Label(3))
	}
}

func TestWeighted_ConnectedAndBounded(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		g, err := builder.Weighted(5, builder.WithSeed(seed))
		require.NoError(t, err)
		require.NoError(t, g.ValidateWeights())
		seen := make(map[graph.EdgeRef]bool)
		for _, e := range g.Edges {
			assert.GreaterOrEqual(t, e.Weight, 1.0)
			assert.LessOrEqual(t, e.Weight, 10.0)
			assert.NotEqual(t, e.Source, e.Target)
			ref := graph.EdgeRef{Source: min(e.Source, e.Target), Target: max(e.Source, e.Target)}
			assert.False(t, seen[ref], "no parallel edges")
			seen[ref] = true
		}

		res, err := dijkstra.Trace(g, 0)
		require.NoError(t, err)
		for id, d := range res.Distances {
			assert.Less(t, d, 1e9, "node %d reachable", id)
		}
		for _, n := range g.Nodes {
			assert.GreaterOrEqual(t, n.X, 50.0)
			assert.Less(t, n.X, builder.DefaultCanvasW-50)
		}
	}

	g, err := builder.Weighted(3, builder.WithSeed(1), builder.WithConstantWeight(2))
	require.NoError(t, err)
	assert.Equal(t, "A", g.Label(0))
	assert.Equal(t, "C", g.Label(2))
	for _, e := range g.Edges {
		assert.Equal(t, 2.0, e.Weight)
	}
}

func TestGraphGenerators_Errors(t *testing.T) {
	_, err := builder.DAG(0, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.DAG(3)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.Weighted(-1, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.Weighted(3)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithSize(0) })
	assert.Panics(t, func() { builder.WithValueRange(5, 4) })
	assert.Panics(t, func() { builder.WithGridSize(0, 3) })
	assert.Panics(t, func() { builder.WithWallDensity(1) })
	assert.Panics(t, func() { builder.WithWeightDensity(-0.1) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithLabelFn(nil) })
	assert.Panics(t, func() { builder.WithCanvas(100, 400) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })
	assert.Panics(t, func() { builder.ExcelColumnLabelFn(-1) })
}

func TestLabelFns(t *testing.T) {
	cases := map[int]string{0: "A", 25: "Z", 26: "AA", 27: "AB", 701: "ZZ", 702: "AAA"}
	for idx, want := range cases {
		assert.Equal(t, want, builder.ExcelColumnLabelFn(idx))
	}
	assert.Equal(t, "42", builder.DecimalLabelFn(42))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(3, 9)(nil))
}

func TestParseScenario(t *testing.T) {
	s, err := builder.ParseScenario([]byte(`
name: diamond
algorithm: dijkstra
start: 0
graph:
  nodes:
    - {id: 0, label: S}
    - {id: 1}
    - {id: 2}
    - {id: 3, label: T}
  edges:
    - {from: 0, to: 1, weight: 1}
    - {from: 0, to: 2, weight: 4}
    - {from: 1, to: 3, weight: 5}
    - {from: 2, to: 3, weight: 1}
`))
	require.NoError(t, err)
	assert.Equal(t, "dijkstra", s.Algorithm)
	g, err := s.GraphInput()
	require.NoError(t, err)
	assert.Len(t, g.Nodes, 4)
	assert.Equal(t, "S", g.Label(0))
	assert.Equal(t, "1", g.Label(1))

	_, _, _, err = s.GridInput()
	assert.ErrorIs(t, err, builder.ErrBadScenario)
}

func TestParseScenario_CountAndGrid(t *testing.T) {
	s, err := builder.ParseScenario([]byte("graph:\n  count: 3\n  edges:\n    - {from: 0, to: 2}\n"))
	require.NoError(t, err)
	g, err := s.GraphInput()
	require.NoError(t, err)
	assert.Len(t, g.Nodes, 3)

	s, err = builder.ParseScenario([]byte("grid:\n  - \"S.\"\n  - \"#T\"\narray: [3, 1, 2]\ntarget: 2\n"))
	require.NoError(t, err)
	grid, start, target, err := s.GridInput()
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Position{Row: 0, Col: 0}, start)
	assert.Equal(t, gridgraph.Position{Row: 1, Col: 1}, target)
	assert.Equal(t, snapshot.Wall, grid.At(gridgraph.Position{Row: 1, Col: 0}).Status)
	assert.Equal(t, []int{3, 1, 2}, snapshot.Values(s.Elements()))
	require.NotNil(t, s.Target)
	assert.Equal(t, 2, *s.Target)
}

func TestParseScenario_Errors(t *testing.T) {
	for name, doc := range map[string]string{
		"empty":       "",
		"no input":    "name: nothing\n",
		"unknown key": "array: [1]\ncolour: red\n",
		"bad yaml":    "array: [1,\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := builder.ParseScenario([]byte(doc))
			assert.ErrorIs(t, err, builder.ErrBadScenario)
		})
	}

	s, err := builder.ParseScenario([]byte("graph:\n  count: 2\n  edges:\n    - {from: 0, to: 5}\n"))
	require.NoError(t, err)
	_, err = s.GraphInput()
	assert.ErrorIs(t, err, builder.ErrBadScenario)
	assert.ErrorIs(t, err, graph.ErrUnknownNode)
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sort.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm: bubble-sort\narray: [5, 4, 3]\n"), 0o600))
	s, err := builder.LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 4, 3}, s.Array)

	_, err = builder.LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
