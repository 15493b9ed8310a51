package astar_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/astar"
	"github.com/katalvlaran/stepviz/control"
	"github.com/katalvlaran/stepviz/gridgraph"
	"github.com/katalvlaran/stepviz/snapshot"
)

func instant() *control.Runtime {
	return control.NewRuntime(control.WithClock(control.InstantClock{}))
}

func parse(t *testing.T, lines ...string) (*gridgraph.Grid, gridgraph.Position, gridgraph.Position) {
	t.Helper()
	g, s, tg, err := gridgraph.Parse(lines)
	require.NoError(t, err)

	return g, s, tg
}

// assertContiguous checks that consecutive path cells are adjacent.
func assertContiguous(t *testing.T, path []gridgraph.Position, diagonal bool) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		dr := abs(path[i].Row - path[i-1].Row)
		dc := abs(path[i].Col - path[i-1].Col)
		if diagonal {
			assert.True(t, dr <= 1 && dc <= 1 && dr+dc > 0, "step %d", i)
		} else {
			assert.Equal(t, 1, dr+dc, "step %d", i)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestRun_OpenGrid(t *testing.T) {
	g, _, _ := parse(t, "S..", "...", "..T")
	start, target := gridgraph.Position{Row: 0, Col: 0}, gridgraph.Position{Row: 2, Col: 2}

	for _, s := range []astar.Strategy{astar.Standard, astar.Heap} {
		res, err := astar.Run(context.Background(), g, start, target, nil, instant(), astar.WithStrategy(s))
		require.NoError(t, err)
		require.True(t, res.Found)
		assert.Len(t, res.Path, 5)
		assert.Equal(t, 4.0, res.Cost)
		assert.Equal(t, start, res.Path[0])
		assert.Equal(t, target, res.Path[4])
		assertContiguous(t, res.Path, false)
		assert.False(t, res.Cancelled)
	}
}

func TestRun_DoesNotMutateInput(t *testing.T) {
	g, s, tg := parse(t, "S.#", "..#", "..T")
	before := g.Clone()
	_, err := astar.Run(context.Background(), g, s, tg, nil, instant())
	require.NoError(t, err)
	assert.Equal(t, before, g)
}

func TestRun_WeightedCorridor(t *testing.T) {
	g, s, tg := parse(t,
		"S~~~~T",
		".####.",
		"......",
	)
	var last *gridgraph.Grid
	res, err := astar.Run(context.Background(), g, s, tg, func(snap *gridgraph.Grid) { last = snap }, instant())
	require.NoError(t, err)
	require.True(t, res.Found)

	for _, p := range res.Path {
		assert.False(t, p.Row == 0 && p.Col >= 1 && p.Col <= 4, "path enters weighted cell %v", p)
	}
	assert.Equal(t, 9.0, res.Cost)
	assert.Len(t, res.Path, 10)
	require.NotNil(t, last)
	assert.Equal(t, len(res.Path), last.Count(snapshot.Path))
}

func TestRun_WeightCostOption(t *testing.T) {
	g, s, tg := parse(t,
		"S~~~~T",
		".####.",
		"......",
	)
	res, err := astar.Run(context.Background(), g, s, tg, nil, instant(), astar.WithWeightCost(1))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 5.0, res.Cost)
	assert.Len(t, res.Path, 6)
}

func TestRun_EnclosedTarget(t *testing.T) {
	g, s, tg := parse(t,
		"S....",
		"..###",
		"..#T#",
		"..###",
	)
	var msgs []string
	var last *gridgraph.Grid
	rt := control.NewRuntime(
		control.WithClock(control.InstantClock{}),
		control.WithStatusSink(func(m string) { msgs = append(msgs, m) }),
	)
	res, err := astar.Run(context.Background(), g, s, tg, func(snap *gridgraph.Grid) { last = snap }, rt)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
	require.NotNil(t, last)
	assert.Zero(t, last.Count(snapshot.Path))
	assert.Equal(t, astar.MsgNoPath, msgs[len(msgs)-1])
}

func TestRun_Diagonal(t *testing.T) {
	g, _, _ := parse(t, "S..", "...", "..T")
	start, target := gridgraph.Position{}, gridgraph.Position{Row: 2, Col: 2}

	for _, h := range []astar.Heuristic{astar.Octile, astar.Chebyshev, astar.Euclidean} {
		res, err := astar.Run(context.Background(), g, start, target, nil, instant(),
			astar.WithDiagonal(true), astar.WithHeuristic(h))
		require.NoError(t, err)
		require.True(t, res.Found, h.String())
		assert.Len(t, res.Path, 3, h.String())
		assert.InDelta(t, 2*math.Sqrt2, res.Cost, 1e-9, h.String())
		assertContiguous(t, res.Path, true)
	}
}

func TestRun_DiagonalNoCornerCutting(t *testing.T) {
	g, s, tg := parse(t,
		"S#",
		"#T",
	)
	res, err := astar.Run(context.Background(), g, s, tg, nil, instant(),
		astar.WithDiagonal(true), astar.WithHeuristic(astar.Octile))
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestRun_ManhattanDiagonalWarns(t *testing.T) {
	g, _, _ := parse(t, "S.", ".T")
	var msgs []string
	rt := control.NewRuntime(
		control.WithClock(control.InstantClock{}),
		control.WithStatusSink(func(m string) { msgs = append(msgs, m) }),
	)
	_, err := astar.Run(context.Background(), g, gridgraph.Position{}, gridgraph.Position{Row: 1, Col: 1}, nil, rt,
		astar.WithDiagonal(true))
	require.NoError(t, err)
	require.NotEmpty(t, msgs)
	assert.Equal(t, astar.MsgInadmissible, msgs[0])
	assert.Equal(t, astar.MsgPathFound, msgs[len(msgs)-1])
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()
	_, err := astar.Run(ctx, nil, gridgraph.Position{}, gridgraph.Position{}, nil, nil)
	assert.ErrorIs(t, err, astar.ErrNilGrid)

	g, _, _ := parse(t, "#S", ".T")
	_, err = astar.Run(ctx, g, gridgraph.Position{Row: 5}, gridgraph.Position{}, nil, nil)
	assert.ErrorIs(t, err, astar.ErrOutOfBounds)
	_, err = astar.Run(ctx, g, gridgraph.Position{Row: 1}, gridgraph.Position{Col: 9}, nil, nil)
	assert.ErrorIs(t, err, astar.ErrOutOfBounds)
	_, err = astar.Run(ctx, g, gridgraph.Position{}, gridgraph.Position{Row: 1, Col: 1}, nil, nil)
	assert.ErrorIs(t, err, astar.ErrStartIsWall)

	res, err := astar.Run(ctx, &gridgraph.Grid{}, gridgraph.Position{}, gridgraph.Position{}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, astar.Result{}, res)
}

func TestRun_StartIsTarget(t *testing.T) {
	g, _, _ := parse(t, "ST")
	res, err := astar.Run(context.Background(), g, gridgraph.Position{}, gridgraph.Position{}, nil, instant())
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []gridgraph.Position{{}}, res.Path)
	assert.Zero(t, res.Cost)
}

// TestRun_MatchesBFS compares path lengths with breadth-first hop distance on
// random unweighted grids, for both strategies.
func TestRun_MatchesBFS(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for trial := 0; trial < 40; trial++ {
		rows, cols := 3+rnd.Intn(6), 3+rnd.Intn(6)
		g, err := gridgraph.NewGrid(rows, cols)
		require.NoError(t, err)
		for i := range g.Cells {
			if rnd.Float64() < 0.3 {
				g.Cells[i].Status = snapshot.Wall
			}
		}
		start := gridgraph.Position{}
		target := gridgraph.Position{Row: rows - 1, Col: cols - 1}
		g.At(start).Status = snapshot.Default
		g.At(target).Status = snapshot.Default

		want := g.HopDistance(start, target, gridgraph.Conn4)
		var expanded [2]int
		for si, s := range []astar.Strategy{astar.Standard, astar.Heap} {
			res, err := astar.Run(context.Background(), g, start, target, nil, instant(), astar.WithStrategy(s))
			require.NoError(t, err)
			expanded[si] = res.Expanded
			if want < 0 {
				assert.False(t, res.Found, "trial %d", trial)
				continue
			}
			require.True(t, res.Found, "trial %d", trial)
			assert.Equal(t, want, len(res.Path)-1, "trial %d", trial)
			assert.Equal(t, float64(want), res.Cost, "trial %d", trial)
		}
		assert.Equal(t, expanded[0], expanded[1], "trial %d: strategies diverged", trial)
	}
}

func TestRun_StopNoFurtherPublishes(t *testing.T) {
	g, err := gridgraph.NewGrid(8, 8)
	require.NoError(t, err)
	rt := instant()
	published := 0
	res, err := astar.Run(context.Background(), g, gridgraph.Position{}, gridgraph.Position{Row: 7, Col: 7},
		func(*gridgraph.Grid) {
			published++
			if published == 3 {
				rt.Signals.Stop()
			}
		}, rt)
	require.NoError(t, err)
	assert.True(t, res.Cancelled)
	assert.Equal(t, 3, published)
}

func TestRun_ContextCancelled(t *testing.T) {
	g, _, _ := parse(t, "S...", "...T")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	published := 0
	res, err := astar.Run(ctx, g, gridgraph.Position{}, gridgraph.Position{Row: 1, Col: 3},
		func(*gridgraph.Grid) { published++ }, instant())
	require.NoError(t, err)
	assert.True(t, res.Cancelled)
	assert.Zero(t, published)
}

func TestParseHeuristic(t *testing.T) {
	h, err := astar.ParseHeuristic("Octile")
	require.NoError(t, err)
	assert.Equal(t, astar.Octile, h)

	_, err = astar.ParseHeuristic("taxicab")
	assert.ErrorIs(t, err, astar.ErrUnknownHeuristic)
	assert.Equal(t, "Heuristic(9)", astar.Heuristic(9).String())
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { astar.WithWeightCost(0.5) })
	assert.Panics(t, func() { astar.WithHeuristic(astar.Heuristic(42)) })
}
