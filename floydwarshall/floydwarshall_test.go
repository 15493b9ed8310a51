package floydwarshall_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/dijkstra"
	"github.com/katalvlaran/stepviz/floydwarshall"
	"github.com/katalvlaran/stepviz/graph"
)

func fiveNode() graph.Graph {
	return graph.New(5,
		graph.Edge{Source: 0, Target: 1, Weight: 4},
		graph.Edge{Source: 0, Target: 2, Weight: 1},
		graph.Edge{Source: 2, Target: 1, Weight: 2},
		graph.Edge{Source: 1, Target: 3, Weight: 1},
		graph.Edge{Source: 2, Target: 3, Weight: 5},
		graph.Edge{Source: 3, Target: 4, Weight: 3},
	)
}

func randomGraph(rnd *rand.Rand, n int) graph.Graph {
	var edges []graph.Edge
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rnd.Float64() < 0.35 {
				edges = append(edges, graph.Edge{Source: u, Target: v, Weight: float64(1 + rnd.Intn(9))})
			}
		}
	}
	return graph.New(n, edges...)
}

func TestFromGraph_ParallelEdges(t *testing.T) {
	g := graph.New(3,
		graph.Edge{Source: 0, Target: 1, Weight: 7},
		graph.Edge{Source: 1, Target: 0, Weight: 3},
		graph.Edge{Source: 2, Target: 2, Weight: 5},
	)
	m, indexOf, nodeAt, err := floydwarshall.FromGraph(g)
	require.NoError(t, err)
	assert.Equal(t, 3.0, m[0][1])
	assert.Equal(t, 3.0, m[1][0])
	assert.Equal(t, 0.0, m[2][2])
	assert.True(t, math.IsInf(m[0][2], 1))
	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 2}, indexOf)
	assert.Equal(t, []int{0, 1, 2}, nodeAt)
}

func TestTrace_MatchesDijkstra(t *testing.T) {
	res, err := floydwarshall.Trace(fiveNode())
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3, 1, 4, 7}, res.Final[0])

	rnd := rand.New(rand.NewSource(5))
	for trial := 0; trial < 10; trial++ {
		g := randomGraph(rnd, 2+rnd.Intn(6))
		fw, err := floydwarshall.Trace(g, floydwarshall.WithCheckSteps(false))
		require.NoError(t, err)
		for _, src := range g.IDs() {
			dj, err := dijkstra.Trace(g, src)
			require.NoError(t, err)
			for _, dst := range g.IDs() {
				d, ok := fw.Distance(src, dst)
				require.True(t, ok)
				assert.Equal(t, dj.Distances[dst], d, "trial %d %d→%d", trial, src, dst)
			}
		}
	}
}

func TestTrace_StepLayout(t *testing.T) {
	g := graph.New(3,
		graph.Edge{Source: 0, Target: 1, Weight: 1},
		graph.Edge{Source: 1, Target: 2, Weight: 1},
	)
	res, err := floydwarshall.Trace(g)
	require.NoError(t, err)

	// init + 27 checks + 2 relaxations (0↔2 via 1) + complete
	require.Equal(t, 31, res.Steps.Len())

	first, _ := res.Steps.At(0)
	assert.Equal(t, floydwarshall.StepInit, first.Kind)
	assert.Nil(t, first.K)
	assert.Equal(t, "Initialize distance matrix with edges. Diagonals are 0.", first.Description)

	second, _ := res.Steps.At(1)
	assert.Equal(t, floydwarshall.StepChecking, second.Kind)
	assert.Equal(t, 0, *second.K)
	assert.Equal(t, 0, *second.I)
	assert.Equal(t, 0, *second.J)
	assert.Equal(t, "Checking path from 0 to 0 via 0.", second.Description)

	var relaxed []floydwarshall.Step
	for _, s := range res.Steps.All() {
		if s.Kind == floydwarshall.StepRelaxed {
			relaxed = append(relaxed, s)
		}
	}
	require.Len(t, relaxed, 2)
	assert.Equal(t, "Updated distance [0][2] to 2.", relaxed[0].Description)
	assert.Equal(t, 1, *relaxed[0].K)
	assert.Equal(t, "Updated distance [2][0] to 2.", relaxed[1].Description)

	last, _ := res.Steps.Last()
	assert.Equal(t, floydwarshall.StepComplete, last.Kind)
	assert.Equal(t, res.Final, last.Distances)
}

func TestTrace_NoAliasing(t *testing.T) {
	res, err := floydwarshall.Trace(fiveNode())
	require.NoError(t, err)
	first, _ := res.Steps.At(0)
	assert.True(t, math.IsInf(first.Distances[0][4], 1))
	first.Distances[0][0] = 42
	second, _ := res.Steps.At(1)
	assert.Equal(t, 0.0, second.Distances[0][0])

	again, _ := res.Steps.At(0)
	assert.Equal(t, 0.0, again.Distances[0][0])
	require.NotNil(t, second.K)
	*second.K = -7
	second, _ = res.Steps.At(1)
	assert.NotEqual(t, -7, *second.K)
}

func TestTrace_WithoutCheckSteps(t *testing.T) {
	res, err := floydwarshall.Trace(fiveNode(), floydwarshall.WithCheckSteps(false))
	require.NoError(t, err)
	for _, s := range res.Steps.All() {
		assert.NotEqual(t, floydwarshall.StepChecking, s.Kind)
	}
}

// TestClosure_IdempotentAndTriangle checks the fixpoint and the triangle
// inequality on random graphs.
func TestClosure_IdempotentAndTriangle(t *testing.T) {
	rnd := rand.New(rand.NewSource(9))
	for trial := 0; trial < 15; trial++ {
		m, _, _, err := floydwarshall.FromGraph(randomGraph(rnd, 1+rnd.Intn(8)))
		require.NoError(t, err)
		orig := m.Clone()

		once, err := floydwarshall.Closure(m)
		require.NoError(t, err)
		twice, err := floydwarshall.Closure(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "trial %d", trial)
		assert.Equal(t, orig, m, "input mutated")

		n := once.Size()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				for k := 0; k < n; k++ {
					assert.LessOrEqual(t, once[i][j], once[i][k]+once[k][j])
				}
			}
		}
	}
}

func TestErrors(t *testing.T) {
	_, err := floydwarshall.Trace(graph.New(2, graph.Edge{Source: 0, Target: 1, Weight: -3}))
	assert.ErrorIs(t, err, floydwarshall.ErrNegativeWeight)

	_, err = floydwarshall.Trace(graph.New(1, graph.Edge{Source: 0, Target: 4}))
	assert.ErrorIs(t, err, graph.ErrUnknownNode)

	_, err = floydwarshall.Closure(floydwarshall.Matrix{{0, 1}, {0}})
	assert.ErrorIs(t, err, floydwarshall.ErrNotSquare)

	res, err := floydwarshall.Trace(graph.Graph{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Steps.Len())
	_, ok := res.Distance(0, 0)
	assert.False(t, ok)
}
