package render_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/dijkstra"
	"github.com/katalvlaran/stepviz/floydwarshall"
	"github.com/katalvlaran/stepviz/graph"
	"github.com/katalvlaran/stepviz/gridgraph"
	"github.com/katalvlaran/stepviz/render"
	"github.com/katalvlaran/stepviz/snapshot"
	"github.com/katalvlaran/stepviz/toposort"
)

func plain() *render.Renderer { return render.New(&bytes.Buffer{}) }

func TestArray_PlainMarks(t *testing.T) {
	t.Parallel()

	arr := []snapshot.Element{
		{Value: 5, Status: snapshot.Default},
		{Value: 3, Status: snapshot.Comparing},
		{Value: 9, Status: snapshot.Sorted},
		{Value: 1, Status: snapshot.Found},
	}
	assert.Equal(t, "5  3? 9= 1*", plain().Array(arr))
}

func TestBars(t *testing.T) {
	t.Parallel()

	out := plain().Bars([]snapshot.Element{{Value: 10}, {Value: 5, Status: snapshot.Swapping}, {Value: 0}}, 4)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "  10  ████", lines[0])
	assert.Equal(t, "   5! ██", lines[1])
	assert.Equal(t, "   0  ", lines[2])
}

func TestGrid_Glyphs(t *testing.T) {
	t.Parallel()

	g, s, tg, err := gridgraph.Parse([]string{"S.#", "~.T"})
	require.NoError(t, err)
	g.At(gridgraph.Position{Row: 0, Col: 1}).Status = snapshot.Path
	g.At(gridgraph.Position{Row: 1, Col: 1}).Status = snapshot.Visited

	assert.Equal(t, "S*#\n~oT", plain().Grid(g, s, tg))
}

func TestColour_AddsEscapes(t *testing.T) {
	t.Parallel()

	r := render.New(&bytes.Buffer{}, render.WithColor(true))
	out := r.Array([]snapshot.Element{{Value: 4, Status: snapshot.Sorted}})
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "4=")
}

func TestFrameAndStatus(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := render.New(&buf, render.WithClear(true))
	require.NoError(t, r.Frame("abc"))
	require.NoError(t, r.Status("Searching for 7"))
	assert.Equal(t, "\x1b[H\x1b[2Jabc\n» Searching for 7\n", buf.String())

	assert.Panics(t, func() { render.New(nil) })
}

func TestSummary(t *testing.T) {
	t.Parallel()

	s := render.Summary("bubble-sort", "completed", 12345, 1500*time.Millisecond)
	assert.Equal(t, "bubble-sort: completed in 1.5 s, 12,345 steps", s)
}

func weighted() graph.Graph {
	g := graph.New(3,
		graph.Edge{Source: 0, Target: 1, Weight: 1},
		graph.Edge{Source: 1, Target: 2, Weight: 1},
	)
	g.Nodes[0].Label, g.Nodes[1].Label, g.Nodes[2].Label = "A", "B", "C"

	return g
}

func TestFloydWarshallStep(t *testing.T) {
	t.Parallel()

	g := weighted()
	res, err := floydwarshall.Trace(g)
	require.NoError(t, err)

	first, _ := res.Steps.At(0)
	out := plain().FloydWarshallStep(first, res, g)
	assert.Contains(t, out, "∞")
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "Initialize distance matrix")
	assert.Contains(t, out, "FROM/TO")

	last, _ := res.Steps.Last()
	out = plain().FloydWarshallStep(last, res, g)
	assert.NotContains(t, out, "∞")
}

func TestDijkstraStepAndPaths(t *testing.T) {
	t.Parallel()

	g := weighted()
	g.Nodes = append(g.Nodes, graph.Node{ID: 3, Label: "D", Status: snapshot.Default})
	res, err := dijkstra.Trace(g, 0)
	require.NoError(t, err)

	for _, s := range res.Steps.All() {
		out := plain().DijkstraStep(s, g)
		assert.Contains(t, out, "DISTANCE")
		assert.Contains(t, out, "NOTE")
		assert.NotContains(t, out, "│  │")
		assert.Contains(t, out, s.Description)
	}

	paths := plain().DijkstraPaths(res, g)
	assert.Contains(t, paths, "A → B → C")
	assert.Contains(t, paths, "unreachable")
}

func TestTopoFrame(t *testing.T) {
	t.Parallel()

	g := graph.New(2, graph.Edge{Source: 0, Target: 1})
	g.Edges[0].Status = snapshot.Traversing
	g.Nodes[0].Status = snapshot.Processing
	out := plain().TopoFrame(toposort.Frame{
		Graph:    g,
		InDegree: map[int]int{0: 0, 1: 1},
		Queue:    []int{1},
		Order:    []int{0},
	})
	assert.Contains(t, out, "0 -> 1 (traversing)")
	assert.Contains(t, out, "queue: [1]")
	assert.Contains(t, out, "order: [0]")
	assert.Contains(t, out, "processing")
}
