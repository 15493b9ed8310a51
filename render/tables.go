package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/stepviz/dijkstra"
	"github.com/katalvlaran/stepviz/floydwarshall"
	"github.com/katalvlaran/stepviz/graph"
	"github.com/katalvlaran/stepviz/snapshot"
	"github.com/katalvlaran/stepviz/toposort"
)

// infinity is how unreachable distances are printed.
const infinity = "∞"

func formatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return infinity
	}

	return strconv.FormatFloat(d, 'f', -1, 64)
}

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)

	return tbl
}

// FloydWarshallStep renders the step's matrix with node labels from g.
// The cell (I, J) under consideration is highlighted and K's row and column
// are marked in the headers.
func (r *Renderer) FloydWarshallStep(s floydwarshall.Step, res *floydwarshall.Result, g graph.Graph) string {
	var hi, hj, hk = -1, -1, -1
	if s.I != nil {
		hi, hj, hk = res.IndexOf[*s.I], res.IndexOf[*s.J], res.IndexOf[*s.K]
	}

	header := table.Row{"From/To"}
	for j, id := range res.NodeAt {
		label := g.Label(id)
		if j == hk {
			label = r.paint(snapshot.Pivot, label+"ᵏ")
		}
		header = append(header, label)
	}

	tbl := newTable()
	tbl.AppendHeader(header)
	for i, row := range s.Distances {
		label := g.Label(res.NodeAt[i])
		if i == hk {
			label = r.paint(snapshot.Pivot, label+"ᵏ")
		}
		cells := table.Row{label}
		for j, d := range row {
			text := formatDistance(d)
			switch {
			case i == hi && j == hj && s.Kind == floydwarshall.StepRelaxed:
				text = r.paint(snapshot.Found, text)
			case i == hi && j == hj:
				text = r.paint(snapshot.Comparing, text)
			}
			cells = append(cells, text)
		}
		tbl.AppendRow(cells)
	}
	tbl.SetCaption("%s", s.Description)

	return tbl.Render()
}

// DijkstraStep renders one row per node: distance, visited flag, and a
// marker for the node being processed or the edge under examination.
func (r *Renderer) DijkstraStep(s dijkstra.Step, g graph.Graph) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Node", "Distance", "Visited", "Note"})
	for _, id := range g.IDs() {
		var note string
		status := snapshot.Default
		switch {
		case s.Processing != nil && *s.Processing == id:
			note, status = "processing", snapshot.Processing
		case s.Edge != nil && (s.Edge.Source == id || s.Edge.Target == id):
			note, status = "edge", snapshot.Comparing
		case s.Visited[id]:
			status = snapshot.Visited
		}
		visited := ""
		if s.Visited[id] {
			visited = "yes"
		}
		tbl.AppendRow(table.Row{r.paint(status, g.Label(id)), formatDistance(s.Distances[id]), visited, note})
	}
	tbl.SetCaption("[%s] %s", s.Kind, s.Description)

	return tbl.Render()
}

// DijkstraPaths renders the shortest path from the start to every node.
func (r *Renderer) DijkstraPaths(res *dijkstra.Result, g graph.Graph) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Target", "Distance", "Path"})
	for _, id := range g.IDs() {
		path := res.PathTo(id)
		labels := make([]string, len(path))
		for i, p := range path {
			labels[i] = g.Label(p)
		}
		route := strings.Join(labels, " → ")
		if route == "" {
			route = "unreachable"
		}
		tbl.AppendRow(table.Row{g.Label(id), formatDistance(res.Distances[id]), route})
	}

	return tbl.Render()
}

// TopoFrame renders node and edge states, in-degrees, the queue and the
// order produced so far.
func (r *Renderer) TopoFrame(f toposort.Frame) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Node", "In-degree", "Status"})
	for _, n := range f.Graph.Nodes {
		tbl.AppendRow(table.Row{r.paint(n.Status, f.Graph.Label(n.ID)), f.InDegree[n.ID], n.Status})
	}

	var b strings.Builder
	b.WriteString(tbl.Render())
	b.WriteByte('\n')
	for _, e := range f.Graph.Edges {
		if e.Status == snapshot.Default {
			continue
		}
		b.WriteString(r.paint(e.Status, fmt.Sprintf("%s -> %s (%s)", f.Graph.Label(e.Source), f.Graph.Label(e.Target), e.Status)))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "queue: %s\norder: %s", r.labels(f.Graph, f.Queue), r.labels(f.Graph, f.Order))

	return b.String()
}

func (r *Renderer) labels(g graph.Graph, ids []int) string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = g.Label(id)
	}

	return "[" + strings.Join(out, " ") + "]"
}
