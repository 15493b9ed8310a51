package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/stepviz/graph"
	"github.com/katalvlaran/stepviz/snapshot"
)

const (
	methodDAG      = "DAG"
	methodWeighted = "Weighted"

	// extraEdgeRatio scales the number of random forward edges added to a DAG.
	extraEdgeRatio = 0.4
)

// DAG returns a random directed acyclic graph on n nodes. Each node i < n-1
// gets one edge to a random later node, then ⌊0.4·n⌋ extra forward edges are
// attempted between random pairs. Duplicates and self-pairs are skipped.
// Labels default to decimal ids. Requires a random source.
func DAG(n int, opts ...Option) (graph.Graph, error) {
	cfg := newConfig(opts...)
	if n < 1 {
		return graph.Graph{}, builderErrorf(methodDAG, ErrBadSize, "n=%d", n)
	}
	if cfg.rng == nil {
		return graph.Graph{}, builderErrorf(methodDAG, ErrNeedRandSource, "n=%d", n)
	}
	if !cfg.labelSet {
		cfg.labelFn = DecimalLabelFn
	}
	g := graph.Graph{Nodes: layout(n, cfg)}
	seen := make(map[graph.EdgeRef]bool)
	add := func(u, v int) {
		ref := graph.EdgeRef{Source: u, Target: v}
		if u == v || seen[ref] {
			return
		}
		seen[ref] = true
		g.Edges = append(g.Edges, graph.Edge{Source: u, Target: v, Weight: 1, Status: snapshot.Default})
	}
	for i := 0; i < n-1; i++ {
		add(i, i+1+cfg.rng.Intn(n-1-i))
	}
	for k := 0; k < int(float64(n)*extraEdgeRatio); k++ {
		u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
		if u > v {
			u, v = v, u
		}
		add(u, v)
	}

	return g, nil
}

// Weighted returns a random connected weighted graph on n nodes: a chain
// 0-1-...-(n-1), then for each node one attempt at an edge to a random
// node not already adjacent to it. Weights come from WithWeightFn
// (uniform 1..10 by default) and labels from WithLabelFn ("A", "B", ...).
// Requires a random source.
func Weighted(n int, opts ...Option) (graph.Graph, error) {
	cfg := newConfig(opts...)
	if n < 1 {
		return graph.Graph{}, builderErrorf(methodWeighted, ErrBadSize, "n=%d", n)
	}
	if cfg.rng == nil {
		return graph.Graph{}, builderErrorf(methodWeighted, ErrNeedRandSource, "n=%d", n)
	}
	g := graph.Graph{Nodes: layout(n, cfg)}
	linked := make(map[graph.EdgeRef]bool)
	add := func(u, v int) {
		a, b := min(u, v), max(u, v)
		ref := graph.EdgeRef{Source: a, Target: b}
		if u == v || linked[ref] {
			return
		}
		linked[ref] = true
		g.Edges = append(g.Edges, graph.Edge{Source: u, Target: v, Weight: cfg.weightFn(cfg.rng), Status: snapshot.Default})
	}
	for i := 0; i < n-1; i++ {
		add(i, i+1)
	}
	for i := 0; i < n; i++ {
		add(i, cfg.rng.Intn(n))
	}

	return g, nil
}

// layout places n labelled nodes on the canvas, retrying each position up to
// placementAttempts times to keep minNodeSpacing from earlier nodes. The last
// attempt is kept when no spaced position is found.
func layout(n int, cfg config) []graph.Node {
	nodes := make([]graph.Node, 0, n)
	for i := 0; i < n; i++ {
		var x, y float64
		for attempt := 0; attempt < placementAttempts; attempt++ {
			x = coord(cfg.rng, cfg.canvasW)
			y = coord(cfg.rng, cfg.canvasH)
			if spaced(nodes, x, y) {
				break
			}
		}
		nodes = append(nodes, graph.Node{ID: i, X: x, Y: y, Label: cfg.labelFn(i), Status: snapshot.Default})
	}

	return nodes
}

func coord(rng *rand.Rand, extent float64) float64 {
	return math.Floor(rng.Float64()*(extent-2*canvasPadding)) + canvasPadding
}

func spaced(nodes []graph.Node, x, y float64) bool {
	for _, n := range nodes {
		if math.Hypot(n.X-x, n.Y-y) < minNodeSpacing {
			return false
		}
	}

	return true
}
