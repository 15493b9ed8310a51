package dijkstra

import (
	"fmt"
	"maps"
	"math"
	"strconv"

	"github.com/katalvlaran/stepviz/graph"
	"github.com/katalvlaran/stepviz/trace"
)

// Trace runs Dijkstra's algorithm from start over g, reading every edge as
// undirected, and records a step at each of: initialisation, every queue
// extraction (stale ones included), marking a node visited, examining each
// incident edge, each successful relaxation, and completion.
//
// Every step owns independent copies of the distance and visited maps, so
// no later mutation can reach an earlier step.
//
// Preconditions and validation (in order):
//  1. Node ids are unique and edges reference existing nodes (graph errors).
//  2. start is a node (ErrStartNotFound).
//  3. No edge has a negative weight (ErrNegativeWeight).
//
// Complexity (Standard): O(V·E log E) time for the repeated sorts.
// Complexity (Heap):     O((V + E) log E) time.
// Trace size is O(V + E) steps, each O(V) in memory.
func Trace(g graph.Graph, start int, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	adj, err := g.Undirected()
	if err != nil {
		return nil, err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}
	if err = g.ValidateWeights(); err != nil {
		return nil, err
	}

	r := &runner{
		g:       g,
		adj:     adj,
		options: cfg,
		dist:    make(map[int]float64, len(g.Nodes)),
		prev:    make(map[int]int, len(g.Nodes)),
		visited: make(map[int]bool, len(g.Nodes)),
		pq:      newQueue(cfg.Strategy),
		steps:   trace.NewBuilder[Step](2 + 2*len(g.Nodes) + 4*len(g.Edges)),
	}
	r.init(start)
	r.process()

	return &Result{
		Steps:     r.steps.Build(),
		Previous:  r.prev,
		Distances: r.dist,
	}, nil
}

// runner holds the mutable state for a single trace.
type runner struct {
	g       graph.Graph
	adj     graph.Adjacency
	options Options
	dist    map[int]float64
	prev    map[int]int
	visited map[int]bool
	pq      queue
	steps   *trace.Builder[Step]
}

// init sets every distance to +Inf except the start and seeds the queue.
func (r *runner) init(start int) {
	for _, n := range r.g.Nodes {
		r.dist[n.ID] = math.Inf(1)
		r.prev[n.ID] = NoPrevious
	}
	r.dist[start] = 0
	r.pq.push(start, 0)
	r.record(StepInit, nil, nil, "Initialize distances to Infinity, start node to 0.")
}

// process is the extraction loop.
func (r *runner) process() {
	for r.pq.len() > 0 {
		item := r.pq.pop()
		u, d := item.id, item.dist
		r.record(StepProcessing, &u, nil,
			fmt.Sprintf("Processing node %s with distance %s.", r.g.Label(u), formatDist(d)))

		// Stale entry: a shorter distance was pushed after this one.
		if d > r.dist[u] {
			continue
		}
		r.visited[u] = true
		r.record(StepVisited, &u, nil, fmt.Sprintf("Marked node %s as visited.", r.g.Label(u)))
		r.relax(u)
	}
	r.record(StepComplete, nil, nil, "Algorithm complete.")
}

// relax examines every arc out of u in edge-list order.
func (r *runner) relax(u int) {
	for _, a := range r.adj[u] {
		v := a.To
		edge := &graph.EdgeRef{Source: u, Target: v}
		r.record(StepChecking, &u, edge,
			fmt.Sprintf("Checking neighbor %s with edge weight %s.", r.g.Label(v), formatDist(a.Weight)))

		nd := r.dist[u] + a.Weight
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.pq.push(v, nd)
		r.record(StepRelaxed, &u, edge,
			fmt.Sprintf("Updated distance for node %s to %s.", r.g.Label(v), formatDist(nd)))
	}
}

// record appends a step holding deep copies of the current state.
func (r *runner) record(kind StepKind, processing *int, edge *graph.EdgeRef, desc string) {
	s := Step{
		Visited:     maps.Clone(r.visited),
		Distances:   maps.Clone(r.dist),
		Kind:        kind,
		Description: desc,
	}
	if processing != nil {
		p := *processing
		s.Processing = &p
	}
	if edge != nil {
		e := *edge
		s.Edge = &e
	}
	r.steps.Append(s)
}

// formatDist renders a distance the way the step descriptions show it.
func formatDist(d float64) string {
	if math.IsInf(d, 1) {
		return "Infinity"
	}
	return strconv.FormatFloat(d, 'f', -1, 64)
}
