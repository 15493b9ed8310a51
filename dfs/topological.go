package dfs

import (
	"context"
	"slices"

	"github.com/katalvlaran/stepviz/graph"
)

// topoSorter encapsulates state for a depth-first topological sort.
type topoSorter struct {
	ctx   context.Context
	adj   graph.Adjacency
	state map[int]int // White, Gray or Black
	order []int       // post-order
}

// TopologicalSort orders the nodes of g so that every directed edge u→v has
// u before v. Roots are tried in ascending id order and neighbors in
// edge-list order, so the result is deterministic.
//
// Returns graph.ErrUnknownNode for dangling edges, ErrCycleDetected on a back
// edge, or ctx.Err() when cancelled.
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort(ctx context.Context, g graph.Graph) ([]int, error) {
	adj, err := g.Directed()
	if err != nil {
		return nil, err
	}
	ids := g.IDs()
	slices.Sort(ids)

	t := &topoSorter{
		ctx:   ctx,
		adj:   adj,
		state: make(map[int]int, len(ids)),
		order: make([]int, 0, len(ids)),
	}
	for _, v := range ids {
		if t.state[v] != White {
			continue
		}
		if err = t.visit(v); err != nil {
			return nil, err
		}
	}
	slices.Reverse(t.order)

	return t.order, nil
}

// visit explores id depth-first, recording it in post-order.
func (t *topoSorter) visit(id int) error {
	select {
	case <-t.ctx.Done():
		return t.ctx.Err()
	default:
	}
	switch t.state[id] {
	case Gray:
		return ErrCycleDetected
	case Black:
		return nil
	}
	t.state[id] = Gray
	for _, a := range t.adj[id] {
		if err := t.visit(a.To); err != nil {
			return err
		}
	}
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
