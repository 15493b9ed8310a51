package toposort

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/katalvlaran/stepviz/control"
	"github.com/katalvlaran/stepviz/graph"
	"github.com/katalvlaran/stepviz/snapshot"
)

// Status messages sent to the runtime's status sink.
const (
	MsgCompleted = "Topological Sort Completed Successfully!"
	MsgCycle     = "Cycle detected! Topological sort not possible."
)

// Frame is one published state of a run. Every field is an independent copy.
type Frame struct {
	Graph    graph.Graph
	InDegree map[int]int
	Queue    []int
	Order    []int
}

// Publisher receives a Frame after each step.
type Publisher func(Frame)

// Result describes how a run ended.
type Result struct {
	// Order lists node ids in topological order. It is partial when Cyclic.
	Order []int
	// Cyclic is true when some nodes never reached in-degree zero.
	Cyclic bool
	// Cancelled is true when the run stopped early.
	Cancelled bool
}

// sorter holds the working state of one run.
type sorter struct {
	rt       *control.Runtime
	publish  Publisher
	work     graph.Graph
	adj      graph.Adjacency
	inDegree map[int]int
	queue    []int
	res      Result
}

// Run animates Kahn's algorithm over the directed edges of g.
//
// Nodes with in-degree zero are queued in ascending id order. Each dequeued
// node is painted processing; each of its outgoing edges is painted
// traversing, the target's in-degree is decremented, and the edge fades.
// A target reaching zero joins the queue. The node is then painted completed.
// A frame is published and the run paced after every one of these steps.
//
// A cycle is an outcome, not an error. g is not modified.
//
// Returns graph.ErrUnknownNode or graph.ErrDuplicateNode for malformed input.
//
// Complexity: O(V + E) steps, each publishing an O(V + E) copy.
func Run(ctx context.Context, g graph.Graph, publish Publisher, rt *control.Runtime) (Result, error) {
	adj, err := g.Directed()
	if err != nil {
		return Result{}, err
	}
	if len(g.Nodes) == 0 {
		return Result{}, nil
	}

	s := &sorter{
		rt:       control.OrDefault(rt),
		publish:  publish,
		work:     g.Clone(),
		adj:      adj,
		inDegree: g.InDegrees(),
		res:      Result{Order: make([]int, 0, len(g.Nodes))},
	}
	s.work.ResetStatuses()
	s.res.Cancelled = !s.run(ctx)

	return s.res, nil
}

func (s *sorter) run(ctx context.Context) bool {
	ids := s.work.IDs()
	slices.Sort(ids)
	for _, id := range ids {
		if s.inDegree[id] == 0 {
			s.queue = append(s.queue, id)
		}
	}
	if !s.step(ctx, fmt.Sprintf("Enqueued %d node(s) with 0 in-degree.", len(s.queue))) {
		return false
	}

	for len(s.queue) > 0 {
		if !s.rt.Gate(ctx) {
			return false
		}
		u := s.queue[0]
		s.queue = s.queue[1:]
		s.res.Order = append(s.res.Order, u)
		s.work.SetNodeStatus(u, snapshot.Processing)
		if !s.step(ctx, "Processing Node "+s.work.Label(u)) {
			return false
		}

		for _, a := range s.adj[u] {
			s.work.SetEdgeStatus(a.Edge, snapshot.Traversing)
			if !s.step(ctx, fmt.Sprintf("Traversing edge %s -> %s", s.work.Label(u), s.work.Label(a.To))) {
				return false
			}
			s.inDegree[a.To]--
			s.work.SetEdgeStatus(a.Edge, snapshot.Faded)
			msg := fmt.Sprintf("Decreased in-degree of Node %s to %d", s.work.Label(a.To), s.inDegree[a.To])
			if s.inDegree[a.To] == 0 {
				s.queue = append(s.queue, a.To)
				msg = fmt.Sprintf("Node %s in-degree is 0. Added to queue.", s.work.Label(a.To))
			}
			if !s.step(ctx, msg) {
				return false
			}
		}

		s.work.SetNodeStatus(u, snapshot.Completed)
		if !s.step(ctx, "") {
			return false
		}
	}

	if len(s.res.Order) != len(s.work.Nodes) {
		s.res.Cyclic = true
		s.rt.Report(ctx, MsgCycle)
	} else {
		s.rt.Report(ctx, MsgCompleted)
	}

	return true
}

// step reports msg (if any), publishes a frame and paces the run.
func (s *sorter) step(ctx context.Context, msg string) bool {
	if msg != "" {
		s.rt.Report(ctx, msg)
	}
	s.rt.Logger.DebugContext(ctx, "toposort step",
		slog.Int("queue", len(s.queue)), slog.Int("ordered", len(s.res.Order)))
	if s.publish != nil {
		s.publish(Frame{
			Graph:    s.work.Clone(),
			InDegree: maps.Clone(s.inDegree),
			Queue:    slices.Clone(s.queue),
			Order:    slices.Clone(s.res.Order),
		})
	}

	return s.rt.Checkpoint(ctx)
}
