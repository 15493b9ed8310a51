package registry

import (
	"github.com/katalvlaran/stepviz/dijkstra"
	"github.com/katalvlaran/stepviz/floydwarshall"
	"github.com/katalvlaran/stepviz/graph"
	"github.com/katalvlaran/stepviz/trace"
)

// Playback is the algorithm-agnostic view of a generated trace.
type Playback interface {
	// Len returns the number of steps.
	Len() int
	// Step returns the kind label and description of step i.
	Step(i int) (kind, description string, ok bool)
	// Result returns the concrete result: *dijkstra.Result or
	// *floydwarshall.Result.
	Result() any
}

type playback[S any] struct {
	steps    trace.Trace[S]
	describe func(S) (string, string)
	result   any
}

func (p playback[S]) Len() int { return p.steps.Len() }

func (p playback[S]) Step(i int) (string, string, bool) {
	s, ok := p.steps.At(i)
	if !ok {
		return "", "", false
	}
	k, d := p.describe(s)

	return k, d, true
}

func (p playback[S]) Result() any { return p.result }

func traceDijkstra(g graph.Graph, p Params) (Playback, error) {
	var opts []dijkstra.Option
	if p.Heap {
		opts = append(opts, dijkstra.WithStrategy(dijkstra.Heap))
	}
	res, err := dijkstra.Trace(g, p.StartNode, opts...)
	if err != nil {
		return nil, err
	}

	return playback[dijkstra.Step]{
		steps:    res.Steps,
		describe: func(s dijkstra.Step) (string, string) { return s.Kind.String(), s.Description },
		result:   res,
	}, nil
}

func traceFloydWarshall(g graph.Graph, p Params) (Playback, error) {
	res, err := floydwarshall.Trace(g, floydwarshall.WithCheckSteps(p.CheckSteps))
	if err != nil {
		return nil, err
	}

	return playback[floydwarshall.Step]{
		steps:    res.Steps,
		describe: func(s floydwarshall.Step) (string, string) { return s.Kind.String(), s.Description },
		result:   res,
	}, nil
}
