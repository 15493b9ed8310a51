package dijkstra

import (
	"errors"
	"maps"
	"math"

	"github.com/katalvlaran/stepviz/graph"
	"github.com/katalvlaran/stepviz/trace"
)

// Sentinel errors returned by Trace.
var (
	// ErrStartNotFound indicates that the start id is not a node of the graph.
	ErrStartNotFound = errors.New("dijkstra: start node not found in graph")

	// ErrNegativeWeight is graph.ErrNegativeWeight, re-exported so callers
	// can match it without importing graph.
	ErrNegativeWeight = graph.ErrNegativeWeight
)

// NoPrevious marks a node without a predecessor in Result.Previous.
const NoPrevious = -1

// Strategy selects the priority-queue implementation.
type Strategy int

const (
	// Standard keeps an array that is stable-sorted by distance before every
	// extraction.
	Standard Strategy = iota
	// Heap uses a binary min-heap with lazy decrease-key. Ties are broken by
	// insertion order, so traces are identical to Standard.
	Heap
)

// Options configures Trace.
type Options struct {
	Strategy Strategy
}

// DefaultOptions returns the Standard strategy.
func DefaultOptions() Options {
	return Options{Strategy: Standard}
}

// Option mutates Options.
type Option func(*Options)

// WithStrategy selects the queue implementation. Panics on unknown values.
func WithStrategy(s Strategy) Option {
	if s != Standard && s != Heap {
		panic("dijkstra: WithStrategy(unknown)")
	}
	return func(o *Options) { o.Strategy = s }
}

// StepKind classifies a step record.
type StepKind int

const (
	StepInit StepKind = iota
	StepProcessing
	StepVisited
	StepChecking
	StepRelaxed
	StepComplete
)

var stepKindNames = [...]string{"init", "processing", "visited", "checking", "relaxed", "complete"}

// String returns the lower-case kind name.
func (k StepKind) String() string {
	if k < 0 || int(k) >= len(stepKindNames) {
		return "unknown"
	}
	return stepKindNames[k]
}

// Step is one immutable record of the trace. Maps are private copies taken
// when the step was recorded.
type Step struct {
	Visited     map[int]bool
	Distances   map[int]float64
	Processing  *int           // node being expanded, nil for init and complete
	Edge        *graph.EdgeRef // edge under examination, nil otherwise
	Kind        StepKind
	Description string
}

// Clone returns a deep copy of s. Trace accessors hand out clones, so
// recorded steps cannot be changed through a returned value.
func (s Step) Clone() Step {
	out := s
	out.Visited = maps.Clone(s.Visited)
	out.Distances = maps.Clone(s.Distances)
	if s.Processing != nil {
		p := *s.Processing
		out.Processing = &p
	}
	if s.Edge != nil {
		e := *s.Edge
		out.Edge = &e
	}

	return out
}

// Result is the output of Trace.
type Result struct {
	Steps trace.Trace[Step]
	// Previous maps every node id to its shortest-path predecessor, or
	// NoPrevious for the start and unreachable nodes.
	Previous map[int]int
	// Distances holds final distances; unreachable nodes are +Inf.
	Distances map[int]float64
}

// PathTo rebuilds the start→target path from Previous. It returns nil if
// target is unreachable or unknown.
func (r *Result) PathTo(target int) []int {
	d, ok := r.Distances[target]
	if !ok || math.IsInf(d, 1) {
		return nil
	}
	var rev []int
	for at, n := target, 0; at != NoPrevious && n <= len(r.Previous); at, n = r.Previous[at], n+1 {
		rev = append(rev, at)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
