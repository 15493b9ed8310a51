package floydwarshall

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/stepviz/graph"
	"github.com/katalvlaran/stepviz/trace"
)

// Sentinel errors.
var (
	// ErrNotSquare indicates a ragged matrix passed to Closure.
	ErrNotSquare = errors.New("floydwarshall: matrix is not square")

	// ErrNegativeWeight is graph.ErrNegativeWeight, re-exported.
	ErrNegativeWeight = graph.ErrNegativeWeight
)

// StepKind classifies a step record.
type StepKind int

const (
	StepInit StepKind = iota
	StepChecking
	StepRelaxed
	StepComplete
)

var stepKindNames = [...]string{"init", "checking", "relaxed", "complete"}

// String returns the lower-case kind name.
func (k StepKind) String() string {
	if k < 0 || int(k) >= len(stepKindNames) {
		return "unknown"
	}
	return stepKindNames[k]
}

// Step is one immutable record. K, I and J are node ids (not matrix
// indices) and are nil for the init and complete steps.
type Step struct {
	Distances   Matrix
	K, I, J     *int
	Kind        StepKind
	Description string
}

// Clone returns a deep copy of s.
func (s Step) Clone() Step {
	out := s
	out.Distances = s.Distances.Clone()
	out.K, out.I, out.J = cloneInt(s.K), cloneInt(s.I), cloneInt(s.J)

	return out
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}

// Result is the output of Trace.
type Result struct {
	Steps trace.Trace[Step]
	// Final is the all-pairs distance matrix.
	Final Matrix
	// IndexOf maps a node id to its matrix index.
	IndexOf map[int]int
	// NodeAt maps a matrix index back to a node id.
	NodeAt []int
}

// Distance returns the shortest distance between two node ids and whether
// both ids exist.
func (r *Result) Distance(from, to int) (float64, bool) {
	i, ok1 := r.IndexOf[from]
	j, ok2 := r.IndexOf[to]
	if !ok1 || !ok2 {
		return math.Inf(1), false
	}

	return r.Final[i][j], true
}

// Options configures Trace.
type Options struct {
	// CheckSteps records a step for every (k, i, j) triple. Turning it off
	// keeps only init, relaxed and complete steps.
	CheckSteps bool
}

// DefaultOptions records every checking step.
func DefaultOptions() Options { return Options{CheckSteps: true} }

// Option mutates Options.
type Option func(*Options)

// WithCheckSteps toggles per-triple checking steps.
func WithCheckSteps(on bool) Option {
	return func(o *Options) { o.CheckSteps = on }
}

// Trace runs Floyd–Warshall over g and records its steps: one init step, a
// checking step for every (k, i, j) in k → i → j order, a relaxed step right
// after each strict improvement, and a final step. Every step owns a deep
// copy of the matrix.
//
// Complexity: Time O(n³) steps, each O(n²) to copy; Space O(n⁵) with check
// steps enabled. Keep n small or disable check steps.
func Trace(g graph.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	dist, indexOf, nodeAt, err := FromGraph(g)
	if err != nil {
		return nil, err
	}
	n := len(nodeAt)
	capacity := 2
	if cfg.CheckSteps {
		capacity += n * n * n
	}
	steps := trace.NewBuilder[Step](capacity)
	label := func(i int) string { return g.Label(nodeAt[i]) }

	record := func(kind StepKind, k, i, j int, desc string) {
		s := Step{Distances: dist.Clone(), Kind: kind, Description: desc}
		if k >= 0 {
			kid, iid, jid := nodeAt[k], nodeAt[i], nodeAt[j]
			s.K, s.I, s.J = &kid, &iid, &jid
		}
		steps.Append(s)
	}

	record(StepInit, -1, -1, -1, "Initialize distance matrix with edges. Diagonals are 0.")
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if cfg.CheckSteps {
					record(StepChecking, k, i, j,
						fmt.Sprintf("Checking path from %s to %s via %s.", label(i), label(j), label(k)))
				}
				ik, kj := dist[i][k], dist[k][j]
				if math.IsInf(ik, 1) || math.IsInf(kj, 1) {
					continue
				}
				if cand := ik + kj; cand < dist[i][j] {
					dist[i][j] = cand
					record(StepRelaxed, k, i, j,
						fmt.Sprintf("Updated distance [%s][%s] to %s.", label(i), label(j),
							strconv.FormatFloat(cand, 'f', -1, 64)))
				}
			}
		}
	}
	record(StepComplete, -1, -1, -1, "Algorithm complete. All-pairs shortest paths found.")

	return &Result{
		Steps:   steps.Build(),
		Final:   dist,
		IndexOf: indexOf,
		NodeAt:  nodeAt,
	}, nil
}
