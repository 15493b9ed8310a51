package astar

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/stepviz/gridgraph"
)

// Sentinel errors for misuse. Unreachable targets are reported through
// Result, never as an error.
var (
	// ErrNilGrid indicates a nil *gridgraph.Grid.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOutOfBounds indicates a start or target outside the grid.
	ErrOutOfBounds = errors.New("astar: position out of bounds")

	// ErrStartIsWall indicates the start cell is a wall.
	ErrStartIsWall = errors.New("astar: start cell is a wall")

	// ErrUnknownHeuristic is returned by ParseHeuristic.
	ErrUnknownHeuristic = errors.New("astar: unknown heuristic")
)

// Heuristic selects the distance estimate h(n).
type Heuristic int

const (
	// Manhattan is |Δrow| + |Δcol|. Admissible for 4-connected grids only.
	Manhattan Heuristic = iota
	// Euclidean is the straight-line distance.
	Euclidean
	// Chebyshev is max(|Δrow|, |Δcol|).
	Chebyshev
	// Octile is max + (√2-1)·min, exact on an open 8-connected grid.
	Octile
)

var heuristicNames = [...]string{"manhattan", "euclidean", "chebyshev", "octile"}

// String returns the lower-case heuristic name.
func (h Heuristic) String() string {
	if h < 0 || int(h) >= len(heuristicNames) {
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}
	return heuristicNames[h]
}

// ParseHeuristic resolves a case-insensitive heuristic name.
func ParseHeuristic(s string) (Heuristic, error) {
	for i, name := range heuristicNames {
		if strings.EqualFold(s, name) {
			return Heuristic(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, s)
}

// estimate evaluates h between a and b.
func (h Heuristic) estimate(a, b gridgraph.Position) float64 {
	dr := math.Abs(float64(a.Row - b.Row))
	dc := math.Abs(float64(a.Col - b.Col))
	switch h {
	case Euclidean:
		return math.Sqrt(dr*dr + dc*dc)
	case Chebyshev:
		return math.Max(dr, dc)
	case Octile:
		return math.Max(dr, dc) + (math.Sqrt2-1)*math.Min(dr, dc)
	default:
		return dr + dc
	}
}

// Strategy selects the open-list implementation.
type Strategy int

const (
	// Standard scans the open list linearly for the first minimum F.
	Standard Strategy = iota
	// Heap keeps the open list in a binary heap. Outcomes match Standard.
	Heap
)

// DefaultWeightCost is the step-cost multiplier for weighted terrain.
const DefaultWeightCost = 5.0

// Options configures a run.
type Options struct {
	Heuristic  Heuristic
	Diagonal   bool
	WeightCost float64
	Strategy   Strategy
}

// DefaultOptions returns Manhattan, 4-connected, weight cost 5, Standard.
func DefaultOptions() Options {
	return Options{
		Heuristic:  Manhattan,
		WeightCost: DefaultWeightCost,
		Strategy:   Standard,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithHeuristic selects the heuristic. Panics on an unknown value.
func WithHeuristic(h Heuristic) Option {
	if h < Manhattan || h > Octile {
		panic(fmt.Sprintf("astar: WithHeuristic(%d) unknown", int(h)))
	}
	return func(o *Options) { o.Heuristic = h }
}

// WithDiagonal enables the four diagonal moves, each costing √2.
func WithDiagonal(on bool) Option {
	return func(o *Options) { o.Diagonal = on }
}

// WithWeightCost sets the multiplier applied when stepping onto weighted
// terrain. Panics if c < 1, which would make the heuristic inadmissible.
func WithWeightCost(c float64) Option {
	if c < 1 || math.IsNaN(c) || math.IsInf(c, 0) {
		panic(fmt.Sprintf("astar: WithWeightCost(%v) must be a finite value >= 1", c))
	}
	return func(o *Options) { o.WeightCost = c }
}

// WithStrategy selects the open-list implementation.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// Result describes how a run ended.
type Result struct {
	// Found is true when the target was reached.
	Found bool
	// Path lists positions from start to target inclusive when Found.
	Path []gridgraph.Position
	// Cost is the accumulated step cost of Path.
	Cost float64
	// Expanded counts nodes popped from the open list.
	Expanded int
	// Cancelled is true when the run stopped before finishing.
	Cancelled bool
}
