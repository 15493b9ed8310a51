package registry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/stepviz/astar"
	"github.com/katalvlaran/stepviz/bfs"
	"github.com/katalvlaran/stepviz/control"
	"github.com/katalvlaran/stepviz/dfs"
	"github.com/katalvlaran/stepviz/graph"
	"github.com/katalvlaran/stepviz/gridgraph"
	"github.com/katalvlaran/stepviz/search"
	"github.com/katalvlaran/stepviz/snapshot"
	"github.com/katalvlaran/stepviz/sorting"
	"github.com/katalvlaran/stepviz/toposort"
)

// Params carries the algorithm-specific knobs. Fields irrelevant to an
// algorithm are ignored.
type Params struct {
	// Rand drives random choices such as the search target.
	Rand *rand.Rand
	// Target fixes the searched value when HasTarget is set.
	Target    int
	HasTarget bool

	Heuristic astar.Heuristic
	Diagonal  bool
	// WeightCost overrides the weighted-terrain multiplier when positive.
	WeightCost float64
	// Heap selects the heap-backed queue for A* and Dijkstra.
	Heap bool

	// StartNode is the Dijkstra source id.
	StartNode int
	// CheckSteps keeps Floyd–Warshall checking steps.
	CheckSteps bool
}

// DefaultParams returns Manhattan, 4-connected, Standard queues, node 0 and
// full Floyd–Warshall traces.
func DefaultParams() Params {
	return Params{Heuristic: astar.Manhattan, CheckSteps: true}
}

// Outcome is the uniform summary of a live run.
type Outcome struct {
	// Success is the natural positive outcome: path found, value found,
	// array sorted, traversal complete or graph acyclic.
	Success   bool
	Cancelled bool
	Summary   string
}

// ArrayRunner is the uniform signature of array-based live runners.
type ArrayRunner func(ctx context.Context, arr []snapshot.Element, publish snapshot.ArrayPublisher,
	rt *control.Runtime, p Params) (Outcome, error)

// GridRunner is the uniform signature of grid-based live runners.
type GridRunner func(ctx context.Context, g *gridgraph.Grid, start, target gridgraph.Position,
	publish gridgraph.Publisher, rt *control.Runtime, p Params) (Outcome, error)

// GraphRunner is the uniform signature of graph-based live runners.
type GraphRunner func(ctx context.Context, g graph.Graph, publish toposort.Publisher,
	rt *control.Runtime, p Params) (Outcome, error)

// TraceGenerator is the uniform signature of trace generators.
type TraceGenerator func(g graph.Graph, p Params) (Playback, error)

var entries = [numIDs]Entry{
	AStar: {ID: AStar, Kind: Live, Input: GridInput,
		Description: "A* shortest path on a grid with walls and weighted terrain", Grid: runAStar},
	BinarySearch: {ID: BinarySearch, Kind: Live, Input: ArrayInput,
		Description: "binary search over a sorted copy", Array: searchRunner(search.Binary)},
	InterpolationSearch: {ID: InterpolationSearch, Kind: Live, Input: ArrayInput,
		Description: "interpolation search over a sorted copy", Array: searchRunner(search.Interpolation)},
	BFS: {ID: BFS, Kind: Live, Input: ArrayInput,
		Description: "breadth-first traversal of an implicit binary tree", Array: runBFS},
	DFS: {ID: DFS, Kind: Live, Input: ArrayInput,
		Description: "depth-first traversal of an implicit binary tree", Array: runDFS},
	BubbleSort: {ID: BubbleSort, Kind: Live, Input: ArrayInput,
		Description: "bubble sort by adjacent exchanges", Array: sortRunner(sorting.Bubble)},
	SelectionSort: {ID: SelectionSort, Kind: Live, Input: ArrayInput,
		Description: "selection sort by repeated minimum", Array: sortRunner(sorting.Selection)},
	TopologicalSort: {ID: TopologicalSort, Kind: Live, Input: GraphInput,
		Description: "Kahn topological sort of a directed graph", Graph: runTopo},
	Dijkstra: {ID: Dijkstra, Kind: Trace, Input: GraphInput,
		Description: "Dijkstra single-source shortest paths (trace)", Generate: traceDijkstra},
	FloydWarshall: {ID: FloydWarshall, Kind: Trace, Input: GraphInput,
		Description: "Floyd–Warshall all-pairs shortest paths (trace)", Generate: traceFloydWarshall},
}

// ErrInvalidParams is returned when Params holds a value a runner cannot use.
var ErrInvalidParams = errors.New("registry: invalid params")

func runAStar(ctx context.Context, g *gridgraph.Grid, start, target gridgraph.Position,
	publish gridgraph.Publisher, rt *control.Runtime, p Params) (Outcome, error) {
	opts := []astar.Option{astar.WithHeuristic(p.Heuristic), astar.WithDiagonal(p.Diagonal)}
	if wc := p.WeightCost; math.IsNaN(wc) || math.IsInf(wc, 0) || (wc > 0 && wc < 1) {
		return Outcome{}, fmt.Errorf("%w: weight cost %g", ErrInvalidParams, wc)
	}
	if p.WeightCost > 0 {
		opts = append(opts, astar.WithWeightCost(p.WeightCost))
	}
	if p.Heap {
		opts = append(opts, astar.WithStrategy(astar.Heap))
	}
	res, err := astar.Run(ctx, g, start, target, publish, rt, opts...)
	if err != nil {
		return Outcome{}, err
	}
	out := Outcome{Success: res.Found, Cancelled: res.Cancelled}
	switch {
	case res.Found:
		out.Summary = fmt.Sprintf("path of %d steps, cost %.2f, %d nodes expanded", len(res.Path)-1, res.Cost, res.Expanded)
	default:
		out.Summary = fmt.Sprintf("no path, %d nodes expanded", res.Expanded)
	}

	return out, nil
}

type searchFunc func(context.Context, []snapshot.Element, snapshot.ArrayPublisher, *control.Runtime, ...search.Option) (search.Result, error)

func searchRunner(fn searchFunc) ArrayRunner {
	return func(ctx context.Context, arr []snapshot.Element, publish snapshot.ArrayPublisher,
		rt *control.Runtime, p Params) (Outcome, error) {
		var opts []search.Option
		if p.Rand != nil {
			opts = append(opts, search.WithRand(p.Rand))
		}
		if p.HasTarget {
			opts = append(opts, search.WithTarget(p.Target))
		}
		res, err := fn(ctx, arr, publish, rt, opts...)
		if err != nil {
			return Outcome{}, err
		}
		out := Outcome{Success: res.Found, Cancelled: res.Cancelled}
		if res.Found {
			out.Summary = fmt.Sprintf("found %d at index %d after %d probes", res.Target, res.Index, res.Probes)
		} else {
			out.Summary = fmt.Sprintf("%d not found after %d probes", res.Target, res.Probes)
		}

		return out, nil
	}
}

func runBFS(ctx context.Context, arr []snapshot.Element, publish snapshot.ArrayPublisher,
	rt *control.Runtime, _ Params) (Outcome, error) {
	res, err := bfs.Tree(ctx, arr, publish, rt)
	if err != nil {
		return Outcome{}, err
	}

	return traversal(res.Order, len(arr), res.Cancelled), nil
}

func runDFS(ctx context.Context, arr []snapshot.Element, publish snapshot.ArrayPublisher,
	rt *control.Runtime, _ Params) (Outcome, error) {
	res, err := dfs.Tree(ctx, arr, publish, rt)
	if err != nil {
		return Outcome{}, err
	}

	return traversal(res.Order, len(arr), res.Cancelled), nil
}

func traversal(order []int, n int, cancelled bool) Outcome {
	return Outcome{
		Success:   !cancelled,
		Cancelled: cancelled,
		Summary:   fmt.Sprintf("visited %d of %d nodes: %v", len(order), n, order),
	}
}

type sortFunc func(context.Context, []snapshot.Element, snapshot.ArrayPublisher, *control.Runtime) (sorting.Result, error)

func sortRunner(fn sortFunc) ArrayRunner {
	return func(ctx context.Context, arr []snapshot.Element, publish snapshot.ArrayPublisher,
		rt *control.Runtime, _ Params) (Outcome, error) {
		res, err := fn(ctx, arr, publish, rt)
		if err != nil {
			return Outcome{}, err
		}

		return Outcome{
			Success:   !res.Cancelled,
			Cancelled: res.Cancelled,
			Summary:   fmt.Sprintf("%d comparisons, %d swaps", res.Comparisons, res.Swaps),
		}, nil
	}
}

func runTopo(ctx context.Context, g graph.Graph, publish toposort.Publisher,
	rt *control.Runtime, _ Params) (Outcome, error) {
	res, err := toposort.Run(ctx, g, publish, rt)
	if err != nil {
		return Outcome{}, err
	}
	out := Outcome{Success: !res.Cyclic && !res.Cancelled, Cancelled: res.Cancelled}
	if res.Cyclic {
		out.Summary = fmt.Sprintf("cycle detected after ordering %v", res.Order)
	} else {
		out.Summary = fmt.Sprintf("order %v", res.Order)
	}

	return out, nil
}
