package astar

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/stepviz/control"
	"github.com/katalvlaran/stepviz/gridgraph"
	"github.com/katalvlaran/stepviz/snapshot"
)

// Status messages sent to the runtime's status sink.
const (
	MsgPathFound     = "Path found! Reconstructing..."
	MsgNoPath        = "No path exists between start and end."
	MsgInadmissible  = "Manhattan heuristic with diagonal moves is inadmissible; the path may not be optimal."
	msgExploringTmpl = "Exploring: Row %d, Col %d (f: %.2f)"
)

// Run searches g for the cheapest path from start to target and animates the
// search through publish.
//
// g itself is never modified: the run works on a clone and every snapshot
// handed to publish is a further independent clone. Walls are never entered;
// stepping onto a weighted cell costs WeightCost times the base step cost
// (1 orthogonally, √2 diagonally).
//
// Stop and pause are honoured at the top of every iteration and after every
// published snapshot. A stopped run returns with Cancelled set and publishes
// nothing further.
//
// An empty grid yields a zero Result and nil error.
//
// Complexity (Standard): O(V²) time, O(V) space.
// Complexity (Heap):     O(V log V) time, O(V) space.
func Run(
	ctx context.Context,
	g *gridgraph.Grid,
	start, target gridgraph.Position,
	publish gridgraph.Publisher,
	rt *control.Runtime,
	opts ...Option,
) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Result{}, ErrNilGrid
	}
	if g.Size() == 0 {
		return Result{}, nil
	}
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("%w: start %v in %dx%d grid", ErrOutOfBounds, start, g.Rows, g.Cols)
	}
	if !g.InBounds(target) {
		return Result{}, fmt.Errorf("%w: target %v in %dx%d grid", ErrOutOfBounds, target, g.Rows, g.Cols)
	}
	if g.At(start).Status == snapshot.Wall {
		return Result{}, fmt.Errorf("%w: %v", ErrStartIsWall, start)
	}

	r := &runner{
		rt:      control.OrDefault(rt),
		publish: publish,
		options: cfg,
		work:    g.Clone(),
		start:   start,
		target:  target,
	}
	r.conn = gridgraph.Conn4
	if cfg.Diagonal {
		r.conn = gridgraph.Conn8
	}
	if cfg.Diagonal && cfg.Heuristic == Manhattan {
		r.rt.Report(ctx, MsgInadmissible)
	}

	r.init()

	return r.search(ctx), nil
}

// runner holds the mutable state of one run.
type runner struct {
	rt      *control.Runtime
	publish gridgraph.Publisher
	options Options
	conn    gridgraph.Connectivity

	work   *gridgraph.Grid
	start  gridgraph.Position
	target gridgraph.Position

	weighted []bool // terrain mask captured before statuses are repainted
	closed   []bool
	inOpen   []bool
	open     openList
}

// init resets every cell and seeds the open list with the start.
func (r *runner) init() {
	n := r.work.Size()
	r.weighted = make([]bool, n)
	for i := range r.work.Cells {
		r.weighted[i] = r.work.Cells[i].Status == snapshot.Weight
	}
	r.work.ResetSearch()
	r.closed = make([]bool, n)
	r.inOpen = make([]bool, n)
	r.open = newOpenList(r.options.Strategy, r.work.Cells)

	s := r.work.At(r.start)
	s.G = 0
	s.H = r.options.Heuristic.estimate(r.start, r.target)
	s.F = s.H
	si := r.work.Index(r.start)
	r.open.push(si)
	r.inOpen[si] = true
}

// search is the main loop.
func (r *runner) search(ctx context.Context) Result {
	var res Result
	targetIdx := r.work.Index(r.target)

	for r.open.len() > 0 {
		if !r.rt.Gate(ctx) {
			res.Cancelled = true
			return res
		}

		cur := r.open.pop()
		r.inOpen[cur] = false
		r.closed[cur] = true
		res.Expanded++

		if cur == targetIdx {
			return r.reveal(ctx, res)
		}

		cell := &r.work.Cells[cur]
		cell.Status = snapshot.Visited
		r.expand(cur)

		r.rt.Report(ctx, fmt.Sprintf(msgExploringTmpl, cell.Row, cell.Col, cell.F))
		r.rt.Logger.DebugContext(ctx, "astar expand",
			slog.Int("row", cell.Row), slog.Int("col", cell.Col),
			slog.Float64("g", cell.G), slog.Float64("f", cell.F),
			slog.Int("open", r.open.len()))
		gridgraph.Publish(r.publish, r.work)
		if !r.rt.Checkpoint(ctx) {
			res.Cancelled = true
			return res
		}
	}

	r.rt.Report(ctx, MsgNoPath)

	return res
}

// expand relaxes every passable, unclosed neighbor of cur.
func (r *runner) expand(cur int) {
	cell := &r.work.Cells[cur]
	from := r.work.Pos(cur)
	for _, to := range r.work.Neighbors(from, r.conn) {
		ni := r.work.Index(to)
		if r.closed[ni] {
			continue
		}
		tentative := cell.G + r.stepCost(from, to, ni)
		nb := &r.work.Cells[ni]
		if tentative >= nb.G {
			continue
		}
		nb.Prev = cur
		nb.G = tentative
		nb.H = r.options.Heuristic.estimate(to, r.target)
		nb.F = nb.G + nb.H
		nb.Status = snapshot.Processing
		if r.inOpen[ni] {
			r.open.update(ni)
			continue
		}
		r.open.push(ni)
		r.inOpen[ni] = true
	}
}

// stepCost is the base move cost (1 or √2) times the terrain multiplier of
// the destination cell.
func (r *runner) stepCost(from, to gridgraph.Position, toIdx int) float64 {
	base := 1.0
	if from.Row != to.Row && from.Col != to.Col {
		base = math.Sqrt2
	}
	if r.weighted[toIdx] {
		return base * r.options.WeightCost
	}

	return base
}

// reveal marks the path from target back to start, publishing one snapshot
// per cell.
func (r *runner) reveal(ctx context.Context, res Result) Result {
	targetIdx := r.work.Index(r.target)
	res.Found = true
	res.Path = r.work.PathTo(targetIdx)
	res.Cost = r.work.Cells[targetIdx].G
	r.rt.Report(ctx, MsgPathFound)

	for at := targetIdx; at != gridgraph.NoPrev; at = r.work.Cells[at].Prev {
		r.work.Cells[at].Status = snapshot.Path
		gridgraph.Publish(r.publish, r.work)
		if !r.rt.Checkpoint(ctx) {
			res.Cancelled = true
			return res
		}
	}

	return res
}
