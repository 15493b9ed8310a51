package dfs

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/stepviz/control"
	"github.com/katalvlaran/stepviz/snapshot"
)

// frame is one stack entry.
type frame struct {
	index int
	depth int
}

// dfsWalker encapsulates traversal state.
type dfsWalker struct {
	rt      *control.Runtime
	publish snapshot.ArrayPublisher
	opts    Options
	arr     []snapshot.Element
	stack   []frame
	visited []bool
	res     Result
}

// Tree walks arr as an implicit binary tree in depth-first pre-order using
// an explicit LIFO stack. Indices are marked visited when popped; both
// in-range children are pushed unconditionally (right, then left) so the left
// subtree is explored first, and stale duplicate pops are skipped.
//
// Each processed index is painted processing, published and held for
// rt.Speed, then painted sorted, published and held for rt.Speed/2.
// arr is not modified. An empty arr yields a zero Result.
func Tree(
	ctx context.Context,
	arr []snapshot.Element,
	publish snapshot.ArrayPublisher,
	rt *control.Runtime,
	opts ...Option,
) (Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if len(arr) == 0 {
		return Result{}, nil
	}

	work := snapshot.CloneElements(arr)
	snapshot.ResetStatuses(work)
	w := &dfsWalker{
		rt:      control.OrDefault(rt),
		publish: publish,
		opts:    o,
		arr:     work,
		stack:   []frame{{index: 0}},
		visited: make([]bool, len(work)),
		res: Result{
			Order: make([]int, 0, len(work)),
			Depth: make(map[int]int, len(work)),
		},
	}
	w.res.Cancelled = !w.traverse(ctx)

	return w.res, nil
}

// traverse drains the stack. It returns false if the run was stopped.
func (w *dfsWalker) traverse(ctx context.Context) bool {
	for len(w.stack) > 0 {
		if !w.rt.Gate(ctx) {
			return false
		}
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.visited[top.index] {
			w.res.SkippedPops++
			continue
		}
		w.visited[top.index] = true

		w.res.Order = append(w.res.Order, top.index)
		w.res.Depth[top.index] = top.depth
		w.opts.OnVisit(top.index, top.depth)
		w.rt.Logger.DebugContext(ctx, "dfs visit", slog.Int("index", top.index), slog.Int("depth", top.depth))

		w.arr[top.index].Status = snapshot.Processing
		snapshot.Publish(w.publish, w.arr)
		if !w.rt.Wait(ctx, w.rt.Speed) {
			return false
		}
		w.arr[top.index].Status = snapshot.Sorted
		snapshot.Publish(w.publish, w.arr)
		if !w.rt.Wait(ctx, w.rt.Speed/2) {
			return false
		}

		if w.opts.MaxDepth > 0 && top.depth >= w.opts.MaxDepth {
			continue
		}
		for _, c := range [2]int{2*top.index + 2, 2*top.index + 1} {
			if c < len(w.arr) {
				w.stack = append(w.stack, frame{index: c, depth: top.depth + 1})
			}
		}
	}

	return true
}
