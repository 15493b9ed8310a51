package bfs

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/stepviz/control"
	"github.com/katalvlaran/stepviz/snapshot"
)

// queueItem pairs an array index with its depth in the implicit tree.
type queueItem struct {
	index int
	depth int
}

// walker encapsulates mutable traversal state.
type walker struct {
	rt      *control.Runtime
	publish snapshot.ArrayPublisher
	opts    Options
	arr     []snapshot.Element
	queue   []queueItem
	visited []bool
	res     Result
}

// Tree walks arr as an implicit binary tree (children of i are 2i+1 and
// 2i+2) in breadth-first order. Indices are marked visited when enqueued so
// each enters the frontier at most once.
//
// Each dequeued index is painted processing, published, and held for
// rt.Speed; then painted sorted, published, and held for rt.Speed/2.
// arr is not modified. An empty arr yields a zero Result.
func Tree(
	ctx context.Context,
	arr []snapshot.Element,
	publish snapshot.ArrayPublisher,
	rt *control.Runtime,
	opts ...Option,
) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if len(arr) == 0 {
		return Result{}, nil
	}

	work := snapshot.CloneElements(arr)
	snapshot.ResetStatuses(work)
	w := &walker{
		rt:      control.OrDefault(rt),
		publish: publish,
		opts:    o,
		arr:     work,
		queue:   make([]queueItem, 0, len(work)),
		visited: make([]bool, len(work)),
		res: Result{
			Order: make([]int, 0, len(work)),
			Depth: make(map[int]int, len(work)),
		},
	}
	w.enqueue(0, 0)
	w.res.Cancelled = !w.loop(ctx)

	return w.res, nil
}

// enqueue marks index visited and appends it to the frontier.
func (w *walker) enqueue(index, depth int) {
	w.visited[index] = true
	w.queue = append(w.queue, queueItem{index: index, depth: depth})
}

// dequeue pops the front of the frontier.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// loop drains the frontier. It returns false if the run was stopped.
func (w *walker) loop(ctx context.Context) bool {
	for len(w.queue) > 0 {
		if !w.rt.Gate(ctx) {
			return false
		}
		item := w.dequeue()
		if !w.visit(ctx, item) {
			return false
		}
		w.enqueueChildren(item)
	}

	return true
}

// visit records and paints one index.
func (w *walker) visit(ctx context.Context, item queueItem) bool {
	w.res.Order = append(w.res.Order, item.index)
	w.res.Depth[item.index] = item.depth
	w.opts.OnVisit(item.index, item.depth)
	w.rt.Logger.DebugContext(ctx, "bfs visit", slog.Int("index", item.index), slog.Int("depth", item.depth))

	w.arr[item.index].Status = snapshot.Processing
	snapshot.Publish(w.publish, w.arr)
	if !w.rt.Wait(ctx, w.rt.Speed) {
		return false
	}
	w.arr[item.index].Status = snapshot.Sorted
	snapshot.Publish(w.publish, w.arr)

	return w.rt.Wait(ctx, w.rt.Speed/2)
}

// enqueueChildren enqueues the unseen in-range children of item.
func (w *walker) enqueueChildren(item queueItem) {
	if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
		return
	}
	for _, c := range [2]int{2*item.index + 1, 2*item.index + 2} {
		if c < len(w.arr) && !w.visited[c] {
			w.enqueue(c, item.depth+1)
		}
	}
}
