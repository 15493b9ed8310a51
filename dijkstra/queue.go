package dijkstra

import (
	"cmp"
	"container/heap"
	"slices"
)

// nodeItem represents a node and its tentative distance at push time.
type nodeItem struct {
	id   int
	dist float64
	seq  int // insertion order, used as the tie-break
}

// queue is the frontier of a trace run. pop must return the entry with the
// smallest dist, earliest-inserted first among equals.
type queue interface {
	push(id int, dist float64)
	pop() nodeItem
	len() int
}

func newQueue(s Strategy) queue {
	if s == Heap {
		return &heapQueue{}
	}
	return &arrayQueue{}
}

// arrayQueue is a plain slice stable-sorted before each extraction.
type arrayQueue struct {
	items []nodeItem
}

func (q *arrayQueue) push(id int, dist float64) {
	q.items = append(q.items, nodeItem{id: id, dist: dist})
}

func (q *arrayQueue) pop() nodeItem {
	slices.SortStableFunc(q.items, func(a, b nodeItem) int { return cmp.Compare(a.dist, b.dist) })
	it := q.items[0]
	q.items = q.items[1:]

	return it
}

func (q *arrayQueue) len() int { return len(q.items) }

// heapQueue wraps nodePQ. Stale entries are kept and reported like any
// other pop; the caller skips them.
type heapQueue struct {
	pq   nodePQ
	next int
}

func (q *heapQueue) push(id int, dist float64) {
	heap.Push(&q.pq, &nodeItem{id: id, dist: dist, seq: q.next})
	q.next++
}

func (q *heapQueue) pop() nodeItem { return *heap.Pop(&q.pq).(*nodeItem) }

func (q *heapQueue) len() int { return q.pq.Len() }

// nodePQ is a min-heap of *nodeItem ordered by dist, then seq.
// Lazy decrease-key: a shorter distance is pushed as a new entry and the
// outdated one is recognised when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then insertion order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
