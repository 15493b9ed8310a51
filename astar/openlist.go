package astar

import (
	"container/heap"

	"github.com/katalvlaran/stepviz/gridgraph"
)

// openList is the A* frontier. Every implementation must pop the entry with
// the smallest F, breaking ties by the order in which cells first joined the
// list, so that all strategies produce identical runs.
type openList interface {
	push(idx int)
	// update is called after F of an already-open cell decreased.
	update(idx int)
	pop() int
	len() int
}

func newOpenList(s Strategy, cells []gridgraph.Cell) openList {
	if s == Heap {
		return &heapList{cells: cells, seq: make(map[int]int)}
	}
	return &scanList{cells: cells}
}

// scanList is a plain slice scanned linearly on every pop.
type scanList struct {
	cells []gridgraph.Cell
	items []int
}

func (l *scanList) push(idx int) { l.items = append(l.items, idx) }

func (l *scanList) update(int) {}

func (l *scanList) pop() int {
	best := 0
	for i := 1; i < len(l.items); i++ {
		if l.cells[l.items[i]].F < l.cells[l.items[best]].F {
			best = i
		}
	}
	idx := l.items[best]
	l.items = append(l.items[:best], l.items[best+1:]...)

	return idx
}

func (l *scanList) len() int { return len(l.items) }

// heapItem is a heap entry. f is the priority at push time; stale entries
// whose f no longer matches the cell are discarded on pop.
type heapItem struct {
	idx int
	f   float64
	seq int
}

type itemPQ []heapItem

func (pq itemPQ) Len() int { return len(pq) }
func (pq itemPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}
func (pq itemPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *itemPQ) Push(x interface{}) { *pq = append(*pq, x.(heapItem)) }
func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// heapList uses lazy decrease-key: an improved cell is pushed again with the
// sequence number of its first insertion.
type heapList struct {
	cells []gridgraph.Cell
	pq    itemPQ
	seq   map[int]int // first-insertion order per open cell
	next  int
	live  int
}

func (l *heapList) push(idx int) {
	l.seq[idx] = l.next
	l.next++
	l.live++
	heap.Push(&l.pq, heapItem{idx: idx, f: l.cells[idx].F, seq: l.seq[idx]})
}

func (l *heapList) update(idx int) {
	heap.Push(&l.pq, heapItem{idx: idx, f: l.cells[idx].F, seq: l.seq[idx]})
}

func (l *heapList) pop() int {
	for {
		it := heap.Pop(&l.pq).(heapItem)
		if _, open := l.seq[it.idx]; !open || it.f != l.cells[it.idx].F {
			continue
		}
		delete(l.seq, it.idx)
		l.live--

		return it.idx
	}
}

func (l *heapList) len() int { return l.live }
