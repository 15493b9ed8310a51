package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/stepviz/snapshot"
)

// arrayMarks tag non-default elements in plain output.
var arrayMarks = map[snapshot.Status]byte{
	snapshot.Comparing:  '?',
	snapshot.Swapping:   '!',
	snapshot.Sorted:     '=',
	snapshot.Pivot:      '^',
	snapshot.Found:      '*',
	snapshot.Discarded:  'x',
	snapshot.Processing: '>',
	snapshot.Visited:    '.',
	snapshot.Completed:  '+',
}

// Array renders one element per column: the value, then its mark.
func (r *Renderer) Array(arr []snapshot.Element) string {
	cells := make([]string, len(arr))
	for i, e := range arr {
		mark := byte(' ')
		if m, ok := arrayMarks[e.Status]; ok {
			mark = m
		}
		cells[i] = r.paint(e.Status, fmt.Sprintf("%d%c", e.Value, mark))
	}

	return strings.TrimRight(strings.Join(cells, " "), " ")
}

// Bars renders the array as horizontal bars scaled so the largest value
// spans width columns.
func (r *Renderer) Bars(arr []snapshot.Element, width int) string {
	peak := 1
	for _, e := range arr {
		peak = max(peak, e.Value)
	}
	var b strings.Builder
	for i, e := range arr {
		n := max(e.Value*width/peak, 0)
		if e.Value > 0 && n == 0 {
			n = 1
		}
		mark := byte(' ')
		if m, ok := arrayMarks[e.Status]; ok {
			mark = m
		}
		fmt.Fprintf(&b, "%4d%c %s", e.Value, mark, r.paint(e.Status, strings.Repeat("█", n)))
		if i < len(arr)-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
