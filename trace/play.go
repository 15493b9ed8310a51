package trace

import (
	"context"

	"github.com/katalvlaran/stepviz/control"
)

// Play feeds the remaining steps of c to fn, pacing and gating each step
// through rt exactly like a live runner. It returns the number of steps
// delivered and whether playback reached the end. fn is never called after
// the run is stopped.
func Play[S any](ctx context.Context, c *Cursor[S], rt *control.Runtime, fn func(i int, s S)) (int, bool) {
	rt = control.OrDefault(rt)
	delivered := 0
	for !c.Done() {
		if !rt.Gate(ctx) {
			return delivered, false
		}
		i := c.Pos()
		s, _ := c.Next()
		fn(i, s)
		delivered++
		if !rt.Checkpoint(ctx) {
			return delivered, c.Done()
		}
	}

	return delivered, true
}
