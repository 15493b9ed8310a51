package bfs

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("bfs: invalid option supplied")

// Option configures a traversal via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Tree.
type Option func(*Options)

// Options holds hooks and limits for a traversal.
type Options struct {
	// OnVisit is called when an index is dequeued, before it is painted.
	OnVisit func(index, depth int)

	// MaxDepth, if > 0, stops enqueueing children deeper than this level.
	// The root is depth 0.
	MaxDepth int

	err error
}

// DefaultOptions returns no depth limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(int, int) {},
	}
}

// WithOnVisit installs a dequeue hook. Nil is ignored.
func WithOnVisit(fn func(index, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits exploration depth. Negative values are recorded as
// ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth must be >= 0, got %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result reports the traversal outcome.
type Result struct {
	// Order lists indices in the order they were processed.
	Order []int
	// Depth maps each processed index to its level in the implicit tree.
	Depth map[int]int
	// Cancelled is true when the run stopped before the frontier emptied.
	Cancelled bool
}
