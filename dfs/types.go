package dfs

import (
	"errors"
	"fmt"
)

// Vertex visitation states used by TopologicalSort.
const (
	White = iota // not visited yet
	Gray         // on the current recursion stack
	Black        // fully explored
)

var (
	// ErrCycleDetected indicates that TopologicalSort found a back edge.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures Tree.
type Option func(*Options)

// Options holds hooks and limits for Tree.
type Options struct {
	// OnVisit is called for each index the first time it is popped.
	OnVisit func(index, depth int)

	// MaxDepth, if > 0, stops pushing children deeper than this level.
	MaxDepth int

	err error
}

// DefaultOptions returns no depth limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(int, int) {},
	}
}

// WithOnVisit installs a pre-order hook. Nil is ignored.
func WithOnVisit(fn func(index, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits exploration depth (>= 0).
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth must be >= 0, got %d", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// Result reports the traversal outcome.
type Result struct {
	// Order lists indices in pre-order.
	Order []int
	// Depth maps each processed index to its level.
	Depth map[int]int
	// SkippedPops counts stack entries discarded because already visited.
	SkippedPops int
	// Cancelled is true when the run stopped before the stack emptied.
	Cancelled bool
}
