// Package trace holds precomputed, immutable step sequences and the cursor
// used to play them back.
package trace

import (
	"errors"
	"fmt"
	"iter"
)

// ErrOutOfRange is returned by Cursor.Seek for positions outside the trace.
var ErrOutOfRange = errors.New("trace: position out of range")

// Trace is an ordered, read-only sequence of step records. Once built it is
// never mutated; playback only moves a Cursor through it.
//
// Steps are handed out by value. A step type holding maps or slices should
// implement Cloner so that callers receive a private copy; otherwise its
// contents must be treated as read-only.
type Trace[S any] struct {
	steps []S
}

// Cloner is implemented by step types that carry reference data. At, Last,
// All and cursors return Clone() of the stored step.
type Cloner[S any] interface {
	Clone() S
}

// detach returns a private copy of s when S implements Cloner.
func detach[S any](s S) S {
	if c, ok := any(s).(Cloner[S]); ok {
		return c.Clone()
	}

	return s
}

// Builder accumulates steps for a single Trace.
type Builder[S any] struct {
	steps []S
}

// NewBuilder returns a builder with room for capacity steps.
func NewBuilder[S any](capacity int) *Builder[S] {
	if capacity < 0 {
		capacity = 0
	}
	return &Builder[S]{steps: make([]S, 0, capacity)}
}

// Append adds s as the next step. The caller must not mutate s afterwards.
func (b *Builder[S]) Append(s S) { b.steps = append(b.steps, s) }

// Len reports how many steps have been appended.
func (b *Builder[S]) Len() int { return len(b.steps) }

// Build freezes the appended steps into a Trace. The builder is reset so a
// later Append cannot reach the returned trace.
func (b *Builder[S]) Build() Trace[S] {
	t := Trace[S]{steps: b.steps}
	b.steps = nil

	return t
}

// Of builds a trace from a copy of steps.
func Of[S any](steps ...S) Trace[S] {
	out := make([]S, len(steps))
	copy(out, steps)

	return Trace[S]{steps: out}
}

// Len returns the number of steps.
func (t Trace[S]) Len() int { return len(t.steps) }

// At returns step i and whether it exists.
func (t Trace[S]) At(i int) (S, bool) {
	if i < 0 || i >= len(t.steps) {
		var zero S
		return zero, false
	}

	return detach(t.steps[i]), true
}

// Last returns the final step and whether the trace is non-empty.
func (t Trace[S]) Last() (S, bool) { return t.At(len(t.steps) - 1) }

// All iterates steps in order.
func (t Trace[S]) All() iter.Seq2[int, S] {
	return func(yield func(int, S) bool) {
		for i, s := range t.steps {
			if !yield(i, detach(s)) {
				return
			}
		}
	}
}

// Cursor walks a Trace. The zero position is "before the first step".
type Cursor[S any] struct {
	t   Trace[S]
	pos int // index of the next step Next will return
}

// NewCursor positions a cursor before the first step of t.
func NewCursor[S any](t Trace[S]) *Cursor[S] {
	return &Cursor[S]{t: t}
}

// Pos returns the index of the next step Next would return.
func (c *Cursor[S]) Pos() int { return c.pos }

// Done reports whether every step has been consumed.
func (c *Cursor[S]) Done() bool { return c.pos >= c.t.Len() }

// Next returns the next step and advances.
func (c *Cursor[S]) Next() (S, bool) {
	s, ok := c.t.At(c.pos)
	if ok {
		c.pos++
	}

	return s, ok
}

// Prev steps back and returns the step now current, i.e. the one Next
// returned before the last one.
func (c *Cursor[S]) Prev() (S, bool) {
	if c.pos <= 1 {
		c.pos = 0
		var zero S
		return zero, false
	}
	c.pos--

	return c.t.At(c.pos - 1)
}

// Seek moves the cursor so that Next returns step i. Seeking to Len() is
// allowed and marks the cursor done.
func (c *Cursor[S]) Seek(i int) error {
	if i < 0 || i > c.t.Len() {
		return fmt.Errorf("%w: %d not in [0,%d]", ErrOutOfRange, i, c.t.Len())
	}
	c.pos = i

	return nil
}

// Reset rewinds to before the first step.
func (c *Cursor[S]) Reset() { c.pos = 0 }
