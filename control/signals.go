package control

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// PollInterval bounds how long a paused runner may take to notice Stop when
// no wake-up event is delivered.
const PollInterval = 100 * time.Millisecond

// Signals holds the two control flags of a single run.
//
// stop is monotonic: once Stop is called the Signals value stays stopped for
// the rest of its life; start a new run with a fresh Signals.
// pause may be toggled any number of times.
type Signals struct {
	stopped atomic.Bool
	paused  atomic.Bool

	mu     sync.Mutex    // guards resume swaps
	done   chan struct{} // closed by Stop
	resume chan struct{} // closed while not paused; replaced on Pause
}

// NewSignals returns running (neither stopped nor paused) signals.
func NewSignals() *Signals {
	resume := make(chan struct{})
	close(resume)

	return &Signals{
		done:   make(chan struct{}),
		resume: resume,
	}
}

// Stop requests cooperative cancellation. Safe to call more than once and
// from any goroutine.
func (s *Signals) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.done)
	}
}

// Stopped reports whether Stop has been called.
func (s *Signals) Stopped() bool { return s.stopped.Load() }

// Done is closed once Stop has been called.
func (s *Signals) Done() <-chan struct{} { return s.done }

// Pause suspends the run at its next checkpoint.
func (s *Signals) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.paused.Load() {
		return
	}
	s.resume = make(chan struct{})
	s.paused.Store(true)
}

// Resume releases a paused run.
func (s *Signals) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.paused.Load() {
		return
	}
	s.paused.Store(false)
	close(s.resume)
}

// Toggle flips the pause flag and returns the new paused state.
func (s *Signals) Toggle() bool {
	if s.Paused() {
		s.Resume()

		return false
	}
	s.Pause()

	return true
}

// Paused reports whether the pause flag is set.
func (s *Signals) Paused() bool { return s.paused.Load() }

// resumed returns the channel that will be closed on the next Resume.
func (s *Signals) resumed() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.resume
}

// halted reports whether the run must stop: Stop was called or ctx is done.
func (s *Signals) halted(ctx context.Context) bool {
	if s.stopped.Load() {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// gate blocks while paused and reports whether the run may proceed.
func (s *Signals) gate(ctx context.Context, clk Clock) bool {
	for {
		if s.halted(ctx) {
			return false
		}
		if !s.paused.Load() {
			return true
		}
		wake := s.resumed()
		select {
		case <-s.done:
			return false
		case <-ctx.Done():
			return false
		case <-wake:
		case <-clk.After(PollInterval):
		}
	}
}

// sleep suspends for d unless the run is halted first.
func (s *Signals) sleep(ctx context.Context, clk Clock, d time.Duration) bool {
	if d <= 0 {
		return !s.halted(ctx)
	}
	select {
	case <-s.done:
		return false
	case <-ctx.Done():
		return false
	case <-clk.After(d):
		return !s.halted(ctx)
	}
}
