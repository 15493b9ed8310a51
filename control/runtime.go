package control

import (
	"context"
	"log/slog"
	"time"
)

// StatusSink receives human-readable progress messages.
type StatusSink func(msg string)

// Runtime is the per-run execution context handed to every live runner.
type Runtime struct {
	// Signals are read by the runner; the caller writes them.
	Signals *Signals

	// Speed is the animation delay applied after each published step.
	Speed time.Duration

	// Clock drives all delays and pause polling.
	Clock Clock

	// Status receives progress messages at key milestones.
	Status StatusSink

	// Logger receives debug-level step logs.
	Logger *slog.Logger
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithSignals attaches caller-owned signals. Nil is ignored.
func WithSignals(s *Signals) Option {
	return func(rt *Runtime) {
		if s != nil {
			rt.Signals = s
		}
	}
}

// WithSpeed sets the per-step animation delay.
// Panics on negative durations.
func WithSpeed(d time.Duration) Option {
	if d < 0 {
		panic("control: WithSpeed(negative)")
	}
	return func(rt *Runtime) {
		rt.Speed = d
	}
}

// WithClock overrides the timer source. Nil is ignored.
func WithClock(c Clock) Option {
	return func(rt *Runtime) {
		if c != nil {
			rt.Clock = c
		}
	}
}

// WithStatusSink installs the status-message callback. Nil is ignored.
func WithStatusSink(fn StatusSink) Option {
	return func(rt *Runtime) {
		if fn != nil {
			rt.Status = fn
		}
	}
}

// WithLogger installs a structured logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(rt *Runtime) {
		if l != nil {
			rt.Logger = l
		}
	}
}

// NewRuntime returns a Runtime with fresh signals, zero speed, the real clock,
// a no-op status sink and a discarding logger, then applies opts in order.
func NewRuntime(opts ...Option) *Runtime {
	rt := &Runtime{
		Signals: NewSignals(),
		Clock:   RealClock{},
		Status:  func(string) {},
		Logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(rt)
	}

	return rt
}

// OrDefault returns rt, or a default Runtime when rt is nil.
// Partially filled runtimes get their nil fields defaulted in place.
func OrDefault(rt *Runtime) *Runtime {
	if rt == nil {
		return NewRuntime()
	}
	if rt.Signals == nil {
		rt.Signals = NewSignals()
	}
	if rt.Clock == nil {
		rt.Clock = RealClock{}
	}
	if rt.Status == nil {
		rt.Status = func(string) {}
	}
	if rt.Logger == nil {
		rt.Logger = slog.New(slog.DiscardHandler)
	}

	return rt
}

// Gate blocks while paused and reports whether the run may continue.
// It never sleeps for Speed.
func (rt *Runtime) Gate(ctx context.Context) bool {
	return rt.Signals.gate(ctx, rt.Clock)
}

// Wait performs the full checkpoint with an explicit delay: stop check,
// pause gate, then a stop-aware sleep of d.
func (rt *Runtime) Wait(ctx context.Context, d time.Duration) bool {
	if !rt.Gate(ctx) {
		return false
	}

	return rt.Signals.sleep(ctx, rt.Clock, d)
}

// Checkpoint is Wait with the configured Speed.
func (rt *Runtime) Checkpoint(ctx context.Context) bool {
	return rt.Wait(ctx, rt.Speed)
}

// Halted reports whether the run has been stopped or its context is done.
func (rt *Runtime) Halted(ctx context.Context) bool {
	return rt.Signals.halted(ctx)
}

// Report forwards msg to the status sink and the debug log.
func (rt *Runtime) Report(ctx context.Context, msg string) {
	rt.Status(msg)
	rt.Logger.DebugContext(ctx, "status", slog.String("msg", msg))
}
