// Package control provides the cooperative execution control primitive shared
// by every live algorithm runner: a monotonic stop signal, a freely toggling
// pause gate, and a speed-throttled checkpoint.
//
// What
//
//   - Signals: stop (set once per run, never reset) and pause (toggles).
//     The presentation layer owns and writes them; runners only read.
//   - Runtime: bundles Signals with the animation delay (Speed), a Clock,
//     a status-message sink and a *slog.Logger.
//   - Gate: stop/pause check without delay, used at the top of loop bodies.
//   - Wait / Checkpoint: Gate followed by a stop-aware sleep, used right after
//     a snapshot has been published.
//
// Semantics
//
//	Stop is observed only at checkpoints, never mid-mutation. While paused, a
//	runner blocks on the resume channel, the stop channel and a PollInterval
//	tick, whichever fires first, so a stop issued during a pause is seen within
//	one PollInterval in the worst case and immediately in the common case.
//	A cancelled context behaves exactly like Stop.
//
// Usage
//
//	sig := control.NewSignals()
//	rt := control.NewRuntime(
//	    control.WithSignals(sig),
//	    control.WithSpeed(50*time.Millisecond),
//	    control.WithStatusSink(func(msg string) { fmt.Println(msg) }),
//	)
//	go func() { <-interrupt; sig.Stop() }()
//	res, err := sorting.Bubble(ctx, values, publish, rt)
package control
