package control

import "time"

// Clock abstracts timers so tests can drive runners without real delays.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

// RealClock uses the time package.
type RealClock struct{}

// After delegates to time.After.
func (RealClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// InstantClock fires every timer immediately. Pause polling still works
// because Resume and Stop wake the gate directly.
type InstantClock struct{}

// After returns an already-fired channel.
func (InstantClock) After(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Time{}

	return ch
}
