// SPDX-License-Identifier: MIT
// Package: stepviz/search
//
// options.go — functional options shared by Binary and Interpolation.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     The runners themselves never panic.
//   • Target selection is random unless WithTarget is given; seed it with
//     WithSeed or WithRand for reproducible runs.

package search

import (
	"math/rand"
	"time"
)

// Default minimum per-probe delays. A probe is held for
// max(runtime speed, MinDelay) so narrowing stays readable at high speeds.
const (
	DefaultBinaryMinDelay        = 100 * time.Millisecond
	DefaultInterpolationMinDelay = 500 * time.Millisecond
)

// Option customizes a search run.
type Option func(*config)

type config struct {
	rng       *rand.Rand
	target    int
	hasTarget bool
	minDelay  time.Duration
	hasDelay  bool
}

// newConfig applies opts over defaults; fallbackDelay is used when
// WithMinDelay is absent.
func newConfig(fallbackDelay time.Duration, opts ...Option) config {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if !c.hasDelay {
		c.minDelay = fallbackDelay
	}

	return c
}

// WithRand provides an explicit RNG for target selection. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("search: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed seeds a fresh RNG for target selection.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithTarget fixes the searched value. The value need not be present.
func WithTarget(v int) Option {
	return func(c *config) {
		c.target = v
		c.hasTarget = true
	}
}

// WithMinDelay overrides the minimum per-probe delay. Panics if d < 0.
func WithMinDelay(d time.Duration) Option {
	if d < 0 {
		panic("search: WithMinDelay(d<0)")
	}
	return func(c *config) {
		c.minDelay = d
		c.hasDelay = true
	}
}
