// SPDX-License-Identifier: MIT
// Package: stepviz/builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers branch with errors.Is; generators attach context with %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a non-positive size, a grid too small for its
// endpoints, or an empty value range.
var ErrBadSize = errors.New("builder: invalid size")

// ErrNeedRandSource indicates a stochastic generator was called without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadEndpoints indicates start or target outside the grid, or equal.
var ErrBadEndpoints = errors.New("builder: invalid grid endpoints")

// ErrBadScenario indicates a scenario file that cannot describe any input.
var ErrBadScenario = errors.New("builder: invalid scenario")

// builderErrorf prefixes a wrapped sentinel with the generator name.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
