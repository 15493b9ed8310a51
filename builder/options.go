// SPDX-License-Identifier: MIT
// Package: stepviz/builder
//
// options.go — functional options and the resolved config.
//
// Option constructors validate and panic on meaningless inputs; the
// generators themselves never panic. Later options override earlier ones.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/stepviz/gridgraph"
)

// Defaults match the original demo pages.
const (
	DefaultArraySize   = 20
	DefaultValueMin    = 20
	DefaultValueMax    = 419
	DefaultGridRows    = 18
	DefaultGridCols    = 34
	DefaultWallDensity = 0.25
	DefaultWeightRatio = 0.10
	DefaultCanvasW     = 550.0
	DefaultCanvasH     = 450.0
	DefaultGraphNodes  = 5

	// canvasPadding keeps nodes off the canvas border.
	canvasPadding = 50.0
	// minNodeSpacing is the preferred distance between node centers.
	minNodeSpacing = 100.0
	// placementAttempts bounds the search for a well-spaced position.
	placementAttempts = 100
)

var (
	DefaultStart  = gridgraph.Position{Row: 4, Col: 4}
	DefaultTarget = gridgraph.Position{Row: 13, Col: 29}
)

// Option customizes a generator before it runs.
type Option func(*config)

type config struct {
	rng *rand.Rand

	size             int
	valueMin         int
	valueMax         int
	rows, cols       int
	start, target    gridgraph.Position
	endpointsSet     bool
	wallDensity      float64
	weightDensity    float64
	weightFn         WeightFn
	labelFn          LabelFn
	labelSet         bool
	canvasW, canvasH float64
}

func newConfig(opts ...Option) config {
	cfg := config{
		size:          DefaultArraySize,
		valueMin:      DefaultValueMin,
		valueMax:      DefaultValueMax,
		rows:          DefaultGridRows,
		cols:          DefaultGridCols,
		start:         DefaultStart,
		target:        DefaultTarget,
		wallDensity:   DefaultWallDensity,
		weightDensity: DefaultWeightRatio,
		weightFn:      UniformWeightFn(1, 10),
		labelFn:       ExcelColumnLabelFn,
		canvasW:       DefaultCanvasW,
		canvasH:       DefaultCanvasH,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	// Custom grid sizes without explicit endpoints use opposite corners.
	if !cfg.endpointsSet && (cfg.rows != DefaultGridRows || cfg.cols != DefaultGridCols) {
		cfg.start = gridgraph.Position{}
		cfg.target = gridgraph.Position{Row: cfg.rows - 1, Col: cfg.cols - 1}
	}

	return cfg
}

// WithRand provides an explicit random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a seeded random source.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSize sets the array length or node count. Panics if n < 1.
func WithSize(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("builder: WithSize(%d)", n))
	}
	return func(c *config) {
		c.size = n
	}
}

// WithValueRange sets the inclusive range of array values.
// Panics if hi < lo.
func WithValueRange(lo, hi int) Option {
	if hi < lo {
		panic(fmt.Sprintf("builder: WithValueRange(%d, %d)", lo, hi))
	}
	return func(c *config) {
		c.valueMin, c.valueMax = lo, hi
	}
}

// WithGridSize sets the grid dimensions. Panics if either is < 1.
func WithGridSize(rows, cols int) Option {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("builder: WithGridSize(%d, %d)", rows, cols))
	}
	return func(c *config) {
		c.rows, c.cols = rows, cols
	}
}

// WithEndpoints fixes the grid start and target cells.
func WithEndpoints(start, target gridgraph.Position) Option {
	return func(c *config) {
		c.start, c.target = start, target
		c.endpointsSet = true
	}
}

// WithWallDensity sets the probability that a cell becomes a wall.
// Panics outside [0, 1).
func WithWallDensity(p float64) Option {
	if p < 0 || p >= 1 {
		panic(fmt.Sprintf("builder: WithWallDensity(%g)", p))
	}
	return func(c *config) {
		c.wallDensity = p
	}
}

// WithWeightDensity sets the probability that a non-wall cell becomes
// weighted terrain. Panics outside [0, 1].
func WithWeightDensity(p float64) Option {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("builder: WithWeightDensity(%g)", p))
	}
	return func(c *config) {
		c.weightDensity = p
	}
}

// WithWeightFn overrides the edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *config) {
		c.weightFn = fn
	}
}

// WithLabelFn overrides node labelling. Panics on nil.
func WithLabelFn(fn LabelFn) Option {
	if fn == nil {
		panic("builder: WithLabelFn(nil)")
	}
	return func(c *config) {
		c.labelFn = fn
		c.labelSet = true
	}
}

// WithCanvas sets the layout area for node coordinates.
// Panics unless both sides exceed twice the padding.
func WithCanvas(w, h float64) Option {
	if w <= 2*canvasPadding || h <= 2*canvasPadding {
		panic(fmt.Sprintf("builder: WithCanvas(%g, %g)", w, h))
	}
	return func(c *config) {
		c.canvasW, c.canvasH = w, h
	}
}
