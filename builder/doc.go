// Package builder generates the demo inputs the runners animate: random
// arrays, grids with walls and weighted terrain, random DAGs and random
// weighted graphs with a canvas layout. It also loads hand-written
// scenarios from YAML.
//
// Every generator is configured with functional options:
//
//   - WithSeed / WithRand fix the random source; stochastic generators
//     without one return ErrNeedRandSource.
//   - WithSize, WithValueRange shape arrays.
//   - WithGridSize, WithEndpoints, WithWallDensity, WithWeightDensity shape
//     grids. Start and target cells are never walled.
//   - WithWeightFn / WithUniformWeight choose edge weights and WithLabelFn
//     chooses node labels ("A", "B", ... by default).
//   - WithCanvas sets the layout area for node coordinates.
//
// Option constructors panic on meaningless values. Generators never panic;
// they return sentinel errors wrapped with the generator name.
//
// Determinism: for the same seed and options every generator yields the
// same output.
package builder
