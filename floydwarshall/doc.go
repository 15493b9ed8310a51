// Package floydwarshall produces a step-by-step trace of the Floyd–Warshall
// all-pairs shortest-path algorithm over a graph.Graph.
//
// What:
//
//   - FromGraph builds the initial matrix: zero diagonal, the minimum weight
//     of any parallel edges in both directions, +Inf elsewhere.
//   - Trace records an init step, a checking step per (k, i, j), a relaxed
//     step after each strict improvement, and a complete step.
//   - Closure runs the same triple loop without recording anything.
//
// The loop order k → i → j is part of the contract: it fixes the order of
// steps in the trace, not just the final matrix.
//
// Complexity:
//
//   - Closure: Time O(n³), Space O(n²).
//   - Trace:   O(n³) steps of O(n²) each. WithCheckSteps(false) keeps only
//     the relaxed steps for larger demos.
//
// Errors:
//
//   - ErrNegativeWeight  negative edge weight.
//   - ErrNotSquare       ragged matrix passed to Closure.
//   - graph.ErrUnknownNode / graph.ErrDuplicateNode for malformed graphs.
package floydwarshall
