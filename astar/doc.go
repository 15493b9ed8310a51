// Package astar implements an animated A* search over a gridgraph.Grid.
//
// What:
//
//   - Finds the cheapest path between two cells of a grid containing walls
//     (never entered) and weighted terrain (entering costs WeightCost, 5 by
//     default).
//   - Publishes a grid snapshot after every expansion and after every cell of
//     the path reveal, pausing on the shared control.Runtime in between.
//
// Heuristics:
//
//   - Manhattan (default) for 4-connected runs.
//   - Euclidean, Chebyshev and Octile remain admissible with diagonal moves.
//     Manhattan combined with WithDiagonal is allowed but reported through the
//     status sink as inadmissible.
//
// Diagonal moves cost √2 and never squeeze between two walls.
//
// Open list:
//
//   - Standard: linear scan for the first minimum F in insertion order.
//   - Heap: binary heap with lazy decrease-key and an insertion-sequence
//     tie-break, giving the same expansion order as Standard.
//
// Errors:
//
//   - ErrNilGrid, ErrOutOfBounds, ErrStartIsWall for misuse. An unreachable
//     target and a stopped run are reported through Result.
package astar
