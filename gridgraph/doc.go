// Package gridgraph treats a 2D grid of cells as a graph, providing the
// snapshot model mutated by grid runners such as A*.
//
// What:
//
//   - Grid is a flat row-major arena of Cells. Parent links (Cell.Prev) are
//     arena indices, not pointers, so clones are cheap and never alias.
//   - Conn4 / Conn8 neighbor expansion in a fixed, deterministic order.
//   - Terrain: wall cells are never traversed, weight cells are passable but
//     expensive. Both tags survive ResetSearch.
//   - Parse / String round-trip a compact ASCII form used by tests, scenario
//     files and the terminal renderer.
//   - Regions and HopDistance provide unweighted reachability, used to build
//     solvable demo grids and to cross-check A* on unweighted terrain.
//
// Complexity:
//
//   - Neighbors:   O(d), d = 4 or 8.
//   - Regions:     O(R×C×d), Memory O(R×C).
//   - HopDistance: O(R×C×d), Memory O(R×C).
//   - Clone:       O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadGlyph: unknown character in a textual grid.
//   - ErrEndpoints: textual grid lacks exactly one 'S' and one 'T'.
//   - ErrOutOfBounds: a position lies outside the grid.
package gridgraph
