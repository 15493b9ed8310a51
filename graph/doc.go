// Package graph provides the plain node-list / edge-list graph model used by
// Dijkstra, Floyd–Warshall and topological-sort runs.
//
// What:
//
//   - Node and Edge carry renderer data (coordinates, labels, statuses).
//   - Undirected and Directed rebuild adjacency from the edge list at the
//     start of every run, preserving edge-list order so traces are
//     deterministic.
//   - Validate / ValidateWeights report malformed input with sentinel errors.
//
// Errors:
//
//   - ErrUnknownNode     edge endpoint or start id is not a node.
//   - ErrDuplicateNode   two nodes share an id.
//   - ErrNegativeWeight  negative weight where shortest paths need ≥ 0.
package graph
