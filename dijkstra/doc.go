// Package dijkstra produces a step-by-step trace of Dijkstra's single-source
// shortest-path algorithm over a graph.Graph with non-negative weights.
//
// Unlike the live runners, Trace has no suspension points: it runs to
// completion synchronously and returns a trace.Trace of immutable Step
// records for the caller to replay (see trace.Play).
//
// Overview:
//
//   - Edges are undirected: each edge is inserted into both adjacency lists,
//     in edge-list order.
//   - Standard strategy: an array stable-sorted by distance before every
//     extraction, as in a classroom implementation.
//   - Heap strategy: a container/heap min-heap with lazy decrease-key. Ties
//     break by insertion order, so both strategies emit the same trace.
//
// Step kinds, in the order they can occur:
//
//	init → (processing → [visited → (checking → [relaxed])*])* → complete
//
// A processing step whose distance is stale is followed directly by the next
// processing step.
//
// Errors (sentinel):
//
//   - ErrStartNotFound   start id is not a node.
//   - ErrNegativeWeight  an edge weight is negative.
//   - graph.ErrUnknownNode / graph.ErrDuplicateNode for malformed graphs.
package dijkstra
