// Package stepviz animates classic algorithms one step at a time.
//
// Every live runner works on a private copy of its input and hands an
// independent snapshot to a publisher after each step, pacing itself through
// a control.Runtime that the caller can pause, resume or stop at any time.
// Trace generators instead compute an immutable step sequence up front, to be
// replayed through the same runtime with trace.Play.
//
// Packages:
//
//	control/       pause/stop signals, pacing, status messages
//	snapshot/      element and status vocabulary shared by all runners
//	gridgraph/     grid cells as an implicit graph
//	graph/         node/edge model and adjacency builders
//	astar/         A* on grids with walls and weighted terrain
//	search/        binary and interpolation search
//	bfs/, dfs/     traversals of an implicit binary tree; DFS topological order
//	sorting/       bubble and selection sort
//	toposort/      Kahn's algorithm with in-degree frames
//	dijkstra/      Dijkstra step trace
//	floydwarshall/ Floyd–Warshall step trace
//	trace/         immutable traces, cursors and playback
//	registry/      algorithm identifiers and uniform entry points
//	builder/       random inputs and YAML scenarios
//	config/, telemetry/, render/ settings, logging and metrics, terminal output
//
// The stepviz command in cmd/stepviz drives all of the above.
package stepviz
