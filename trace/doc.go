// Package trace provides the container for precomputed algorithm traces.
//
// A trace generator (Dijkstra, Floyd–Warshall) appends fully independent step
// records to a Builder and freezes it into a Trace. The presentation layer
// then moves a Cursor through the trace, either by hand (Next, Prev, Seek,
// Reset) or through Play, which reuses the same control.Runtime gate that
// drives live runners so pause and stop behave identically during replay.
//
// Complexity: every Trace and Cursor operation is O(1).
package trace
