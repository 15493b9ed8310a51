// Package toposort animates Kahn's topological sort over a graph.Graph whose
// edges are read as directed Source→Target.
//
// Every step publishes a Frame holding copies of the painted graph, the
// current in-degree map, the FIFO queue and the order so far. Node statuses
// move processing → completed; edge statuses move traversing → faded.
//
// A graph with a cycle leaves some nodes with positive in-degree forever.
// The run then ends with Result.Cyclic set and a partial Order.
package toposort
