// Package graph defines the node/edge model consumed by the graph runners and
// trace generators, plus adjacency builders derived from the edge list.
package graph

import (
	"errors"

	"github.com/katalvlaran/stepviz/snapshot"
)

// Sentinel errors for graph validation.
var (
	// ErrUnknownNode indicates an edge endpoint or start id that is not a node.
	ErrUnknownNode = errors.New("graph: unknown node")

	// ErrDuplicateNode indicates two nodes sharing one id.
	ErrDuplicateNode = errors.New("graph: duplicate node id")

	// ErrNegativeWeight indicates a negative edge weight where shortest-path
	// algorithms require non-negative weights.
	ErrNegativeWeight = errors.New("graph: negative edge weight")
)

// Node is a vertex with layout coordinates for the renderer.
type Node struct {
	ID     int
	X, Y   float64
	Label  string
	Status snapshot.Status
}

// Edge connects Source to Target. Whether it is read as directed or
// undirected is decided by the algorithm, not stored on the edge.
type Edge struct {
	Source, Target int
	Weight         float64
	Status         snapshot.Status
}

// EdgeRef names an edge traversal u→v inside a step record.
type EdgeRef struct {
	Source, Target int
}

// Graph is a plain node list plus edge list. Adjacency is always rebuilt from
// Edges at the start of a run and never mutated alongside it.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// Arc is one adjacency entry: the neighbor id, the edge weight and the index
// of the originating edge in Graph.Edges.
type Arc struct {
	To     int
	Weight float64
	Edge   int
}

// Adjacency maps a node id to its outgoing arcs in edge-list order.
type Adjacency map[int][]Arc
