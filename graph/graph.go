package graph

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/stepviz/snapshot"
)

// New builds a graph with nodes 0..n-1 labelled by their ids and the given
// edges. Intended for tests and generators.
func New(n int, edges ...Edge) Graph {
	g := Graph{Nodes: make([]Node, n), Edges: make([]Edge, len(edges))}
	for i := range g.Nodes {
		g.Nodes[i] = Node{ID: i, Label: strconv.Itoa(i), Status: snapshot.Default}
	}
	for i, e := range edges {
		if e.Status == "" {
			e.Status = snapshot.Default
		}
		g.Edges[i] = e
	}

	return g
}

// Validate checks node-id uniqueness and that every edge endpoint exists.
// Complexity: O(V + E).
func (g Graph) Validate() error {
	ids := make(map[int]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		if _, dup := ids[n.ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateNode, n.ID)
		}
		ids[n.ID] = struct{}{}
	}
	for i, e := range g.Edges {
		if _, ok := ids[e.Source]; !ok {
			return fmt.Errorf("%w: edge %d source %d", ErrUnknownNode, i, e.Source)
		}
		if _, ok := ids[e.Target]; !ok {
			return fmt.Errorf("%w: edge %d target %d", ErrUnknownNode, i, e.Target)
		}
	}

	return nil
}

// ValidateWeights returns ErrNegativeWeight for the first negative edge.
func (g Graph) ValidateWeights() error {
	for i, e := range g.Edges {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %d %d→%d weight=%g", ErrNegativeWeight, i, e.Source, e.Target, e.Weight)
		}
	}

	return nil
}

// HasNode reports whether id names a node.
func (g Graph) HasNode(id int) bool {
	for _, n := range g.Nodes {
		if n.ID == id {
			return true
		}
	}

	return false
}

// IDs returns node ids in node-list order.
func (g Graph) IDs() []int {
	out := make([]int, len(g.Nodes))
	for i, n := range g.Nodes {
		out[i] = n.ID
	}

	return out
}

// Label returns the display label of id, falling back to its decimal form.
func (g Graph) Label(id int) string {
	for _, n := range g.Nodes {
		if n.ID == id && n.Label != "" {
			return n.Label
		}
	}

	return strconv.Itoa(id)
}

// Undirected builds adjacency treating every edge as bidirectional: edge
// u–v is appended to u's list and then to v's list, in edge-list order.
func (g Graph) Undirected() (Adjacency, error) {
	return g.adjacency(false)
}

// Directed builds adjacency following Source→Target only.
func (g Graph) Directed() (Adjacency, error) {
	return g.adjacency(true)
}

func (g Graph) adjacency(directed bool) (Adjacency, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	adj := make(Adjacency, len(g.Nodes))
	for _, n := range g.Nodes {
		adj[n.ID] = nil
	}
	for i, e := range g.Edges {
		adj[e.Source] = append(adj[e.Source], Arc{To: e.Target, Weight: e.Weight, Edge: i})
		if !directed {
			adj[e.Target] = append(adj[e.Target], Arc{To: e.Source, Weight: e.Weight, Edge: i})
		}
	}

	return adj, nil
}

// InDegrees counts incoming directed edges per node id.
func (g Graph) InDegrees() map[int]int {
	deg := make(map[int]int, len(g.Nodes))
	for _, n := range g.Nodes {
		deg[n.ID] = 0
	}
	for _, e := range g.Edges {
		deg[e.Target]++
	}

	return deg
}

// Clone returns a deep copy of g.
func (g Graph) Clone() Graph {
	out := Graph{
		Nodes: make([]Node, len(g.Nodes)),
		Edges: make([]Edge, len(g.Edges)),
	}
	copy(out.Nodes, g.Nodes)
	copy(out.Edges, g.Edges)

	return out
}

// ResetStatuses sets every node and edge status to default in place.
func (g Graph) ResetStatuses() {
	for i := range g.Nodes {
		g.Nodes[i].Status = snapshot.Default
	}
	for i := range g.Edges {
		g.Edges[i].Status = snapshot.Default
	}
}

// SetNodeStatus tags node id with s. Unknown ids are ignored.
func (g Graph) SetNodeStatus(id int, s snapshot.Status) {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			g.Nodes[i].Status = s
			return
		}
	}
}

// SetEdgeStatus tags the edge at index idx with s.
func (g Graph) SetEdgeStatus(idx int, s snapshot.Status) {
	if idx >= 0 && idx < len(g.Edges) {
		g.Edges[idx].Status = s
	}
}

// NodeStatus returns the status of node id, or Default if unknown.
func (g Graph) NodeStatus(id int) snapshot.Status {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n.Status
		}
	}

	return snapshot.Default
}
