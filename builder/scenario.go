package builder

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepviz/graph"
	"github.com/katalvlaran/stepviz/gridgraph"
	"github.com/katalvlaran/stepviz/snapshot"
)

// Scenario is a hand-written input loaded from YAML. At least one of Array,
// Grid or Graph must be present; Algorithm optionally names the runner.
//
//	name: detour
//	algorithm: astar
//	grid:
//	  - "S.#."
//	  - "..#."
//	  - "...T"
type Scenario struct {
	Name      string     `yaml:"name"`
	Algorithm string     `yaml:"algorithm"`
	Array     []int      `yaml:"array,omitempty"`
	Target    *int       `yaml:"target,omitempty"`
	Grid      []string   `yaml:"grid,omitempty"`
	Graph     *GraphSpec `yaml:"graph,omitempty"`
	Start     int        `yaml:"start,omitempty"`
}

// GraphSpec describes nodes and edges. When Nodes is empty, Count nodes
// with ids 0..Count-1 are created.
type GraphSpec struct {
	Count int        `yaml:"count,omitempty"`
	Nodes []NodeSpec `yaml:"nodes,omitempty"`
	Edges []EdgeSpec `yaml:"edges"`
}

// NodeSpec is one scenario node. An empty label falls back to the id.
type NodeSpec struct {
	ID    int     `yaml:"id"`
	Label string  `yaml:"label,omitempty"`
	X     float64 `yaml:"x,omitempty"`
	Y     float64 `yaml:"y,omitempty"`
}

// EdgeSpec is one scenario edge.
type EdgeSpec struct {
	From   int     `yaml:"from"`
	To     int     `yaml:"to"`
	Weight float64 `yaml:"weight,omitempty"`
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario %s: %w", path, err)
	}

	return ParseScenario(data)
}

// ParseScenario decodes a scenario, rejecting unknown keys.
func ParseScenario(data []byte) (Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Scenario{}, fmt.Errorf("%w: empty document", ErrBadScenario)
		}

		return Scenario{}, fmt.Errorf("%w: %w", ErrBadScenario, err)
	}
	if len(s.Array) == 0 && len(s.Grid) == 0 && s.Graph == nil {
		return Scenario{}, fmt.Errorf("%w: no array, grid or graph", ErrBadScenario)
	}

	return s, nil
}

// Elements returns the scenario array as default-status elements.
func (s Scenario) Elements() []snapshot.Element {
	return snapshot.NewElements(s.Array)
}

// GridInput parses the scenario grid rows.
func (s Scenario) GridInput() (*gridgraph.Grid, gridgraph.Position, gridgraph.Position, error) {
	if len(s.Grid) == 0 {
		return nil, gridgraph.Position{}, gridgraph.Position{}, fmt.Errorf("%w: no grid", ErrBadScenario)
	}

	return gridgraph.Parse(s.Grid)
}

// GraphInput builds and validates the scenario graph.
func (s Scenario) GraphInput() (graph.Graph, error) {
	if s.Graph == nil {
		return graph.Graph{}, fmt.Errorf("%w: no graph", ErrBadScenario)
	}
	edges := make([]graph.Edge, len(s.Graph.Edges))
	for i, e := range s.Graph.Edges {
		edges[i] = graph.Edge{Source: e.From, Target: e.To, Weight: e.Weight, Status: snapshot.Default}
	}
	var g graph.Graph
	if len(s.Graph.Nodes) == 0 {
		g = graph.New(s.Graph.Count, edges...)
	} else {
		g.Edges = edges
		for _, n := range s.Graph.Nodes {
			g.Nodes = append(g.Nodes, graph.Node{ID: n.ID, X: n.X, Y: n.Y, Label: n.Label, Status: snapshot.Default})
		}
	}
	if err := g.Validate(); err != nil {
		return graph.Graph{}, fmt.Errorf("%w: %w", ErrBadScenario, err)
	}

	return g, nil
}
