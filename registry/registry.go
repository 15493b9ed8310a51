// Package registry maps algorithm identifiers to uniform entry points so
// callers can dispatch on an enum instead of on names.
package registry

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned for identifiers outside the registry.
var ErrUnknownAlgorithm = errors.New("registry: unknown algorithm")

// ID identifies an algorithm.
type ID int

const (
	AStar ID = iota
	BinarySearch
	InterpolationSearch
	BFS
	DFS
	BubbleSort
	SelectionSort
	TopologicalSort
	Dijkstra
	FloydWarshall
	numIDs
)

var idNames = [numIDs]string{
	"astar",
	"binary-search",
	"interpolation-search",
	"bfs",
	"dfs",
	"bubble-sort",
	"selection-sort",
	"topological-sort",
	"dijkstra",
	"floyd-warshall",
}

// String returns the canonical command-line name.
func (id ID) String() string {
	if id < 0 || id >= numIDs {
		return fmt.Sprintf("ID(%d)", int(id))
	}
	return idNames[id]
}

// ParseID resolves a canonical name. Matching ignores case, and '_' or ' '
// may stand in for '-'.
func ParseID(s string) (ID, error) {
	norm := strings.ToLower(strings.NewReplacer("_", "-", " ", "-").Replace(strings.TrimSpace(s)))
	for i, name := range idNames {
		if norm == name {
			return ID(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Kind separates live runners from trace generators.
type Kind int

const (
	// Live runners mutate a working copy and publish snapshots as they go.
	Live Kind = iota
	// Trace generators return a complete, immutable step sequence.
	Trace
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == Trace {
		return "trace"
	}
	return "live"
}

// Input names the data structure an algorithm consumes.
type Input int

const (
	ArrayInput Input = iota
	GridInput
	GraphInput
)

// String implements fmt.Stringer.
func (in Input) String() string {
	switch in {
	case GridInput:
		return "grid"
	case GraphInput:
		return "graph"
	default:
		return "array"
	}
}

// Entry describes one algorithm. Exactly one of Array, Grid, Graph or
// Generate is set, matching Kind and Input.
type Entry struct {
	ID          ID
	Kind        Kind
	Input       Input
	Description string

	Array    ArrayRunner
	Grid     GridRunner
	Graph    GraphRunner
	Generate TraceGenerator
}

// Lookup returns the entry for id.
func Lookup(id ID) (Entry, error) {
	if id < 0 || id >= numIDs {
		return Entry{}, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, id)
	}

	return entries[id], nil
}

// LookupName is ParseID followed by Lookup.
func LookupName(name string) (Entry, error) {
	id, err := ParseID(name)
	if err != nil {
		return Entry{}, err
	}

	return Lookup(id)
}

// All returns every entry in ID order.
func All() []Entry {
	out := make([]Entry, numIDs)
	copy(out, entries[:])

	return out
}
