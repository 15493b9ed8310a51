// SPDX-License-Identifier: MIT
// Package: stepviz/floydwarshall
//
// Purpose:
//   - Dense distance matrix used by the trace generator and by Closure.
//
// Contract:
//   - Square; +Inf means "no path"; the diagonal is 0.

package floydwarshall

import (
	"fmt"
	"math"

	"github.com/katalvlaran/stepviz/graph"
)

// Matrix is a square distance matrix indexed by node position.
type Matrix [][]float64

// NewMatrix returns an n×n matrix with a zero diagonal and +Inf elsewhere.
func NewMatrix(n int) Matrix {
	inf := math.Inf(1)
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			if i != j {
				m[i][j] = inf
			}
		}
	}

	return m
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}

	return out
}

// Size returns the matrix order.
func (m Matrix) Size() int { return len(m) }

// FromGraph builds the initial distance matrix of g, reading every edge as
// undirected and keeping the minimum weight among parallel edges. Node i of
// the matrix is g.Nodes[i].
//
// Returns graph errors for malformed input and ErrNegativeWeight for negative
// weights (an undirected negative edge is a negative cycle).
// Complexity: O(V + E) after the O(V²) allocation.
func FromGraph(g graph.Graph) (Matrix, map[int]int, []int, error) {
	if err := g.Validate(); err != nil {
		return nil, nil, nil, err
	}
	if err := g.ValidateWeights(); err != nil {
		return nil, nil, nil, err
	}

	n := len(g.Nodes)
	indexOf := make(map[int]int, n)
	nodeAt := make([]int, n)
	for i, node := range g.Nodes {
		indexOf[node.ID] = i
		nodeAt[i] = node.ID
	}

	m := NewMatrix(n)
	for _, e := range g.Edges {
		u, v := indexOf[e.Source], indexOf[e.Target]
		if u == v {
			continue
		}
		m[u][v] = math.Min(m[u][v], e.Weight)
		m[v][u] = math.Min(m[v][u], e.Weight)
	}

	return m, indexOf, nodeAt, nil
}

// validate checks squareness.
func (m Matrix) validate() error {
	for i, row := range m {
		if len(row) != len(m) {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrNotSquare, i, len(row), len(m))
		}
	}

	return nil
}

// Closure runs the k → i → j triple loop on a copy of m and returns the
// all-pairs shortest distances. m is not modified. Only strict improvements
// are written and +Inf operands never produce a candidate.
//
// Returns ErrNotSquare for ragged input.
// Complexity: Time O(n³), Space O(n²).
func Closure(m Matrix) (Matrix, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	d := m.Clone()
	n := len(d)
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik := d[i][k]
			if math.IsInf(ik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				kj := d[k][j]
				if math.IsInf(kj, 1) {
					continue
				}
				if cand := ik + kj; cand < d[i][j] {
					d[i][j] = cand
				}
			}
		}
	}

	return d, nil
}
