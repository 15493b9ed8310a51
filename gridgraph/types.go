// Package gridgraph defines the grid arena model used by the grid runners:
// positions, cells, connectivity and the grid itself.
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/stepviz/snapshot"
)

// NoPrev marks a cell without a predecessor.
const NoPrev = -1

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: up, down, left, right.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

// Position addresses a cell by row and column.
type Position struct {
	Row, Col int
}

// String renders the position as "(row,col)".
func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Cell is a single grid cell.
//
// G is the best known cost from the start, H the heuristic estimate to the
// target and F = G + H. Prev is the arena index of the predecessor on the
// best known path, or NoPrev. Parent links only ever point towards the start,
// so they form a tree and never a cycle.
type Cell struct {
	Row, Col int
	Status   snapshot.Status
	G, H, F  float64
	Prev     int
}

// Grid is a row-major arena of cells. Cells[r*Cols+c] is the cell at (r,c).
type Grid struct {
	Rows, Cols int
	Cells      []Cell
}

// Publisher receives a deep copy of the grid after each published step.
type Publisher func(*Grid)

// Publish sends a clone of g to pub; a nil publisher is a no-op.
func Publish(pub Publisher, g *Grid) {
	if pub != nil {
		pub(g.Clone())
	}
}

// orthogonal offsets in expansion order: up, down, left, right.
var orthogonal = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// diagonal offsets: up-left, up-right, down-left, down-right.
var diagonal = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
