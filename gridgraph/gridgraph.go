// Package gridgraph treats a 2D grid of cells as an implicit graph whose
// vertices are cells and whose edges join in-bounds, non-wall neighbors.
package gridgraph

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/stepviz/snapshot"
)

// NewGrid builds a rows×cols grid of default cells.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(rows·cols).
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{Rows: rows, Cols: cols, Cells: make([]Cell, rows*cols)}
	for i := range g.Cells {
		g.Cells[i] = Cell{
			Row:    i / cols,
			Col:    i % cols,
			Status: snapshot.Default,
			G:      math.Inf(1),
			F:      math.Inf(1),
			Prev:   NoPrev,
		}
	}

	return g, nil
}

// FromStatuses builds a grid from a rectangular matrix of statuses.
// Only terrain tags (wall, weight) are kept; everything else becomes default.
func FromStatuses(rows [][]snapshot.Status) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := NewGrid(len(rows), w)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		for c, s := range row {
			if s.Terrain() {
				g.Cells[r*w+c].Status = s
			}
		}
	}

	return g, nil
}

// Glyphs understood by Parse and produced by String.
const (
	GlyphOpen   = '.'
	GlyphWall   = '#'
	GlyphWeight = '~'
	GlyphStart  = 'S'
	GlyphTarget = 'T'
)

// Parse reads a textual grid. Each line is a row; '.' is open, '#' a wall,
// '~' weighted terrain, 'S' the start and 'T' the target. Exactly one start
// and one target are required.
func Parse(lines []string) (*Grid, Position, Position, error) {
	var start, target Position
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, start, target, ErrEmptyGrid
	}
	w := len(lines[0])
	for _, line := range lines {
		if len(line) != w {
			return nil, start, target, ErrNonRectangular
		}
	}
	g, err := NewGrid(len(lines), w)
	if err != nil {
		return nil, start, target, err
	}
	starts, targets := 0, 0
	for r, line := range lines {
		for c, ch := range []byte(line) {
			cell := &g.Cells[r*w+c]
			switch ch {
			case GlyphOpen:
			case GlyphWall:
				cell.Status = snapshot.Wall
			case GlyphWeight:
				cell.Status = snapshot.Weight
			case GlyphStart:
				start = Position{r, c}
				starts++
			case GlyphTarget:
				target = Position{r, c}
				targets++
			default:
				return nil, start, target, fmt.Errorf("%w: %q at (%d,%d)", ErrBadGlyph, ch, r, c)
			}
		}
	}
	if starts != 1 || targets != 1 {
		return nil, start, target, fmt.Errorf("%w: found %d start(s), %d target(s)", ErrEndpoints, starts, targets)
	}

	return g, start, target, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// Index maps p to its row-major arena index.
func (g *Grid) Index(p Position) int { return p.Row*g.Cols + p.Col }

// Pos converts an arena index back to a Position.
func (g *Grid) Pos(idx int) Position { return Position{idx / g.Cols, idx % g.Cols} }

// At returns the cell at p. p must be in bounds.
func (g *Grid) At(p Position) *Cell { return &g.Cells[g.Index(p)] }

// Size returns the number of cells.
func (g *Grid) Size() int { return len(g.Cells) }

// Passable reports whether p is in bounds and not a wall.
func (g *Grid) Passable(p Position) bool {
	return g.InBounds(p) && g.At(p).Status != snapshot.Wall
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	out := &Grid{Rows: g.Rows, Cols: g.Cols, Cells: make([]Cell, len(g.Cells))}
	copy(out.Cells, g.Cells)

	return out
}

// Neighbors returns the passable neighbors of p in expansion order:
// up, down, left, right, then (Conn8 only) up-left, up-right, down-left,
// down-right. A diagonal step is only offered when neither orthogonal cell it
// squeezes between is a wall, so paths never cut wall corners.
func (g *Grid) Neighbors(p Position, conn Connectivity) []Position {
	out := make([]Position, 0, 8)
	for _, d := range orthogonal {
		q := Position{p.Row + d[0], p.Col + d[1]}
		if g.Passable(q) {
			out = append(out, q)
		}
	}
	if conn != Conn8 {
		return out
	}
	for _, d := range diagonal {
		q := Position{p.Row + d[0], p.Col + d[1]}
		if !g.Passable(q) {
			continue
		}
		if !g.Passable(Position{p.Row + d[0], p.Col}) || !g.Passable(Position{p.Row, p.Col + d[1]}) {
			continue
		}
		out = append(out, q)
	}

	return out
}

// ResetSearch clears search bookkeeping on every cell: G and F become +Inf,
// H becomes 0, Prev becomes NoPrev, and every non-terrain status becomes
// default. Walls and weighted cells keep their tags.
func (g *Grid) ResetSearch() {
	inf := math.Inf(1)
	for i := range g.Cells {
		c := &g.Cells[i]
		c.G, c.F, c.H = inf, inf, 0
		c.Prev = NoPrev
		if !c.Status.Terrain() {
			c.Status = snapshot.Default
		}
	}
}

// PathTo follows Prev links from idx back to the root and returns the
// positions root-first. The walk is bounded by the grid size.
func (g *Grid) PathTo(idx int) []Position {
	var rev []Position
	for at, n := idx, 0; at != NoPrev && n <= len(g.Cells); at, n = g.Cells[at].Prev, n+1 {
		rev = append(rev, g.Pos(at))
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// Count returns how many cells carry status s.
func (g *Grid) Count(s snapshot.Status) int {
	n := 0
	for i := range g.Cells {
		if g.Cells[i].Status == s {
			n++
		}
	}

	return n
}

// String renders terrain using the Parse glyphs; path cells render as '*'.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			switch g.Cells[r*g.Cols+c].Status {
			case snapshot.Wall:
				b.WriteByte(GlyphWall)
			case snapshot.Weight:
				b.WriteByte(GlyphWeight)
			case snapshot.Path:
				b.WriteByte('*')
			default:
				b.WriteByte(GlyphOpen)
			}
		}
		if r < g.Rows-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
