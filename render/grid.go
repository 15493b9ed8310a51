package render

import (
	"strings"

	"github.com/katalvlaran/stepviz/gridgraph"
	"github.com/katalvlaran/stepviz/snapshot"
)

var gridGlyphs = map[snapshot.Status]byte{
	snapshot.Default:    '.',
	snapshot.Wall:       '#',
	snapshot.Weight:     '~',
	snapshot.Visited:    'o',
	snapshot.Processing: '@',
	snapshot.Path:       '*',
}

// Grid renders one glyph per cell. Start and target override the cell status.
func (r *Renderer) Grid(g *gridgraph.Grid, start, target gridgraph.Position) string {
	var b strings.Builder
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			p := gridgraph.Position{Row: row, Col: col}
			status := g.At(p).Status
			glyph, ok := gridGlyphs[status]
			if !ok {
				glyph = '?'
			}
			switch p {
			case start:
				status, glyph = snapshot.Start, 'S'
			case target:
				status, glyph = snapshot.Target, 'T'
			}
			b.WriteString(r.paint(status, string(glyph)))
		}
		if row < g.Rows-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
