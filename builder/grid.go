package builder

import (
	"github.com/katalvlaran/stepviz/gridgraph"
	"github.com/katalvlaran/stepviz/snapshot"
)

const methodGrid = "Grid"

// Grid builds a WithGridSize grid and returns it with its endpoints.
// Without a random source the grid is open. With one, every cell other than
// the endpoints becomes a wall with probability WithWallDensity, and each
// remaining cell becomes weighted terrain with probability WithWeightDensity.
// Cells are visited in row-major order so a seed fixes the layout.
//
// Returns ErrBadSize if the grid has fewer than two cells and
// ErrBadEndpoints for endpoints out of bounds or equal.
func Grid(opts ...Option) (*gridgraph.Grid, gridgraph.Position, gridgraph.Position, error) {
	cfg := newConfig(opts...)
	start, target := cfg.start, cfg.target
	if cfg.rows*cfg.cols < 2 {
		return nil, start, target, builderErrorf(methodGrid, ErrBadSize, "rows=%d, cols=%d", cfg.rows, cfg.cols)
	}
	g, err := gridgraph.NewGrid(cfg.rows, cfg.cols)
	if err != nil {
		return nil, start, target, builderErrorf(methodGrid, ErrBadSize, "%v", err)
	}
	if !g.InBounds(start) || !g.InBounds(target) || start == target {
		return nil, start, target, builderErrorf(methodGrid, ErrBadEndpoints, "start=%v, target=%v", start, target)
	}
	if cfg.rng == nil {
		return g, start, target, nil
	}
	for i := range g.Cells {
		p := g.Pos(i)
		if p == start || p == target {
			continue
		}
		switch {
		case cfg.rng.Float64() < cfg.wallDensity:
			g.Cells[i].Status = snapshot.Wall
		case cfg.rng.Float64() < cfg.weightDensity:
			g.Cells[i].Status = snapshot.Weight
		}
	}

	return g, start, target, nil
}
