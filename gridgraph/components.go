package gridgraph

// Regions finds all contiguous regions of passable cells under conn.
// Returns a slice of regions; each region is a slice of arena indices in
// BFS discovery order.
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Regions(conn Connectivity) [][]int {
	seen := make([]bool, len(g.Cells))
	var regions [][]int

	for i0 := range g.Cells {
		if seen[i0] || !g.Passable(g.Pos(i0)) {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, q := range g.Neighbors(g.Pos(queue[qi]), conn) {
				vi := g.Index(q)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, queue)
	}

	return regions
}

// HopDistance returns the minimum number of moves between from and to,
// ignoring terrain weights, or -1 when to is unreachable.
// Time: O(R·C·d).
func (g *Grid) HopDistance(from, to Position, conn Connectivity) int {
	if !g.Passable(from) || !g.Passable(to) {
		return -1
	}
	dist := make([]int, len(g.Cells))
	for i := range dist {
		dist[i] = -1
	}
	src := g.Index(from)
	dist[src] = 0
	queue := []int{src}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == g.Index(to) {
			return dist[u]
		}
		for _, q := range g.Neighbors(g.Pos(u), conn) {
			v := g.Index(q)
			if dist[v] < 0 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return -1
}

// Connected reports whether from and to lie in the same region.
func (g *Grid) Connected(from, to Position, conn Connectivity) bool {
	return g.HopDistance(from, to, conn) >= 0
}
