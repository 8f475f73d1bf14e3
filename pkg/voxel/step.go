package voxel

// Step computes the next generation of active on a cube of side gridSize.
//
// Candidates are every active cell plus every in-bounds neighbour of an active
// cell. Active cells are evaluated even when they lie outside [0, gridSize),
// so a cell placed out of bounds by a caller can survive there; only newly
// considered neighbours are filtered.
func Step(active Set, gridSize int) Set {
	candidates := make(map[Coord]struct{}, active.Len()*8)
	for c := range active.cells {
		candidates[c] = struct{}{}
		for _, d := range offsets {
			nb := c.Add(d)
			if nb.InBounds(gridSize) {
				candidates[nb] = struct{}{}
			}
		}
	}

	next := make(map[Coord]struct{}, active.Len())
	for c := range candidates {
		n := CountActiveNeighbors(c, active)
		if active.Contains(c) {
			if survives(n) {
				next[c] = struct{}{}
			}
			continue
		}
		if born(n) {
			next[c] = struct{}{}
		}
	}
	return Set{cells: next}
}
