package voxel

// offsets lists the 26 unit displacements of the Moore neighbourhood.
var offsets = func() [26]Coord {
	var out [26]Coord
	i := 0
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				out[i] = Coord{X: dx, Y: dy, Z: dz}
				i++
			}
		}
	}
	return out
}()

// Neighbors returns the 26 coordinates surrounding c. No bounds are applied.
func Neighbors(c Coord) [26]Coord {
	var out [26]Coord
	for i, d := range offsets {
		out[i] = c.Add(d)
	}
	return out
}

// CountActiveNeighbors returns how many of c's 26 neighbours are in active.
// Neighbours outside any grid are looked up like any other coordinate.
func CountActiveNeighbors(c Coord, active Set) int {
	if active.Empty() {
		return 0
	}
	n := 0
	for _, d := range offsets {
		if active.Contains(c.Add(d)) {
			n++
		}
	}
	return n
}
