package voxel

import "testing"

func TestNeighborsAreTheSurroundingCube(t *testing.T) {
	origin := Coord{X: 2, Y: -1, Z: 7}
	seen := map[Coord]bool{}
	for _, nb := range Neighbors(origin) {
		if nb == origin {
			t.Fatal("neighbours must exclude the cell itself")
		}
		dx, dy, dz := nb.X-origin.X, nb.Y-origin.Y, nb.Z-origin.Z
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 || dz < -1 || dz > 1 {
			t.Fatalf("neighbour %v is not adjacent to %v", nb, origin)
		}
		if seen[nb] {
			t.Fatalf("duplicate neighbour %v", nb)
		}
		seen[nb] = true
	}
	if len(seen) != 26 {
		t.Fatalf("expected 26 distinct neighbours, got %d", len(seen))
	}
}

func TestCountActiveNeighborsBounds(t *testing.T) {
	center := Coord{X: 1, Y: 1, Z: 1}
	nbs := Neighbors(center)
	full := NewSet(nbs[:]...).With(center)

	if got := CountActiveNeighbors(center, full); got != 26 {
		t.Fatalf("fully surrounded cell has %d neighbours, want 26", got)
	}
	if got := CountActiveNeighbors(center, Set{}); got != 0 {
		t.Fatalf("empty set yields %d neighbours, want 0", got)
	}
	if got := CountActiveNeighbors(Coord{X: 40, Y: 40, Z: 40}, full); got != 0 {
		t.Fatalf("distant cell has %d neighbours, want 0", got)
	}
	if got := CountActiveNeighbors(Coord{X: 0, Y: 0, Z: 0}, full); got != 7 {
		t.Fatalf("corner cell has %d neighbours, want 7", got)
	}
}

func TestCountActiveNeighborsIgnoresGridBounds(t *testing.T) {
	active := NewSet(
		Coord{X: -1, Y: 0, Z: 0},
		Coord{X: -1, Y: -1, Z: -1},
		Coord{X: 0, Y: -1, Z: 0},
	)
	if got := CountActiveNeighbors(Coord{X: 0, Y: 0, Z: 0}, active); got != 3 {
		t.Fatalf("expected negative coordinates to count, got %d", got)
	}
}
