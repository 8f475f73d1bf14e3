package voxel

import "math"

// Intner is the random source consumed by Seed. *rand.Rand from math/rand/v2
// and core.RNG both satisfy it.
type Intner interface {
	IntN(n int) int
}

// TargetCount returns floor(gridSize³ × SeedDensity), or 0 for gridSize <= 0.
// Counts beyond math.MaxInt saturate.
func TargetCount(gridSize int) int {
	if gridSize <= 0 {
		return 0
	}
	volume := float64(gridSize) * float64(gridSize) * float64(gridSize)
	target := math.Floor(volume * SeedDensity)
	if target >= float64(math.MaxInt) {
		return math.MaxInt
	}
	return int(target)
}

// Seed draws TargetCount(gridSize) independent uniform coordinates in
// [0, gridSize)³. Repeated draws collapse, so the result may hold fewer cells
// than the target.
func Seed(r Intner, gridSize int) Set {
	target := TargetCount(gridSize)
	cells := make(map[Coord]struct{}, target)
	for i := 0; i < target; i++ {
		c := Coord{X: r.IntN(gridSize), Y: r.IntN(gridSize), Z: r.IntN(gridSize)}
		cells[c] = struct{}{}
	}
	return Set{cells: cells}
}
