package voxel

// Rule thresholds for the 26-neighbour variant. A cell has 26 neighbours in
// 3D instead of 8, so the classic 2/3 windows are scaled up.
const (
	SurviveMin = 4
	SurviveMax = 6
	BirthMin   = 5
	BirthMax   = 7

	// SeedDensity is the fraction of the cube targeted by Seed.
	SeedDensity = 0.1
)

func survives(n int) bool { return n >= SurviveMin && n <= SurviveMax }

func born(n int) bool { return n >= BirthMin && n <= BirthMax }
