package core

import "conway-3d/pkg/voxel"

// Size describes the cube a simulation runs in.
type Size struct {
	N int
}

// Sim defines the contract front-ends drive. Implementations own the current
// snapshot and replace it wholesale on Reset and Step.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Active() voxel.Set
	Generation() int
}

// Pacer is implemented by sims that carry a run/pause flag and a speed for the
// front-end's step loop.
type Pacer interface {
	Running() bool
	SetRunning(bool)
	Speed() float64
}

// Snapshotter is implemented by sims that can write their current state to
// a file for later reloading.
type Snapshotter interface {
	Save(path string) error
}

// NeighborProbe exposes neighbour counts for debug overlays.
type NeighborProbe interface {
	NeighborCount(c voxel.Coord) int
}
