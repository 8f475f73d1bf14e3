package life3d

import (
	"fmt"
	"os"

	"conway-3d/internal/core"
	rng "conway-3d/pkg/core"
	"conway-3d/pkg/voxel"
)

// World holds the state a front-end keeps around the pure voxel engine: the
// current snapshot, the grid size and the run/pause settings. Every Reset or
// Step swaps in a freshly built snapshot.
type World struct {
	cfg        Config
	active     voxel.Set
	generation int
}

// New returns a World with the given grid size using defaults otherwise.
func New(gridSize int) *World {
	cfg := DefaultConfig()
	cfg.GridSize = gridSize
	return NewWithConfig(cfg)
}

// NewWithConfig returns a World configured from the provided options. The
// world starts empty until Reset is called.
func NewWithConfig(cfg Config) *World {
	if !validSpeed(cfg.Speed) {
		cfg.Speed = DefaultConfig().Speed
	}
	return &World{cfg: cfg}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "life3d" }

// Size reports the cube dimensions.
func (w *World) Size() core.Size { return core.Size{N: w.cfg.GridSize} }

// Config returns a copy of the current configuration.
func (w *World) Config() Config { return w.cfg }

// Active returns the current snapshot.
func (w *World) Active() voxel.Set { return w.active }

// Population returns the number of alive cells.
func (w *World) Population() int { return w.active.Len() }

// Generation returns the number of steps since the last reset.
func (w *World) Generation() int { return w.generation }

// Reset replaces the active set. When the config lists explicit cells they
// are used as-is; otherwise the cube is seeded randomly. A zero seed reuses
// the configured seed.
func (w *World) Reset(seed int64) {
	if seed != 0 {
		w.cfg.Seed = seed
	}
	w.generation = 0
	if len(w.cfg.Cells) > 0 {
		w.Load(voxel.NewSet(w.cfg.Cells...))
		return
	}
	w.active = voxel.Seed(rng.NewRNG(w.cfg.Seed), w.cfg.GridSize)
}

// Reseed discards any explicit initial cells and seeds randomly.
func (w *World) Reseed(seed int64) {
	w.cfg.Cells = nil
	w.Reset(seed)
}

// Step advances the simulation by one generation.
func (w *World) Step() {
	w.active = voxel.Step(w.active, w.cfg.GridSize)
	w.generation++
}

// Load installs an externally supplied snapshot and restarts the
// generation count.
func (w *World) Load(active voxel.Set) {
	w.active = active
	w.generation = 0
}

// Save writes the settings and current snapshot as a YAML file that
// LoadConfig (and so -config) reads back.
func (w *World) Save(path string) error {
	body, err := MarshalConfig(w.cfg, w.active)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// NeighborCount reports the active neighbours of c in the current snapshot.
func (w *World) NeighborCount(c voxel.Coord) int {
	return voxel.CountActiveNeighbors(c, w.active)
}

// Running reports whether the front-end should advance automatically.
func (w *World) Running() bool { return w.cfg.Running }

// SetRunning starts or pauses automatic stepping.
func (w *World) SetRunning(running bool) { w.cfg.Running = running }

// Speed returns the pacing rate in steps per second.
func (w *World) Speed() float64 { return w.cfg.Speed }

// SetSpeed changes the pacing rate. Non-positive or non-finite values are
// rejected.
func (w *World) SetSpeed(speed float64) bool {
	if !validSpeed(speed) {
		return false
	}
	w.cfg.Speed = speed
	return true
}

// SetGridSize changes the cube side and reseeds, matching what a grid-size
// change does in the viewers.
func (w *World) SetGridSize(n int) bool {
	if n < 0 {
		return false
	}
	w.cfg.GridSize = n
	w.Reseed(0)
	return true
}
