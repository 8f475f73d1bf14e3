package app

import (
	"fmt"

	"conway-3d/internal/core"
)

// Sim is what the viewers drive: a core.Sim with run/pause and speed state.
type Sim interface {
	core.Sim
	core.Pacer
	SetSpeed(float64) bool
}

// Speed bounds for the keyboard speed controls.
const (
	MinSpeed = 0.25
	MaxSpeed = 60
)

// ScaleSpeed multiplies the sim speed by factor, clamped to
// [MinSpeed, MaxSpeed].
func ScaleSpeed(s Sim, factor float64) {
	v := s.Speed() * factor
	if v < MinSpeed {
		v = MinSpeed
	}
	if v > MaxSpeed {
		v = MaxSpeed
	}
	s.SetSpeed(v)
}

// SaveSnapshot writes sim's state to path and returns a one-line notice for
// the viewer's status area.
func SaveSnapshot(sim core.Sim, path string) string {
	snap, ok := sim.(core.Snapshotter)
	if !ok {
		return sim.Name() + " cannot be saved"
	}
	if path == "" {
		return "no snapshot path set"
	}
	if err := snap.Save(path); err != nil {
		return fmt.Sprintf("save failed: %v", err)
	}
	return fmt.Sprintf("saved generation %d to %s", sim.Generation(), path)
}
