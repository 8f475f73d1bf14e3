//go:build !ebiten

package ui

import (
	"conway-3d/internal/core"
	"conway-3d/internal/render"
)

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Sim, int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update(*render.Projection) {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
