//go:build ebiten

package ui

import (
	"fmt"

	"conway-3d/internal/core"
	"conway-3d/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay prints status text and, when enabled, probes the cell under the
// cursor for its active neighbour count.
type Overlay struct {
	sim   core.Sim
	scale int
	debug bool

	probe string
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale < 1 {
		scale = 1
	}
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles the debug probe with D and samples the cursor.
func (o *Overlay) Update(p *render.Projection) {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.debug = !o.debug
	}
	o.probe = ""
	if !o.debug || p == nil {
		return
	}
	nb, ok := o.sim.(core.NeighborProbe)
	if !ok {
		return
	}
	mx, my := ebiten.CursorPosition()
	x, y := mx/o.scale, my/o.scale
	c, hit := p.NearestAt(x, y)
	if !hit {
		o.probe = fmt.Sprintf("(%d,%d,-) empty column", x, y)
		return
	}
	o.probe = fmt.Sprintf("%v neighbours=%d", c, nb.NeighborCount(c))
}

// Draw renders the status line and probe text.
func (o *Overlay) Draw(screen *ebiten.Image) {
	state := "paused"
	speed := 0.0
	if pc, ok := o.sim.(core.Pacer); ok {
		if pc.Running() {
			state = "running"
		}
		speed = pc.Speed()
	}
	msg := fmt.Sprintf("gen %d  pop %d  %s  %.1f/s", o.sim.Generation(), o.sim.Active().Len(), state, speed)
	if o.probe != "" {
		msg += "\n" + o.probe
	}
	ebitenutil.DebugPrintAt(screen, msg, 4, 4)
}
