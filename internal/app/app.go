//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"conway-3d/internal/core"
	"conway-3d/internal/render"
	"conway-3d/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const depthLevels = 8

// Game adapts a Sim to the ebiten.Game interface.
type Game struct {
	sim     Sim
	pacer   *core.FixedStep
	painter *render.GridPainter
	palette []color.RGBA
	proj    *render.Projection
	hud     *ui.HUD
	overlay *ui.Overlay

	scale    int
	tickOnce bool
	savePath string
}

// New constructs a Game for the provided simulation. The W key writes a
// snapshot to savePath.
func New(sim Sim, scale, hudWidth int, savePath string) *Game {
	if scale < 1 {
		scale = 1
	}
	g := &Game{
		sim:      sim,
		pacer:    core.NewFixedStep(sim.Speed()),
		palette:  render.DepthPalette(depthLevels, color.RGBA{R: 120, G: 220, B: 255, A: 255}, color.RGBA{R: 8, G: 8, B: 12, A: 255}),
		hud:      ui.NewHUD(sim, hudWidth),
		overlay:  ui.NewOverlay(sim, scale),
		scale:    scale,
		savePath: savePath,
	}
	g.rebuild()
	return g
}

func (g *Game) rebuild() {
	n := g.sim.Size().N
	g.painter = render.NewGridPainter(n, g.palette)
	g.proj = render.Project(g.sim.Active(), n, depthLevels)
}

// Reset reinitializes the simulation state with the provided seed. A zero
// seed reuses the configured one.
func (g *Game) Reset(seed int64) {
	g.sim.Reset(seed)
	g.tickOnce = false
	g.pacer.Pause()
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.SetRunning(!g.sim.Running())
		if !g.sim.Running() {
			g.pacer.Pause()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.sim.SetRunning(true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		seed := time.Now().UnixNano()
		log.Printf("reseeding with %d", seed)
		g.Reset(seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		log.Print(SaveSnapshot(g.sim, g.savePath))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		ScaleSpeed(g.sim, 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		ScaleSpeed(g.sim, 0.5)
	}

	n := g.sim.Size().N
	if g.hud.Update(n*g.scale) && g.sim.Size().N != n {
		g.pacer.Pause()
	}
	g.pacer.SetSpeed(g.sim.Speed())

	if (g.sim.Running() && g.pacer.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}

	if g.painter.N() != max(g.sim.Size().N, 1) {
		g.rebuild()
	} else {
		g.proj = render.Project(g.sim.Active(), g.sim.Size().N, depthLevels)
	}
	g.overlay.Update(g.proj)
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette[0])
	g.painter.Blit(screen, g.proj, g.scale)
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, g.viewSide(), h)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := g.viewSide()
	return side + g.hud.Width(), max(side, minHUDHeight)
}

func (g *Game) viewSide() int {
	return max(g.sim.Size().N, 1) * g.scale
}

const minHUDHeight = 240
