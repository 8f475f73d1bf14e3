// Package term renders one Z slice of the cube in a terminal.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"conway-3d/internal/app"
	"conway-3d/internal/core"
	"conway-3d/pkg/voxel"
)

const frameInterval = 50 * time.Millisecond

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGreen)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// View draws a sim on a tcell screen and maps keys to playback controls.
type View struct {
	screen tcell.Screen
	sim    app.Sim
	pacer  *core.FixedStep
	slice  int

	savePath string
	message  string
}

// NewView returns a view showing the middle slice of sim. The w key writes
// a snapshot to savePath when sim supports it.
func NewView(screen tcell.Screen, sim app.Sim, savePath string) *View {
	return &View{
		screen:   screen,
		sim:      sim,
		pacer:    core.NewFixedStep(sim.Speed()),
		slice:    sim.Size().N / 2,
		savePath: savePath,
	}
}

// Slice returns the Z index currently shown.
func (v *View) Slice() int { return v.slice }

// Message returns the last notice shown under the status line.
func (v *View) Message() string { return v.message }

// HandleEvent applies one input event. It reports true when the user asked to
// quit.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			return v.handleRune(ev.Rune())
		}
	}
	return false
}

func (v *View) handleRune(r rune) bool {
	switch r {
	case 'q':
		return true
	case ' ':
		v.sim.SetRunning(!v.sim.Running())
		if !v.sim.Running() {
			v.pacer.Pause()
		}
	case 'n':
		v.sim.Step()
	case 'r':
		v.sim.Reset(0)
	case 's':
		seed := time.Now().UnixNano()
		v.sim.Reset(seed)
		v.message = fmt.Sprintf("reseeded with %d", seed)
	case 'w':
		v.message = app.SaveSnapshot(v.sim, v.savePath)
	case '[':
		if v.slice > 0 {
			v.slice--
		}
	case ']':
		if v.slice < v.sim.Size().N-1 {
			v.slice++
		}
	case '+', '=':
		app.ScaleSpeed(v.sim, 2)
	case '-':
		app.ScaleSpeed(v.sim, 0.5)
	}
	return false
}

// Advance steps the sim when running and the pacer allows it.
func (v *View) Advance(delta time.Duration) bool {
	if !v.sim.Running() {
		return false
	}
	v.pacer.SetSpeed(v.sim.Speed())
	if !v.pacer.Advance(delta) {
		return false
	}
	v.sim.Step()
	return true
}

// Draw paints the current slice and a status line.
func (v *View) Draw() {
	v.screen.Clear()
	n := v.sim.Size().N
	if v.slice >= n {
		v.slice = max(n-1, 0)
	}
	active := v.sim.Active()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			style := deadStyle
			if active.Contains(voxel.Coord{X: x, Y: y, Z: v.slice}) {
				style = aliveStyle
			}
			v.screen.SetContent(x*2, y, ' ', nil, style)
			v.screen.SetContent(x*2+1, y, ' ', nil, style)
		}
	}

	state := "paused"
	if v.sim.Running() {
		state = "running"
	}
	status := fmt.Sprintf("z=%d/%d gen %d pop %d %s %.2f/s", v.slice, max(n-1, 0), v.sim.Generation(), active.Len(), state, v.sim.Speed())
	v.drawText(0, n, status)
	v.drawText(0, n+1, "space run  n step  r reset  s reseed  w save  [ ] slice  +/- speed  q quit")
	if v.message != "" {
		v.drawText(0, n+2, v.message)
	}
	v.screen.Show()
}

func (v *View) drawText(x, y int, s string) {
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, statusStyle)
	}
}

// Run drives the view until the user quits or ctx is done.
func (v *View) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go v.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()
	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if ev == nil || v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		case now := <-ticker.C:
			v.Advance(now.Sub(last))
			last = now
			v.Draw()
		}
	}
}
