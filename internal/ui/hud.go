//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"conway-3d/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot

	controls    []hudControl
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	offsetX     int

	pixel *ebiten.Image
}

type hudControl struct {
	core.ParameterControl
	value    float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if p, ok := sim.(core.ParameterControlsProvider); ok {
		for i, ctrl := range p.ParameterControls() {
			top := controlsTop + i*lineHeight
			by := top + (lineHeight-buttonSize)/2
			plus := image.Rect(width-panelPadding-buttonSize, by, width-panelPadding, by+buttonSize)
			minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
			h.controls = append(h.controls, hudControl{ParameterControl: ctrl, top: top, minusRect: minus, plusRect: plus})
		}
	}
	h.intSetter, _ = sim.(core.IntParameterSetter)
	h.floatSetter, _ = sim.(core.FloatParameterSetter)
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the snapshot and handles clicks on the +/- buttons. It
// reports whether a parameter changed.
func (h *HUD) Update(offsetX int) bool {
	if h == nil {
		return false
	}
	h.offsetX = offsetX
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		return false
	}
	h.snapshot = provider.Parameters()
	for i := range h.controls {
		c := &h.controls[i]
		c.hasValue = false
		p, ok := h.snapshot.Lookup(c.Key)
		if !ok {
			continue
		}
		if v, err := strconv.ParseFloat(p.Value, 64); err == nil {
			c.value = v
			c.hasValue = true
		}
	}
	return h.handleInput()
}

func (h *HUD) handleInput() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.offsetX
	if px < 0 {
		return false
	}
	for i := range h.controls {
		c := &h.controls[i]
		if !c.hasValue {
			continue
		}
		switch {
		case pointInRect(px, my, c.minusRect):
			return h.adjust(c, -1)
		case pointInRect(px, my, c.plusRect):
			return h.adjust(c, 1)
		}
	}
	return false
}

func (h *HUD) adjust(c *hudControl, direction int) bool {
	step := c.Step
	switch c.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return false
		}
		if step < 1 {
			step = 1
		}
		target := int(math.Round(c.Clamp(c.value + float64(direction)*step)))
		if target == int(c.value) {
			return false
		}
		return h.intSetter.SetIntParameter(c.Key, target)
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return false
		}
		if step <= 0 {
			step = 0.1
		}
		target := c.Clamp(c.value + float64(direction)*step)
		if math.Abs(target-c.value) < 1e-9 {
			return false
		}
		return h.floatSetter.SetFloatParameter(c.Key, target)
	}
	return false
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, fmt.Sprintf("%s controls", h.sim.Name()), face, panelPadding, y, titleColor)

	for i := range h.controls {
		c := &h.controls[i]
		labelY := c.top + labelBaseline
		text.Draw(h.panel, c.Label, face, panelPadding, labelY, labelColor)
		value, col := "--", dimColor
		if c.hasValue {
			value, col = formatValue(c), labelColor
		}
		w := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, c.minusRect.Min.X-buttonGap-w, labelY, col)
		h.drawButton(c.minusRect, "-", c.hasValue)
		h.drawButton(c.plusRect, "+", c.hasValue)
	}

	y = controlsTop + len(h.controls)*lineHeight + infoSpacing
	for _, g := range h.snapshot.Groups {
		if g.Name != "State" {
			continue
		}
		for _, p := range g.Params {
			text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding, y, dimColor)
			y += infoLine
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := color.RGBA{R: 54, G: 56, B: 64, A: 255}, labelColor
	if !enabled {
		bg, fg = color.RGBA{R: 32, G: 34, B: 40, A: 255}, dimColor
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func formatValue(c *hudControl) string {
	if c.Type == core.ParamTypeInt {
		return strconv.Itoa(int(c.value))
	}
	return strconv.FormatFloat(c.value, 'f', 1, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 140, G: 140, B: 150, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 12
	infoLine       = 18
	controlsTop    = panelPadding + headerBaseline + 14
)
