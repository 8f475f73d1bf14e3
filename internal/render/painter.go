//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a projected cube into a single RGBA image.
type GridPainter struct {
	n       int
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
}

// NewGridPainter allocates a painter for an n×n projection.
func NewGridPainter(n int, palette []color.RGBA) *GridPainter {
	if n < 1 {
		n = 1
	}
	return &GridPainter{
		n:       n,
		img:     ebiten.NewImage(n, n),
		buf:     make([]byte, 4*n*n),
		palette: palette,
	}
}

// Blit draws p scaled by scale. Projections of a different size are skipped;
// callers rebuild the painter when the grid size changes.
func (gp *GridPainter) Blit(dst *ebiten.Image, p *Projection, scale int) {
	if p == nil || p.N != gp.n {
		return
	}
	fillPaletteRGBA(gp.buf, p.Shade.Cells(), gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// N returns the side of the projection the painter accepts.
func (gp *GridPainter) N() int { return gp.n }
