package render

import (
	"conway-3d/internal/core"
	"conway-3d/pkg/voxel"
)

// Projection is an orthographic view of the cube looking down the Z axis.
// Each pixel records the alive cell nearest to the viewer (smallest Z).
type Projection struct {
	N      int
	Levels int

	// Shade holds 0 for empty columns and 1..Levels otherwise, brightest
	// for the nearest cells.
	Shade *core.ByteGrid

	depth []int
}

// Project builds a Projection of active on an n-cube. Cells outside [0, n)
// are not drawn. levels is clamped to [1, 255].
func Project(active voxel.Set, n, levels int) *Projection {
	if n < 0 {
		n = 0
	}
	if levels < 1 {
		levels = 1
	}
	if levels > 255 {
		levels = 255
	}
	p := &Projection{
		N:      n,
		Levels: levels,
		Shade:  core.NewByteGrid(n, n),
		depth:  make([]int, n*n),
	}
	for i := range p.depth {
		p.depth[i] = -1
	}
	active.Each(func(c voxel.Coord) bool {
		if !c.InBounds(n) {
			return true
		}
		idx := p.Shade.Index(c.X, c.Y)
		if d := p.depth[idx]; d >= 0 && d <= c.Z {
			return true
		}
		p.depth[idx] = c.Z
		p.Shade.Cells()[idx] = uint8(levels - c.Z*levels/n)
		return true
	})
	return p
}

// NearestAt returns the nearest alive cell in column (x, y).
func (p *Projection) NearestAt(x, y int) (voxel.Coord, bool) {
	if !p.Shade.Contains(x, y) {
		return voxel.Coord{}, false
	}
	z := p.depth[p.Shade.Index(x, y)]
	if z < 0 {
		return voxel.Coord{}, false
	}
	return voxel.Coord{X: x, Y: y, Z: z}, true
}
