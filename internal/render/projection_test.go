package render

import (
	"image/color"
	"testing"

	"conway-3d/pkg/voxel"
)

func TestProjectKeepsNearestCell(t *testing.T) {
	active := voxel.NewSet(
		voxel.Coord{X: 1, Y: 1, Z: 3},
		voxel.Coord{X: 1, Y: 1, Z: 0},
		voxel.Coord{X: 2, Y: 0, Z: 3},
		voxel.Coord{X: 9, Y: 0, Z: 0},
	)
	p := Project(active, 4, 4)

	c, ok := p.NearestAt(1, 1)
	if !ok || c.Z != 0 {
		t.Fatalf("NearestAt(1,1) = %v, %v; want z=0", c, ok)
	}
	if got := p.Shade.At(1, 1); got != 4 {
		t.Fatalf("nearest shade = %d, want 4", got)
	}
	if got := p.Shade.At(2, 0); got != 1 {
		t.Fatalf("farthest shade = %d, want 1", got)
	}
	if _, ok := p.NearestAt(0, 0); ok {
		t.Fatal("empty column reported a cell")
	}
	if _, ok := p.NearestAt(9, 0); ok {
		t.Fatal("out-of-bounds cells must not be projected")
	}
}

func TestProjectDegenerate(t *testing.T) {
	p := Project(voxel.NewSet(voxel.Coord{}), 0, 0)
	if p.N != 0 || len(p.Shade.Cells()) != 0 || p.Levels != 1 {
		t.Fatalf("unexpected projection %+v", p)
	}
}

func TestFillPaletteRGBA(t *testing.T) {
	off := color.RGBA{A: 255}
	palette := DepthPalette(2, color.RGBA{R: 200, G: 100, B: 40, A: 255}, off)
	if len(palette) != 3 || palette[0] != off {
		t.Fatalf("unexpected palette %v", palette)
	}
	if palette[2].R != 200 || palette[1].R >= palette[2].R {
		t.Fatalf("palette should brighten with level: %v", palette)
	}

	cells := []uint8{0, 2, 7}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)
	if buf[3] != 255 || buf[0] != 0 {
		t.Fatalf("off pixel = %v", buf[:4])
	}
	if buf[4] != 200 {
		t.Fatalf("level 2 pixel = %v", buf[4:8])
	}
	if buf[8] != 200 {
		t.Fatalf("values above the palette should clamp, got %v", buf[8:12])
	}

	fillPaletteRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("empty palette should clear buffer, byte %d = %d", i, b)
		}
	}
}
