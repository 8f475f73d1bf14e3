package render

import "image/color"

// DepthPalette returns levels+1 colours: index 0 is off, the rest ramp base
// from a dim far shade up to full intensity at index levels.
func DepthPalette(levels int, base, off color.RGBA) []color.RGBA {
	if levels < 1 {
		levels = 1
	}
	palette := make([]color.RGBA, levels+1)
	palette[0] = off
	for i := 1; i <= levels; i++ {
		f := 0.25 + 0.75*float64(i)/float64(levels)
		palette[i] = color.RGBA{
			R: uint8(float64(base.R) * f),
			G: uint8(float64(base.G) * f),
			B: uint8(float64(base.B) * f),
			A: base.A,
		}
	}
	return palette
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range buf {
			buf[i] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
