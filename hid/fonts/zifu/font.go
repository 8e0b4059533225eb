// Package zifu is the 8x12 bitmap font uploaded into the display's font
// memory at boot.
package zifu

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const (
	Width   = 8
	Height  = 12
	Glyphs  = 128
	Defined = Glyphs - 1 // codes with bitmap rows; the last code is Block

	// Block is the all-filled glyph used as cursor and placeholder.
	Block = 0x7F
)

// Row returns row r (0..Height-1) of glyph c. Block is all ones; codes outside
// the font read as empty.
func Row(c byte, r int) byte {
	if r < 0 || r >= Height {
		return 0
	}
	if c == Block {
		return 0xFF
	}
	if int(c) >= Defined {
		return 0
	}
	return rows[int(c)*Height+r]
}

// Font renders the glyph table through tinyfont.
//
// Concurrent access is not safe due to internal glyph reuse.
var Font tinyfont.Fonter = &font8x12{}

type font8x12 struct {
	g glyph
}

type glyph struct {
	c byte
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	for row := 0; row < Height; row++ {
		b := Row(g.c, row)
		for col := 0; col < Width; col++ {
			if b&(0x80>>col) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-int16(Height-3-row), c)
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     rune(g.c),
		Width:    Width,
		Height:   Height,
		XAdvance: Width,
		XOffset:  0,
		YOffset:  -(Height - 3),
	}
}

func (f *font8x12) GetYAdvance() uint8 { return Height }

func (f *font8x12) GetGlyph(r rune) tinyfont.Glypher {
	f.g.c = glyphCode(r)
	return &f.g
}

func glyphCode(r rune) byte {
	switch {
	case r == '█': // full block
		return Block
	case r >= 0 && r < Glyphs:
		return byte(r)
	default:
		return '?'
	}
}
