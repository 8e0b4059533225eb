//go:build !tinygo

package hal

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Glyph cell size on screen.
const (
	GlyphWidth  = 8
	GlyphHeight = 12
)

// Render draws the emulated VGA output of s into dst, which should be
// ScreenWidth x ScreenHeight.
//
// Cells are char | attr<<8 with the foreground palette index in attr bits
// 0..3 and the background in bits 4..6. Codes beyond the font are drawn
// with the last glyph. Non-zero pixel framebuffer entries are painted on
// top of the text.
func Render(dst *image.RGBA, s *Snapshot) {
	if s.Regs[RegMode] == ModeOff {
		fill(dst, color.RGBA{A: 0xFF})
		return
	}

	var pal [PaletteSize]color.RGBA
	for i := range pal {
		pal[i] = rgbReg(s.Regs[RegPalette+Reg(i)])
	}

	b := dst.Bounds()
	cols := min(b.Dx()/GlyphWidth, CellsPerRow)
	rows := min(b.Dy()/GlyphHeight, len(s.Cells)/CellsPerRow)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := s.Cells[r*CellsPerRow+c]
			ch := int(v & 0xFF)
			if ch >= FontGlyphs {
				ch = FontGlyphs - 1
			}
			attr := v >> 8
			fg := pal[attr&0x0F]
			bg := pal[(attr>>4)&0x07]
			drawGlyph(dst, b.Min.X+c*GlyphWidth, b.Min.Y+r*GlyphHeight, s.Font, ch, fg, bg)
		}
	}

	if s.Regs[RegCursV] != 0 {
		drawCursor(dst, s, pal)
	}
	overlayPixels(dst, s.Pixels, pal)
}

func drawGlyph(dst *image.RGBA, x0, y0 int, font []byte, ch int, fg, bg color.RGBA) {
	base := ch * FontGlyphBytes
	for y := 0; y < GlyphHeight; y++ {
		var bits byte
		if base+y < len(font) {
			bits = font[base+y]
		}
		for x := 0; x < GlyphWidth; x++ {
			c := bg
			if bits&(0x80>>x) != 0 {
				c = fg
			}
			dst.SetRGBA(x0+x, y0+y, c)
		}
	}
}

// drawCursor paints glyph lines CURSV..11 of the cursor cell, blended over
// what is already there.
func drawCursor(dst *image.RGBA, s *Snapshot, pal [PaletteSize]color.RGBA) {
	x0 := int(s.Regs[RegXCur]) * GlyphWidth
	y0 := int(s.Regs[RegYCur]) * GlyphHeight
	start := int(s.Regs[RegCursV])
	if start >= GlyphHeight {
		start = GlyphHeight - 1
	}
	cur, _ := colorful.MakeColor(pal[PaletteSize-1])
	for y := start; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			px, py := x0+x, y0+y
			if !(image.Point{px, py}).In(dst.Bounds()) {
				continue
			}
			under, _ := colorful.MakeColor(dst.RGBAAt(px, py))
			dst.SetRGBA(px, py, toRGBA(under.BlendRgb(cur, 0.75)))
		}
	}
}

// overlayPixels maps 2bpp indices 1..3 onto a ramp from the darkest to the
// brightest palette entry.
func overlayPixels(dst *image.RGBA, pix []uint64, pal [PaletteSize]color.RGBA) {
	lo, _ := colorful.MakeColor(pal[0])
	hi, _ := colorful.MakeColor(pal[PaletteSize-1])
	var ramp [4]color.RGBA
	for i := 1; i < len(ramp); i++ {
		ramp[i] = toRGBA(lo.BlendLab(hi, float64(i)/3).Clamped())
	}

	b := dst.Bounds()
	for i, w := range pix {
		if w == 0 {
			continue
		}
		y := i / WordsPerLine
		xw := (i % WordsPerLine) * PixelsPerWord
		for k := 0; k < PixelsPerWord; k++ {
			idx := (w >> (2 * k)) & 3
			if idx == 0 {
				continue
			}
			px, py := b.Min.X+xw+k, b.Min.Y+y
			if !(image.Point{px, py}).In(b) {
				continue
			}
			dst.SetRGBA(px, py, ramp[idx])
		}
	}
}

func rgbReg(v uint64) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

func fill(dst *image.RGBA, c color.RGBA) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.SetRGBA(x, y, c)
		}
	}
}

// RenderImage renders the current state of m into a new image.
func RenderImage(m *Memory) *image.RGBA {
	var s Snapshot
	m.SnapshotInto(&s)
	img := image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	Render(img, &s)
	return img
}
