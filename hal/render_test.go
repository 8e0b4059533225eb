//go:build !tinygo

package hal

import (
	"image"
	"image/color"
	"testing"
)

func testDevice() *Memory {
	m := NewMemory()
	m.Regs().Store(RegMode, ModeActive)
	m.Regs().Store(RegPalette, 0x000000)
	m.Regs().Store(RegPalette+1, 0x0000FF)
	m.Regs().Store(RegPalette+15, 0xFFFFFF)
	return m
}

func TestRenderCell(t *testing.T) {
	m := testDevice()
	// Glyph 'A': top row 0b1000_0001, everything else empty.
	m.Font().Store('A'*FontGlyphBytes, 0x81)
	m.Cells().Store(1, 'A'|0x1F00) // fg 15, bg 1

	img := RenderImage(m)

	white := color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	blue := color.RGBA{0, 0, 0xFF, 0xFF}
	if got := img.RGBAAt(GlyphWidth, 0); got != white {
		t.Fatalf("left pixel = %v", got)
	}
	if got := img.RGBAAt(GlyphWidth+7, 0); got != white {
		t.Fatalf("right pixel = %v", got)
	}
	if got := img.RGBAAt(GlyphWidth+3, 0); got != blue {
		t.Fatalf("middle pixel = %v", got)
	}
	if got := img.RGBAAt(GlyphWidth, 1); got != blue {
		t.Fatalf("second row = %v", got)
	}
}

func TestRenderModeOff(t *testing.T) {
	m := testDevice()
	m.Regs().Store(RegMode, ModeOff)
	m.Cells().Store(0, 0x7F|0x0F00)
	m.Font().Store(0x7F*FontGlyphBytes, 0xFF)

	img := RenderImage(m)
	if got := img.RGBAAt(0, 0); got != (color.RGBA{A: 0xFF}) {
		t.Fatalf("pixel = %v, want black", got)
	}
}

func TestRenderPixelOverlay(t *testing.T) {
	m := testDevice()
	m.Pixels().Store(WordsPerLine*5+1, 3<<4) // x = 34, y = 5

	img := RenderImage(m)
	if got := img.RGBAAt(34, 5); got != (color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}) {
		t.Fatalf("overlay pixel = %v", got)
	}
	if got := img.RGBAAt(33, 5); got != (color.RGBA{0, 0, 0, 0xFF}) {
		t.Fatalf("neighbour = %v", got)
	}
}

func TestRenderCursor(t *testing.T) {
	m := testDevice()
	m.Regs().Store(RegCursV, 10)
	m.Regs().Store(RegXCur, 2)
	m.Regs().Store(RegYCur, 3)

	img := RenderImage(m)
	x, y := 2*GlyphWidth, 3*GlyphHeight
	if got := img.RGBAAt(x, y+11); got.R < 0x80 {
		t.Fatalf("cursor line = %v", got)
	}
	if got := img.RGBAAt(x, y+9); got.R != 0 {
		t.Fatalf("above cursor = %v", got)
	}
}

func TestUARTPane(t *testing.T) {
	p := newUARTPane(ScreenWidth, paneHeight)
	if _, err := p.Write([]byte("II\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	dst := image.NewRGBA(frameBounds(p))
	p.drawTo(dst, 0, ScreenHeight)

	lit := false
	for y := ScreenHeight; y < ScreenHeight+GlyphHeight; y++ {
		for x := 0; x < 2*GlyphWidth; x++ {
			if dst.RGBAAt(x, y).R != 0 {
				lit = true
			}
		}
	}
	if !lit {
		t.Fatal("pane shows no text")
	}
}

func TestCellRune(t *testing.T) {
	if cellRune('a') != 'a' || cellRune(0x80) != '█' || cellRune(3) != ' ' {
		t.Fatal("cellRune mapping")
	}
}
