package zifu

import (
	"image/color"
	"testing"
)

type pixelRecorder struct {
	set map[[2]int16]bool
}

func (p *pixelRecorder) Size() (x, y int16) { return 64, 64 }
func (p *pixelRecorder) Display() error     { return nil }
func (p *pixelRecorder) SetPixel(x, y int16, c color.RGBA) {
	p.set[[2]int16{x, y}] = true
}

func TestRowBlockAndRange(t *testing.T) {
	for r := 0; r < Height; r++ {
		if Row(Block, r) != 0xFF {
			t.Fatalf("block row %d = %#x", r, Row(Block, r))
		}
	}
	if Row('A', Height) != 0 || Row('A', -1) != 0 {
		t.Fatal("out-of-range rows must read empty")
	}
	if Row(0x80, 3) != 0 {
		t.Fatal("codes past the table must read empty")
	}
}

func TestRowMatchesTable(t *testing.T) {
	// 'H': 0x00,0x00,0xCC,0x48,0x48,0x78,...
	want := []byte{0x00, 0x00, 0xCC, 0x48, 0x48, 0x78}
	for i, b := range want {
		if got := Row('H', i); got != b {
			t.Fatalf("H row %d = %#x, want %#x", i, got, b)
		}
	}
	if Row(' ', 5) != 0 {
		t.Fatal("space must be blank")
	}
}

func TestFontDrawsGlyphBits(t *testing.T) {
	rec := &pixelRecorder{set: map[[2]int16]bool{}}
	g := Font.GetGlyph('I')
	if info := g.Info(); info.XAdvance != Width || info.Height != Height {
		t.Fatalf("info = %+v", info)
	}

	g.Draw(rec, 0, Height-3, color.RGBA{R: 255, A: 255})

	// Row 2 of 'I' is 0xF8: five leftmost pixels.
	for col := int16(0); col < 8; col++ {
		want := col < 5
		if rec.set[[2]int16{col, 2}] != want {
			t.Fatalf("pixel (%d,2) = %v, want %v", col, rec.set[[2]int16{col, 2}], want)
		}
	}
	if Font.GetYAdvance() != Height {
		t.Fatalf("y advance = %d", Font.GetYAdvance())
	}
}

func TestGlyphCodeFallback(t *testing.T) {
	if glyphCode('é') != '?' {
		t.Fatal("non-ASCII should fall back to '?'")
	}
	if glyphCode('█') != Block {
		t.Fatal("full block rune should map to Block")
	}
}
