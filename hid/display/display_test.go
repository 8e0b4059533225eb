package display

import (
	"image"
	"image/color"
	"testing"

	"vgahid/hal"
	"vgahid/hid/fonts/zifu"
)

type cursorSpy struct{ resets int }

func (c *cursorSpy) Reset() { c.resets++ }

type logoSpy struct {
	limit int
	mode  uint64
	regs  hal.Regs
}

func (l *logoSpy) Draw(limit int) {
	l.limit = limit
	l.mode = l.regs.Load(hal.RegMode)
}

func TestInitRegisters(t *testing.T) {
	m := hal.NewMemory()
	cur := &cursorSpy{}
	logo := &logoSpy{regs: m.Regs()}

	New(m, cur, logo).Init()

	if cur.resets != 1 {
		t.Fatalf("cursor resets = %d", cur.resets)
	}
	want := map[hal.Reg]uint64{
		hal.RegCursV:     10,
		hal.RegXCur:      0,
		hal.RegYCur:      32,
		hal.RegHStart:    2048,
		hal.RegHSyn:      2068,
		hal.RegHStop:     2099,
		hal.RegVStart:    768,
		hal.RegVStop:     787,
		hal.RegVPixStart: 16,
		hal.RegVPixStop:  784,
		hal.RegHPixStart: 384,
		hal.RegHPixStop:  1920,
		hal.RegHPix:      5,
		hal.RegVPix:      11,
		hal.RegGHLimit:   40,
		hal.RegMode:      hal.ModeActive,
	}
	for r, v := range want {
		if got := m.Regs().Load(r); got != v {
			t.Fatalf("reg %d = %d, want %d", r, got, v)
		}
	}
	for i, rgb := range Palette {
		if got := m.Regs().Load(hal.RegPalette + hal.Reg(i)); got != rgb {
			t.Fatalf("palette %d = %#x, want %#x", i, got, rgb)
		}
	}
	if m.Regs().Load(hal.RegPalette) != 0x20272D || m.Regs().Load(hal.RegPalette+15) != 0xFFFFFF {
		t.Fatal("palette endpoints")
	}

	if logo.limit != GHLimit {
		t.Fatalf("logo limit = %d", logo.limit)
	}
	if logo.mode != hal.ModeStatus {
		t.Fatalf("logo drawn in mode %d, want status mode", logo.mode)
	}
}

func TestUploadFont(t *testing.T) {
	m := hal.NewMemory()
	f := m.Font()
	for i := 0; i < f.Len(); i++ {
		f.Store(i, 0xAA)
	}

	UploadFont(f)
	first := make([]byte, f.Len())
	for i := range first {
		first[i] = f.Load(i)
	}

	for c := 0; c < zifu.Defined; c++ {
		for r := 0; r < 16; r++ {
			want := byte(0)
			if r < zifu.Height {
				want = (zifu.Row(byte(c), r) & 0xFC) >> 1
			}
			if got := first[c*16+r]; got != want {
				t.Fatalf("glyph %#x row %d = %#x, want %#x", c, r, got, want)
			}
		}
	}
	for r := 0; r < 16; r++ {
		if got := first[zifu.Block*16+r]; got != 0xFF {
			t.Fatalf("block row %d = %#x", r, got)
		}
	}

	UploadFont(f)
	for i := range first {
		if f.Load(i) != first[i] {
			t.Fatalf("second upload differs at %d", i)
		}
	}
}

func TestInitClearsPixelsAndPaintsStatusBar(t *testing.T) {
	m := hal.NewMemory()
	m.Pixels().Store(100, 0xDEAD)
	m.Pixels().Store(hal.PixelWords-1, 1)

	New(m, nil, nil).Init()

	if m.Pixels().Load(100) != 0 || m.Pixels().Load(hal.PixelWords-1) != 0 {
		t.Fatal("pixel framebuffer not cleared")
	}

	cells := m.Cells()
	cases := []struct {
		row, col int
		want     uint16
	}{
		{0, 0, 0x8080},
		{5, 107, 0x8580},
		{5, 108, 0x0080},
		{5, 117, 0x0080},
		{5, 118, 0x0580},
		{31, 127, 0x1F80},
	}
	for _, tc := range cases {
		if got := cells.Load(tc.row*128 + tc.col); got != tc.want {
			t.Fatalf("cell (%d,%d) = %#x, want %#x", tc.row, tc.col, got, tc.want)
		}
	}
	if got := cells.Load(hal.GridStart); got != 0 {
		t.Fatalf("console region touched: %#x", got)
	}
}

func TestPackImage(t *testing.T) {
	m := hal.NewMemory()
	img := image.NewRGBA(image.Rect(0, 0, hal.ScreenWidth, 2))
	img.Set(0, 0, color.White)
	img.Set(33, 1, color.Gray{Y: 0x90})

	packImage(m.Pixels(), img, 2)

	if got := m.Pixels().Load(0); got != 3 {
		t.Fatalf("word 0 = %#x, want 3", got)
	}
	if got := m.Pixels().Load(hal.WordsPerLine + 1); got != 2<<2 {
		t.Fatalf("line 1 word 1 = %#x, want %#x", got, 2<<2)
	}
}

func TestLogoDrawsSomething(t *testing.T) {
	m := hal.NewMemory()
	NewLogo(m.Pixels(), "vgahid").Draw(GHLimit)

	var lit int
	for i := 0; i < GHLimit*hal.WordsPerLine; i++ {
		if m.Pixels().Load(i) != 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("logo left the framebuffer empty")
	}
	for i := GHLimit * hal.WordsPerLine; i < hal.PixelWords; i++ {
		if m.Pixels().Load(i) != 0 {
			t.Fatalf("logo wrote below its limit at word %d", i)
		}
	}
}
