// Package display brings up the VGA-compatible display: timing, palette,
// font download, status bar and logo.
package display

import (
	"vgahid/hal"
	"vgahid/hid/fonts/zifu"
)

// Target mode and boot-time tuning values.
const (
	Width  = hal.ScreenWidth
	Height = hal.ScreenHeight

	HPixDefault = 5
	VPixDefault = 11 // a squashed vertical display uses 10

	// GHLimit is the logo/status-bar limit; the font-download limit register
	// gets half of it.
	GHLimit = 80

	statusRows  = 32
	statusSplit = 108
	statusPlain = 118
)

// Palette is the boot colour table (0xRRGGBB).
var Palette = [hal.PaletteSize]uint64{
	0x20272D, 0xE0354F, 0xE9374F, 0xE1E6E8,
	0xAA0000, 0xAA00AA, 0xAA5500, 0xAAAAAA,
	0x555555, 0x5555FF, 0x55FF55, 0x55FFFF,
	0xFF5555, 0xFF55FF, 0xFFFF55, 0xFFFFFF,
}

// Cursor is the part of the text console the initializer rewinds.
type Cursor interface {
	Reset()
}

// Logo draws into the pixel framebuffer during boot.
type Logo interface {
	Draw(limit int)
}

// LogoFunc adapts a function to Logo.
type LogoFunc func(limit int)

func (f LogoFunc) Draw(limit int) { f(limit) }

// Initializer programs the display into its boot state.
//
// It must finish before the console or the poll loop touch the device.
type Initializer struct {
	dev  hal.Display
	cur  Cursor
	logo Logo
}

// New returns an initializer. cur and logo may be nil.
func New(dev hal.Display, cur Cursor, logo Logo) *Initializer {
	return &Initializer{dev: dev, cur: cur, logo: logo}
}

// Init runs the full bring-up sequence, leaving the display in active mode.
func (in *Initializer) Init() {
	regs := in.dev.Regs()

	if in.cur != nil {
		in.cur.Reset()
	}

	regs.Store(hal.RegCursV, 10)
	regs.Store(hal.RegXCur, 0)
	regs.Store(hal.RegYCur, hal.GridStart/hal.CellsPerRow)

	programTiming(regs)
	loadPalette(regs)
	UploadFont(in.dev.Font())
	clearPixels(in.dev.Pixels())

	regs.Store(hal.RegMode, hal.ModeStatus)
	paintStatusBar(in.dev.Cells())

	if in.logo != nil {
		in.logo.Draw(GHLimit)
	}

	regs.Store(hal.RegMode, hal.ModeActive)
}

func programTiming(regs hal.Regs) {
	regs.Store(hal.RegHStart, Width*2)
	regs.Store(hal.RegHSyn, Width*2+20)
	regs.Store(hal.RegHStop, Width*2+51)
	regs.Store(hal.RegVStart, Height)
	regs.Store(hal.RegVStop, Height+19)

	regs.Store(hal.RegVPixStart, 16)
	regs.Store(hal.RegVPixStop, Height+16)
	regs.Store(hal.RegHPixStart, 128*3)
	regs.Store(hal.RegHPixStop, 128*3+256*6)
	regs.Store(hal.RegHPix, HPixDefault)
	regs.Store(hal.RegVPix, VPixDefault)
	regs.Store(hal.RegGHLimit, GHLimit/2)
}

func loadPalette(regs hal.Regs) {
	for i, rgb := range Palette {
		regs.Store(hal.RegPalette+hal.Reg(i), rgb)
	}
}

// UploadFont copies the glyph table into font memory. Rows are packed to six
// bits ((row & 0xFC) >> 1), rows 12..15 are zero and the block glyph is solid.
func UploadFont(f hal.FontMemory) {
	for c := 0; c < zifu.Defined; c++ {
		base := c * hal.FontGlyphBytes
		for r := 0; r < zifu.Height; r++ {
			f.Store(base+r, (zifu.Row(byte(c), r)&0xFC)>>1)
		}
		for r := zifu.Height; r < hal.FontGlyphBytes; r++ {
			f.Store(base+r, 0)
		}
	}
	base := zifu.Block * hal.FontGlyphBytes
	for r := 0; r < hal.FontGlyphBytes; r++ {
		f.Store(base+r, 0xFF)
	}
}

func clearPixels(p hal.PixelBuffer) {
	for i := 0; i < hal.PixelWords && i < p.Len(); i++ {
		p.Store(i, 0)
	}
}

// paintStatusBar fills the first rows with the gradient bar.
func paintStatusBar(cells hal.CellBuffer) {
	for i := 0; i < statusRows; i++ {
		attr := uint16(i) << 8
		for j := 0; j < hal.CellsPerRow; j++ {
			var v uint16
			switch {
			case j < statusSplit:
				v = 0x8080 | attr
			case j < statusPlain:
				v = 0x0080
			default:
				v = 0x0080 | attr
			}
			cells.Store(hal.CellsPerRow*i+j, v)
		}
	}
}
