package hal

// Reg indexes the 64-bit display-control registers.
type Reg uint8

const (
	RegXCur Reg = iota
	RegYCur
	RegCursV
	RegHStart
	RegHSyn
	RegHStop
	RegVStart
	RegVStop
	RegVPixStart
	RegVPixStop
	RegHPixStart
	RegHPixStop
	RegHPix
	RegVPix
	RegGHLimit
	RegMode

	// RegPalette is the first of 16 palette registers (0xRRGGBB).
	RegPalette Reg = 32
)

// RegCount is the size of the register block.
const RegCount = 64

// PaletteSize is the number of palette registers starting at RegPalette.
const PaletteSize = 16

// Display modes written to RegMode.
const (
	ModeOff    = 0
	ModeActive = 1
	ModeStatus = 2
)

// Region geometry of the display device.
const (
	CellsPerRow = 128
	GridRows    = 64
	GridCells   = CellsPerRow * GridRows

	// GridStart is the first console cell; rows above it hold the status bar.
	GridStart = 32 * CellsPerRow

	FontGlyphs     = 128
	FontGlyphBytes = 16
	FontBytes      = FontGlyphs * FontGlyphBytes

	ScreenWidth  = 1024
	ScreenHeight = 768

	// Pixel framebuffer: 2 bits per pixel, 32 pixels per word.
	PixelsPerWord = 32
	WordsPerLine  = ScreenWidth / PixelsPerWord
	PixelWords    = ScreenHeight * WordsPerLine
)

// Keyboard event register flags.
const (
	KeybRelease uint32 = 0x100
	KeybEmpty   uint32 = 0x200
)
