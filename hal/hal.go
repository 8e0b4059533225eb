package hal

import (
	"errors"
	"io"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Serial is the UART transmit/receive primitive.
//
// Writes are assumed to always be accepted; there is no backpressure signal.
type Serial interface {
	io.Reader
	io.Writer
}

// Regs is the display-control register block.
type Regs interface {
	Load(r Reg) uint64
	Store(r Reg, v uint64)
}

// CellBuffer is the memory-mapped character-cell array (char | attr<<8).
type CellBuffer interface {
	Len() int
	Load(i int) uint16
	Store(i int, v uint16)
}

// FontMemory is the downloadable font byte array.
type FontMemory interface {
	Len() int
	Load(i int) byte
	Store(i int, v byte)
}

// PixelBuffer is the pixel framebuffer word array.
type PixelBuffer interface {
	Len() int
	Load(i int) uint64
	Store(i int, v uint64)
}

// Display groups the memory-mapped regions of the VGA-compatible display.
type Display interface {
	Regs() Regs
	Cells() CellBuffer
	Font() FontMemory
	Pixels() PixelBuffer
}

// Keyboard is the keyboard event FIFO register.
//
// Pop (any store to the register on hardware) moves the FIFO head into the
// data latch. Load returns the latch, with KeybEmpty set when the FIFO has
// nothing left.
type Keyboard interface {
	Load() uint32
	Pop()
}

// Mouse is the latched mouse event word. It has no FIFO semantics.
type Mouse interface {
	Load() uint64
}

// Input provides access to input devices.
type Input interface {
	Keyboard() Keyboard
	Mouse() Mouse
}

// Rand is the pseudo-random source used by debug key bindings.
type Rand interface {
	Uint32() uint32
}

// HAL provides the only contact point between the HID core and the outside world.
type HAL interface {
	Logger() Logger
	Serial() Serial
	Display() Display
	Input() Input
	Rand() Rand
}
