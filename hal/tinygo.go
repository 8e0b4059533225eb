//go:build tinygo && baremetal

package hal

import (
	"machine"
	"math/rand/v2"
	"runtime/volatile"
	"unsafe"
)

// MMIOMap holds the physical base addresses of the HID peripherals.
type MMIOMap struct {
	VGA   uintptr // character cells; registers at +16384, font at +24576
	Fb    uintptr
	Keyb  uintptr
	Mouse uintptr
}

const (
	regsOffset = 16384
	fontOffset = 24576
)

// DefaultMMIO is the SoC memory map the board bitstream uses.
var DefaultMMIO = MMIOMap{
	VGA:   0x41000000,
	Fb:    0x41100000,
	Keyb:  0x41200000,
	Mouse: 0x41400000,
}

type tinyGoHAL struct {
	logger *uartLogger
	serial *uartSerial
	dev    mmioDevice
}

// New returns the board HAL with the default memory map and machine.Serial
// as the UART.
func New() HAL {
	return NewAt(DefaultMMIO)
}

// NewAt returns a board HAL for a custom memory map.
func NewAt(m MMIOMap) HAL {
	return &tinyGoHAL{
		logger: &uartLogger{},
		serial: &uartSerial{},
		dev:    mmioDevice{m: m},
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Serial() Serial   { return h.serial }
func (h *tinyGoHAL) Display() Display { return h.dev }
func (h *tinyGoHAL) Input() Input     { return h.dev }
func (h *tinyGoHAL) Rand() Rand       { return tinyGoRand{} }

type tinyGoRand struct{}

func (tinyGoRand) Uint32() uint32 { return rand.Uint32() }

type mmioDevice struct {
	m MMIOMap
}

func (d mmioDevice) Regs() Regs          { return mmioRegs(d.m.VGA + regsOffset) }
func (d mmioDevice) Cells() CellBuffer   { return mmioCells(d.m.VGA) }
func (d mmioDevice) Font() FontMemory    { return mmioFont(d.m.VGA + fontOffset) }
func (d mmioDevice) Pixels() PixelBuffer { return mmioPixels(d.m.Fb) }
func (d mmioDevice) Keyboard() Keyboard  { return mmioKeyboard(d.m.Keyb) }
func (d mmioDevice) Mouse() Mouse        { return mmioMouse(d.m.Mouse) }

func reg8(addr uintptr) *volatile.Register8   { return (*volatile.Register8)(unsafe.Pointer(addr)) }
func reg16(addr uintptr) *volatile.Register16 { return (*volatile.Register16)(unsafe.Pointer(addr)) }
func reg32(addr uintptr) *volatile.Register32 { return (*volatile.Register32)(unsafe.Pointer(addr)) }
func reg64(addr uintptr) *volatile.Register64 { return (*volatile.Register64)(unsafe.Pointer(addr)) }

type mmioRegs uintptr

func (b mmioRegs) Load(r Reg) uint64 {
	if int(r) >= RegCount {
		return 0
	}
	return reg64(uintptr(b) + uintptr(r)*8).Get()
}

func (b mmioRegs) Store(r Reg, v uint64) {
	if int(r) >= RegCount {
		return
	}
	reg64(uintptr(b) + uintptr(r)*8).Set(v)
}

type mmioCells uintptr

func (b mmioCells) Len() int { return GridCells }

func (b mmioCells) Load(i int) uint16 {
	if i < 0 || i >= GridCells {
		return 0
	}
	return reg16(uintptr(b) + uintptr(i)*2).Get()
}

func (b mmioCells) Store(i int, v uint16) {
	if i < 0 || i >= GridCells {
		return
	}
	reg16(uintptr(b) + uintptr(i)*2).Set(v)
}

type mmioFont uintptr

func (b mmioFont) Len() int { return FontBytes }

func (b mmioFont) Load(i int) byte {
	if i < 0 || i >= FontBytes {
		return 0
	}
	return reg8(uintptr(b) + uintptr(i)).Get()
}

func (b mmioFont) Store(i int, v byte) {
	if i < 0 || i >= FontBytes {
		return
	}
	reg8(uintptr(b) + uintptr(i)).Set(v)
}

type mmioPixels uintptr

func (b mmioPixels) Len() int { return PixelWords }

func (b mmioPixels) Load(i int) uint64 {
	if i < 0 || i >= PixelWords {
		return 0
	}
	return reg64(uintptr(b) + uintptr(i)*8).Get()
}

func (b mmioPixels) Store(i int, v uint64) {
	if i < 0 || i >= PixelWords {
		return
	}
	reg64(uintptr(b) + uintptr(i)*8).Set(v)
}

type mmioKeyboard uintptr

func (b mmioKeyboard) Load() uint32 { return reg32(uintptr(b)).Get() }

// Pop writes to the register; the controller latches the FIFO head.
func (b mmioKeyboard) Pop() { reg32(uintptr(b)).Set(0) }

type mmioMouse uintptr

func (b mmioMouse) Load() uint64 { return reg64(uintptr(b)).Get() }

type uartLogger struct{}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		machine.Serial.WriteByte(s[i])
	}
	machine.Serial.WriteByte('\r')
	machine.Serial.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		machine.Serial.WriteByte(b[i])
	}
	machine.Serial.WriteByte('\r')
	machine.Serial.WriteByte('\n')
}

type uartSerial struct{}

func (s *uartSerial) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) && machine.Serial.Buffered() > 0 {
		b, err := machine.Serial.ReadByte()
		if err != nil {
			return n, err
		}
		p[n] = b
		n++
	}
	return n, nil
}

func (s *uartSerial) Write(p []byte) (int, error) {
	return machine.Serial.Write(p)
}
