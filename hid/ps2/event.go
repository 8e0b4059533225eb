package ps2

const (
	keyRelease = 0x100
	keyEmpty   = 0x200
)

// KeyEvent is a decoded keyboard event word.
type KeyEvent struct {
	Raw     uint32
	Code    byte
	Scan    byte
	ASCII   byte
	Release bool
}

// DecodeKey decodes a popped keyboard event. The FIFO-empty flag is ignored.
func DecodeKey(ev uint32) KeyEvent {
	ev &^= keyEmpty
	code := byte(ev)
	k := Table[code]
	return KeyEvent{
		Raw:     ev,
		Code:    code,
		Scan:    k.Scan,
		ASCII:   k.Lower,
		Release: ev&keyRelease != 0,
	}
}

// MakeEvent returns the raw event word for a key press or release.
func MakeEvent(code byte, release bool) uint32 {
	ev := uint32(code)
	if release {
		ev |= keyRelease
	}
	return ev
}

// Mouse event word layout.
const (
	mouseXMask     = 1023
	mouseYShift    = 16
	mouseYMask     = 1023
	mouseZShift    = 32
	mouseZMask     = 15
	mouseStrobeBit = 36
	mouseRightBit  = 37
	mouseMiddleBit = 38
	mouseLeftBit   = 39
)

// MouseEvent is a decoded mouse event word.
type MouseEvent struct {
	X, Y   uint16 // 10 bits each
	Z      uint8  // 4-bit wheel delta
	Strobe bool
	Left   bool
	Middle bool
	Right  bool
}

// DecodeMouse unpacks a mouse event word.
func DecodeMouse(w uint64) MouseEvent {
	return MouseEvent{
		X:      uint16(w & mouseXMask),
		Y:      uint16((w >> mouseYShift) & mouseYMask),
		Z:      uint8((w >> mouseZShift) & mouseZMask),
		Strobe: (w>>mouseStrobeBit)&1 != 0,
		Right:  (w>>mouseRightBit)&1 != 0,
		Middle: (w>>mouseMiddleBit)&1 != 0,
		Left:   (w>>mouseLeftBit)&1 != 0,
	}
}

// Encode packs the event into the hardware word, truncating each field to
// its width.
func (m MouseEvent) Encode() uint64 {
	w := uint64(m.X) & mouseXMask
	w |= (uint64(m.Y) & mouseYMask) << mouseYShift
	w |= (uint64(m.Z) & mouseZMask) << mouseZShift
	w |= bit(m.Strobe) << mouseStrobeBit
	w |= bit(m.Right) << mouseRightBit
	w |= bit(m.Middle) << mouseMiddleBit
	w |= bit(m.Left) << mouseLeftBit
	return w
}

func bit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
