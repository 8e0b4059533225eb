// Package ps2 decodes the keyboard and mouse event words latched by the HID
// controller.
//
// The keyboard controller reports PS/2 set-2 codes. Table translates each of
// them into a set-1 scan code plus unshifted and shifted ASCII.
package ps2

// Key is one scan-code table entry.
type Key struct {
	Scan  byte
	Lower byte
	Upper byte
}

// Set-1 scan codes the HID core reacts to.
const (
	ScanEsc       byte = 0x01
	ScanBackspace byte = 0x0E
	ScanEnter     byte = 0x1C
	ScanSpace     byte = 0x39
	ScanUp        byte = 0x48
	ScanLeft      byte = 0x4B
	ScanRight     byte = 0x4D
	ScanDown      byte = 0x50
	ScanExtended  byte = 0xE0
)

// Set-2 codes used when synthesizing events.
const (
	CodeExtended   byte = 0xE0
	CodeLeftShift  byte = 0x12
	CodeUp         byte = 0x75
	CodeDown       byte = 0x72
	CodeLeft       byte = 0x6B
	CodeRight      byte = 0x74
	CodeSpace      byte = 0x29
	CodeEnter      byte = 0x5A
	CodeBackspace  byte = 0x66
	CodeEscape     byte = 0x76
	CodeTab        byte = 0x0D
	CodeLeftCtrl   byte = 0x14
	CodeLeftAlt    byte = 0x11
	CodeRightShift byte = 0x59
)

// Table maps a set-2 code (the low byte of a keyboard event) to its entry.
// Codes without a key have a zero entry.
var Table = [256]Key{
	0x01: {0x43, 0, 0},       // F9
	0x03: {0x3F, 0, 0},       // F5
	0x04: {0x3D, 0, 0},       // F3
	0x05: {0x3B, 0, 0},       // F1
	0x06: {0x3C, 0, 0},       // F2
	0x07: {0x58, 0, 0},       // F12
	0x09: {0x44, 0, 0},       // F10
	0x0A: {0x42, 0, 0},       // F8
	0x0B: {0x40, 0, 0},       // F6
	0x0C: {0x3E, 0, 0},       // F4
	0x0D: {0x0F, '\t', '\t'}, // Tab
	0x0E: {0x29, '`', '~'},
	0x11: {0x38, 0, 0}, // LAlt
	0x12: {0x2A, 0, 0}, // LShift
	0x14: {0x1D, 0, 0}, // LCtrl
	0x15: {0x10, 'q', 'Q'},
	0x16: {0x02, '1', '!'},
	0x1A: {0x2C, 'z', 'Z'},
	0x1B: {0x1F, 's', 'S'},
	0x1C: {0x1E, 'a', 'A'},
	0x1D: {0x11, 'w', 'W'},
	0x1E: {0x03, '2', '@'},
	0x21: {0x2E, 'c', 'C'},
	0x22: {0x2D, 'x', 'X'},
	0x23: {0x20, 'd', 'D'},
	0x24: {0x12, 'e', 'E'},
	0x25: {0x05, '4', '$'},
	0x26: {0x04, '3', '#'},
	0x29: {0x39, ' ', ' '},
	0x2A: {0x2F, 'v', 'V'},
	0x2B: {0x21, 'f', 'F'},
	0x2C: {0x14, 't', 'T'},
	0x2D: {0x13, 'r', 'R'},
	0x2E: {0x06, '5', '%'},
	0x31: {0x31, 'n', 'N'},
	0x32: {0x30, 'b', 'B'},
	0x33: {0x23, 'h', 'H'},
	0x34: {0x22, 'g', 'G'},
	0x35: {0x15, 'y', 'Y'},
	0x36: {0x07, '6', '^'},
	0x3A: {0x32, 'm', 'M'},
	0x3B: {0x24, 'j', 'J'},
	0x3C: {0x16, 'u', 'U'},
	0x3D: {0x08, '7', '&'},
	0x3E: {0x09, '8', '*'},
	0x41: {0x33, ',', '<'},
	0x42: {0x25, 'k', 'K'},
	0x43: {0x17, 'i', 'I'},
	0x44: {0x18, 'o', 'O'},
	0x45: {0x0B, '0', ')'},
	0x46: {0x0A, '9', '('},
	0x49: {0x34, '.', '>'},
	0x4A: {0x35, '/', '?'},
	0x4B: {0x26, 'l', 'L'},
	0x4C: {0x27, ';', ':'},
	0x4D: {0x19, 'p', 'P'},
	0x4E: {0x0C, '-', '_'},
	0x52: {0x28, '\'', '"'},
	0x54: {0x1A, '[', '{'},
	0x55: {0x0D, '=', '+'},
	0x58: {0x3A, 0, 0},       // CapsLock
	0x59: {0x36, 0, 0},       // RShift
	0x5A: {0x1C, '\r', '\r'}, // Enter
	0x5B: {0x1B, ']', '}'},
	0x5D: {0x2B, '\\', '|'},
	0x66: {0x0E, '\b', '\b'}, // Backspace
	0x69: {0x4F, '1', 0},     // KP1 / End
	0x6B: {0x4B, '4', 0},     // KP4 / Left
	0x6C: {0x47, '7', 0},     // KP7 / Home
	0x70: {0x52, '0', 0},     // KP0 / Insert
	0x71: {0x53, '.', 0x7F},  // KP. / Delete
	0x72: {0x50, '2', 0},     // KP2 / Down
	0x73: {0x4C, '5', 0},     // KP5
	0x74: {0x4D, '6', 0},     // KP6 / Right
	0x75: {0x48, '8', 0},     // KP8 / Up
	0x76: {0x01, 0x1B, 0x1B}, // Esc
	0x77: {0x45, 0, 0},       // NumLock
	0x78: {0x57, 0, 0},       // F11
	0x79: {0x4E, '+', '+'},   // KP+
	0x7A: {0x51, '3', 0},     // KP3 / PgDn
	0x7B: {0x4A, '-', '-'},   // KP-
	0x7C: {0x37, '*', '*'},   // KP*
	0x7D: {0x49, '9', 0},     // KP9 / PgUp
	0x7E: {0x46, 0, 0},       // ScrollLock
	0x83: {0x41, 0, 0},       // F7
	0xE0: {ScanExtended, 0, 0},
}

// CodeForASCII finds the set-2 code that produces c, and whether shift is
// needed for it.
func CodeForASCII(c byte) (code byte, shift bool, ok bool) {
	if c == 0 {
		return 0, false, false
	}
	if c == '\n' {
		c = '\r'
	}
	for i := 0; i < len(Table); i++ {
		k := Table[i]
		if k.Scan == 0 || i >= 0x69 && i <= 0x7D {
			continue // keypad duplicates
		}
		if k.Lower == c {
			return byte(i), false, true
		}
		if k.Upper == c && k.Upper != k.Lower {
			return byte(i), true, true
		}
	}
	return 0, false, false
}
