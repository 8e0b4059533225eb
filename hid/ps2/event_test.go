package ps2

import "testing"

func TestDecodeMouseFields(t *testing.T) {
	w := uint64(100) | uint64(200)<<16 | uint64(3)<<32 | 1<<39 | 1<<37

	ev := DecodeMouse(w)
	if ev.X != 100 || ev.Y != 200 || ev.Z != 3 {
		t.Fatalf("X,Y,Z = %d,%d,%d", ev.X, ev.Y, ev.Z)
	}
	if !ev.Left || ev.Middle || !ev.Right {
		t.Fatalf("buttons = %v %v %v", ev.Left, ev.Middle, ev.Right)
	}
	if ev.Strobe {
		t.Fatal("unexpected strobe")
	}
}

func TestDecodeMouseIgnoresNeighbourBits(t *testing.T) {
	// Bits 10..15 and 26..31 sit between fields and must not leak in.
	w := uint64(0xFC00) | uint64(0xFC00)<<16 | 0xF0<<32

	ev := DecodeMouse(w)
	if ev.X != 0 || ev.Y != 0 || ev.Z != 0 {
		t.Fatalf("leaked bits: %+v", ev)
	}
	if !ev.Strobe || !ev.Right || !ev.Middle || !ev.Left {
		t.Fatalf("expected all flag bits from 0xF0<<32, got %+v", ev)
	}
}

func TestMouseEncodeTruncates(t *testing.T) {
	ev := MouseEvent{X: 1023 + 5, Y: 7, Z: 0x1F, Middle: true}
	got := DecodeMouse(ev.Encode())
	if got.X != 4 || got.Y != 7 || got.Z != 0xF || !got.Middle {
		t.Fatalf("encode/decode = %+v", got)
	}
}

func TestDecodeKey(t *testing.T) {
	ev := DecodeKey(0x75)
	if ev.Scan != ScanUp || ev.Release {
		t.Fatalf("up arrow = %+v", ev)
	}

	ev = DecodeKey(0x1C | 0x100)
	if ev.Scan != 0x1E || ev.ASCII != 'a' || !ev.Release {
		t.Fatalf("A release = %+v", ev)
	}

	ev = DecodeKey(0x1C | 0x200)
	if ev.Raw != 0x1C {
		t.Fatalf("empty flag kept in raw: %#x", ev.Raw)
	}

	ev = DecodeKey(0x02)
	if ev.Scan != 0 || ev.ASCII != 0 {
		t.Fatalf("unmapped code = %+v", ev)
	}
}

func TestCodeForASCII(t *testing.T) {
	cases := []struct {
		c     byte
		code  byte
		shift bool
	}{
		{'a', 0x1C, false},
		{'A', 0x1C, true},
		{'1', 0x16, false},
		{'!', 0x16, true},
		{' ', CodeSpace, false},
		{'\n', CodeEnter, false},
		{'\r', CodeEnter, false},
	}
	for _, tc := range cases {
		code, shift, ok := CodeForASCII(tc.c)
		if !ok || code != tc.code || shift != tc.shift {
			t.Fatalf("CodeForASCII(%q) = %#x,%v,%v want %#x,%v", tc.c, code, shift, ok, tc.code, tc.shift)
		}
	}
	if _, _, ok := CodeForASCII(0); ok {
		t.Fatal("NUL should not map")
	}
}

func TestTableRoundTripsPrintableASCII(t *testing.T) {
	for c := byte(' '); c < 0x7F; c++ {
		code, shift, ok := CodeForASCII(c)
		if !ok {
			t.Fatalf("no code for %q", c)
		}
		k := Table[code]
		got := k.Lower
		if shift {
			got = k.Upper
		}
		if got != c {
			t.Fatalf("code %#x shift=%v gives %q, want %q", code, shift, got, c)
		}
	}
}
