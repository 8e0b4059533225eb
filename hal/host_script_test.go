//go:build !tinygo

package hal

import (
	"strings"
	"testing"

	"vgahid/hid/ps2"
)

func TestParseScript(t *testing.T) {
	src := `
# tune and wiggle
key down
key 0x1C up
type "Hi"
mouse 100 200 left right z=3
wait 5
`
	ops, err := parseScript(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parseScript: %v", err)
	}
	if len(ops) != 5 {
		t.Fatalf("ops = %d", len(ops))
	}

	want := []uint32{0xE0, 0x72, 0xE0, 0x172}
	if len(ops[0].keys) != len(want) {
		t.Fatalf("key down events = %#x", ops[0].keys)
	}
	for i := range want {
		if ops[0].keys[i] != want[i] {
			t.Fatalf("key down events = %#x, want %#x", ops[0].keys, want)
		}
	}

	if len(ops[1].keys) != 1 || ops[1].keys[0] != 0x11C {
		t.Fatalf("key up events = %#x", ops[1].keys)
	}

	// H needs shift; i does not.
	if n := len(ops[2].keys); n != 6 {
		t.Fatalf("type events = %#x", ops[2].keys)
	}
	if ops[2].keys[0] != uint32(ps2.CodeLeftShift) {
		t.Fatalf("type did not shift: %#x", ops[2].keys)
	}

	m := ps2.DecodeMouse(ops[3].mouse)
	if !ops[3].move || m.X != 100 || m.Y != 200 || m.Z != 3 || !m.Left || m.Middle || !m.Right {
		t.Fatalf("mouse = %+v", m)
	}

	if ops[4].wait != 5 {
		t.Fatalf("wait = %d", ops[4].wait)
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, src := range []string{
		"jump 3",
		"key",
		"key nosuchkey",
		"key a sideways",
		"mouse 1",
		"mouse 1 2 fourth",
		"wait -1",
		`type "unterminated`,
	} {
		if _, err := parseScript(strings.NewReader(src)); err == nil {
			t.Fatalf("%q: expected error", src)
		}
	}
}

func TestScriptPlayer(t *testing.T) {
	ops, err := parseScript(strings.NewReader("key a\nwait 2\nmouse 3 4\n"))
	if err != nil {
		t.Fatalf("parseScript: %v", err)
	}
	p := &scriptPlayer{ops: ops}
	m := NewMemory()

	steps := 0
	for p.step(m) {
		steps++
		if steps > 10 {
			t.Fatal("player did not finish")
		}
	}
	// key, wait op, two idle waits, mouse.
	if steps != 5 {
		t.Fatalf("steps = %d", steps)
	}
	if m.PendingKeys() != 2 {
		t.Fatalf("pending keys = %d", m.PendingKeys())
	}
	if got := ps2.DecodeMouse(m.Mouse().Load()); got.X != 3 || got.Y != 4 || !got.Strobe {
		t.Fatalf("mouse = %+v", got)
	}
}

func TestWheelZ(t *testing.T) {
	for _, tc := range []struct {
		d    float64
		want uint8
	}{
		{0, 0},
		{1, 1},
		{-1, 0xF},
		{2.9, 2},
		{7, 7},
		{120, 7},
		{-8, 8},
		{-1e9, 8},
	} {
		if got := wheelZ(tc.d); got != tc.want {
			t.Fatalf("wheelZ(%v) = %#x, want %#x", tc.d, got, tc.want)
		}
	}
}
