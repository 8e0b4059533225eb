package app

import (
	"bytes"
	"strings"
	"testing"

	"vgahid/hal"
	"vgahid/hid/console"
	"vgahid/hid/fonts/zifu"
	"vgahid/hid/ps2"
)

type testHAL struct {
	mem  *hal.Memory
	uart bytes.Buffer
	log  []string
}

func (h *testHAL) Logger() hal.Logger   { return h }
func (h *testHAL) Serial() hal.Serial   { return h }
func (h *testHAL) Display() hal.Display { return h.mem }
func (h *testHAL) Input() hal.Input     { return h.mem }
func (h *testHAL) Rand() hal.Rand       { return h }

func (h *testHAL) WriteLineString(s string)    { h.log = append(h.log, s) }
func (h *testHAL) WriteLineBytes(b []byte)     { h.log = append(h.log, string(b)) }
func (h *testHAL) Read(p []byte) (int, error)  { return 0, hal.ErrNotImplemented }
func (h *testHAL) Write(p []byte) (int, error) { return h.uart.Write(p) }
func (h *testHAL) Uint32() uint32              { return 42 }

func newTestHAL() *testHAL { return &testHAL{mem: hal.NewMemory()} }

func TestBootPrintsBannerAfterInit(t *testing.T) {
	h := newTestHAL()
	cfg := DefaultConfig()
	cfg.Banner = "hello"
	cfg.NoLogo = true
	s := Boot(h, cfg)

	if h.mem.Regs().Load(hal.RegMode) != hal.ModeActive {
		t.Fatal("display not active after boot")
	}
	if h.uart.String() != "hello\n" {
		t.Fatalf("uart = %q", h.uart.String())
	}
	if got := h.mem.Cells().Load(hal.GridStart); got != 'h'|console.Attr {
		t.Fatalf("first console cell = %#x", got)
	}
	if s.Console.Cursor() != hal.GridStart+hal.CellsPerRow {
		t.Fatalf("cursor = %d", s.Console.Cursor())
	}
	if h.mem.Regs().Load(hal.RegYCur) != 33 {
		t.Fatalf("YCUR = %d", h.mem.Regs().Load(hal.RegYCur))
	}
}

func TestStepDrainsInputAndLogsToConsole(t *testing.T) {
	h := newTestHAL()
	cfg := DefaultConfig()
	cfg.NoLogo = true
	step := NewWithConfig(h, cfg)
	h.uart.Reset()

	h.mem.PushKey(ps2.MakeEvent(ps2.CodeDown, false))
	h.mem.PushKey(ps2.MakeEvent(ps2.CodeDown, true))
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}

	if h.mem.PendingKeys() != 0 {
		t.Fatalf("pending = %d", h.mem.PendingKeys())
	}
	if v := h.mem.Regs().Load(hal.RegVPix); v != 12 {
		t.Fatalf("VPIX = %d", v)
	}
	out := h.uart.String()
	for _, want := range []string{
		"Keyboard event = 72, scancode = 50",
		" 12,5\n",
		"Keyboard event = 172",
		"Mouse event: X=0, Y=0, Z=0",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("uart output %q missing %q", out, want)
		}
	}
	if len(h.log) != 0 {
		t.Fatalf("platform logger used: %q", h.log)
	}
}

func TestPlatformLogger(t *testing.T) {
	h := newTestHAL()
	cfg := DefaultConfig()
	cfg.NoLogo = true
	cfg.LogToConsole = false
	step := NewWithConfig(h, cfg)

	h.mem.PushKey(ps2.MakeEvent(ps2.CodeSpace, false))
	_ = step()

	if len(h.log) == 0 || !strings.HasPrefix(h.log[0], "Keyboard event = 29") {
		t.Fatalf("log = %q", h.log)
	}
	if v := h.mem.Regs().Load(hal.RegPalette + 1); v != 42 {
		t.Fatalf("palette 1 = %#x after scramble", v)
	}
}

func TestPanicReport(t *testing.T) {
	h := newTestHAL()
	reportPanic(h, "boom")

	if len(h.log) < 2 || h.log[1] != "panic: boom" {
		t.Fatalf("log = %q", h.log)
	}
	lit := 0
	for i := 0; i < 2*zifu.Height*hal.WordsPerLine; i++ {
		if h.mem.Pixels().Load(i) != 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("panic text not drawn")
	}
}

func TestTakeRunes(t *testing.T) {
	p, r := takeRunes("héllo", 2)
	if p != "hé" || r != "llo" {
		t.Fatalf("takeRunes = %q, %q", p, r)
	}
	if p, r := takeRunes("ab", 5); p != "ab" || r != "" {
		t.Fatalf("takeRunes short = %q, %q", p, r)
	}
}
