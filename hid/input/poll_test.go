package input

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"vgahid/hal"
	"vgahid/hid/ps2"
)

type lines struct{ got []string }

func (l *lines) WriteLineString(s string) { l.got = append(l.got, s) }
func (l *lines) WriteLineBytes(b []byte)  { l.got = append(l.got, string(b)) }

func (l *lines) has(s string) bool {
	for _, g := range l.got {
		if g == s {
			return true
		}
	}
	return false
}

type seqRand struct{ n uint32 }

func (r *seqRand) Uint32() uint32 { r.n++; return 0xC0DE0000 + r.n }

func newPoller(t *testing.T) (*Poller, *hal.Memory, *lines) {
	t.Helper()
	m := hal.NewMemory()
	l := &lines{}
	p := New(m, m.Regs(), &seqRand{}, l, DefaultConfig())
	p.Step() // consume the initial mouse word
	l.got = nil
	return p, m, l
}

func press(m *hal.Memory, code byte) { m.PushKey(ps2.MakeEvent(code, false)) }

func TestTuningKeys(t *testing.T) {
	p, m, l := newPoller(t)

	press(m, ps2.CodeDown)
	if a := p.Step(); a&KeyActivity == 0 {
		t.Fatal("key not handled")
	}
	if v := m.Regs().Load(hal.RegVPix); v != 12 {
		t.Fatalf("VPIX = %d, want 12", v)
	}
	if !l.has(" 12,5") {
		t.Fatalf("log = %q", l.got)
	}

	press(m, ps2.CodeUp)
	p.Step()
	if v := m.Regs().Load(hal.RegVPix); v != 11 {
		t.Fatalf("VPIX = %d, want 11", v)
	}

	press(m, ps2.CodeRight)
	p.Step()
	press(m, ps2.CodeRight)
	p.Step()
	press(m, ps2.CodeLeft)
	p.Step()
	if v := m.Regs().Load(hal.RegHPix); v != 6 {
		t.Fatalf("HPIX = %d, want 6", v)
	}
	if vp, hp := p.Scale(); vp != 11 || hp != 6 {
		t.Fatalf("Scale = %d,%d", vp, hp)
	}
}

func TestTuningIsUnclamped(t *testing.T) {
	m := hal.NewMemory()
	p := New(m, m.Regs(), nil, nil, Config{VPix: 1, HPix: 0})

	for i := 0; i < 3; i++ {
		press(m, ps2.CodeUp)
		p.Step()
	}
	if v := m.Regs().Load(hal.RegVPix); v != ^uint64(1) {
		t.Fatalf("VPIX = %#x, want -2 wrapped", v)
	}
	if vp, _ := p.Scale(); vp != -2 {
		t.Fatalf("vpix = %d", vp)
	}
}

func TestLastQueuedKeyDecodedAfterPop(t *testing.T) {
	p, m, l := newPoller(t)

	press(m, ps2.CodeDown)
	if a := p.Step(); a&KeyActivity == 0 {
		t.Fatal("key not handled")
	}
	if m.PendingKeys() != 0 {
		t.Fatalf("pending = %d", m.PendingKeys())
	}
	if ev := m.Keyboard().Load(); ev&hal.KeybEmpty == 0 {
		t.Fatalf("keyboard = %#x, want empty flag", ev)
	}
	if len(l.got) != 2 || !strings.HasPrefix(l.got[0], "Keyboard event = 72, scancode = 50") {
		t.Fatalf("log = %q", l.got)
	}
	if v := m.Regs().Load(hal.RegVPix); v != 12 {
		t.Fatalf("VPIX = %d, want 12", v)
	}
	if a := p.Step(); a&KeyActivity != 0 {
		t.Fatal("stale latch dispatched again")
	}
}

func TestReleaseIsLoggedButNotDispatched(t *testing.T) {
	p, m, l := newPoller(t)

	m.PushKey(ps2.MakeEvent(ps2.CodeDown, true))
	p.Step()

	if v := m.Regs().Load(hal.RegVPix); v != 0 {
		t.Fatalf("release changed VPIX to %d", v)
	}
	if len(l.got) != 1 || !strings.HasPrefix(l.got[0], "Keyboard event = 172, scancode = 50") {
		t.Fatalf("log = %q", l.got)
	}
}

func TestScramble(t *testing.T) {
	p, m, _ := newPoller(t)
	for r := hal.Reg(0); r < hal.RegCount; r++ {
		m.Regs().Store(r, 7)
	}

	press(m, ps2.CodeSpace)
	p.Step()

	for r := hal.Reg(0); r < hal.RegCount; r++ {
		v := m.Regs().Load(r)
		inside := r >= 33 && r <= 46
		if inside && v>>16 != 0xC0DE {
			t.Fatalf("reg %d = %#x, want reseeded", r, v)
		}
		if !inside && v != 7 {
			t.Fatalf("reg %d = %#x, want untouched", r, v)
		}
	}
}

func TestExtendedPrefixIgnored(t *testing.T) {
	p, m, l := newPoller(t)
	press(m, ps2.CodeExtended)
	p.Step()
	if len(l.got) != 1 {
		t.Fatalf("log = %q", l.got)
	}
}

func TestUnknownScanLogged(t *testing.T) {
	p, m, l := newPoller(t)
	press(m, 0x1C) // 'a'
	p.Step()
	if !l.has("Keyboard event = 1C, scancode = 1E, ascii = 'a'") {
		t.Fatalf("log = %q", l.got)
	}
	if !l.has("?1e") {
		t.Fatalf("log = %q", l.got)
	}
}

func TestOneKeyPerStep(t *testing.T) {
	p, m, _ := newPoller(t)
	press(m, ps2.CodeDown)
	press(m, ps2.CodeDown)

	p.Step()
	if m.PendingKeys() != 1 {
		t.Fatalf("pending = %d", m.PendingKeys())
	}
	p.Step()
	if m.PendingKeys() != 0 {
		t.Fatalf("pending = %d", m.PendingKeys())
	}
	if a := p.Step(); a != 0 {
		t.Fatalf("idle step reported %b", a)
	}
}

func TestMouseChangeDetection(t *testing.T) {
	m := hal.NewMemory()
	l := &lines{}
	p := New(m, m.Regs(), nil, l, DefaultConfig())

	if a := p.Step(); a != MouseActivity {
		t.Fatalf("first step = %b, want mouse", a)
	}

	m.SetMouse(ps2.MouseEvent{X: 100, Y: 200, Z: 3, Left: true, Right: true}.Encode())
	l.got = nil
	p.Step()
	want := "Mouse event: X=100, Y=200, Z=3, left=1, middle=0, right=1"
	if len(l.got) != 1 || l.got[0] != want {
		t.Fatalf("log = %q", l.got)
	}

	if a := p.Step(); a != 0 {
		t.Fatalf("unchanged word reported %b", a)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	m := hal.NewMemory()
	cfg := DefaultConfig()
	cfg.Idle = time.Millisecond
	p := New(m, m.Regs(), nil, nil, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop")
	}
}
