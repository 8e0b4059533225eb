//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"

	"vgahid/hid/ps2"

	"github.com/gdamore/tcell/v2"
)

// RunTUI shows the character grid in the terminal and turns terminal key
// and mouse events into device input. It returns when ctx is done or the
// user presses Ctrl-Q.
func RunTUI(ctx context.Context, cfg HostConfig, newApp func(HAL) func() error) (err error) {
	cfg.Echo = false
	h, err := newHost(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := h.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset))
	screen.Clear()

	var script *scriptPlayer
	if cfg.Script != "" {
		if script, err = loadScript(cfg.Script); err != nil {
			return err
		}
	}

	step := newApp(h)
	t := &tuiView{screen: screen, mem: h.mem}

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	tick := time.NewTicker(time.Second / 60)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !t.handle(ev) {
				return nil
			}
		case <-tick.C:
			if script != nil {
				script.step(h.mem)
			}
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			t.draw()
		}
	}
}

type tuiView struct {
	screen tcell.Screen
	mem    *Memory
	snap   Snapshot
}

// handle injects ev into the device. It reports false when the user quits.
func (t *tuiView) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlQ {
			return false
		}
		for _, k := range tuiKeyEvents(ev) {
			t.mem.PushKey(k)
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		b := ev.Buttons()
		m := ps2.MouseEvent{
			X:      uint16(x * GlyphWidth),
			Y:      uint16(y * GlyphHeight),
			Strobe: true,
			Left:   b&tcell.Button1 != 0,
			Right:  b&tcell.Button2 != 0,
			Middle: b&tcell.Button3 != 0,
		}
		switch {
		case b&tcell.WheelUp != 0:
			m.Z = wheelZ(1)
		case b&tcell.WheelDown != 0:
			m.Z = wheelZ(-1)
		}
		t.mem.SetMouse(m.Encode())
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

var tuiKeys = map[tcell.Key]byte{
	tcell.KeyEnter:      ps2.CodeEnter,
	tcell.KeyBackspace:  ps2.CodeBackspace,
	tcell.KeyBackspace2: ps2.CodeBackspace,
	tcell.KeyTab:        ps2.CodeTab,
	tcell.KeyEscape:     ps2.CodeEscape,
	tcell.KeyUp:         ps2.CodeUp,
	tcell.KeyDown:       ps2.CodeDown,
	tcell.KeyLeft:       ps2.CodeLeft,
	tcell.KeyRight:      ps2.CodeRight,
}

// tuiKeyEvents maps a terminal key to make/break events. Terminals report
// no releases, so every key is a full press.
func tuiKeyEvents(ev *tcell.EventKey) []uint32 {
	if code, ok := tuiKeys[ev.Key()]; ok {
		return append(keyEvents(code, false), keyEvents(code, true)...)
	}
	if ev.Key() != tcell.KeyRune || ev.Rune() > 0x7F {
		return nil
	}
	evs, err := typeEvents(string(ev.Rune()))
	if err != nil {
		return nil
	}
	return evs
}

// draw shows the grid rows ending at the cursor row, as many as fit.
func (t *tuiView) draw() {
	t.mem.SnapshotInto(&t.snap)
	s := &t.snap
	w, h := t.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}

	var pal [PaletteSize]tcell.Color
	for i := range pal {
		v := s.Regs[RegPalette+Reg(i)]
		pal[i] = tcell.NewRGBColor(int32(v>>16&0xFF), int32(v>>8&0xFF), int32(v&0xFF))
	}

	rows := len(s.Cells) / CellsPerRow
	curRow := int(s.Regs[RegYCur])
	first := max(min(curRow-h+1, rows-h), 0)

	for y := 0; y < h; y++ {
		r := first + y
		for x := 0; x < w; x++ {
			if r >= rows || x >= CellsPerRow {
				t.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
				continue
			}
			v := s.Cells[r*CellsPerRow+x]
			attr := v >> 8
			st := tcell.StyleDefault.Foreground(pal[attr&0x0F]).Background(pal[(attr>>4)&0x07])
			t.screen.SetContent(x, y, cellRune(byte(v)), nil, st)
		}
	}
	if cx := int(s.Regs[RegXCur]); cx < w && curRow-first < h {
		t.screen.ShowCursor(cx, curRow-first)
	} else {
		t.screen.HideCursor()
	}
	t.screen.Show()
}

func cellRune(c byte) rune {
	switch {
	case c >= 0x7F:
		return '█'
	case c < ' ':
		return ' '
	}
	return rune(c)
}
