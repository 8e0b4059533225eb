// Package input runs the HID poll loop: it drains the keyboard FIFO, applies
// the display tuning bindings and reports mouse changes.
package input

import (
	"context"
	"time"

	"vgahid/hal"
	"vgahid/hid/display"
	"vgahid/hid/ps2"
)

// Registers reseeded by the scramble binding.
const (
	scrambleFirst = hal.RegPalette + 1
	scrambleLast  = hal.RegPalette + hal.PaletteSize - 2
)

// Config is the initial tuning state and loop pacing.
type Config struct {
	VPix int
	HPix int

	// Idle is how long Run sleeps after an iteration that saw nothing.
	// Zero spins like the firmware loop.
	Idle time.Duration
}

// DefaultConfig matches the values the display initializer programs.
func DefaultConfig() Config {
	return Config{VPix: display.VPixDefault, HPix: display.HPixDefault}
}

// Activity reports what one poll iteration handled.
type Activity uint8

const (
	KeyActivity Activity = 1 << iota
	MouseActivity
)

// Poller owns the tuning state and the last observed mouse word.
type Poller struct {
	kbd   hal.Keyboard
	mouse hal.Mouse
	regs  hal.Regs
	rnd   hal.Rand
	log   hal.Logger

	vpix, hpix int
	lastMouse  uint64
	idle       time.Duration
}

// New returns a poller. log and rnd may be nil.
func New(in hal.Input, regs hal.Regs, rnd hal.Rand, log hal.Logger, cfg Config) *Poller {
	if log == nil {
		log = hal.Discard
	}
	return &Poller{
		kbd:       in.Keyboard(),
		mouse:     in.Mouse(),
		regs:      regs,
		rnd:       rnd,
		log:       log,
		vpix:      cfg.VPix,
		hpix:      cfg.HPix,
		lastMouse: ^uint64(0),
		idle:      cfg.Idle,
	}
}

// Scale returns the current vertical and horizontal pixel scale.
func (p *Poller) Scale() (vpix, hpix int) { return p.vpix, p.hpix }

// Run polls until ctx is done.
func (p *Poller) Run(ctx context.Context) error {
	var t *time.Timer
	defer func() {
		if t != nil {
			t.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if p.Step() != 0 || p.idle <= 0 {
			continue
		}
		if t == nil {
			t = time.NewTimer(p.idle)
		} else {
			t.Reset(p.idle)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
}

// Step runs one iteration: at most one keyboard event, then the mouse check.
func (p *Poller) Step() Activity {
	var a Activity
	if p.kbd.Load()&hal.KeybEmpty == 0 {
		p.kbd.Pop()
		p.key(ps2.DecodeKey(p.kbd.Load() &^ hal.KeybEmpty))
		a |= KeyActivity
	}
	if w := p.mouse.Load(); w != p.lastMouse {
		p.lastMouse = w
		m := ps2.DecodeMouse(w)
		hal.Logf(p.log, "Mouse event: X=%d, Y=%d, Z=%d, left=%d, middle=%d, right=%d",
			m.X, m.Y, m.Z, flag(m.Left), flag(m.Middle), flag(m.Right))
		a |= MouseActivity
	}
	return a
}

func (p *Poller) key(k ps2.KeyEvent) {
	ascii := k.ASCII
	if ascii < ' ' || ascii > '~' {
		ascii = '.'
	}
	hal.Logf(p.log, "Keyboard event = %X, scancode = %X, ascii = '%c'", k.Raw, k.Scan, ascii)
	if k.Release {
		return
	}

	switch k.Scan {
	case ps2.ScanDown:
		p.vpix++
		p.tune(hal.RegVPix, p.vpix)
	case ps2.ScanUp:
		p.vpix--
		p.tune(hal.RegVPix, p.vpix)
	case ps2.ScanRight:
		p.hpix++
		p.tune(hal.RegHPix, p.hpix)
	case ps2.ScanLeft:
		p.hpix--
		p.tune(hal.RegHPix, p.hpix)
	case ps2.ScanExtended:
	case ps2.ScanSpace:
		p.scramble()
	default:
		hal.Logf(p.log, "?%x", k.Scan)
	}
}

// tune stores v unclamped; negative values wrap in the 64-bit register.
func (p *Poller) tune(r hal.Reg, v int) {
	p.regs.Store(r, uint64(v))
	hal.Logf(p.log, " %d,%d", p.vpix, p.hpix)
}

func (p *Poller) scramble() {
	if p.rnd == nil {
		return
	}
	for r := scrambleFirst; r <= scrambleLast; r++ {
		p.regs.Store(r, uint64(p.rnd.Uint32()))
	}
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
