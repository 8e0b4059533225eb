package app

import (
	"context"
	"fmt"

	"vgahid/hal"
	"vgahid/hid/console"
	"vgahid/hid/display"
	"vgahid/hid/input"
	"vgahid/hid/outmux"
	"vgahid/internal/buildinfo"
)

// stepBudget bounds how many poll iterations one host frame runs.
const stepBudget = 64

// System is the booted HID core.
type System struct {
	HAL     hal.HAL
	Console *console.Console
	Mux     *outmux.Mux
	Poller  *input.Poller
	Log     hal.Logger
}

// Config selects boot options for the HID core.
type Config struct {
	// LogToConsole routes poll loop diagnostics through the multiplexer
	// (UART and screen) instead of the platform logger.
	LogToConsole bool

	// Banner is printed once after init. Empty selects the default.
	Banner string

	// NoLogo skips the pixel framebuffer logo.
	NoLogo bool

	Console console.Config
	Input   input.Config
}

// DefaultConfig is the board configuration.
func DefaultConfig() Config {
	return Config{
		LogToConsole: true,
		Console:      console.DefaultConfig(),
		Input:        input.DefaultConfig(),
	}
}

// New boots the HID core with the default config and returns its step function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// Run boots the HID core and polls forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, DefaultConfig())
}

// NewWithConfig boots the HID core and returns a step function that drains
// pending input. Host frontends call it once per frame.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s := Boot(h, cfg)
	return s.step
}

// RunWithConfig boots the HID core with cfg and polls forever.
func RunWithConfig(h hal.HAL, cfg Config) {
	s := Boot(h, cfg)
	_ = s.Poller.Run(context.Background())
}

// Boot initializes the display, then builds the console, the multiplexer
// and the poll loop on top of it.
func Boot(h hal.HAL, cfg Config) *System {
	dev := h.Display()
	con := console.New(dev, cfg.Console)

	var logo display.Logo
	if !cfg.NoLogo {
		logo = display.NewLogo(dev.Pixels(), "vgahid")
	}
	display.New(dev, con, logo).Init()

	mux := outmux.New(h.Serial(), con)

	log := h.Logger()
	if cfg.LogToConsole {
		log = outmux.LineLogger{M: mux}
	}

	s := &System{
		HAL:     h,
		Console: con,
		Mux:     mux,
		Poller:  input.New(h.Input(), dev.Regs(), h.Rand(), log, cfg.Input),
		Log:     log,
	}

	banner := cfg.Banner
	if banner == "" {
		banner = "vgahid " + buildinfo.Short()
	}
	mux.Puts(banner)
	return s
}

func (s *System) step() (err error) {
	defer func() {
		if v := recover(); v != nil {
			reportPanic(s.HAL, v)
			err = fmt.Errorf("hid: panic: %v", v)
		}
	}()
	for i := 0; i < stepBudget; i++ {
		if s.Poller.Step() == 0 {
			break
		}
	}
	return nil
}
