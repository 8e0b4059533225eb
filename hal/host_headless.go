//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
}

// RunHeadless runs the HID core without opening a window. Each tick replays
// the next script line and calls the app's step function.
func RunHeadless(ctx context.Context, cfg HostConfig, newApp func(HAL) func() error) (err error) {
	hc := cfg.Headless
	if hc.Hz <= 0 {
		hc.Hz = 60
	}
	d := time.Second / time.Duration(hc.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", hc.Hz)
	}

	h, err := newHost(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := h.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	var script *scriptPlayer
	if cfg.Script != "" {
		if script, err = loadScript(cfg.Script); err != nil {
			return err
		}
	}
	var pane *uartPane
	if cfg.Snapshot != "" {
		pane = newUARTPane(ScreenWidth, paneHeight)
		h.serial.addSink(pane)
		defer func() {
			if serr := writeSnapshot(cfg.Snapshot, h.mem, pane); serr != nil && err == nil {
				err = serr
			}
		}()
	}

	step := newApp(h)

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if script != nil {
				script.step(h.mem)
			}
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if hc.Ticks > 0 && tick >= hc.Ticks {
				return nil
			}
		}
	}
}
