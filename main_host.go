//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"vgahid/app"
	"vgahid/hal"
)

func main() {
	var (
		cfg  hal.HostConfig
		tui  bool
		acfg = app.DefaultConfig()
	)
	flag.BoolVar(&cfg.Headless.Enabled, "headless", false, "Run without a window.")
	flag.BoolVar(&tui, "tui", false, "Show the character grid in the terminal.")
	flag.IntVar(&cfg.Headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&cfg.SerialPort, "serial", "", "Mirror UART output to this serial port.")
	flag.IntVar(&cfg.Baud, "baud", 115200, "Serial port baud rate.")
	flag.BoolVar(&cfg.Echo, "echo", true, "Echo UART output to stdout.")
	flag.StringVar(&cfg.Script, "script", "", "Replay keyboard/mouse events from this script.")
	flag.StringVar(&cfg.Snapshot, "snapshot", "", "Write a PNG of the screen when a headless run ends.")
	flag.BoolVar(&acfg.LogToConsole, "log-console", acfg.LogToConsole, "Print input events on the console as well as the UART.")
	flag.BoolVar(&acfg.NoLogo, "no-logo", false, "Skip the boot logo.")
	flag.IntVar(&acfg.Input.VPix, "vpix", acfg.Input.VPix, "Initial vertical pixel scale seen by the tuning keys.")
	flag.IntVar(&acfg.Input.HPix, "hpix", acfg.Input.HPix, "Initial horizontal pixel scale seen by the tuning keys.")
	flag.Parse()

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, acfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch {
	case tui:
		err = hal.RunTUI(ctx, cfg, newApp)
	case cfg.Headless.Enabled:
		err = hal.RunHeadless(ctx, cfg, newApp)
	default:
		err = hal.RunWindow(cfg, newApp)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
