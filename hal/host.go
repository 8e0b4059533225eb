//go:build !tinygo

package hal

import (
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"
)

// HostConfig selects the host-side backends.
type HostConfig struct {
	// SerialPort, when set, mirrors UART output to a real serial device.
	SerialPort string
	Baud       int

	// Echo copies UART output to stdout.
	Echo bool

	// Script is an event script replayed into the keyboard and mouse.
	Script string

	// Snapshot is a PNG path written when a headless run ends.
	Snapshot string

	Headless HeadlessConfig
}

type hostHAL struct {
	logger *hostLogger
	mem    *Memory
	serial *hostSerial
	rnd    hostRand
}

// New returns a host HAL with UART echo to stdout.
func New() HAL {
	h, _ := NewWithConfig(HostConfig{Echo: true})
	return h
}

// NewWithConfig returns a host HAL, opening the serial port if one is named.
func NewWithConfig(cfg HostConfig) (HAL, error) {
	h, err := newHost(cfg)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func newHost(cfg HostConfig) (*hostHAL, error) {
	logger := &hostLogger{w: os.Stdout}
	s := &hostSerial{}
	if cfg.Echo {
		s.addSink(lockedStdout{logger})
	}
	if cfg.SerialPort != "" {
		p, err := openSerialPort(cfg.SerialPort, cfg.Baud)
		if err != nil {
			return nil, err
		}
		s.port = p
		s.addSink(p)
	}
	return &hostHAL{
		logger: logger,
		mem:    NewMemory(),
		serial: s,
	}, nil
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Serial() Serial   { return h.serial }
func (h *hostHAL) Display() Display { return h.mem }
func (h *hostHAL) Input() Input     { return h.mem }
func (h *hostHAL) Rand() Rand       { return h.rnd }

func (h *hostHAL) Close() error {
	return h.serial.Close()
}

type hostRand struct{}

func (hostRand) Uint32() uint32 { return rand.Uint32() }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s %s\n", time.Now().Format("15:04:05.000"), s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.WriteLineString(string(b))
}

// lockedStdout writes raw UART bytes under the logger's lock so log lines
// and echoed output do not interleave mid-line.
type lockedStdout struct{ l *hostLogger }

func (w lockedStdout) Write(p []byte) (int, error) {
	w.l.mu.Lock()
	defer w.l.mu.Unlock()
	return w.l.w.Write(p)
}
