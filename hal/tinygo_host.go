//go:build tinygo && !baremetal

package hal

import (
	"math/rand/v2"
	"os"
	"runtime"
)

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	serial tinyGoHostSerial
	mem    *Memory
}

// New returns a TinyGo-on-host HAL implementation backed by an in-memory
// device.
//
// This is used by `tinygo run` targets like linux/wasm where there is no
// memory-mapped HID controller.
func New() HAL {
	l := &tinyGoHostLogger{}
	l.WriteLineString("hal: in-memory device (tinygo/" + runtime.GOOS + ")")
	return &tinyGoHostHAL{
		logger: l,
		mem:    NewMemory(),
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Serial() Serial   { return h.serial }
func (h *tinyGoHostHAL) Display() Display { return h.mem }
func (h *tinyGoHostHAL) Input() Input     { return h.mem }
func (h *tinyGoHostHAL) Rand() Rand       { return tinyGoHostRand{} }

type tinyGoHostRand struct{}

func (tinyGoHostRand) Uint32() uint32 { return rand.Uint32() }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}

type tinyGoHostSerial struct{}

func (tinyGoHostSerial) Read(p []byte) (int, error) { return 0, ErrNotImplemented }

func (tinyGoHostSerial) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
