//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"sync"

	"go.bug.st/serial"
)

const defaultBaud = 115200

// hostSerial fans UART output out to every sink. Reads come from the serial
// port when one is open.
type hostSerial struct {
	mu    sync.Mutex
	sinks []io.Writer
	port  serial.Port
}

func openSerialPort(path string, baud int) (serial.Port, error) {
	if baud <= 0 {
		baud = defaultBaud
	}
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	p, err := serial.Open(path, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", path, err)
	}
	return p, nil
}

func (s *hostSerial) addSink(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sinks = append(s.sinks, w)
}

func (s *hostSerial) Read(p []byte) (int, error) {
	s.mu.Lock()
	port := s.port
	s.mu.Unlock()
	if port == nil {
		return 0, ErrNotImplemented
	}
	return port.Read(p)
}

// Write never reports sink errors; the UART has no backpressure.
func (s *hostSerial) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.sinks {
		_, _ = w.Write(p)
	}
	return len(p), nil
}

func (s *hostSerial) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.port == nil {
		return nil
	}
	err := s.port.Close()
	s.port = nil
	if err != nil {
		return fmt.Errorf("close serial port: %w", err)
	}
	return nil
}
