// Package outmux fans console output out to the UART and the text console.
package outmux

import "vgahid/hal"

// NoData is the byte Recv returns when nothing was received.
const NoData byte = 0xFF

// Console is the screen side of the multiplexer.
type Console interface {
	PutChar(ch byte)
}

// Mux sends every byte to the UART and then to the console, synchronously
// and unbuffered.
type Mux struct {
	uart hal.Serial
	con  Console
	one  [1]byte
}

// New returns a multiplexer. Either side may be nil.
func New(uart hal.Serial, con Console) *Mux {
	return &Mux{uart: uart, con: con}
}

// Send writes b to the UART, then to the console.
func (m *Mux) Send(b byte) {
	m.SendSerial(b)
	if m.con != nil {
		m.con.PutChar(b)
	}
}

// SendSerial writes b to the UART only.
func (m *Mux) SendSerial(b byte) {
	if m.uart == nil {
		return
	}
	m.one[0] = b
	_, _ = m.uart.Write(m.one[:])
}

// SendString sends each byte of s in order.
func (m *Mux) SendString(s string) {
	for i := 0; i < len(s); i++ {
		m.Send(s[i])
	}
}

// SendBuf sends each byte of buf in order.
func (m *Mux) SendBuf(buf []byte) {
	for _, b := range buf {
		m.Send(b)
	}
}

// Write implements io.Writer over Send. It never fails.
func (m *Mux) Write(p []byte) (int, error) {
	m.SendBuf(p)
	return len(p), nil
}

// Putc sends the low byte of c and returns c.
func (m *Mux) Putc(c int) int {
	m.Send(byte(c))
	return c
}

// Puts sends s followed by a newline.
func (m *Mux) Puts(s string) {
	m.SendString(s)
	m.Send('\n')
}

// Recv has no receive path behind it yet. It returns NoData and
// hal.ErrNotImplemented.
func (m *Mux) Recv() (byte, error) { return NoData, hal.ErrNotImplemented }

// ReadIRQ is the interrupt-side receive hook.
func (m *Mux) ReadIRQ() error { return hal.ErrNotImplemented }

// CheckReadIRQ polls for a pending receive interrupt.
func (m *Mux) CheckReadIRQ() error { return hal.ErrNotImplemented }

// EnableReadIRQ turns on receive interrupts.
func (m *Mux) EnableReadIRQ() error { return hal.ErrNotImplemented }

// DisableReadIRQ turns off receive interrupts.
func (m *Mux) DisableReadIRQ() error { return hal.ErrNotImplemented }

// SendIRQ accepts a byte for interrupt-driven transmit. Nothing is sent.
func (m *Mux) SendIRQ(b byte) error { return hal.ErrNotImplemented }
