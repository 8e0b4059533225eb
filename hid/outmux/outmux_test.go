package outmux

import (
	"bytes"
	"errors"
	"testing"

	"vgahid/hal"
	"vgahid/hid/console"
)

// recorder captures the interleaving of UART and console writes.
type recorder struct {
	log []string
	tx  bytes.Buffer
}

func (r *recorder) Read(p []byte) (int, error) { return 0, hal.ErrNotImplemented }

func (r *recorder) Write(p []byte) (int, error) {
	for _, b := range p {
		r.log = append(r.log, "uart:"+string(b))
	}
	return r.tx.Write(p)
}

func (r *recorder) PutChar(ch byte) { r.log = append(r.log, "con:"+string(ch)) }

func TestSendOrder(t *testing.T) {
	r := &recorder{}
	m := New(r, r)

	m.SendString("ab")

	want := []string{"uart:a", "con:a", "uart:b", "con:b"}
	if len(r.log) != len(want) {
		t.Fatalf("log = %q", r.log)
	}
	for i := range want {
		if r.log[i] != want[i] {
			t.Fatalf("log[%d] = %q, want %q", i, r.log[i], want[i])
		}
	}
}

func TestSendBufPreservesBytes(t *testing.T) {
	r := &recorder{}
	m := New(r, nil)

	in := []byte{0, '\r', '\n', 0xFF, 'x'}
	n, err := m.Write(in)
	if err != nil || n != len(in) {
		t.Fatalf("Write = %d, %v", n, err)
	}
	if !bytes.Equal(r.tx.Bytes(), in) {
		t.Fatalf("uart got %q", r.tx.Bytes())
	}
}

func TestSendSerialSkipsConsole(t *testing.T) {
	r := &recorder{}
	m := New(r, r)
	m.SendSerial('z')
	if len(r.log) != 1 || r.log[0] != "uart:z" {
		t.Fatalf("log = %q", r.log)
	}
}

func TestPutcPuts(t *testing.T) {
	r := &recorder{}
	m := New(r, nil)
	if got := m.Putc('Q'); got != 'Q' {
		t.Fatalf("Putc = %d", got)
	}
	m.Puts("hi")
	if r.tx.String() != "Qhi\n" {
		t.Fatalf("uart got %q", r.tx.String())
	}
}

func TestReceiveStubs(t *testing.T) {
	m := New(nil, nil)

	b, err := m.Recv()
	if b != NoData || !errors.Is(err, hal.ErrNotImplemented) {
		t.Fatalf("Recv = %#x, %v", b, err)
	}
	for name, fn := range map[string]func() error{
		"ReadIRQ":        m.ReadIRQ,
		"CheckReadIRQ":   m.CheckReadIRQ,
		"EnableReadIRQ":  m.EnableReadIRQ,
		"DisableReadIRQ": m.DisableReadIRQ,
		"SendIRQ":        func() error { return m.SendIRQ('x') },
	} {
		if err := fn(); !errors.Is(err, hal.ErrNotImplemented) {
			t.Fatalf("%s = %v", name, err)
		}
	}
}

func TestLineLoggerReachesScreen(t *testing.T) {
	dev := hal.NewMemory()
	con := console.New(dev, console.Config{Start: 0, Capacity: hal.GridCells})
	r := &recorder{}
	l := LineLogger{M: New(r, con)}

	hal.Logf(l, "ok %d", 7)

	if r.tx.String() != "ok 7\n" {
		t.Fatalf("uart got %q", r.tx.String())
	}
	if dev.Cells().Load(0) != 'o'|console.Attr {
		t.Fatalf("cell 0 = %#x", dev.Cells().Load(0))
	}
	if con.Cursor() != 128 {
		t.Fatalf("cursor = %d", con.Cursor())
	}
}
