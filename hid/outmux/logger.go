package outmux

// LineLogger is a hal.Logger that prints each line through the multiplexer,
// so diagnostics reach both the UART and the screen.
type LineLogger struct {
	M *Mux
}

func (l LineLogger) WriteLineString(s string) {
	if l.M == nil {
		return
	}
	l.M.Puts(s)
}

func (l LineLogger) WriteLineBytes(b []byte) {
	if l.M == nil {
		return
	}
	l.M.SendBuf(b)
	l.M.Send('\n')
}
