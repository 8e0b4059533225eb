package hal

import "fmt"

// Logf formats a line and writes it to l. It never blocks on a nil logger.
func Logf(l Logger, format string, args ...any) {
	if l == nil {
		return
	}
	l.WriteLineString(fmt.Sprintf(format, args...))
}

type nopLogger struct{}

func (nopLogger) WriteLineString(string) {}
func (nopLogger) WriteLineBytes([]byte)  {}

// Discard is a Logger that drops every line.
var Discard Logger = nopLogger{}
