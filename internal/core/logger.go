package core

import (
	"io"
	"log"
)

// Logger is the sink scenes and widgets report to. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...any)
}

// NewLogger returns a standard logger writing to w.
func NewLogger(w io.Writer) *log.Logger {
	return log.New(w, "cultivation: ", log.LstdFlags)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

// NopLogger discards everything.
var NopLogger Logger = nopLogger{}

// OrNop returns l, or NopLogger when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return NopLogger
	}
	return l
}
