// Package logtest provides a Logger that records lines for assertions.
package logtest

import (
	"fmt"
	"strings"
)

// Recorder collects formatted log lines.
type Recorder struct {
	Lines []string
}

// Printf records one formatted line.
func (r *Recorder) Printf(format string, args ...any) {
	r.Lines = append(r.Lines, fmt.Sprintf(format, args...))
}

// Contains reports whether any recorded line contains substr.
func (r *Recorder) Contains(substr string) bool {
	for _, line := range r.Lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// Reset drops all recorded lines.
func (r *Recorder) Reset() { r.Lines = nil }
