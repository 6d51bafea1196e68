// Package terminal provides the raw ANSI output protocol, geometry queries,
// color mode detection, and the signal-driven resize/quit flags the render
// loop polls.
package terminal

import "io"

// Setup prepares the terminal for rendering: cursor hidden, screen cleared.
// Errors are ignored; a terminal that rejects the sequences simply renders
// with artifacts.
func Setup(w io.Writer) {
	w.Write(CursorHide)
	w.Write(Clear)
}

// Restore returns the terminal to a usable state on shutdown: cursor shown,
// attributes reset, trailing newline so the shell prompt starts clean.
func Restore(w io.Writer) {
	w.Write(CursorShow)
	w.Write(Reset)
	w.Write([]byte("\n"))
}

// EmergencyReset attempts to restore terminal to sane state.
// Call this from panic recovery if Restore cannot run normally.
func EmergencyReset(w io.Writer) {
	w.Write(CursorShow)
	w.Write(Reset)
	w.Write([]byte("\n"))
}
