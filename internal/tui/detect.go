package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is how catalog output should be presented.
type OutputMode int

// Output modes.
const (
	// OutputModePlain writes plain text with no styling.
	OutputModePlain OutputMode = iota
	// OutputModeInteractive runs the full-screen catalog view.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	if m == OutputModeInteractive {
		return "interactive"
	}
	return "plain"
}

// DetectOutputMode picks the interactive view only when both stdin and stdout are
// terminals and the terminal is not "dumb". forcePlain overrides detection.
func DetectOutputMode(forcePlain bool) OutputMode {
	if forcePlain || os.Getenv("TERM") == "dumb" {
		return OutputModePlain
	}
	if !IsTerminal(os.Stdout) || !IsTerminal(os.Stdin) {
		return OutputModePlain
	}
	return OutputModeInteractive
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms.
}

// TerminalWidth returns the width of stdout, or the default width when stdout is not
// a terminal.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd())) //nolint:gosec // Fd fits in int on supported platforms.
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}
