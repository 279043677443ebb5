// Package terminal provides terminal detection utilities.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether stdin and stdout are both interactive
// terminals. The interactive picker requires this.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// StderrIsTerminal reports whether stderr is a terminal. Overwriting
// progress lines are only drawn when it is, so redirected output stays
// clean.
func StderrIsTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
