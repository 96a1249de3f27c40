package cli

import (
	"os"

	"golang.org/x/term"
)

const (
	ansiGreen  = "\033[0;32m"
	ansiYellow = "\033[1;33m"
	ansiDim    = "\033[2m"
	ansiReset  = "\033[0m"
)

// colorize wraps s in an ANSI color when stdout is a terminal.
func colorize(color, s string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return s
	}
	return color + s + ansiReset
}
