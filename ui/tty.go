package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

func SupportsANSICodes() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// ClearScreen moves the cursor home and wipes the terminal
func ClearScreen() string {
	if !colorsEnabled {
		return ""
	}
	return "\033[H\033[2J"
}
