//go:build windows

package terminal

import (
	"os"

	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

// prepareOutput turns on ANSI escape processing for the console.
func prepareOutput() error {
	h := windows.Handle(os.Stdout.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return err
	}
	return windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}

func consoleSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80, 24 // Fallback
	}
	return w, h
}
