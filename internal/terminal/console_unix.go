//go:build unix

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
)

// prepareOutput is a no-op: unix terminals interpret ANSI sequences natively.
func prepareOutput() error {
	return nil
}

func consoleSize() (int, int) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24 // Fallback
	}
	return int(ws.Col), int(ws.Row)
}
