package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ErrNotTerminal is returned by Open when stdin is not a terminal.
var ErrNotTerminal = errors.New("terminal: stdin is not a terminal")

// Console is the local terminal in raw mode on the alternate screen.
// Close restores the previous mode and must run on every exit path.
type Console struct {
	*Stream

	fd    int
	state *term.State
	once  sync.Once
}

// Open switches stdin to raw mode and takes over the screen.
func Open() (*Console, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	if err := prepareOutput(); err != nil {
		return nil, fmt.Errorf("terminal: cannot prepare output: %w", err)
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("terminal: cannot enter raw mode: %w", err)
	}

	stream, err := NewStream(os.Stdin, os.Stdout)
	if err != nil {
		_ = term.Restore(fd, state)
		return nil, err
	}

	c := &Console{Stream: stream, fd: fd, state: state}
	c.EnterAltScreen()
	c.HideCursor()
	c.ClearScreen()
	if err := c.Flush(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// Size returns the visible width and height in cells.
func (c *Console) Size() (width, height int) {
	return consoleSize()
}

// Close leaves the alternate screen and restores the saved terminal mode.
// It is safe to call more than once.
func (c *Console) Close() error {
	var err error
	c.once.Do(func() {
		c.ShowCursor()
		c.ExitAltScreen()
		_ = c.Flush()
		_ = c.Stream.Close()
		if rerr := term.Restore(c.fd, c.state); rerr != nil {
			err = fmt.Errorf("terminal: cannot restore mode: %w", rerr)
		}
	})
	return err
}
