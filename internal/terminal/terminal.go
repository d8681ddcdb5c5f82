// Package terminal provides the character-cell display and byte input the
// snake engine runs on: a local console in raw mode, or any reader/writer
// pair such as an SSH session.
package terminal

import (
	"context"
	"io"
	"time"
)

// Terminal is the display and input surface used by the engine.
// Coordinates are zero-based (column, row) pairs.
type Terminal interface {
	io.Writer

	// KeyAvailable reports whether a byte can be read without blocking.
	KeyAvailable() bool
	// ReadKey returns the next byte if one is already queued.
	ReadKey() (byte, bool)
	// ReadKeyTimeout waits up to d for the next byte.
	ReadKeyTimeout(d time.Duration) (byte, bool)
	// WaitKey blocks until a byte arrives, the input closes (io.EOF)
	// or ctx is done.
	WaitKey(ctx context.Context) (byte, error)

	SetCursor(col, row int)
	HideCursor()
	ShowCursor()
	ClearScreen()

	// Flush pushes buffered output to the device.
	Flush() error
}
