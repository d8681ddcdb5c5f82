package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/muesli/cancelreader"
)

// inputBuffer is how many unread bytes the pump keeps before blocking.
const inputBuffer = 256

// Stream is a Terminal over an arbitrary reader/writer pair.
// A background pump moves input bytes into a queue so that polling never
// blocks the caller.
type Stream struct {
	out    *bufio.Writer
	reader cancelreader.CancelReader
	keys   chan byte
	done   chan struct{}

	mu  sync.Mutex
	err error

	closeOnce sync.Once
}

// NewStream wraps in and out. Close stops the input pump.
func NewStream(in io.Reader, out io.Writer) (*Stream, error) {
	r, err := cancelreader.NewReader(in)
	if err != nil {
		return nil, fmt.Errorf("terminal: cannot wrap input: %w", err)
	}

	s := &Stream{
		out:    bufio.NewWriterSize(out, 8192),
		reader: r,
		keys:   make(chan byte, inputBuffer),
		done:   make(chan struct{}),
	}
	go s.pump()
	return s, nil
}

func (s *Stream) pump() {
	defer close(s.keys)

	buf := make([]byte, 64)
	for {
		n, err := s.reader.Read(buf)
		for _, b := range buf[:n] {
			select {
			case s.keys <- b:
			case <-s.done:
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, cancelreader.ErrCanceled) {
				s.mu.Lock()
				s.err = err
				s.mu.Unlock()
			}
			return
		}
	}
}

// Write buffers output until the next Flush.
func (s *Stream) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// KeyAvailable reports whether a byte is queued.
func (s *Stream) KeyAvailable() bool {
	return len(s.keys) > 0
}

// ReadKey returns the next queued byte without blocking.
func (s *Stream) ReadKey() (byte, bool) {
	select {
	case b, ok := <-s.keys:
		return b, ok
	default:
		return 0, false
	}
}

// ReadKeyTimeout waits up to d for the next byte.
// A non-positive d behaves like ReadKey.
func (s *Stream) ReadKeyTimeout(d time.Duration) (byte, bool) {
	if d <= 0 {
		return s.ReadKey()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case b, ok := <-s.keys:
		return b, ok
	case <-timer.C:
		return 0, false
	}
}

// WaitKey blocks for the next byte. It returns io.EOF once the input has
// closed and every queued byte has been read.
func (s *Stream) WaitKey(ctx context.Context) (byte, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case b, ok := <-s.keys:
		if !ok {
			return 0, s.inputErr()
		}
		return b, nil
	}
}

func (s *Stream) inputErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return fmt.Errorf("terminal: read failed: %w", s.err)
	}
	return io.EOF
}

// SetCursor moves the cursor to the zero-based (col, row).
func (s *Stream) SetCursor(col, row int) {
	writeCursorPos(s.out, col, row)
}

// HideCursor hides the cursor.
func (s *Stream) HideCursor() {
	s.out.WriteString(seqCursorHide)
}

// ShowCursor shows the cursor.
func (s *Stream) ShowCursor() {
	s.out.WriteString(seqCursorShow)
}

// ClearScreen clears the display and homes the cursor.
func (s *Stream) ClearScreen() {
	s.out.WriteString(seqReset)
	s.out.WriteString(seqClear)
}

// Flush writes buffered output.
func (s *Stream) Flush() error {
	if err := s.out.Flush(); err != nil {
		return fmt.Errorf("terminal: flush failed: %w", err)
	}
	return nil
}

// EnterAltScreen switches to the alternate screen buffer.
func (s *Stream) EnterAltScreen() {
	s.out.WriteString(seqAltEnter)
}

// ExitAltScreen resets attributes and returns to the main screen buffer.
func (s *Stream) ExitAltScreen() {
	s.out.WriteString(seqReset)
	s.out.WriteString(seqAltExit)
}

// Close stops the input pump. It is safe to call more than once.
func (s *Stream) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
		s.reader.Cancel()
	})
	return nil
}

var _ Terminal = (*Stream)(nil)
