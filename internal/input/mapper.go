// Package input decodes raw terminal bytes into game actions.
package input

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/terminal"
)

// Control bytes
const (
	keyCtrlC  = 0x03
	keyEscape = 0x1b
	keyNull   = 0x00 // Windows console prefix for function and arrow keys
	keyExt    = 0xe0 // Windows console prefix for extended keys
)

// Windows console scan codes
const (
	scanUp    = 72
	scanDown  = 80
	scanLeft  = 75
	scanRight = 77
)

// Key is a decoded key press. Byte is the first raw byte of the press.
type Key struct {
	Action core.Action
	Byte   byte
}

// seqState tracks an arrow sequence whose tail has not arrived yet.
type seqState int

const (
	seqNone seqState = iota
	seqCSI           // After ESC [
	seqSS3           // After ESC O
)

// Mapper translates terminal bytes into actions.
// It centralizes key bindings and the arrow-key escape state machine.
type Mapper struct {
	// escTimeout is how long to wait for the byte after ESC.
	// Zero means a single non-blocking peek.
	escTimeout time.Duration
	pushback   []byte
	// seq survives across polls so a sequence split by a slow link still
	// decodes as an arrow.
	seq seqState
}

// NewMapper creates a mapper with the given ESC disambiguation window.
func NewMapper(escTimeout time.Duration) *Mapper {
	return &Mapper{escTimeout: escTimeout}
}

// MapKey translates a single-byte key press.
func MapKey(b byte) core.Action {
	switch b {
	case 'w', 'W', 'k':
		return core.ActionUp
	case 's', 'S', 'j':
		return core.ActionDown
	case 'a', 'A', 'h':
		return core.ActionLeft
	case 'd', 'D', 'l':
		return core.ActionRight
	case 'p', 'P', ' ':
		return core.ActionPause
	case 'q', 'Q', keyEscape:
		return core.ActionQuit
	case 'r', 'R':
		return core.ActionRestart
	case keyCtrlC:
		return core.ActionInterrupt
	}
	return core.ActionNone
}

// Poll reads at most one action without blocking. Unrecognized bytes are
// skipped. Once a direction is read, whatever else is queued is dropped so
// that a tick applies a single turn.
func (m *Mapper) Poll(t terminal.Terminal) core.Action {
	for {
		b, ok := m.next(t)
		if !ok {
			return core.ActionNone
		}
		action := m.decode(t, b)
		if action == core.ActionNone {
			continue
		}
		if _, isMove := action.Direction(); isMove {
			m.drain(t)
		}
		return action
	}
}

// Wait blocks for one key press. Keys without a binding are returned with
// ActionNone so menus can react to "any key".
func (m *Mapper) Wait(ctx context.Context, t terminal.Terminal) (Key, error) {
	b, ok := m.popPushback()
	if !ok {
		var err error
		b, err = t.WaitKey(ctx)
		if err != nil {
			return Key{}, err
		}
	}
	return Key{Action: m.decode(t, b), Byte: b}, nil
}

// Reset forgets any pushed-back input and partial sequence.
func (m *Mapper) Reset() {
	m.pushback = m.pushback[:0]
	m.seq = seqNone
}

// Discard drops pushed-back input and everything already queued on t.
func (m *Mapper) Discard(t terminal.Terminal) {
	m.drain(t)
}

func (m *Mapper) decode(t terminal.Terminal, b byte) core.Action {
	switch m.seq {
	case seqCSI:
		return m.csi(t, b)
	case seqSS3:
		m.seq = seqNone
		return arrowFinal(b)
	}

	switch b {
	case keyEscape:
		return m.escape(t)
	case keyNull, keyExt:
		code, ok := m.follow(t)
		if !ok {
			return core.ActionNone
		}
		return scanCode(code)
	}
	return MapKey(b)
}

// escape resolves ESC into either a bare quit or an arrow sequence:
// ESC [ params final, or ESC O final.
func (m *Mapper) escape(t terminal.Terminal) core.Action {
	b, ok := m.follow(t)
	if !ok {
		return core.ActionQuit
	}

	switch b {
	case '[':
		c, ok := m.follow(t)
		if !ok {
			m.seq = seqCSI
			return core.ActionNone
		}
		return m.csi(t, c)
	case 'O':
		c, ok := m.follow(t)
		if !ok {
			m.seq = seqSS3
			return core.ActionNone
		}
		return arrowFinal(c)
	default:
		// A bare ESC followed by an ordinary key
		m.pushback = append(m.pushback, b)
		return core.ActionQuit
	}
}

// csi consumes parameter bytes up to the final byte of ESC [ ... final.
// If the input runs dry first, the sequence stays open for the next poll.
func (m *Mapper) csi(t terminal.Terminal, c byte) core.Action {
	for c < 0x40 || c > 0x7e {
		next, ok := m.follow(t)
		if !ok {
			m.seq = seqCSI
			return core.ActionNone
		}
		c = next
	}
	m.seq = seqNone
	return arrowFinal(c)
}

func arrowFinal(c byte) core.Action {
	switch c {
	case 'A':
		return core.ActionUp
	case 'B':
		return core.ActionDown
	case 'C':
		return core.ActionRight
	case 'D':
		return core.ActionLeft
	}
	return core.ActionNone
}

func scanCode(code byte) core.Action {
	switch code {
	case scanUp:
		return core.ActionUp
	case scanDown:
		return core.ActionDown
	case scanLeft:
		return core.ActionLeft
	case scanRight:
		return core.ActionRight
	}
	return core.ActionNone
}

func (m *Mapper) next(t terminal.Terminal) (byte, bool) {
	if b, ok := m.popPushback(); ok {
		return b, true
	}
	return t.ReadKey()
}

// follow reads the byte after a prefix, waiting up to escTimeout.
func (m *Mapper) follow(t terminal.Terminal) (byte, bool) {
	if b, ok := m.popPushback(); ok {
		return b, true
	}
	return t.ReadKeyTimeout(m.escTimeout)
}

func (m *Mapper) popPushback() (byte, bool) {
	if len(m.pushback) == 0 {
		return 0, false
	}
	b := m.pushback[0]
	m.pushback = m.pushback[1:]
	return b, true
}

func (m *Mapper) drain(t terminal.Terminal) {
	m.Reset()
	for t.KeyAvailable() {
		if _, ok := t.ReadKey(); !ok {
			return
		}
	}
}
