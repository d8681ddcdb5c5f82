// Package termtest provides an in-memory terminal for tests. It interprets
// the cursor and clear sequences the engine emits into a cell grid, so tests
// can assert on what a player would see.
package termtest

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Fake is a scripted terminal. Input is queued with Feed; output lands in a
// fixed-size cell grid.
type Fake struct {
	width, height int
	cells         [][]rune
	col, row      int
	input         []byte
	script        []string // Key presses released one at a time by WaitKey
	pending       []byte // Incomplete escape sequence from the last Write

	CursorHidden bool
	Writes       int // Write calls
	Printed      int // Glyphs written to cells
	Clears       int // Full-screen clears
	Flushes      int
	Moves        int // Cursor moves
}

// New creates a fake terminal of the given size.
func New(width, height int) *Fake {
	f := &Fake{width: width, height: height}
	f.cells = make([][]rune, height)
	for y := range f.cells {
		f.cells[y] = make([]rune, width)
	}
	f.clear()
	return f
}

// Feed queues input bytes.
func (f *Fake) Feed(s string) {
	f.input = append(f.input, s...)
}

// Script queues key presses that only a blocking WaitKey releases, one per
// call, once the regular input queue is empty. This models a player who
// presses a key at a menu rather than during play.
func (f *Fake) Script(presses ...string) {
	f.script = append(f.script, presses...)
}

// Pending returns how many input bytes are still queued.
func (f *Fake) Pending() int {
	return len(f.input)
}

// KeyAvailable reports whether input is queued.
func (f *Fake) KeyAvailable() bool {
	return len(f.input) > 0
}

// ReadKey pops the next queued byte.
func (f *Fake) ReadKey() (byte, bool) {
	if len(f.input) == 0 {
		return 0, false
	}
	b := f.input[0]
	f.input = f.input[1:]
	return b, true
}

// ReadKeyTimeout never waits: queued input is all the input there is.
func (f *Fake) ReadKeyTimeout(time.Duration) (byte, bool) {
	return f.ReadKey()
}

// WaitKey returns the next queued byte, releasing the next scripted press
// if needed, or io.EOF when nothing is left.
func (f *Fake) WaitKey(ctx context.Context) (byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(f.input) == 0 && len(f.script) > 0 {
		f.Feed(f.script[0])
		f.script = f.script[1:]
	}
	b, ok := f.ReadKey()
	if !ok {
		return 0, io.EOF
	}
	return b, nil
}

// SetCursor moves the cursor to the zero-based (col, row).
func (f *Fake) SetCursor(col, row int) {
	f.col, f.row = col, row
	f.Moves++
}

// HideCursor hides the cursor.
func (f *Fake) HideCursor() { f.CursorHidden = true }

// ShowCursor shows the cursor.
func (f *Fake) ShowCursor() { f.CursorHidden = false }

// ClearScreen blanks every cell and homes the cursor.
func (f *Fake) ClearScreen() {
	f.clear()
	f.Clears++
}

// Flush counts flushes.
func (f *Fake) Flush() error {
	f.Flushes++
	return nil
}

func (f *Fake) clear() {
	for y := range f.cells {
		for x := range f.cells[y] {
			f.cells[y][x] = ' '
		}
	}
	f.col, f.row = 0, 0
}

// Write interprets text, cursor moves (CSI H), clears (CSI J) and skips
// every other escape sequence.
func (f *Fake) Write(p []byte) (int, error) {
	f.Writes++
	data := append(f.pending, p...)
	f.pending = nil

	for len(data) > 0 {
		if data[0] == 0x1b {
			n, ok := f.escape(data)
			if !ok {
				f.pending = append([]byte(nil), data...)
				break
			}
			data = data[n:]
			continue
		}

		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size <= 1 && !utf8.FullRune(data) {
			f.pending = append([]byte(nil), data...)
			break
		}
		data = data[size:]
		f.put(r)
	}
	return len(p), nil
}

// escape consumes one escape sequence from data. ok is false when the
// sequence is incomplete.
func (f *Fake) escape(data []byte) (n int, ok bool) {
	if len(data) < 2 {
		return 0, false
	}
	if data[1] != '[' {
		return 2, true
	}

	i := 2
	for i < len(data) && (data[i] < 0x40 || data[i] > 0x7e) {
		i++
	}
	if i == len(data) {
		return 0, false
	}

	params, final := string(data[2:i]), data[i]
	switch final {
	case 'H':
		row, col := 1, 1
		if params != "" {
			parts := strings.SplitN(params, ";", 2)
			row, _ = strconv.Atoi(parts[0])
			if len(parts) == 2 {
				col, _ = strconv.Atoi(parts[1])
			}
		}
		f.SetCursor(col-1, row-1)
	case 'J':
		if params == "2" {
			f.ClearScreen()
		}
	case 'l':
		if params == "?25" {
			f.HideCursor()
		}
	case 'h':
		if params == "?25" {
			f.ShowCursor()
		}
	}
	return i + 1, true
}

func (f *Fake) put(r rune) {
	switch r {
	case '\n':
		f.row++
		return
	case '\r':
		f.col = 0
		return
	}

	w := runewidth.RuneWidth(r)
	if w == 0 {
		return
	}
	if f.row >= 0 && f.row < f.height && f.col >= 0 && f.col < f.width {
		f.cells[f.row][f.col] = r
		if w == 2 && f.col+1 < f.width {
			f.cells[f.row][f.col+1] = 0
		}
	}
	f.col += w
	f.Printed++
}

// Cell returns the rune at (col, row). The right half of a wide glyph is 0.
func (f *Fake) Cell(col, row int) rune {
	if row < 0 || row >= f.height || col < 0 || col >= f.width {
		return ' '
	}
	return f.cells[row][col]
}

// Row returns the visible text of a row, wide glyphs counted once.
func (f *Fake) Row(row int) string {
	if row < 0 || row >= f.height {
		return ""
	}
	var sb strings.Builder
	for _, r := range f.cells[row] {
		if r != 0 {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Screen returns all rows joined by newlines with trailing spaces trimmed.
func (f *Fake) Screen() string {
	rows := make([]string, f.height)
	for y := range rows {
		rows[y] = strings.TrimRight(f.Row(y), " ")
	}
	return strings.Join(rows, "\n")
}

// Contains reports whether any row contains s.
func (f *Fake) Contains(s string) bool {
	for y := 0; y < f.height; y++ {
		if strings.Contains(f.Row(y), s) {
			return true
		}
	}
	return false
}

// ResetCounters zeroes the write statistics.
func (f *Fake) ResetCounters() {
	f.Writes, f.Printed, f.Clears, f.Flushes, f.Moves = 0, 0, 0, 0, 0
}
