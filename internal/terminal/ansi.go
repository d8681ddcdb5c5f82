package terminal

import (
	"bufio"
	"strconv"
)

// ANSI sequences
const (
	csi           = "\x1b["
	seqClear      = "\x1b[2J\x1b[H"
	seqReset      = "\x1b[0m"
	seqCursorHide = "\x1b[?25l"
	seqCursorShow = "\x1b[?25h"
	seqAltEnter   = "\x1b[?1049h"
	seqAltExit    = "\x1b[?1049l"
)

// writeCursorPos writes a cursor move to the zero-based (col, row).
func writeCursorPos(w *bufio.Writer, col, row int) {
	var buf [24]byte
	b := append(buf[:0], csi...)
	b = strconv.AppendInt(b, int64(max(row, 0)+1), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(max(col, 0)+1), 10)
	b = append(b, 'H')
	w.Write(b)
}
