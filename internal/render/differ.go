// Package render draws the snake board on a terminal, redrawing only the
// cells that changed since the previous frame.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/terminal"
)

// Screen layout, in terminal rows.
const (
	bannerWidth = 50
	headerRow   = 3
	boardTop    = 5 // Top border
)

// HelpLine is printed under the board.
const HelpLine = "W/A/S/D or Arrows | P=Pause | ESC=Exit"

// Board is what the differ draws: a grid painter plus a state summary.
type Board interface {
	Render(dst *core.Screen, glyphs core.Glyphs)
	State() core.GameState
}

// Options select how the board is drawn.
type Options struct {
	Theme           registry.Theme
	Color           bool
	Diff            bool // false redraws the whole screen every frame
	DirectionalHead bool
}

// Configure resolves render settings into Options.
func Configure(rc config.RenderConfig) (Options, error) {
	theme, err := registry.Lookup(rc.Theme)
	if err != nil {
		return Options{}, fmt.Errorf("render: %w", err)
	}
	return Options{
		Theme:           theme,
		Color:           rc.Color,
		Diff:            rc.Diff,
		DirectionalHead: rc.DirectionalHead,
	}, nil
}

// Differ keeps the last drawn frame and emits cursor-addressed writes for
// the cells that differ from it.
type Differ struct {
	term    terminal.Terminal
	size    int
	cellW   int
	glyphs  core.Glyphs
	palette palette
	title   lipgloss.Style
	diff    bool

	frame *core.Screen
	prev  *core.Screen
	valid bool // prev matches what is on screen

	curCol, curRow int // Cursor position after the last write, -1 if unknown
	changed        int // Cells written by the last Draw
}

// NewDiffer creates a differ for a size × size board.
func NewDiffer(term terminal.Terminal, size int, opts Options) *Differ {
	glyphs := opts.Theme.Glyphs
	if !opts.DirectionalHead {
		glyphs = glyphs.Undirected()
	}

	r := newRenderer(term, opts.Color)
	d := &Differ{
		term:    term,
		size:    size,
		cellW:   cellWidth(glyphs),
		glyphs:  glyphs,
		palette: newPalette(r),
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		diff:    opts.Diff,
		frame:   core.NewScreen(size, size),
		prev:    core.NewScreen(size, size),
		curCol:  -1,
		curRow:  -1,
	}
	return d
}

// cellWidth returns the widest glyph in terminal columns.
func cellWidth(g core.Glyphs) int {
	w := 1
	for _, c := range g.All() {
		w = max(w, runewidth.RuneWidth(c.Rune))
	}
	return w
}

// Invalidate forces the next Draw to repaint everything.
func (d *Differ) Invalidate() {
	d.valid = false
	d.curCol, d.curRow = -1, -1
}

// Changed returns how many board cells the last Draw wrote.
func (d *Differ) Changed() int {
	return d.changed
}

// CellWidth returns the number of columns one board cell occupies.
func (d *Differ) CellWidth() int {
	return d.cellW
}

// Footprint returns the terminal area a full frame covers.
func (d *Differ) Footprint() (cols, rows int) {
	return footprint(d.size, d.cellW)
}

// Footprint returns the terminal area a size × size board drawn with o needs.
func (o Options) Footprint(size int) (cols, rows int) {
	glyphs := o.Theme.Glyphs
	if !o.DirectionalHead {
		glyphs = glyphs.Undirected()
	}
	return footprint(size, cellWidth(glyphs))
}

func footprint(size, cellW int) (cols, rows int) {
	return max(bannerWidth, len(HelpLine), size*cellW+2), boardTop + size + 4
}

// Draw renders b. The first frame after Invalidate, and every frame when
// diffing is off, is a full redraw.
func (d *Differ) Draw(b Board) error {
	b.Render(d.frame, d.glyphs)
	st := b.State()

	if !d.valid || !d.diff {
		d.full(st)
	} else {
		d.patch(st)
	}

	d.prev.CopyFrom(d.frame)
	d.valid = true
	return d.term.Flush()
}

func (d *Differ) full(st core.GameState) {
	d.term.ClearScreen()

	rule := strings.Repeat("=", bannerWidth)
	d.writeAt(0, 0, rule)
	d.writeAt(0, 1, d.title.Render(center("SNAKE", bannerWidth)))
	d.writeAt(0, 2, rule)
	d.writeAt(0, headerRow, header(st, d.headerWidth()))

	border := "+" + strings.Repeat("-", d.size*d.cellW) + "+"
	d.writeAt(0, boardTop, border)
	for y := 0; y < d.size; y++ {
		var sb strings.Builder
		sb.WriteByte('|')
		for x := 0; x < d.size; x++ {
			sb.WriteString(d.glyph(d.frame.Get(x, y)))
		}
		sb.WriteByte('|')
		d.writeAt(0, boardTop+1+y, sb.String())
	}
	d.writeAt(0, boardTop+d.size+1, border)
	d.writeAt(0, boardTop+d.size+3, HelpLine)

	d.changed = d.size * d.size
	d.curCol, d.curRow = -1, -1
}

func (d *Differ) patch(st core.GameState) {
	d.writeAt(0, headerRow, header(st, d.headerWidth()))
	d.curCol, d.curRow = -1, -1

	d.changed = 0
	for y := 0; y < d.size; y++ {
		for x := 0; x < d.size; x++ {
			c := d.frame.Get(x, y)
			if c == d.prev.Get(x, y) {
				continue
			}
			col, row := 1+x*d.cellW, boardTop+1+y
			if col != d.curCol || row != d.curRow {
				d.term.SetCursor(col, row)
			}
			d.term.Write([]byte(d.glyph(c)))
			d.curCol, d.curRow = col+d.cellW, row
			d.changed++
		}
	}
}

func (d *Differ) writeAt(col, row int, s string) {
	d.term.SetCursor(col, row)
	d.term.Write([]byte(s))
}

// glyph returns the painted cell padded to the cell width.
func (d *Differ) glyph(c core.Cell) string {
	s := string(c.Rune)
	if pad := d.cellW - runewidth.RuneWidth(c.Rune); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return d.palette.paint(c.Color, s)
}

func (d *Differ) headerWidth() int {
	return max(bannerWidth, d.size*d.cellW+2)
}

// header formats the score line padded to width, so a shorter line
// overwrites a longer one.
func header(st core.GameState, width int) string {
	s := fmt.Sprintf("Score: %d  |  High: %d", st.Score, st.HighScore)
	if st.Paused {
		s += " [PAUSED]"
	}
	if n := runewidth.StringWidth(s); n < width {
		s += strings.Repeat(" ", width-n)
	}
	return s
}

func center(s string, width int) string {
	n := runewidth.StringWidth(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
