package render

import (
	"io"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/terminal/termtest"
)

// stubBoard draws fixed cells.
type stubBoard struct {
	cells map[core.Position]rune
	state core.GameState
}

func newStub() *stubBoard {
	return &stubBoard{cells: make(map[core.Position]rune)}
}

func (b *stubBoard) Render(dst *core.Screen, glyphs core.Glyphs) {
	dst.Fill(glyphs.Empty)
	for p, r := range b.cells {
		dst.Set(p.X, p.Y, core.Cell{Rune: r})
	}
}

func (b *stubBoard) State() core.GameState {
	return b.state
}

func testOptions(t *testing.T, theme string) Options {
	t.Helper()
	th, err := registry.Lookup(theme)
	if err != nil {
		t.Fatalf("Lookup(%q) failed: %v", theme, err)
	}
	return Options{Theme: th, Diff: true, DirectionalHead: true}
}

// boardRows returns the visible board rows of a fake terminal.
func boardRows(f *termtest.Fake, size int) []string {
	rows := make([]string, size)
	for y := range rows {
		rows[y] = f.Row(boardTop + 1 + y)
	}
	return rows
}

func TestFirstDrawIsFull(t *testing.T) {
	f := termtest.New(60, 40)
	d := NewDiffer(f, 20, testOptions(t, "ascii"))

	g := game.New(config.Default(), 1)
	if err := d.Draw(g); err != nil {
		t.Fatalf("Draw() failed: %v", err)
	}

	if f.Clears != 1 {
		t.Errorf("Clears = %d, expected 1", f.Clears)
	}
	if d.Changed() != 400 {
		t.Errorf("Changed() = %d, expected a full 400 cells", d.Changed())
	}
	if !strings.HasPrefix(f.Row(headerRow), "Score: 0  |  High: 0") {
		t.Errorf("header = %q", f.Row(headerRow))
	}
	if got := f.Row(boardTop); !strings.HasPrefix(got, "+"+strings.Repeat("-", 20)+"+") {
		t.Errorf("top border = %q", got)
	}
	if got := f.Row(boardTop + 21); !strings.HasPrefix(got, "+"+strings.Repeat("-", 20)+"+") {
		t.Errorf("bottom border = %q", got)
	}
	if !strings.HasPrefix(f.Row(boardTop+23), HelpLine) {
		t.Errorf("help line = %q", f.Row(boardTop+23))
	}

	// Head at grid (10, 10) lands at screen (11, 16)
	if got := f.Cell(11, 16); got != '>' {
		t.Errorf("head cell = %q, expected '>'", got)
	}
	if got := f.Cell(10, 16); got != 'o' {
		t.Errorf("body cell = %q, expected 'o'", got)
	}
	food := g.Food()
	if got := f.Cell(1+food.X, boardTop+1+food.Y); got != '*' {
		t.Errorf("food cell = %q, expected '*'", got)
	}
}

func TestDiffWritesOnlyChangedCells(t *testing.T) {
	f := termtest.New(60, 40)
	d := NewDiffer(f, 10, testOptions(t, "ascii"))

	b := newStub()
	b.cells[core.Position{X: 1, Y: 1}] = 'o'
	b.cells[core.Position{X: 2, Y: 1}] = '>'
	d.Draw(b)
	f.ResetCounters()

	delete(b.cells, core.Position{X: 1, Y: 1})
	b.cells[core.Position{X: 2, Y: 1}] = 'o'
	b.cells[core.Position{X: 3, Y: 1}] = '>'
	d.Draw(b)

	if f.Clears != 0 {
		t.Errorf("diff frame cleared the screen %d times", f.Clears)
	}
	if d.Changed() != 3 {
		t.Errorf("Changed() = %d, expected 3", d.Changed())
	}
	if f.Printed != 3+len(header(core.GameState{}, d.headerWidth())) {
		t.Errorf("Printed = %d glyphs, expected header plus 3 cells", f.Printed)
	}
	// Header move, one move to (1,1); cells (2,1) and (3,1) follow without moves
	if f.Moves != 2 {
		t.Errorf("Moves = %d, expected 2", f.Moves)
	}
	if got := f.Row(boardTop + 2); !strings.HasPrefix(got, "|  o>      |") {
		t.Errorf("row = %q", got)
	}
}

func TestDiffMatchesFullRedraw(t *testing.T) {
	cfg := config.Default()
	g := game.New(cfg, 7)

	diffed := termtest.New(60, 40)
	d := NewDiffer(diffed, cfg.Game.GridSize, testOptions(t, "blocks"))

	turns := map[int]core.Direction{2: core.DirUp, 5: core.DirLeft, 9: core.DirDown, 14: core.DirRight}
	for i := 0; i < 20; i++ {
		if dir, ok := turns[i]; ok {
			g.Steer(dir)
		}
		if res := g.Step(); res.State.GameOver {
			break
		}
		if err := d.Draw(g); err != nil {
			t.Fatalf("Draw() failed: %v", err)
		}
	}

	fresh := termtest.New(60, 40)
	NewDiffer(fresh, cfg.Game.GridSize, testOptions(t, "blocks")).Draw(g)

	want := boardRows(fresh, cfg.Game.GridSize)
	got := boardRows(diffed, cfg.Game.GridSize)
	for y := range want {
		if got[y] != want[y] {
			t.Errorf("row %d differs:\n diff: %q\n full: %q", y, got[y], want[y])
		}
	}
	if diffed.Clears != 1 {
		t.Errorf("Clears = %d, expected only the first frame", diffed.Clears)
	}
}

func TestHeaderRewrittenEachFrame(t *testing.T) {
	f := termtest.New(60, 40)
	d := NewDiffer(f, 10, testOptions(t, "ascii"))
	b := newStub()

	b.state = core.GameState{Score: 120, HighScore: 300, Paused: true}
	d.Draw(b)
	if !strings.Contains(f.Row(headerRow), "Score: 120  |  High: 300 [PAUSED]") {
		t.Errorf("header = %q", f.Row(headerRow))
	}

	b.state = core.GameState{Score: 0, HighScore: 300}
	d.Draw(b)
	row := f.Row(headerRow)
	if strings.Contains(row, "PAUSED") || !strings.HasPrefix(row, "Score: 0  |  High: 300 ") {
		t.Errorf("header after resume = %q", row)
	}
}

func TestFullRedrawMode(t *testing.T) {
	f := termtest.New(60, 40)
	opts := testOptions(t, "ascii")
	opts.Diff = false
	d := NewDiffer(f, 10, opts)
	b := newStub()

	for i := 0; i < 3; i++ {
		d.Draw(b)
	}
	if f.Clears != 3 {
		t.Errorf("Clears = %d, expected one per frame", f.Clears)
	}
}

func TestInvalidate(t *testing.T) {
	f := termtest.New(60, 40)
	d := NewDiffer(f, 10, testOptions(t, "ascii"))
	b := newStub()

	d.Draw(b)
	d.Draw(b)
	if d.Changed() != 0 {
		t.Errorf("Changed() for an identical frame = %d, expected 0", d.Changed())
	}

	d.Invalidate()
	d.Draw(b)
	if f.Clears != 2 || d.Changed() != 100 {
		t.Errorf("after Invalidate: Clears = %d, Changed = %d", f.Clears, d.Changed())
	}
}

func TestEmojiTheme(t *testing.T) {
	f := termtest.New(80, 40)
	d := NewDiffer(f, 10, testOptions(t, "emoji"))
	if d.CellWidth() != 2 {
		t.Fatalf("CellWidth() = %d, expected 2", d.CellWidth())
	}

	g := game.New(func() config.Config {
		c := config.Default()
		c.Game.GridSize = 10
		return c
	}(), 1)
	d.Draw(g)

	// Head at grid (5, 5): column 1 + 5*2
	if got := f.Cell(11, boardTop+6); got != '👉' {
		t.Errorf("head cell = %q, expected 👉", got)
	}
	if got := f.Cell(9, boardTop+6); got != '🟩' {
		t.Errorf("body cell = %q, expected 🟩", got)
	}
	if got := f.Row(boardTop); got != "+"+strings.Repeat("-", 20)+"+"+strings.Repeat(" ", 58) {
		t.Errorf("border = %q", got)
	}
}

func TestUndirectedHead(t *testing.T) {
	f := termtest.New(60, 40)
	opts := testOptions(t, "ascii")
	opts.DirectionalHead = false
	d := NewDiffer(f, 20, opts)

	d.Draw(game.New(config.Default(), 1))
	if got := f.Cell(11, 16); got != 'O' {
		t.Errorf("head cell = %q, expected 'O'", got)
	}
}

func TestPanels(t *testing.T) {
	f := termtest.New(60, 40)
	d := NewDiffer(f, 10, testOptions(t, "ascii"))
	b := newStub()

	if err := d.Welcome(70); err != nil {
		t.Fatalf("Welcome() failed: %v", err)
	}
	if !f.Contains("Welcome to Snake!") || !f.Contains("High Score: 70") {
		t.Errorf("welcome screen:\n%s", f.Screen())
	}
	if !f.Contains("Eat food (*) to grow") {
		t.Error("welcome screen should show the food glyph")
	}

	d.Draw(b)
	if err := d.GameOver(core.GameState{Score: 90, HighScore: 90, NewRecord: true, Length: 12}); err != nil {
		t.Fatalf("GameOver() failed: %v", err)
	}
	for _, s := range []string{"GAME OVER!", "Final Score: 90", "High Score: 90", "NEW HIGH SCORE!", "Press R to Restart or Q to Quit"} {
		if !f.Contains(s) {
			t.Errorf("game over screen missing %q:\n%s", s, f.Screen())
		}
	}

	f.ResetCounters()
	d.Draw(b)
	if f.Clears != 1 {
		t.Error("Draw after a panel should repaint in full")
	}
}

func TestPaint(t *testing.T) {
	colored := newPalette(newRenderer(io.Discard, true))
	if got := colored.paint(core.ColorRed, "*"); !strings.Contains(got, "\x1b[") || !strings.Contains(got, "*") {
		t.Errorf("paint with color = %q, expected an SGR sequence", got)
	}
	if got := colored.paint(core.ColorDefault, "*"); got != "*" {
		t.Errorf("paint default = %q, expected plain", got)
	}

	plain := newPalette(newRenderer(io.Discard, false))
	if got := plain.paint(core.ColorRed, "*"); got != "*" {
		t.Errorf("paint without color = %q, expected plain", got)
	}
}

func TestConfigure(t *testing.T) {
	rc := config.Default().Render
	opts, err := Configure(rc)
	if err != nil {
		t.Fatalf("Configure() failed: %v", err)
	}
	if opts.Theme.ID != "ascii" || !opts.Diff {
		t.Errorf("Configure() = %+v", opts)
	}

	rc.Theme = "neon"
	if _, err := Configure(rc); err == nil {
		t.Error("Configure() should reject an unknown theme")
	}
}

func TestBuiltinThemes(t *testing.T) {
	for _, id := range []string{"ascii", "blocks", "emoji"} {
		if !registry.Exists(id) {
			t.Errorf("theme %q not registered", id)
		}
	}
}

func TestFootprint(t *testing.T) {
	tests := []struct {
		theme      string
		size       int
		cols, rows int
	}{
		{"ascii", 20, 50, 29},
		{"ascii", 5, 50, 14},
		{"emoji", 25, 52, 34},
	}

	for _, tc := range tests {
		opts := testOptions(t, tc.theme)
		d := NewDiffer(termtest.New(80, 40), tc.size, opts)
		cols, rows := d.Footprint()
		if cols != tc.cols || rows != tc.rows {
			t.Errorf("%s/%d Footprint() = %dx%d, expected %dx%d", tc.theme, tc.size, cols, rows, tc.cols, tc.rows)
		}
		if c, r := opts.Footprint(tc.size); c != cols || r != rows {
			t.Errorf("%s/%d Options.Footprint() = %dx%d, expected %dx%d", tc.theme, tc.size, c, r, cols, rows)
		}
	}
}
