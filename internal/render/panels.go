package render

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Welcome draws the start screen. The caller reads the key that leaves it.
func (d *Differ) Welcome(high int) error {
	food := "Eat food to grow"
	if runewidth.RuneWidth(d.glyphs.Food.Rune) == 1 {
		food = "Eat food (" + string(d.glyphs.Food.Rune) + ") to grow"
	}
	lines := []string{
		"Welcome to Snake!",
		"",
		"W/A/S/D or Arrow Keys to move",
		food,
		"Avoid walls and yourself",
		"P=Pause | ESC=Exit",
		"",
		fmt.Sprintf("High Score: %d", high),
		"",
		"Press any key to start...",
	}
	return d.panel(lines)
}

// GameOver draws the end-of-round summary.
func (d *Differ) GameOver(st core.GameState) error {
	lines := []string{
		"GAME OVER!",
		"",
		fmt.Sprintf("Final Score: %d", st.Score),
		fmt.Sprintf("High Score: %d", st.HighScore),
		fmt.Sprintf("Length: %d", st.Length),
	}
	if st.NewRecord {
		lines = append(lines, "", "NEW HIGH SCORE!")
	}
	lines = append(lines,
		"",
		"Press R to Restart or Q to Quit",
		"Any other key returns to the menu",
	)
	return d.panel(lines)
}

// panel clears the screen and draws lines centered in a box. The board
// snapshot is invalidated, so the next Draw repaints in full.
func (d *Differ) panel(lines []string) error {
	w, h := bannerWidth, len(lines)+4
	s := core.NewScreen(w, h)
	s.DrawBox(core.NewRect(0, 0, w, h))
	for i, line := range lines {
		s.DrawTextCentered(2+i, line)
	}

	d.term.ClearScreen()
	for y := 0; y < h; y++ {
		row := s.Row(y)
		if y == 2 {
			row = d.title.Render(row)
		}
		d.writeAt(0, y, row)
	}

	d.Invalidate()
	return d.term.Flush()
}
