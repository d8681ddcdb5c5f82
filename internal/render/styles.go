package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// palette maps core.Color to lipgloss styles bound to one renderer.
type palette map[core.Color]lipgloss.Style

// newRenderer returns a lipgloss renderer writing to w. Sessions are not
// probed for capabilities: colour output is ANSI 256 or nothing.
func newRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetHasDarkBackground(true)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

func newPalette(r *lipgloss.Renderer) palette {
	return palette{
		core.ColorDefault:      r.NewStyle(),
		core.ColorRed:          r.NewStyle().Foreground(lipgloss.Color("1")),
		core.ColorGreen:        r.NewStyle().Foreground(lipgloss.Color("2")),
		core.ColorYellow:       r.NewStyle().Foreground(lipgloss.Color("3")),
		core.ColorBrightRed:    r.NewStyle().Foreground(lipgloss.Color("9")),
		core.ColorBrightGreen:  r.NewStyle().Foreground(lipgloss.Color("10")),
		core.ColorBrightYellow: r.NewStyle().Foreground(lipgloss.Color("11")),
		core.ColorOrange:       r.NewStyle().Foreground(lipgloss.Color("208")),
		core.ColorGray:         r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// paint renders s in the style for c. Unknown colors fall back to default.
func (p palette) paint(c core.Color, s string) string {
	if c == core.ColorDefault {
		return s
	}
	style, ok := p[c]
	if !ok {
		return s
	}
	return style.Render(s)
}
