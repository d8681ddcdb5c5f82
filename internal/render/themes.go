package render

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func init() {
	registry.Register(registry.Theme{
		ID:    "ascii",
		Title: "Classic ASCII",
		Glyphs: core.Glyphs{
			Empty: core.Cell{Rune: ' '},
			Food:  core.Cell{Rune: '*', Color: core.ColorRed},
			Body:  core.Cell{Rune: 'o', Color: core.ColorGreen},
			Head: [4]core.Cell{
				{Rune: '^', Color: core.ColorBrightGreen},
				{Rune: 'v', Color: core.ColorBrightGreen},
				{Rune: '<', Color: core.ColorBrightGreen},
				{Rune: '>', Color: core.ColorBrightGreen},
			},
			Still: core.Cell{Rune: 'O', Color: core.ColorBrightGreen},
		},
	})

	registry.Register(registry.Theme{
		ID:    "blocks",
		Title: "Unicode Blocks",
		Glyphs: core.Glyphs{
			Empty: core.Cell{Rune: '·', Color: core.ColorGray},
			Food:  core.Cell{Rune: '●', Color: core.ColorBrightRed},
			Body:  core.Cell{Rune: '█', Color: core.ColorGreen},
			Head: [4]core.Cell{
				{Rune: '▲', Color: core.ColorBrightYellow},
				{Rune: '▼', Color: core.ColorBrightYellow},
				{Rune: '◀', Color: core.ColorBrightYellow},
				{Rune: '▶', Color: core.ColorBrightYellow},
			},
			Still: core.Cell{Rune: '■', Color: core.ColorBrightYellow},
		},
	})

	// Emoji are double width; narrower cells are padded to match.
	registry.Register(registry.Theme{
		ID:    "emoji",
		Title: "Emoji",
		Glyphs: core.Glyphs{
			Empty: core.Cell{Rune: ' '},
			Food:  core.Cell{Rune: '🍎'},
			Body:  core.Cell{Rune: '🟩'},
			Head: [4]core.Cell{
				{Rune: '🔼'}, {Rune: '🔽'}, {Rune: '👈'}, {Rune: '👉'},
			},
			Still: core.Cell{Rune: '🐍'},
		},
	})
}
