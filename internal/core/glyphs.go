package core

// Glyphs maps board contents to the cells the renderer draws.
type Glyphs struct {
	Empty Cell
	Food  Cell
	Body  Cell
	Head  [4]Cell // Indexed by Direction
	Still Cell    // Head used when direction is ignored; zero means Head[DirRight]
}

// HeadFor returns the head cell for the given travel direction.
func (g Glyphs) HeadFor(d Direction) Cell {
	if d < DirUp || d > DirRight {
		return g.Head[DirRight]
	}
	return g.Head[d]
}

// Undirected returns a copy whose head glyph ignores the travel direction.
func (g Glyphs) Undirected() Glyphs {
	head := g.Still
	if head.Rune == 0 {
		head = g.Head[DirRight]
	}
	g.Head = [4]Cell{head, head, head, head}
	return g
}

// All returns every distinct cell used by the glyph set.
func (g Glyphs) All() []Cell {
	cells := []Cell{g.Empty, g.Food, g.Body}
	cells = append(cells, g.Head[:]...)
	if g.Still.Rune != 0 {
		cells = append(cells, g.Still)
	}
	return cells
}
