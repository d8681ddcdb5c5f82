package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// DefaultFoodAttempts bounds random sampling before falling back to a scan.
const DefaultFoodAttempts = 100

// Food is the single item the snake is chasing.
type Food struct {
	Pos core.Position
}

// Spawn places the food on a cell the snake does not occupy.
//
// Up to maxAttempts uniform samples are drawn; if all of them land on the
// snake the grid is scanned row by row for the first free cell. Only a
// completely full grid leaves the food on the last sample, in which case
// starved is true.
func (f *Food) Spawn(rng *rand.Rand, snake *Snake, size, maxAttempts int) (starved bool) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var p core.Position
	for i := 0; i < maxAttempts; i++ {
		p = core.Position{X: rng.Intn(size), Y: rng.Intn(size)}
		if !snake.Occupies(p) {
			f.Pos = p
			return false
		}
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := core.Position{X: x, Y: y}
			if !snake.Occupies(c) {
				f.Pos = c
				return false
			}
		}
	}

	f.Pos = p
	return true
}
