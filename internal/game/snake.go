// Package game implements the snake engine: body movement, food placement,
// collision rules and the per-tick state machine of a round.
package game

import "github.com/vovakirdan/tui-snake/internal/core"

// Snake is an ordered body of positions with the head at index 0.
type Snake struct {
	body      []core.Position
	direction core.Direction
	pending   core.Direction // Applied on the next Move
	growing   bool           // If true, keep the tail on the next Move
}

// NewSnake lays out a snake of the given length horizontally, head at
// center and facing right.
func NewSnake(center core.Position, length int) *Snake {
	if length < 1 {
		length = 1
	}
	body := make([]core.Position, length)
	for i := range body {
		body[i] = core.Position{X: center.X - i, Y: center.Y}
	}
	return &Snake{
		body:      body,
		direction: core.DirRight,
		pending:   core.DirRight,
	}
}

// SetDirection buffers d for the next move.
// The exact opposite of the current direction is ignored.
func (s *Snake) SetDirection(d core.Direction) {
	if d == s.direction.Opposite() {
		return
	}
	s.pending = d
}

// Move advances the snake one cell along the pending direction.
// It performs no bounds or self-collision checks.
func (s *Snake) Move() {
	s.direction = s.pending
	head := s.body[0].Add(s.direction)

	if s.growing {
		s.body = append(s.body, core.Position{})
		s.growing = false
	}
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head
}

// Grow makes the next Move keep the tail.
func (s *Snake) Grow() {
	s.growing = true
}

// HasSelfCollision reports whether the head overlaps any other segment.
func (s *Snake) HasSelfCollision() bool {
	head := s.body[0]
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment, head included, is at p.
func (s *Snake) Occupies(p core.Position) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Head returns the head position.
func (s *Snake) Head() core.Position {
	return s.body[0]
}

// Body returns a copy of all segments, head first.
func (s *Snake) Body() []core.Position {
	out := make([]core.Position, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the direction of the last move.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// Pending returns the direction the next move will take.
func (s *Snake) Pending() core.Direction {
	return s.pending
}

// Growing reports whether the next move will lengthen the body.
func (s *Snake) Growing() bool {
	return s.growing
}
