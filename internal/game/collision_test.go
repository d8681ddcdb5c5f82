package game

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestOutOfBounds(t *testing.T) {
	tests := []struct {
		pos      core.Position
		expected bool
	}{
		{core.Position{X: 0, Y: 0}, false},
		{core.Position{X: 19, Y: 19}, false},
		{core.Position{X: -1, Y: 0}, true},
		{core.Position{X: 0, Y: -1}, true},
		{core.Position{X: 20, Y: 0}, true},
		{core.Position{X: 0, Y: 20}, true},
	}

	for _, tc := range tests {
		if got := OutOfBounds(tc.pos, 20); got != tc.expected {
			t.Errorf("OutOfBounds(%v, 20) = %v, expected %v", tc.pos, got, tc.expected)
		}
	}
}

func TestEvaluateOrder(t *testing.T) {
	tests := []struct {
		name     string
		body     []core.Position
		food     core.Position
		expected Outcome
	}{
		{
			name:     "clear move",
			body:     []core.Position{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
			food:     core.Position{X: 0, Y: 0},
			expected: OutcomeNone,
		},
		{
			name:     "food",
			body:     []core.Position{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
			food:     core.Position{X: 5, Y: 5},
			expected: OutcomeFood,
		},
		{
			name:     "wall beats food",
			body:     []core.Position{{X: 10, Y: 5}, {X: 9, Y: 5}},
			food:     core.Position{X: 10, Y: 5},
			expected: OutcomeWall,
		},
		{
			name:     "self beats food",
			body:     []core.Position{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 5}, {X: 5, Y: 5}},
			food:     core.Position{X: 5, Y: 5},
			expected: OutcomeSelf,
		},
		{
			name:     "wall beats self",
			body:     []core.Position{{X: -1, Y: 5}, {X: -1, Y: 5}},
			food:     core.Position{X: 0, Y: 0},
			expected: OutcomeWall,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &Snake{body: tc.body}
			got := Evaluate(s, tc.food, 10)
			if got != tc.expected {
				t.Errorf("Evaluate() = %v, expected %v", got, tc.expected)
			}
			if got.Terminal() != (tc.expected == OutcomeWall || tc.expected == OutcomeSelf) {
				t.Errorf("Terminal() = %v for %v", got.Terminal(), got)
			}
		})
	}
}
