// Package registry provides a global registry of board themes.
// Themes register themselves in init() functions, allowing the CLI and the
// renderer to discover glyph sets without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Theme is a named glyph set for drawing the board.
type Theme struct {
	ID     string
	Title  string
	Glyphs core.Glyphs
}

// ThemeInfo contains metadata about a registered theme.
type ThemeInfo struct {
	ID    string
	Title string
}

var (
	themes = make(map[string]Theme)
	mu     sync.RWMutex
)

// Register adds a theme to the registry.
// Typically called from an init() function.
// Panics if a theme with the same ID is already registered.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()

	if t.ID == "" {
		panic("registry: theme without ID")
	}
	if _, exists := themes[t.ID]; exists {
		panic(fmt.Sprintf("registry: theme %q already registered", t.ID))
	}
	themes[t.ID] = t
}

// List returns information about all registered themes, sorted by ID.
func List() []ThemeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ThemeInfo, 0, len(themes))
	for id, t := range themes {
		result = append(result, ThemeInfo{
			ID:    id,
			Title: t.Title,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns a theme by its ID.
// Returns an error if the theme ID is not registered.
func Lookup(id string) (Theme, error) {
	mu.RLock()
	defer mu.RUnlock()

	t, ok := themes[id]
	if !ok {
		return Theme{}, fmt.Errorf("registry: unknown theme %q", id)
	}
	return t, nil
}

// Exists checks if a theme with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := themes[id]
	return ok
}
