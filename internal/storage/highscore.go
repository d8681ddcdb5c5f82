// Package storage persists the best score, and optionally a history of
// finished rounds, across process restarts.
//
// Failures never reach the player: a store that cannot be read reports 0
// and a store that cannot be written drops the value, logging either way.
package storage

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// HighScoreStore persists the single best score.
type HighScoreStore interface {
	// Load returns the stored high score, or 0 when none can be read.
	Load() int
	// Save stores score. Failures are logged and otherwise ignored.
	Save(score int)
}

// Recorder keeps a history of finished rounds.
type Recorder interface {
	Record(player string, score, length int)
}

// Backend is a high score store that holds resources until closed.
type Backend interface {
	HighScoreStore
	io.Closer
}

// New opens the backend selected by cfg.
func New(cfg config.StorageConfig, logger *log.Logger) (Backend, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	switch cfg.Backend {
	case config.BackendFile, "":
		return NewFileStore(config.ExpandPath(cfg.Path), logger), nil
	case config.BackendSQLite:
		s, err := Open(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		s.logger = logger
		return s, nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.Backend)
	}
}

// Memory is an in-process store, used when nothing should touch disk.
type Memory struct {
	mu   sync.Mutex
	high int
}

// Load returns the stored score.
func (m *Memory) Load() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.high
}

// Save keeps the larger of the stored and given scores.
func (m *Memory) Save(score int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score > m.high {
		m.high = score
	}
}

// Close does nothing.
func (m *Memory) Close() error { return nil }
