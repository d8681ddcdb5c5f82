package storage

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// FileStore keeps the high score as a plain-text integer in one file.
// It is safe for concurrent sessions sharing the same file.
type FileStore struct {
	path   string
	logger *log.Logger
	mu     sync.Mutex
}

// NewFileStore creates a store backed by path. The file is created on the
// first Save.
func NewFileStore(path string, logger *log.Logger) *FileStore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &FileStore{path: path, logger: logger}
}

// Path returns the backing file.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the stored score. Missing or malformed files yield 0.
func (f *FileStore) Load() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

func (f *FileStore) load() int {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			f.logger.Warn("cannot read high score", "path", f.path, "err", err)
		}
		return 0
	}

	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		f.logger.Warn("ignoring malformed high score file", "path", f.path)
		return 0
	}
	return n
}

// Save writes score unless the file already holds a higher one, so that
// concurrent sessions never lower the stored value.
func (f *FileStore) Save(score int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if score < 0 || score <= f.load() {
		return
	}
	if err := f.write(score); err != nil {
		f.logger.Warn("cannot save high score", "path", f.path, "err", err)
		return
	}
	f.logger.Debug("high score saved", "score", score)
}

func (f *FileStore) write(score int) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strconv.Itoa(score) + "\n"); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}

// Close does nothing; the file is not held open.
func (f *FileStore) Close() error {
	return nil
}
