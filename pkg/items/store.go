// Package items owns the persisted todo list: an ordered sequence of short
// strings addressed purely by position, mirrored to a line-delimited file
// after every mutation.
//
// Read and write failures are absorbed (logged, never returned) so a storage
// hiccup never blocks the caller. Bad positions are returned as *IndexError.
package items

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	// DefaultDirName is the per-user directory holding the data file.
	DefaultDirName = ".simpletodo"

	// DefaultFileName is the name of the data file inside DefaultDirName.
	DefaultFileName = "todo.txt"
)

// Logger receives diagnostics for absorbed storage failures.
// *logging.Logger satisfies it.
type Logger interface {
	Debugf(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for storage diagnostics.
func WithLogger(logger Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Store is the single authoritative in-memory copy of the item list plus
// its durable encoding. All methods are safe to call from multiple
// goroutines; each runs to completion, including the persist, before
// returning.
type Store struct {
	path    string
	items   []string
	loaded  bool
	lastErr error
	logger  Logger
	mu      sync.Mutex
}

// NewStore creates a store backed by the file at path. Nothing is read until
// Load is called.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		items:  []string{},
		logger: nopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultPath returns ~/.simpletodo/todo.txt.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, DefaultDirName, DefaultFileName), nil
}

// Load reads the data file and replaces the in-memory sequence with its
// contents. Any failure yields an empty sequence; the cause is only logged.
// Mutating an unloaded store loads it first.
func (s *Store) Load() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked()
	return s.snapshot()
}

// ensureLoadedLocked loads the data file on the first mutation of a store
// nobody loaded, so the write never replaces the file with an empty list.
func (s *Store) ensureLoadedLocked() {
	if !s.loaded {
		s.loadLocked()
	}
}

func (s *Store) loadLocked() {
	items, err := s.readFile()
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debugf("No data file at %s, starting with an empty list", s.path)
		} else {
			s.logger.Warnf("Failed to load items from %s, starting with an empty list: %v", s.path, err)
		}
		items = []string{}
	} else {
		s.logger.Debugf("Loaded %d items from %s", len(items), s.path)
	}

	s.items = items
	s.loaded = true
}

// readFile opens, decodes and closes the data file.
func (s *Store) readFile() ([]string, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadItems(file)
}

// Append adds text as the new last item and persists. Empty text is
// accepted; callers that want to reject it must do so before calling.
func (s *Store) Append(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked()

	s.items = append(s.items, text)
	s.persistLocked()
}

// UpdateAt replaces the item at index and persists. An out-of-range index
// returns *IndexError and leaves the sequence untouched.
func (s *Store) UpdateAt(index int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked()

	if err := s.checkIndex("update", index); err != nil {
		return err
	}

	s.items[index] = text
	s.persistLocked()
	return nil
}

// RemoveAt deletes the item at index, shifting later items left by one, and
// persists. An out-of-range index returns *IndexError and leaves the
// sequence untouched.
func (s *Store) RemoveAt(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked()

	if err := s.checkIndex("remove", index); err != nil {
		return err
	}

	s.items = append(s.items[:index], s.items[index+1:]...)
	s.persistLocked()
	return nil
}

// Persist writes the current sequence to the data file, overwriting it.
// A failure is logged and recorded for LastPersistError; the in-memory
// sequence remains the source of truth.
func (s *Store) Persist() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked()

	s.persistLocked()
}

func (s *Store) persistLocked() {
	if err := s.writeFile(); err != nil {
		s.logger.Errorf("Failed to persist %d items to %s: %v", len(s.items), s.path, err)
		s.lastErr = err
		return
	}
	s.lastErr = nil
}

// writeFile writes to a temp file beside the data file and renames it into
// place, creating the parent directory when needed.
func (s *Store) writeFile() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tempPath := s.path + ".tmp"
	file, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("failed to create temp data file: %w", err)
	}

	if err := WriteItems(file, s.items); err != nil {
		file.Close()
		os.Remove(tempPath)
		return err
	}

	if err := file.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close temp data file: %w", err)
	}

	if err := os.Rename(tempPath, s.path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp data file: %w", err)
	}

	return nil
}

// Items returns a copy of the current sequence.
func (s *Store) Items() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

func (s *Store) snapshot() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the item at index.
func (s *Store) Get(index int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIndex("get", index); err != nil {
		return "", err
	}
	return s.items[index], nil
}

// Len returns the number of items.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}

// Loaded reports whether Load has been called.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loaded
}

// LastPersistError returns the error from the most recent persist, or nil
// if it succeeded. The durable copy is stale while this is non-nil.
func (s *Store) LastPersistError() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastErr
}

// Path returns the data file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) checkIndex(op string, index int) error {
	if index < 0 || index >= len(s.items) {
		return &IndexError{Op: op, Index: index, Len: len(s.items)}
	}
	return nil
}
