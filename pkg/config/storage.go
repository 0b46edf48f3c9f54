package config

import (
	"fmt"
	"strings"
	"sync"
)

// SectionIDStorage is the identifier for the storage settings section
const SectionIDStorage = "storage"

// StorageSection says where the item list is kept.
type StorageSection struct {
	DataFile string `json:"data_file"` // Empty means ~/.simpletodo/todo.txt
	mu       sync.RWMutex
}

// NewStorageSection creates a storage section with default settings.
func NewStorageSection() *StorageSection {
	return &StorageSection{}
}

// ID returns the section identifier.
func (s *StorageSection) ID() string {
	return SectionIDStorage
}

// Title returns the section title.
func (s *StorageSection) Title() string {
	return "Storage"
}

// Description returns the section description.
func (s *StorageSection) Description() string {
	return "Location of the todo list data file."
}

// Data returns the current configuration data.
func (s *StorageSection) Data() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"data_file": s.DataFile,
	}
}

// SetData updates the configuration from the provided data.
func (s *StorageSection) SetData(data map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if value, ok := data["data_file"]; ok {
		path, ok := value.(string)
		if !ok {
			return fmt.Errorf("invalid value type for data_file: expected string, got %T", value)
		}
		s.DataFile = path
	}
	return nil
}

// Validate rejects paths that name a directory rather than a file.
func (s *StorageSection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if strings.HasSuffix(s.DataFile, "/") {
		return fmt.Errorf("data_file must name a file, got directory path %q", s.DataFile)
	}
	return nil
}

// Reset resets the section to default configuration.
func (s *StorageSection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.DataFile = ""
}

// GetDataFile returns the configured data file, empty for the default.
func (s *StorageSection) GetDataFile() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.DataFile
}
