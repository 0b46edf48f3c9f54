// Package config manages the simpletodo settings file: a JSON document of
// named sections, loaded once at startup into a process-wide Manager.
package config

import (
	"sync"
)

var (
	// globalManager is the singleton configuration manager instance
	globalManager *Manager
	globalMu      sync.Mutex
)

// Initialize creates the global manager from the file at configPath
// (DefaultConfigPath if empty), registers the default sections and loads
// them. Call once at startup.
func Initialize(configPath string) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	store, err := NewFileStore(configPath)
	if err != nil {
		return err
	}

	manager, err := newDefaultManager(store)
	if err != nil {
		return err
	}

	if err := manager.LoadAll(); err != nil {
		return err
	}

	globalManager = manager
	return nil
}

// WriteDefaults replaces the settings file at configPath (DefaultConfigPath
// if empty) with the defaults of every section and returns the path written.
// The existing file is never read, so a file Initialize rejects can still be
// reset.
func WriteDefaults(configPath string) (string, error) {
	path, err := resolvePath(configPath)
	if err != nil {
		return "", err
	}

	manager, err := newDefaultManager(newFileStore(path))
	if err != nil {
		return "", err
	}

	manager.ResetAll()
	if err := manager.SaveAll(); err != nil {
		return "", err
	}
	return path, nil
}

func newDefaultManager(store Store) (*Manager, error) {
	manager := NewManager(store)

	if err := manager.RegisterSection(NewStorageSection()); err != nil {
		return nil, err
	}

	if err := manager.RegisterSection(NewUISection()); err != nil {
		return nil, err
	}

	return manager, nil
}

// Global returns the global configuration manager.
// Panics if Initialize has not been called.
func Global() *Manager {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalManager == nil {
		panic("config not initialized: call config.Initialize first")
	}

	return globalManager
}

// IsInitialized returns true if the global configuration has been initialized.
func IsInitialized() bool {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalManager != nil
}

// Path returns the settings file the global manager reads and writes, or
// "" before Initialize.
func Path() string {
	if !IsInitialized() {
		return ""
	}
	if store, ok := Global().Store().(*FileStore); ok {
		return store.Path()
	}
	return ""
}

// GetStorage returns the storage section, or nil before Initialize.
func GetStorage() *StorageSection {
	if !IsInitialized() {
		return nil
	}

	section, ok := Global().GetSection(SectionIDStorage)
	if !ok {
		return nil
	}

	storage, _ := section.(*StorageSection)
	return storage
}

// GetUI returns the UI section, or nil before Initialize.
func GetUI() *UISection {
	if !IsInitialized() {
		return nil
	}

	section, ok := Global().GetSection(SectionIDUI)
	if !ok {
		return nil
	}

	ui, _ := section.(*UISection)
	return ui
}
