package config

import (
	"fmt"
	"testing"
)

// mockSection is a test implementation of the Section interface
type mockSection struct {
	id          string
	data        map[string]interface{}
	validateErr error
}

func (m *mockSection) ID() string                                { return m.id }
func (m *mockSection) Title() string                             { return m.id }
func (m *mockSection) Description() string                       { return "mock " + m.id }
func (m *mockSection) Data() map[string]interface{}              { return m.data }
func (m *mockSection) SetData(data map[string]interface{}) error { m.data = data; return nil }
func (m *mockSection) Validate() error                           { return m.validateErr }
func (m *mockSection) Reset()                                    { m.data = make(map[string]interface{}) }

// mockStore is an in-memory Store with injectable failures
type mockStore struct {
	sections map[string]map[string]interface{}
	loadErr  error
	saveErr  error
	saves    int
}

func newMockStore() *mockStore {
	return &mockStore{sections: make(map[string]map[string]interface{})}
}

func (m *mockStore) Load() error { return m.loadErr }

func (m *mockStore) Save() error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	return nil
}

func (m *mockStore) GetSection(sectionID string) (map[string]interface{}, error) {
	if data, exists := m.sections[sectionID]; exists {
		return data, nil
	}
	return make(map[string]interface{}), nil
}

func (m *mockStore) SetSection(sectionID string, data map[string]interface{}) error {
	m.sections[sectionID] = data
	return nil
}

func TestManager_RegisterSection(t *testing.T) {
	t.Run("keeps registration order", func(t *testing.T) {
		manager := NewManager(newMockStore())
		for _, id := range []string{"first", "second", "third"} {
			if err := manager.RegisterSection(&mockSection{id: id}); err != nil {
				t.Fatalf("RegisterSection(%s) failed: %v", id, err)
			}
		}

		sections := manager.GetSections()
		if len(sections) != 3 {
			t.Fatalf("Expected 3 sections, got %d", len(sections))
		}
		if sections[0].ID() != "first" || sections[1].ID() != "second" || sections[2].ID() != "third" {
			t.Error("Sections not in registration order")
		}
	})

	t.Run("rejects duplicate IDs", func(t *testing.T) {
		manager := NewManager(newMockStore())
		if err := manager.RegisterSection(&mockSection{id: "ui"}); err != nil {
			t.Fatalf("First registration failed: %v", err)
		}
		if err := manager.RegisterSection(&mockSection{id: "ui"}); err == nil {
			t.Error("Expected error for duplicate registration")
		}
	})
}

func TestManager_GetSection(t *testing.T) {
	manager := NewManager(newMockStore())
	manager.RegisterSection(&mockSection{id: "storage"})

	if section, ok := manager.GetSection("storage"); !ok || section.ID() != "storage" {
		t.Error("Registered section not returned")
	}
	if _, ok := manager.GetSection("missing"); ok {
		t.Error("Should return false for non-existent section")
	}
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("applies stored data", func(t *testing.T) {
		store := newMockStore()
		store.sections["storage"] = map[string]interface{}{"data_file": "/tmp/todo.txt"}

		manager := NewManager(store)
		section := &mockSection{id: "storage", data: map[string]interface{}{}}
		manager.RegisterSection(section)

		if err := manager.LoadAll(); err != nil {
			t.Fatalf("LoadAll failed: %v", err)
		}
		if section.data["data_file"] != "/tmp/todo.txt" {
			t.Errorf("Section data not loaded, got %v", section.data)
		}
	})

	t.Run("leaves defaults when nothing stored", func(t *testing.T) {
		manager := NewManager(newMockStore())
		section := &mockSection{id: "ui", data: map[string]interface{}{"default": true}}
		manager.RegisterSection(section)

		if err := manager.LoadAll(); err != nil {
			t.Fatalf("LoadAll failed: %v", err)
		}
		if section.data["default"] != true {
			t.Error("Defaults should survive an empty store")
		}
	})

	t.Run("rejects stored data that does not validate", func(t *testing.T) {
		store := newMockStore()
		store.sections["ui"] = map[string]interface{}{"toast_duration": "1h"}

		manager := NewManager(store)
		manager.RegisterSection(&mockSection{id: "ui", data: map[string]interface{}{}, validateErr: fmt.Errorf("out of range")})

		if err := manager.LoadAll(); err == nil {
			t.Error("Expected validation error")
		}
	})

	t.Run("propagates store load error", func(t *testing.T) {
		store := newMockStore()
		store.loadErr = fmt.Errorf("load error")

		if err := NewManager(store).LoadAll(); err == nil {
			t.Error("Expected error from store")
		}
	})
}

func TestManager_SaveAll(t *testing.T) {
	t.Run("writes every section then saves once", func(t *testing.T) {
		store := newMockStore()
		manager := NewManager(store)
		manager.RegisterSection(&mockSection{id: "a", data: map[string]interface{}{"k": "1"}})
		manager.RegisterSection(&mockSection{id: "b", data: map[string]interface{}{"k": "2"}})

		if err := manager.SaveAll(); err != nil {
			t.Fatalf("SaveAll failed: %v", err)
		}
		if store.sections["a"]["k"] != "1" || store.sections["b"]["k"] != "2" {
			t.Errorf("Sections not saved correctly: %v", store.sections)
		}
		if store.saves != 1 {
			t.Errorf("Expected 1 save, got %d", store.saves)
		}
	})

	t.Run("writes nothing when a section is invalid", func(t *testing.T) {
		store := newMockStore()
		manager := NewManager(store)
		manager.RegisterSection(&mockSection{id: "good", data: map[string]interface{}{"k": "v"}})
		manager.RegisterSection(&mockSection{id: "bad", validateErr: fmt.Errorf("validation error")})

		if err := manager.SaveAll(); err == nil {
			t.Fatal("Expected validation error")
		}
		if len(store.sections) != 0 || store.saves != 0 {
			t.Error("Nothing should be written when validation fails")
		}
	})

	t.Run("propagates store save error", func(t *testing.T) {
		store := newMockStore()
		store.saveErr = fmt.Errorf("save error")
		manager := NewManager(store)
		manager.RegisterSection(&mockSection{id: "a"})

		if err := manager.SaveAll(); err == nil {
			t.Error("Expected error from store")
		}
	})
}

func TestManager_ResetAll(t *testing.T) {
	manager := NewManager(newMockStore())
	section := &mockSection{id: "a", data: map[string]interface{}{"k": "v"}}
	manager.RegisterSection(section)

	manager.ResetAll()

	if len(section.data) != 0 {
		t.Error("Section not reset")
	}
}

func TestManager_Store(t *testing.T) {
	store := newMockStore()
	if NewManager(store).Store() != store {
		t.Error("Store() returned wrong store")
	}
}
