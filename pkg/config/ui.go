package config

import (
	"fmt"
	"sync"
	"time"
)

const (
	// SectionIDUI is the identifier for the UI settings section
	SectionIDUI = "ui"

	defaultAllowEmptyItems   = false
	defaultShowConfirmations = true
	defaultToastDuration     = 3 * time.Second

	minToastDuration = 500 * time.Millisecond
	maxToastDuration = 30 * time.Second
)

// UISection holds presentation settings for the interactive list.
type UISection struct {
	AllowEmptyItems   bool          `json:"allow_empty_items"`
	ShowConfirmations bool          `json:"show_confirmations"`
	ToastDuration     time.Duration `json:"toast_duration"`
	mu                sync.RWMutex
}

// NewUISection creates a UI section with default settings.
func NewUISection() *UISection {
	return &UISection{
		AllowEmptyItems:   defaultAllowEmptyItems,
		ShowConfirmations: defaultShowConfirmations,
		ToastDuration:     defaultToastDuration,
	}
}

// ID returns the section identifier.
func (s *UISection) ID() string {
	return SectionIDUI
}

// Title returns the section title.
func (s *UISection) Title() string {
	return "UI Settings"
}

// Description returns the section description.
func (s *UISection) Description() string {
	return "Configure how the list reacts to input: empty items, confirmation toasts and how long they stay visible."
}

// Data returns the current configuration data.
func (s *UISection) Data() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"allow_empty_items":  s.AllowEmptyItems,
		"show_confirmations": s.ShowConfirmations,
		"toast_duration":     s.ToastDuration.String(),
	}
}

// SetData updates the configuration from the provided data.
func (s *UISection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range data {
		switch key {
		case "allow_empty_items":
			enabled, ok := value.(bool)
			if !ok {
				return fmt.Errorf("invalid value type for allow_empty_items: expected bool, got %T", value)
			}
			s.AllowEmptyItems = enabled

		case "show_confirmations":
			enabled, ok := value.(bool)
			if !ok {
				return fmt.Errorf("invalid value type for show_confirmations: expected bool, got %T", value)
			}
			s.ShowConfirmations = enabled

		case "toast_duration":
			switch v := value.(type) {
			case string:
				duration, err := time.ParseDuration(v)
				if err != nil {
					return fmt.Errorf("invalid duration string for toast_duration: %w", err)
				}
				s.ToastDuration = duration
			case float64:
				// JSON numbers come as float64
				s.ToastDuration = time.Duration(v)
			default:
				return fmt.Errorf("invalid value type for toast_duration: expected string or number, got %T", value)
			}

		default:
			// Unknown keys are ignored for forward compatibility
			continue
		}
	}

	return nil
}

// Validate validates the current configuration.
func (s *UISection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ToastDuration < minToastDuration || s.ToastDuration > maxToastDuration {
		return fmt.Errorf("toast_duration must be between %v and %v, got %v", minToastDuration, maxToastDuration, s.ToastDuration)
	}
	return nil
}

// Reset resets the section to default configuration.
func (s *UISection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.AllowEmptyItems = defaultAllowEmptyItems
	s.ShowConfirmations = defaultShowConfirmations
	s.ToastDuration = defaultToastDuration
}

// Settings returns (allowEmptyItems, showConfirmations, toastDuration).
func (s *UISection) Settings() (bool, bool, time.Duration) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.AllowEmptyItems, s.ShowConfirmations, s.ToastDuration
}
