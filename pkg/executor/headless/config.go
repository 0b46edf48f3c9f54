package headless

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// OpKind names a list operation in a script.
type OpKind string

const (
	// OpAdd appends text to the list
	OpAdd OpKind = "add"
	// OpUpdate replaces the item at index with text
	OpUpdate OpKind = "update"
	// OpRemove deletes the item at index
	OpRemove OpKind = "remove"
)

// Script is a batch of operations loaded from YAML.
type Script struct {
	// Keep going after an operation fails instead of stopping
	ContinueOnError bool `yaml:"continue_on_error" json:"continue_on_error"`

	// Verbosity controls progress output: quiet, normal, verbose
	Verbosity string `yaml:"verbosity" json:"verbosity"`

	Operations []Operation `yaml:"operations" json:"operations"`
}

// Operation is one step of a script. Index and Text are pointers so a
// missing field can be told apart from a zero value: `text: ""` is a valid
// empty item, a missing text is an error.
type Operation struct {
	Op    OpKind  `yaml:"op" json:"op"`
	Index *int    `yaml:"index,omitempty" json:"index,omitempty"`
	Text  *string `yaml:"text,omitempty" json:"text,omitempty"`
}

// String renders the operation for progress output.
func (o Operation) String() string {
	switch o.Op {
	case OpAdd:
		return fmt.Sprintf("add %q", deref(o.Text))
	case OpUpdate:
		return fmt.Sprintf("update #%d to %q", derefInt(o.Index), deref(o.Text))
	case OpRemove:
		return fmt.Sprintf("remove #%d", derefInt(o.Index))
	default:
		return string(o.Op)
	}
}

// LoadScript reads and validates a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script file: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes and validates a YAML script.
func ParseScript(data []byte) (*Script, error) {
	script := &Script{}
	if err := yaml.Unmarshal(data, script); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if err := script.Validate(); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	return script, nil
}

// Validate checks every operation and fills in the default verbosity.
func (s *Script) Validate() error {
	if len(s.Operations) == 0 {
		return fmt.Errorf("script has no operations")
	}

	for i, op := range s.Operations {
		if err := op.validate(); err != nil {
			return fmt.Errorf("operation %d: %w", i+1, err)
		}
	}

	if s.Verbosity == "" {
		s.Verbosity = "normal"
	}
	validLevels := map[string]bool{
		"quiet":   true,
		"normal":  true,
		"verbose": true,
	}
	if !validLevels[s.Verbosity] {
		return fmt.Errorf("invalid verbosity: %s (must be 'quiet', 'normal', or 'verbose')", s.Verbosity)
	}

	return nil
}

func (o Operation) validate() error {
	switch o.Op {
	case OpAdd:
		if o.Text == nil {
			return fmt.Errorf("add requires text")
		}
	case OpUpdate:
		if o.Index == nil {
			return fmt.Errorf("update requires index")
		}
		if o.Text == nil {
			return fmt.Errorf("update requires text")
		}
	case OpRemove:
		if o.Index == nil {
			return fmt.Errorf("remove requires index")
		}
	case "":
		return fmt.Errorf("op is required")
	default:
		return fmt.Errorf("unknown op %q (must be 'add', 'update', or 'remove')", o.Op)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
