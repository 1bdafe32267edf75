package task

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load decodes a YAML task from r and validates it.
func Load(r io.Reader) (*Task, error) {
	var t Task
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("task: decode: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return &t, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (*Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("task: open %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}
