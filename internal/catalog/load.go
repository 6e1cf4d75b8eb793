// internal/catalog/load.go
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// file is the on-disk catalog document shape.
type file struct {
	Events []EventSpec `yaml:"events"`
}

// Parse decodes a YAML catalog document into event specs.
// Validation happens in New, not here.
func Parse(data []byte) ([]EventSpec, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}
	return f.Events, nil
}

// LoadFile reads a YAML catalog from disk and builds the registry.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	specs, err := Parse(data)
	if err != nil {
		return nil, err
	}

	return New(specs)
}
