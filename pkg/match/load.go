package match

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadTable reads an alternate alias table from a YAML file. Keys and
// variants are normalized on load so the file doesn't have to be.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("alias table: read %s: %w", path, err)
	}
	return ParseTable(data)
}

// ParseTable unmarshals and validates YAML alias-table bytes.
func ParseTable(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("alias table: parse: %w", err)
	}
	if t.Version == "" {
		return nil, fmt.Errorf("alias table: missing version")
	}
	norm := make(map[string][]string, len(t.Aliases))
	for task, variants := range t.Aliases {
		key := Normalize(task)
		if key == "" {
			return nil, fmt.Errorf("alias table: empty task name")
		}
		for _, v := range variants {
			nv := Normalize(v)
			if nv == "" {
				return nil, fmt.Errorf("alias table: empty variant under %q", task)
			}
			norm[key] = append(norm[key], nv)
		}
	}
	t.Aliases = norm
	return &t, nil
}
