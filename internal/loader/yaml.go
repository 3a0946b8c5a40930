package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a flat YAML mapping from the file at path. Dotted
// keys (e.g. "server.port") are literal strings, not nested paths.
// Values must be strings; nested mappings and bare scalars of other
// types fail decoding. An empty file yields an empty map.
func LoadYAML(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, openErr(path, err)
	}

	items := make(map[string]string)
	if len(raw) == 0 {
		return items, nil
	}

	if err := yaml.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if items == nil {
		items = make(map[string]string)
	}
	return items, nil
}
