package loader

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// LoadTOML reads a flat TOML document from the file at path. Only
// top-level string values are accepted; tables and non-string values
// fail decoding.
func LoadTOML(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, openErr(path, err)
	}

	items := make(map[string]string)
	if err := toml.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return items, nil
}
