// Package loader reads configuration files into flat key-value maps.
//
// Three file formats are supported: env-style key=value lines, flat
// YAML, and flat TOML. In every format keys map to plain string
// values; nested structures and non-string scalars are rejected
// rather than coerced. The resulting map is handed to config.New —
// loaders only ever read, they never write configuration back.
package loader

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Load reads the config file at path, picking the parser from the
// file extension: .yaml/.yml and .toml get their format parsers,
// everything else is treated as env-style key=value lines.
func Load(path string) (map[string]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".toml":
		return LoadTOML(path)
	default:
		return LoadEnv(path)
	}
}

func openErr(path string, err error) error {
	return fmt.Errorf("reading config file %s: %w", path, err)
}
