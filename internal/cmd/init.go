package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// starterItems is the sample configuration written by init.
func starterItems() map[string]string {
	return map[string]string{
		"app.name":    "confkit",
		"server.host": "localhost",
		"server.port": "8080",
	}
}

// newInitCmd creates the init command.
// Note: init doesn't use the provider since it creates the config file.
func newInitCmd(provider *AppProvider) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter config file",
		Long: `Write a starter config file with sample keys.

The file format is chosen from the extension (.yaml/.yml, .toml, or
env-style key=value lines for anything else). Refuses to overwrite an
existing file unless --force is given.

Examples:
  confkit init
  confkit init settings.yaml
  confkit init config.toml --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := DefaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}

			out := provider.Out
			if out == nil {
				out = os.Stdout
			}
			app := &App{Out: out}

			if _, err := os.Stat(path); err == nil && !force {
				return errors.New("config file already exists (use --force to overwrite)")
			}

			data, err := renderStarter(path)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0644); err != nil {
				return fmt.Errorf("writing config file: %w", err)
			}

			fmt.Fprintln(out, app.SuccessColor("Initialized "+path))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

// renderStarter encodes the starter items in the format implied by the
// path's extension.
func renderStarter(path string) ([]byte, error) {
	items := starterItems()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := yaml.Marshal(items)
		if err != nil {
			return nil, fmt.Errorf("encoding config: %w", err)
		}
		return data, nil
	case ".toml":
		data, err := toml.Marshal(items)
		if err != nil {
			return nil, fmt.Errorf("encoding config: %w", err)
		}
		return data, nil
	default:
		var b strings.Builder
		for _, k := range sortedKeys(items) {
			fmt.Fprintf(&b, "%s=%s\n", k, items[k])
		}
		return []byte(b.String()), nil
	}
}
