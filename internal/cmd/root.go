package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"confkit/internal/config"
	"confkit/internal/loader"

	"github.com/spf13/cobra"
)

// DefaultConfigFile is the file loaded when --file is not given.
// If it does not exist the store starts empty.
const DefaultConfigFile = "config.txt"

// AppProvider lazily initializes the App on first use.
type AppProvider struct {
	once sync.Once
	app  *App
	err  error

	// Config captured from flags before Execute()
	ConfigFile string
	Overlays   []string
	JSONOutput bool
	Out        io.Writer
	Err        io.Writer
}

// Get returns the App, initializing it on first call.
func (p *AppProvider) Get() (*App, error) {
	p.once.Do(func() {
		if p.app == nil {
			p.app, p.err = p.init()
		}
	})
	return p.app, p.err
}

// NewTestProvider creates a provider pre-initialized with the given App.
// Used for testing commands with a mock/test App.
func NewTestProvider(app *App) *AppProvider {
	return &AppProvider{
		app: app,
		Out: app.Out,
		Err: app.Err,
	}
}

func (p *AppProvider) init() (*App, error) {
	path := p.ConfigFile
	items := make(map[string]string)

	if path == "" {
		// Default file is optional: a missing config.txt means an
		// empty store, an explicitly given missing file is an error.
		loaded, err := loader.Load(DefaultConfigFile)
		switch {
		case err == nil:
			items = loaded
			path = DefaultConfigFile
		case errors.Is(err, os.ErrNotExist):
			path = ""
		default:
			return nil, err
		}
	} else {
		loaded, err := loader.Load(path)
		if err != nil {
			return nil, err
		}
		items = loaded
	}

	store := config.New(items)
	if err := applyOverlays(store, p.Overlays); err != nil {
		return nil, err
	}

	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := p.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	return &App{
		Store:      store,
		ConfigFile: path,
		Out:        out,
		Err:        errOut,
		JSON:       p.JSONOutput,
	}, nil
}

// applyOverlays applies --set key=value flags to the store, in order.
// Overlays live in memory only; they are never written back to the file.
func applyOverlays(store config.Store, overlays []string) error {
	for _, o := range overlays {
		key, value, found := strings.Cut(o, "=")
		if !found {
			return fmt.Errorf("invalid --set value %q (want key=value)", o)
		}
		store.Set(key, value)
	}
	return nil
}

// Execute runs the CLI.
func Execute() error {
	provider := &AppProvider{
		Out: os.Stdout,
		Err: os.Stderr,
	}

	rootCmd := newRootCmd(provider)
	return rootCmd.Execute()
}

// newRootCmd creates the root command with all subcommands.
func newRootCmd(provider *AppProvider) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "confkit",
		Short: "A flat key-value configuration store",
		Long: `Confkit reads flat key-value configuration from a file
(env-style key=value lines, flat YAML, or flat TOML) and exposes it
for lookup, listing, and serving over HTTP.

Values set with --set or over HTTP live in memory for the duration of
the process; confkit never writes configuration back to the file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags - these populate the provider config
	rootCmd.PersistentFlags().StringVarP(&provider.ConfigFile, "file", "f", "", "Config file to load (default: "+DefaultConfigFile+" if present)")
	rootCmd.PersistentFlags().StringArrayVar(&provider.Overlays, "set", nil, "Overlay key=value onto the loaded config (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&provider.JSONOutput, "json", false, "Output in JSON format")

	// Register all commands
	rootCmd.AddCommand(newGetCmd(provider))
	rootCmd.AddCommand(newHasCmd(provider))
	rootCmd.AddCommand(newListCmd(provider))
	rootCmd.AddCommand(newInitCmd(provider))
	rootCmd.AddCommand(newServeCmd(provider))
	rootCmd.AddCommand(newVersionCmd(provider))

	return rootCmd
}
