package cmd

import (
	"fmt"
	"net/http"

	"confkit/internal/httpapi"

	"github.com/spf13/cobra"
)

// newServeCmd creates the serve command.
func newServeCmd(provider *AppProvider) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the configuration over HTTP",
		Long: `Serve the loaded configuration over HTTP.

Endpoints:
  GET  /config        full mapping as JSON
  GET  /config/{key}  bare value (404 if absent)
  HEAD /config/{key}  existence probe (204/404)
  PUT  /config/{key}  set key to the request body, in memory only

Values set over HTTP are never written back to the config file.

Examples:
  confkit serve
  confkit serve --addr :9000 -f config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			server := httpapi.NewServer(app.Store)

			fmt.Fprintln(app.Out, app.SuccessColor("Listening on "+addr))
			if err := http.ListenAndServe(addr, server.Router()); err != nil {
				return fmt.Errorf("serving: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8084", "Address to listen on")

	return cmd
}
