package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newHasCmd creates the has command.
func newHasCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "has <key>",
		Short: "Check whether a configuration key is set",
		Long: `Check whether a configuration key is present.

Prints "true" or "false".

Examples:
  confkit has host
  confkit has missing.key --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			key := args[0]
			ok := app.Store.Has(key)

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]interface{}{
					"key": key,
					"has": ok,
				})
			}

			fmt.Fprintln(app.Out, ok)
			return nil
		},
	}

	return cmd
}
