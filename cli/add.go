// file: cli/add.go

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <expires-at>",
		Short: "Add a token to track, or replace one with the same name",
		Long: `Add registers a token under a unique name with an expiry date in
YYYY-MM-DD form. Adding a name that already exists replaces its expiry
date and clears any recorded notification state.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.openStore(); err != nil {
				return err
			}
			defer app.closeStore()

			name := args[0]
			if err := app.tokens.Add(name, args[1]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Token '%s' added successfully!\n", name)
			return nil
		},
	}
}
