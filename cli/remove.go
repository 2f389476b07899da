// file: cli/remove.go

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Stop tracking a token",
		Long: `Remove deletes a token from the registry. Removing a name that is not
tracked is not an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.openStore(); err != nil {
				return err
			}
			defer app.closeStore()

			name := args[0]
			if err := app.tokens.Remove(name); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Token '%s' removed successfully!\n", name)
			return nil
		},
	}
}
