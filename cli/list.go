// file: cli/list.go

package cli

import (
	"fmt"
	"strings"
	"tokenwatch/model"

	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tracked tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.openStore(); err != nil {
				return err
			}
			defer app.closeStore()

			tokens, err := app.tokens.List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Tracked Tokens:")
			fmt.Fprintf(out, "%-20s %-15s %s\n", "Name", "Expires", "Last Notified")
			fmt.Fprintln(out, strings.Repeat("-", 50))

			for _, token := range tokens {
				lastNotified := "Never"
				if token.LastNotified != nil {
					lastNotified = token.LastNotified.Format(model.TimestampLayout)
				}
				fmt.Fprintf(out, "%-20s %-15s %s\n",
					token.Name, token.ExpiresAt.Format(model.DateLayout), lastNotified)
			}
			return nil
		},
	}
}
