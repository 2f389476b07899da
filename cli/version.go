// file: cli/version.go

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build-time values, overridden with
// -ldflags "-X tokenwatch/cli.version=... -X tokenwatch/cli.commit=... -X tokenwatch/cli.date=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tokenwatch version %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}
