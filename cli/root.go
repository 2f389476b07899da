// file: cli/root.go

package cli

import (
	"database/sql"
	"tokenwatch/config"
	"tokenwatch/db"
	"tokenwatch/logger"
	"tokenwatch/repository"

	"github.com/spf13/cobra"
)

// App carries the dependencies shared by the subcommands. Configuration is
// loaded once per invocation; the store is opened lazily by each command so
// the daemon can refuse bad configuration before touching the database.
type App struct {
	cfg    *config.Config
	db     *sql.DB
	tokens repository.ITokenRepository
}

// openStore connects to the database and wires the token repository.
func (a *App) openStore() error {
	database, err := db.Connect(a.cfg.Database.Path)
	if err != nil {
		return err
	}
	a.db = database
	a.tokens = repository.NewTokenRepository(database)
	return nil
}

// closeStore releases the database if openStore succeeded.
func (a *App) closeStore() {
	if a.db != nil {
		a.db.Close()
	}
}

// NewRootCmd assembles the tokenwatch command tree.
func NewRootCmd() *cobra.Command {
	app := &App{}

	rootCmd := &cobra.Command{
		Use:   "tokenwatch",
		Short: "Track token expiry dates and get notified before they lapse",
		Long: `tokenwatch keeps a small registry of named tokens and their expiry dates
in a local SQLite database. Its daemon checks the registry on a fixed
interval and sends a Telegram message for every token that has expired or
is about to.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.Init()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			app.cfg = cfg
			return nil
		},
	}

	rootCmd.AddCommand(
		newAddCmd(app),
		newRemoveCmd(app),
		newListCmd(app),
		newDaemonCmd(app),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the CLI and reports whether the invocation failed.
func Execute() error {
	return NewRootCmd().Execute()
}
