// file: cli/daemon.go

package cli

import (
	"os/signal"
	"syscall"
	"tokenwatch/notify"
	"tokenwatch/service"

	"github.com/spf13/cobra"
)

func newDaemonCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Run the expiry notification daemon",
		Long: `Daemon checks the registry once immediately and then on a fixed interval,
sending a Telegram message for every token that has expired or falls within
the notification threshold. It runs until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Telegram credentials are required here and nowhere else, and
			// they are checked before the store is opened.
			if err := app.cfg.Validate(); err != nil {
				return err
			}

			if err := app.openStore(); err != nil {
				return err
			}
			defer app.closeStore()

			sender := notify.NewTelegramClient(
				app.cfg.Telegram.BotToken,
				app.cfg.Telegram.ChatID,
				app.cfg.Telegram.APIURL,
			)
			notifier := service.NewNotifierService(
				app.tokens,
				sender,
				app.cfg.Notifier.ThresholdDays,
				app.cfg.CheckInterval(),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			notifier.Run(ctx)
			return nil
		},
	}
}
