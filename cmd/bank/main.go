package main

import (
	"log/slog"
	"os"

	"github.com/benx421/personal-bank/internal/config"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once the root pre-run has loaded it
type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "bank",
		Short:         "Personal bank ledger service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.logger = cfg.Logger.NewLogger()
			slog.SetDefault(a.logger)
			return nil
		},
	}

	cmd.AddCommand(serveCommand(a))
	cmd.AddCommand(migrateCommand(a))

	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
