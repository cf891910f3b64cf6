// Package cmd wires the kanban command tree.
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/board"
	"github.com/thenoetrevino/kanban/internal/cli/card"
	"github.com/thenoetrevino/kanban/internal/cli/setup"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/logging"
)

var (
	configPath string
	logCloser  io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "kanban",
	Short: "Kanban - boards, columns and ordered cards",
	Long: `Kanban manages boards whose columns hold cards in a user-defined order.

The same SQLite database is served over HTTP by kanban-server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logCloser, err = logging.Init(logging.Options{
			Level:  cfg.Log.Level,
			Format: cfg.Log.Format,
			File:   cfg.Log.File,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}

		styles.Init(&cfg.Theme)
		cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			if err := logCloser.Close(); err != nil {
				slog.Error("failed to close log file", "error", err)
			}
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file (default $KANBAN_CONFIG or the user config directory)")

	rootCmd.AddCommand(setup.BootstrapCmd())
	rootCmd.AddCommand(setup.ConfigCmd())
	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(card.CardCmd())
}

// Execute runs the root command. The returned error carries the exit code,
// see cli.ExitCode.
func Execute() error {
	return rootCmd.Execute()
}
