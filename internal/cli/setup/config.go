package setup

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/config"
)

// configResult is the JSON shape of config init
type configResult struct {
	Path   string         `json:"path"`
	Config *config.Config `json:"config"`
}

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	cmd.AddCommand(InitConfigCmd())

	return cmd
}

// InitConfigCmd returns the config init subcommand
func InitConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to a file",
		Long: `Write the configuration currently in effect (file, .env and KANBAN_*
overrides applied) as YAML, so it can be edited by hand.

Examples:
  kanban config init
  kanban config init --path ./kanban.yaml --force
`,
		RunE: runInitConfig,
	}

	cmd.Flags().String("path", "", "Destination (defaults to the user config directory)")
	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	formatter := cli.Formatter(cmd)
	cfg := cli.ConfigFromContext(cmd.Context())

	path, _ := cmd.Flags().GetString("path")
	force, _ := cmd.Flags().GetBool("force")

	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return formatter.Usage("NO_CONFIG_DIR", err.Error(), "Pass --path explicitly")
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil && !force {
		return formatter.Usage("CONFIG_EXISTS", fmt.Sprintf("%s already exists", path),
			"Use --force to overwrite it")
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return formatter.Fail(err)
	}

	if err := cfg.Save(path); err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(&configResult{Path: path, Config: cfg}, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, styles.RenderSuccess("Config written to "+path))
		return err
	})
}
