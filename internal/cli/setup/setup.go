package setup

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/models"
)

// bootstrapResult is the JSON shape of bootstrap
type bootstrapResult struct {
	Board   *models.Board    `json:"board"`
	Columns []*models.Column `json:"columns"`
}

func (r *bootstrapResult) GetID() int {
	return r.Board.ID
}

// BootstrapCmd returns the bootstrap command
func BootstrapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Create the database schema and the default board",
		Long: `Create the tables if they do not exist and make sure a board with the
default columns exists. Running it again changes nothing.

Examples:
  kanban bootstrap
  KANBAN_DB_PATH=/tmp/kanban.db kanban bootstrap --json
`,
		RunE: runBootstrap,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("failed to format error message", "error", fmtErr)
		}
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	svc := cliInstance.App.BoardService

	board, err := svc.Bootstrap(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	columns, err := svc.ListColumns(ctx, board.ID)
	if err != nil {
		return formatter.Fail(err)
	}

	result := &bootstrapResult{Board: board, Columns: columns}
	return formatter.Success(result, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, styles.RenderSuccess(fmt.Sprintf(
			"Board '%s' (ID: %d) ready with %d columns", board.Name, board.ID, len(columns))))
		return err
	})
}
