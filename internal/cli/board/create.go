package board

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a board with the default columns",
		Long: `Create a board seeded with Parking Lot, Defined, In Progress, Blocked and Done.

Examples:
  kanban board create --name "Roadmap"

  # Quiet mode for bash capture
  BOARD_ID=$(kanban board create --name "Roadmap" --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("name", "", "Board name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)
	name, _ := cmd.Flags().GetString("name")

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

	board, err := cliInstance.App.BoardService.CreateBoard(ctx, name)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(board, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, styles.RenderSuccess(fmt.Sprintf("Board '%s' created (ID: %d)", board.Name, board.ID)))
		return err
	})
}
