package board

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
)

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all boards",
		Long: `List all boards ordered by ID.

Examples:
  kanban board list
  kanban board list --json
  kanban board list --quiet   # one ID per line
`,
		RunE: runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
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

	boards, err := cliInstance.App.BoardService.ListBoards(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		for _, b := range boards {
			fmt.Fprintf(formatter.Out, "%d\n", b.ID)
		}
		return nil
	}

	return formatter.Success(boards, func(w io.Writer) error {
		return printBoards(w, boards)
	})
}

func printBoards(w io.Writer, boards []*models.Board) error {
	if len(boards) == 0 {
		_, err := fmt.Fprintln(w, "No boards found")
		return err
	}

	fmt.Fprintf(w, "Found %d boards:\n\n", len(boards))
	for _, b := range boards {
		fmt.Fprintf(w, "  [%d] %s\n", b.ID, b.Name)
	}
	return nil
}
