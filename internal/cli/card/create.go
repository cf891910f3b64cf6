package card

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
)

// CreateCmd returns the card create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a card at the end of a column",
		Long: `Create a card at the end of a column. The column can be given by ID or name.

Examples:
  kanban card create --board 1 --column Defined --title "Write docs"
  kanban card create --board 1 --column 2 --title "Fix login" --description "Steps in **bold**"

  # Quiet mode for bash capture
  CARD_ID=$(kanban card create --board 1 --column Defined --title "Spike" --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().Int("board", 0, "Board ID (required)")
	if err := cmd.MarkFlagRequired("board"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().String("column", "", "Column ID or name (required)")
	if err := cmd.MarkFlagRequired("column"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().String("title", "", "Card title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("description", "", "Card description (markdown)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	boardID, _ := cmd.Flags().GetInt("board")
	columnRef, _ := cmd.Flags().GetString("column")
	title, _ := cmd.Flags().GetString("title")

	var description *string
	if cmd.Flags().Changed("description") {
		desc, _ := cmd.Flags().GetString("description")
		description = &desc
	}

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

	columns, err := svc.ListColumns(ctx, boardID)
	if err != nil {
		return formatter.Fail(err)
	}
	column, err := cli.FindColumn(columns, columnRef)
	if err != nil {
		if fmtErr := formatter.ErrorWithSuggestion("COLUMN_NOT_FOUND", err.Error(),
			fmt.Sprintf("Run 'kanban board show --board %d' to see its columns", boardID)); fmtErr != nil {
			slog.Error("failed to format error message", "error", fmtErr)
		}
		return cli.Exit(cli.ExitNotFound, err)
	}

	card, err := svc.CreateCard(ctx, boardservice.CreateCardRequest{
		BoardID:     boardID,
		ColumnID:    column.ID,
		Title:       title,
		Description: description,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(card, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, styles.RenderSuccess(fmt.Sprintf(
			"Card '%s' created (ID: %d) in %s at position %d",
			card.Title, card.ID, column.Name, card.Position)))
		return err
	})
}
