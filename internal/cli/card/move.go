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

// MoveCmd returns the card move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a card to a position in a column",
		Long: `Move a card to a position in a column of its board.

The card's current board and column are read from storage; --to accepts a
column ID or name. Positions start at 0.

Examples:
  kanban card move --id 4 --to "In Progress"
  kanban card move --id 4 --to 3 --position 0

  # JSON output for agents
  kanban card move --id 4 --to Done --json
`,
		RunE: runMove,
	}

	// Required flags
	cmd.Flags().Int("id", 0, "Card ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().String("to", "", "Target column ID or name (required)")
	if err := cmd.MarkFlagRequired("to"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().Int("position", 0, "Target position (0 is the top)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	cardID, _ := cmd.Flags().GetInt("id")
	target, _ := cmd.Flags().GetString("to")
	newPosition, _ := cmd.Flags().GetInt("position")

	if cardID <= 0 {
		return formatter.Usage("INVALID_CARD_ID", "card ID must be a positive integer",
			"Usage: kanban card move --id <id> --to <column>")
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

	current, err := svc.GetCard(ctx, cardID)
	if err != nil {
		return formatter.Fail(err)
	}

	columns, err := svc.ListColumns(ctx, current.BoardID)
	if err != nil {
		return formatter.Fail(err)
	}
	toColumn, err := cli.FindColumn(columns, target)
	if err != nil {
		if fmtErr := formatter.ErrorWithSuggestion("COLUMN_NOT_FOUND", err.Error(),
			fmt.Sprintf("Run 'kanban board show --board %d' to see its columns", current.BoardID)); fmtErr != nil {
			slog.Error("failed to format error message", "error", fmtErr)
		}
		return cli.Exit(cli.ExitNotFound, err)
	}

	card, err := svc.MoveCard(ctx, boardservice.MoveCardRequest{
		CardID:       cardID,
		BoardID:      current.BoardID,
		FromColumnID: current.ColumnID,
		ToColumnID:   toColumn.ID,
		NewPosition:  newPosition,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	fromName := cli.ColumnName(columns, current.ColumnID)
	return formatter.Success(card, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, styles.RenderSuccess(fmt.Sprintf(
			"Card %d moved from '%s' to '%s' at position %d",
			card.ID, fromName, toColumn.Name, card.Position)))
		return err
	})
}
