package card

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// ShowCmd returns the card show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show card details",
		Long:  "Display a card with its column, position and markdown description.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().Int("id", 0, "Card ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	// Parse card ID from positional arg or flag
	var cardID int
	if len(args) > 0 {
		cardID, _ = strconv.Atoi(args[0])
	} else {
		cardID, _ = cmd.Flags().GetInt("id")
	}

	if cardID <= 0 {
		return formatter.Usage("INVALID_CARD_ID", "card ID must be a positive integer",
			"Usage: kanban card show <id> or kanban card show --id=<id>")
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

	card, err := svc.GetCard(ctx, cardID)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(card, func(w io.Writer) error {
		columns, err := svc.ListColumns(ctx, card.BoardID)
		if err != nil {
			return err
		}

		out, err := styles.RenderCardDetail(card, cli.ColumnName(columns, card.ColumnID))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	})
}
