package board

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/models"
	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
)

// boardView is the JSON shape of board show
type boardView struct {
	Board   *models.Board    `json:"board"`
	Columns []*models.Column `json:"columns"`
	Cards   []*models.Card   `json:"cards"`
}

func (v *boardView) GetID() int {
	return v.Board.ID
}

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a board with its columns and cards",
		Long: `Render a board's columns side by side with their cards in position order.

Examples:
  kanban board show            # first board
  kanban board show --board 2
  kanban board show --board 2 --json
`,
		RunE: runShow,
	}

	cmd.Flags().Int("board", 0, "Board ID (defaults to the first board)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)
	boardID, _ := cmd.Flags().GetInt("board")

	if boardID < 0 {
		return formatter.Usage("INVALID_BOARD_ID", "board ID must be a positive integer",
			"Usage: kanban board show --board <id>")
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

	board, err := resolveBoard(ctx, svc, boardID)
	if err != nil {
		return formatter.Fail(err)
	}

	columns, err := svc.ListColumns(ctx, board.ID)
	if err != nil {
		return formatter.Fail(err)
	}
	cards, err := svc.ListCards(ctx, board.ID)
	if err != nil {
		return formatter.Fail(err)
	}

	view := &boardView{Board: board, Columns: columns, Cards: cards}
	return formatter.Success(view, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, styles.RenderBoard(board, columns, cards))
		return err
	})
}

// resolveBoard returns the board with the given ID, or the first board when id is 0
func resolveBoard(ctx context.Context, svc boardservice.Service, id int) (*models.Board, error) {
	if id != 0 {
		return svc.GetBoard(ctx, id)
	}

	boards, err := svc.ListBoards(ctx)
	if err != nil {
		return nil, err
	}
	if len(boards) == 0 {
		return nil, fmt.Errorf("%w: run 'kanban bootstrap' first", boardservice.ErrBoardNotFound)
	}
	return boards[0], nil
}
