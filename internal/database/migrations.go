package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/models"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS boards (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS columns (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		board_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		position INTEGER NOT NULL,
		FOREIGN KEY (board_id) REFERENCES boards(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS cards (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		board_id INTEGER NOT NULL,
		column_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		position INTEGER NOT NULL,
		FOREIGN KEY (board_id) REFERENCES boards(id) ON DELETE CASCADE,
		FOREIGN KEY (column_id) REFERENCES columns(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_columns_board ON columns(board_id, position)`,
	`CREATE INDEX IF NOT EXISTS idx_cards_column ON cards(board_id, column_id, position)`,
}

// EnsureSchema creates the tables and indexes if they do not exist.
// It is safe to call on every start.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: %w", ErrSchema, err)
		}
	}
	return nil
}

// EnsureDefaultBoard makes sure at least one board exists and that the first
// board (by id) has columns. A new board is named "Default Board"; a board
// without columns is seeded with the default column set.
//
// Two processes starting against an empty database at the same moment can
// each create a board; callers needing cross-process safety must coordinate
// externally.
func EnsureDefaultBoard(ctx context.Context, db *sql.DB) (*models.Board, error) {
	board := &models.Board{}

	err := withTx(ctx, db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`SELECT id, name FROM boards ORDER BY id LIMIT 1`,
		).Scan(&board.ID, &board.Name)
		switch {
		case err == sql.ErrNoRows:
			result, err := tx.ExecContext(ctx, `INSERT INTO boards (name) VALUES (?)`, models.DefaultBoardName)
			if err != nil {
				return fmt.Errorf("failed to create default board: %w", err)
			}
			id, err := result.LastInsertId()
			if err != nil {
				return err
			}
			board.ID = int(id)
			board.Name = models.DefaultBoardName
			slog.Info("created default board", "board_id", board.ID)
		case err != nil:
			return err
		}

		var count int
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM columns WHERE board_id = ?`, board.ID,
		).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		return seedDefaultColumns(ctx, tx, board.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}

	return board, nil
}

// seedDefaultColumns inserts the default column set at positions 0..n-1
func seedDefaultColumns(ctx context.Context, tx *sql.Tx, boardID int) error {
	for pos, name := range models.DefaultColumnNames {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO columns (board_id, name, position) VALUES (?, ?, ?)`,
			boardID, name, pos,
		); err != nil {
			return fmt.Errorf("failed to seed column %q: %w", name, err)
		}
	}
	return nil
}
