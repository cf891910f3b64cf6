package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/models"
)

// BoardRepo handles board persistence
type BoardRepo struct {
	db *sql.DB
}

// Create inserts a board and seeds it with the default columns in one transaction
func (r *BoardRepo) Create(ctx context.Context, name string) (*models.Board, error) {
	board := &models.Board{Name: name}

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `INSERT INTO boards (name) VALUES (?)`, name)
		if err != nil {
			return err
		}
		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		board.ID = int(id)
		return seedDefaultColumns(ctx, tx, board.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return board, nil
}

// GetAll lists every board ordered by id
func (r *BoardRepo) GetAll(ctx context.Context) ([]*models.Board, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM boards ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	boards := []*models.Board{}
	for rows.Next() {
		board := &models.Board{}
		if err := rows.Scan(&board.ID, &board.Name); err != nil {
			return nil, err
		}
		boards = append(boards, board)
	}

	return boards, rows.Err()
}

// GetByID returns sql.ErrNoRows when the board does not exist
func (r *BoardRepo) GetByID(ctx context.Context, id int) (*models.Board, error) {
	board := &models.Board{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM boards WHERE id = ?`, id,
	).Scan(&board.ID, &board.Name)
	if err != nil {
		return nil, err
	}
	return board, nil
}

// Delete removes a board; columns and cards go with it through ON DELETE CASCADE
func (r *BoardRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM boards WHERE id = ?`, id)
	return err
}
