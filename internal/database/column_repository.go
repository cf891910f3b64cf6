package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/kanban/internal/models"
)

// ColumnRepo handles column reads. Columns are seeded with their board and
// never moved, so there are no column write primitives here.
type ColumnRepo struct {
	db *sql.DB
}

// GetByBoard lists a board's columns ordered by position.
// A board without columns, or a missing board, yields an empty slice.
func (r *ColumnRepo) GetByBoard(ctx context.Context, boardID int) ([]*models.Column, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, board_id, name, position
		 FROM columns
		 WHERE board_id = ?
		 ORDER BY position`,
		boardID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns := []*models.Column{}
	for rows.Next() {
		col := &models.Column{}
		if err := rows.Scan(&col.ID, &col.BoardID, &col.Name, &col.Position); err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}

	return columns, rows.Err()
}
