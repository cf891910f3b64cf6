package database

import (
	"context"

	"github.com/thenoetrevino/kanban/internal/models"
)

// ColumnRepository defines column data operations
type ColumnRepository interface {
	ListColumns(ctx context.Context, boardID int) ([]*models.Column, error)
}
