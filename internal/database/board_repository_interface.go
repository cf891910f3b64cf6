package database

import (
	"context"

	"github.com/thenoetrevino/kanban/internal/models"
)

// BoardRepository defines board data operations
type BoardRepository interface {
	CreateBoard(ctx context.Context, name string) (*models.Board, error)
	ListBoards(ctx context.Context) ([]*models.Board, error)
	GetBoard(ctx context.Context, id int) (*models.Board, error)
	DeleteBoard(ctx context.Context, id int) error
}
