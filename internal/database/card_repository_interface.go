package database

import (
	"context"

	"github.com/thenoetrevino/kanban/internal/models"
)

// CardRepository defines card data operations.
// Writes happen only inside WithCardTx.
type CardRepository interface {
	ListCards(ctx context.Context, boardID int) ([]*models.Card, error)
	GetCard(ctx context.Context, id int) (*models.Card, error)
	WithCardTx(ctx context.Context, fn func(*CardTx) error) error
}
