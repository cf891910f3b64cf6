package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/kanban/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	db *sql.DB
	*BoardRepo
	*ColumnRepo
	*CardRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		db:         db,
		BoardRepo:  &BoardRepo{db: db},
		ColumnRepo: &ColumnRepo{db: db},
		CardRepo:   &CardRepo{db: db},
	}
}

// Wrapper methods for BoardRepo
func (r *Repository) CreateBoard(ctx context.Context, name string) (*models.Board, error) {
	return r.BoardRepo.Create(ctx, name)
}

func (r *Repository) ListBoards(ctx context.Context) ([]*models.Board, error) {
	return r.BoardRepo.GetAll(ctx)
}

func (r *Repository) GetBoard(ctx context.Context, id int) (*models.Board, error) {
	return r.BoardRepo.GetByID(ctx, id)
}

func (r *Repository) DeleteBoard(ctx context.Context, id int) error {
	return r.BoardRepo.Delete(ctx, id)
}

// Wrapper methods for ColumnRepo
func (r *Repository) ListColumns(ctx context.Context, boardID int) ([]*models.Column, error) {
	return r.ColumnRepo.GetByBoard(ctx, boardID)
}

// Wrapper methods for CardRepo
func (r *Repository) ListCards(ctx context.Context, boardID int) ([]*models.Card, error) {
	return r.CardRepo.GetByBoard(ctx, boardID)
}

func (r *Repository) GetCard(ctx context.Context, id int) (*models.Card, error) {
	return r.CardRepo.GetByID(ctx, id)
}

func (r *Repository) WithCardTx(ctx context.Context, fn func(*CardTx) error) error {
	return r.CardRepo.WithTx(ctx, fn)
}

// Schema management
func (r *Repository) EnsureSchema(ctx context.Context) error {
	return EnsureSchema(ctx, r.db)
}

func (r *Repository) EnsureDefaultBoard(ctx context.Context) (*models.Board, error) {
	return EnsureDefaultBoard(ctx, r.db)
}
