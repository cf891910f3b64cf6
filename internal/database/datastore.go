package database

import (
	"context"

	"github.com/thenoetrevino/kanban/internal/models"
)

// SchemaManager creates the schema and seeds the default board
type SchemaManager interface {
	EnsureSchema(ctx context.Context) error
	EnsureDefaultBoard(ctx context.Context) (*models.Board, error)
}

// DataStore defines the unified interface for all data operations needed by
// the board service. It is composed of smaller, domain-specific interfaces so
// consumers can depend on only what they use.
type DataStore interface {
	SchemaManager
	BoardRepository
	ColumnRepository
	CardRepository
}

// Compile-time verification that *Repository implements DataStore
var _ DataStore = (*Repository)(nil)
