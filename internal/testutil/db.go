package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/models"
)

// SetupTestDB creates an in-memory database with the full schema and no rows
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.Options{Path: database.MemoryPath})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	return db
}

// SetupDefaultBoard seeds the default board and returns it with its columns
func SetupDefaultBoard(t *testing.T, db *sql.DB) (*models.Board, []*models.Column) {
	t.Helper()
	ctx := context.Background()

	board, err := database.EnsureDefaultBoard(ctx, db)
	if err != nil {
		t.Fatalf("Failed to seed default board: %v", err)
	}

	columns, err := database.NewRepository(db).ListColumns(ctx, board.ID)
	if err != nil {
		t.Fatalf("Failed to list columns: %v", err)
	}
	return board, columns
}

// CreateTestBoard creates a board with the default columns and returns its ID
func CreateTestBoard(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	board, err := database.NewRepository(db).CreateBoard(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to create test board: %v", err)
	}
	return board.ID
}

// CreateTestCard inserts a card at an explicit position and returns its ID.
// It bypasses the position logic so tests can build arbitrary layouts.
func CreateTestCard(t *testing.T, db *sql.DB, boardID, columnID int, title string, pos int) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO cards (board_id, column_id, title, position) VALUES (?, ?, ?, ?)",
		boardID, columnID, title, pos)
	if err != nil {
		t.Fatalf("Failed to create test card: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

// ColumnLayout returns the card titles of a column keyed by position
func ColumnLayout(t *testing.T, db *sql.DB, boardID, columnID int) map[int]string {
	t.Helper()
	rows, err := db.QueryContext(context.Background(),
		"SELECT position, title FROM cards WHERE board_id = ? AND column_id = ? ORDER BY position",
		boardID, columnID)
	if err != nil {
		t.Fatalf("Failed to read column: %v", err)
	}
	defer func() { _ = rows.Close() }()

	layout := map[int]string{}
	for rows.Next() {
		var pos int
		var title string
		if err := rows.Scan(&pos, &title); err != nil {
			t.Fatalf("Failed to scan card: %v", err)
		}
		layout[pos] = title
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("Failed to iterate cards: %v", err)
	}
	return layout
}
