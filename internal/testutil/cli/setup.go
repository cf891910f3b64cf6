package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/testutil"
)

// SetupCLITest creates an in-memory DB with the default board and returns
// both the DB and App instance.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	testutil.SetupDefaultBoard(t, db)

	return db, app.New(db)
}

// DefaultBoard wraps testutil.SetupDefaultBoard for CLI tests.
// The board already exists after SetupCLITest, so this only reads it back.
func DefaultBoard(t *testing.T, db *sql.DB) (*models.Board, []*models.Column) {
	t.Helper()
	return testutil.SetupDefaultBoard(t, db)
}

// CreateTestCard wraps testutil.CreateTestCard for CLI tests
func CreateTestCard(t *testing.T, db *sql.DB, boardID, columnID int, title string, pos int) int {
	t.Helper()
	return testutil.CreateTestCard(t, db, boardID, columnID, title, pos)
}
