package database_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/testutil"
)

func TestEnsureSchema_Idempotent(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	require.NoError(t, database.EnsureSchema(ctx, db))
	require.NoError(t, database.EnsureSchema(ctx, db))

	var tables int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('boards', 'columns', 'cards')`,
	).Scan(&tables)
	require.NoError(t, err)
	assert.Equal(t, 3, tables)
}

func TestEnsureDefaultBoard_Twice(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	first, err := database.EnsureDefaultBoard(ctx, db)
	require.NoError(t, err)
	second, err := database.EnsureDefaultBoard(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, models.DefaultBoardName, first.Name)

	var boards, columns int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM boards`).Scan(&boards))
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM columns`).Scan(&columns))
	assert.Equal(t, 1, boards)
	assert.Equal(t, len(models.DefaultColumnNames), columns)
}

func TestForeignKeysEnforced(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	defer func() { _ = db.Close() }()

	_, err := db.ExecContext(context.Background(),
		`INSERT INTO cards (board_id, column_id, title, position) VALUES (42, 42, 'orphan', 0)`)
	require.Error(t, err)
	assert.True(t, database.IsForeignKeyViolation(err), "got %v", err)
	assert.False(t, database.IsBusy(err))
}

func TestDeleteBoard_Cascades(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	repo := database.NewRepository(db)

	keep := testutil.CreateTestBoard(t, db, "Keep")
	drop := testutil.CreateTestBoard(t, db, "Drop")

	keepColumns, err := repo.ListColumns(ctx, keep)
	require.NoError(t, err)
	dropColumns, err := repo.ListColumns(ctx, drop)
	require.NoError(t, err)

	testutil.CreateTestCard(t, db, keep, keepColumns[0].ID, "stays", 0)
	testutil.CreateTestCard(t, db, drop, dropColumns[0].ID, "goes", 0)
	testutil.CreateTestCard(t, db, drop, dropColumns[1].ID, "goes too", 0)

	require.NoError(t, repo.DeleteBoard(ctx, drop))

	_, err = repo.GetBoard(ctx, drop)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	columns, err := repo.ListColumns(ctx, drop)
	require.NoError(t, err)
	assert.Empty(t, columns)

	cards, err := repo.ListCards(ctx, drop)
	require.NoError(t, err)
	assert.Empty(t, cards)

	cards, err = repo.ListCards(ctx, keep)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "stays", cards[0].Title)
}

func TestDeleteColumn_CascadesToCards(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	board, columns := testutil.SetupDefaultBoard(t, db)
	testutil.CreateTestCard(t, db, board.ID, columns[2].ID, "x", 0)

	_, err := db.ExecContext(ctx, `DELETE FROM columns WHERE id = ?`, columns[2].ID)
	require.NoError(t, err)

	cards, err := database.NewRepository(db).ListCards(ctx, board.ID)
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestInitDB_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "kanban.db")
	ctx := context.Background()

	db, err := database.InitDB(ctx, database.Options{Path: path})
	require.NoError(t, err)
	board, err := database.EnsureDefaultBoard(ctx, db)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = database.InitDB(ctx, database.Options{Path: path})
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	again, err := database.EnsureDefaultBoard(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, board.ID, again.ID)

	boards, err := database.NewRepository(db).ListBoards(ctx)
	require.NoError(t, err)
	assert.Len(t, boards, 1)
}

func TestInitDB_EmptyPath(t *testing.T) {
	t.Parallel()

	_, err := database.InitDB(context.Background(), database.Options{})
	assert.Error(t, err)
}
