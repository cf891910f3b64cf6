package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/api"
	"github.com/thenoetrevino/kanban/internal/config"
	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
	"github.com/thenoetrevino/kanban/internal/testutil"
)

func TestNew(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	app := New(db)
	defer func() { _ = app.Close() }()

	require.NotNil(t, app.BoardService)
	assert.NotNil(t, app.Repo())
	assert.Nil(t, app.Metrics)

	board, err := app.BoardService.Bootstrap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Default Board", board.Name)
}

func TestNew_DefaultPolicyCompacts(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	app := New(db)
	defer func() { _ = app.Close() }()

	ctx := context.Background()
	board, columns := testutil.SetupDefaultBoard(t, db)
	svc := app.BoardService

	a, err := svc.CreateCard(ctx, boardservice.CreateCardRequest{BoardID: board.ID, ColumnID: columns[0].ID, Title: "a"})
	require.NoError(t, err)
	_, err = svc.CreateCard(ctx, boardservice.CreateCardRequest{BoardID: board.ID, ColumnID: columns[0].ID, Title: "b"})
	require.NoError(t, err)

	_, err = svc.MoveCard(ctx, boardservice.MoveCardRequest{
		CardID: a.ID, BoardID: board.ID, FromColumnID: columns[0].ID, ToColumnID: columns[1].ID,
	})
	require.NoError(t, err)

	assert.Equal(t, map[int]string{0: "b"}, testutil.ColumnLayout(t, db, board.ID, columns[0].ID))
}

func TestOpen(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Database.Path = filepath.Join(t.TempDir(), "kanban.db")

	metrics := api.NewMetrics()
	app, err := Open(context.Background(), cfg, WithMetrics(metrics))
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	assert.Same(t, metrics, app.Metrics)

	_, err = app.BoardService.Bootstrap(context.Background())
	require.NoError(t, err)
	assert.FileExists(t, cfg.Database.Path)
}

func TestClose(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	app := New(db)

	require.NoError(t, app.Close())
	assert.Error(t, db.Ping())
}
