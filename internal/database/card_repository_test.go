package database_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/position"
	"github.com/thenoetrevino/kanban/internal/testutil"
)

// CardTx is the storage side of the position algorithms
var _ position.Store = (*database.CardTx)(nil)

func TestCardTx_Primitives(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	repo := database.NewRepository(db)
	board, columns := testutil.SetupDefaultBoard(t, db)
	col := columns[1].ID

	err := repo.WithCardTx(ctx, func(tx *database.CardTx) error {
		_, ok, err := tx.MaxPosition(ctx, board.ID, col)
		require.NoError(t, err)
		assert.False(t, ok)

		desc := "body"
		a, err := tx.InsertCard(ctx, board.ID, col, "A", &desc, 0)
		require.NoError(t, err)
		require.NotNil(t, a.Description)
		assert.Equal(t, "body", *a.Description)

		b, err := tx.InsertCard(ctx, board.ID, col, "B", nil, 1)
		require.NoError(t, err)
		assert.Nil(t, b.Description)

		maxPos, ok, err := tx.MaxPosition(ctx, board.ID, col)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 1, maxPos)

		count, err := tx.CountCards(ctx, board.ID, col, a.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		owner, err := tx.ColumnBoardID(ctx, col)
		require.NoError(t, err)
		assert.Equal(t, board.ID, owner)

		_, err = tx.ColumnBoardID(ctx, 9999)
		assert.ErrorIs(t, err, sql.ErrNoRows)

		require.NoError(t, tx.ShiftPositions(ctx, board.ID, col, 1, 3))
		require.NoError(t, tx.PlaceCard(ctx, a.ID, board.ID, columns[2].ID, 0))
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, map[int]string{4: "B"}, testutil.ColumnLayout(t, db, board.ID, col))
	assert.Equal(t, map[int]string{0: "A"}, testutil.ColumnLayout(t, db, board.ID, columns[2].ID))
}

func TestCardTx_RollbackOnError(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	repo := database.NewRepository(db)
	board, columns := testutil.SetupDefaultBoard(t, db)

	boom := errors.New("boom")
	err := repo.WithCardTx(ctx, func(tx *database.CardTx) error {
		if _, err := tx.InsertCard(ctx, board.ID, columns[0].ID, "ghost", nil, 0); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	cards, err := repo.ListCards(ctx, board.ID)
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestGetCard_Missing(t *testing.T) {
	t.Parallel()

	db := testutil.SetupTestDB(t)
	defer func() { _ = db.Close() }()

	_, err := database.NewRepository(db).GetCard(context.Background(), 9999)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
