package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/kanban/internal/models"
)

const cardColumns = `id, board_id, column_id, title, description, position`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (*models.Card, error) {
	card := &models.Card{}
	var description sql.NullString
	if err := row.Scan(
		&card.ID, &card.BoardID, &card.ColumnID,
		&card.Title, &description, &card.Position,
	); err != nil {
		return nil, err
	}
	card.Description = nullStringToPtr(description)
	return card, nil
}

// queryer is satisfied by both *sql.DB and *sql.Tx
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getCard(ctx context.Context, q queryer, id int) (*models.Card, error) {
	return scanCard(q.QueryRowContext(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE id = ?`, id,
	))
}

// CardRepo handles card reads and opens transactions for card writes
type CardRepo struct {
	db *sql.DB
}

// GetByBoard lists a board's cards ordered by column, then position
func (r *CardRepo) GetByBoard(ctx context.Context, boardID int) ([]*models.Card, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+cardColumns+`
		 FROM cards
		 WHERE board_id = ?
		 ORDER BY column_id, position`,
		boardID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := []*models.Card{}
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	return cards, rows.Err()
}

// GetByID returns sql.ErrNoRows when the card does not exist
func (r *CardRepo) GetByID(ctx context.Context, id int) (*models.Card, error) {
	return getCard(ctx, r.db, id)
}

// WithTx runs fn inside a single transaction. Every card write goes through
// here so a logical operation is all-or-nothing.
func (r *CardRepo) WithTx(ctx context.Context, fn func(*CardTx) error) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		return fn(&CardTx{tx: tx})
	})
}

// CardTx exposes the card write primitives bound to one transaction
type CardTx struct {
	tx *sql.Tx
}

// GetCard reads a card inside the transaction
func (c *CardTx) GetCard(ctx context.Context, id int) (*models.Card, error) {
	return getCard(ctx, c.tx, id)
}

// ColumnBoardID returns the board owning the column, or sql.ErrNoRows
func (c *CardTx) ColumnBoardID(ctx context.Context, columnID int) (int, error) {
	var boardID int
	err := c.tx.QueryRowContext(ctx,
		`SELECT board_id FROM columns WHERE id = ?`, columnID,
	).Scan(&boardID)
	return boardID, err
}

// MaxPosition returns the highest position in (board, column); ok is false
// when the column holds no cards.
func (c *CardTx) MaxPosition(ctx context.Context, boardID, columnID int) (int, bool, error) {
	var maxPos sql.NullInt64
	err := c.tx.QueryRowContext(ctx,
		`SELECT MAX(position) FROM cards WHERE board_id = ? AND column_id = ?`,
		boardID, columnID,
	).Scan(&maxPos)
	if err != nil {
		return 0, false, err
	}
	if !maxPos.Valid {
		return 0, false, nil
	}
	return int(maxPos.Int64), true, nil
}

// CountCards counts the cards in (board, column), ignoring excludeID
func (c *CardTx) CountCards(ctx context.Context, boardID, columnID, excludeID int) (int, error) {
	var count int
	err := c.tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM cards WHERE board_id = ? AND column_id = ? AND id != ?`,
		boardID, columnID, excludeID,
	).Scan(&count)
	return count, err
}

// ShiftPositions adds delta to the position of every card in (board, column)
// whose position is >= from.
func (c *CardTx) ShiftPositions(ctx context.Context, boardID, columnID, from, delta int) error {
	_, err := c.tx.ExecContext(ctx,
		`UPDATE cards
		 SET position = position + ?
		 WHERE board_id = ? AND column_id = ? AND position >= ?`,
		delta, boardID, columnID, from,
	)
	return err
}

// PlaceCard sets a card's board, column and position
func (c *CardTx) PlaceCard(ctx context.Context, cardID, boardID, columnID, position int) error {
	_, err := c.tx.ExecContext(ctx,
		`UPDATE cards
		 SET board_id = ?, column_id = ?, position = ?
		 WHERE id = ?`,
		boardID, columnID, position, cardID,
	)
	return err
}

// InsertCard creates a card at the given position and returns the stored row
func (c *CardTx) InsertCard(ctx context.Context, boardID, columnID int, title string, description *string, position int) (*models.Card, error) {
	result, err := c.tx.ExecContext(ctx,
		`INSERT INTO cards (board_id, column_id, title, description, position)
		 VALUES (?, ?, ?, ?, ?)`,
		boardID, columnID, title, ptrToNullString(description), position,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return c.GetCard(ctx, int(id))
}
