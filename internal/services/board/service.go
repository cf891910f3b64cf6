// Package board implements the kanban board operations: listing, card
// creation and card moves, each as one atomic unit of work.
package board

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/position"
)

// DefaultOpTimeout bounds an operation when no timeout is configured
const DefaultOpTimeout = 10 * time.Second

// Service defines all board-related business operations
type Service interface {
	// Read operations
	ListBoards(ctx context.Context) ([]*models.Board, error)
	GetBoard(ctx context.Context, boardID int) (*models.Board, error)
	ListColumns(ctx context.Context, boardID int) ([]*models.Column, error)
	ListCards(ctx context.Context, boardID int) ([]*models.Card, error)
	GetCard(ctx context.Context, cardID int) (*models.Card, error)

	// Write operations
	CreateBoard(ctx context.Context, name string) (*models.Board, error)
	CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error)
	MoveCard(ctx context.Context, req MoveCardRequest) (*models.Card, error)

	// Bootstrap creates the schema and the default board. It is idempotent.
	Bootstrap(ctx context.Context) (*models.Board, error)
}

// CreateCardRequest encapsulates all data needed to create a card
type CreateCardRequest struct {
	BoardID     int
	ColumnID    int
	Title       string
	Description *string // Optional: nil means no description
}

// MoveCardRequest encapsulates all data needed to move a card.
// BoardID and FromColumnID must match the card's stored location.
type MoveCardRequest struct {
	CardID       int
	BoardID      int
	FromColumnID int
	ToColumnID   int
	NewPosition  int
}

// Recorder observes completed operations
type Recorder interface {
	RecordOperation(op string, err error, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) RecordOperation(string, error, time.Duration) {}

// Option configures the service
type Option func(*service)

// WithPolicy sets the move policy
func WithPolicy(p position.Policy) Option {
	return func(s *service) {
		s.policy = p
	}
}

// WithOpTimeout bounds every operation; zero keeps the default
func WithOpTimeout(d time.Duration) Option {
	return func(s *service) {
		if d > 0 {
			s.opTimeout = d
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRecorder sets the operation recorder
func WithRecorder(r Recorder) Option {
	return func(s *service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// service implements Service interface
type service struct {
	repo      database.DataStore
	policy    position.Policy
	opTimeout time.Duration
	logger    *slog.Logger
	recorder  Recorder
}

// NewService creates a new board service
func NewService(repo database.DataStore, opts ...Option) Service {
	s := &service{
		repo:      repo,
		policy:    position.Compact,
		opTimeout: DefaultOpTimeout,
		logger:    slog.Default(),
		recorder:  nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// run applies the operation timeout, classifies the error and records the outcome
func (s *service) run(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	start := time.Now()
	err := fn(ctx)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) && !errors.Is(err, ErrStorageTimeout) {
		// the driver reports an interrupted statement rather than the deadline
		err = fmt.Errorf("%w: %w", ErrStorageTimeout, err)
	}
	err = classify(err)
	s.recorder.RecordOperation(op, err, time.Since(start))

	if err != nil && !errors.Is(err, ErrValidation) && !errors.Is(err, ErrNotFound) {
		s.logger.Warn("board operation failed", "op", op, "error", err)
	}
	return err
}

// classify maps raw storage failures onto the service error kinds
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrValidation), errors.Is(err, ErrNotFound),
		errors.Is(err, ErrReferential), errors.Is(err, ErrStorageTimeout),
		errors.Is(err, database.ErrSchema):
		return err
	case errors.Is(err, context.DeadlineExceeded), database.IsBusy(err):
		return fmt.Errorf("%w: %w", ErrStorageTimeout, err)
	case database.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %w", ErrReferential, err)
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	default:
		return err
	}
}

// Bootstrap creates the schema and makes sure the default board exists
func (s *service) Bootstrap(ctx context.Context) (*models.Board, error) {
	var board *models.Board
	err := s.run(ctx, "bootstrap", func(ctx context.Context) error {
		if err := s.repo.EnsureSchema(ctx); err != nil {
			return err
		}
		var err error
		board, err = s.repo.EnsureDefaultBoard(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return board, nil
}

// ListBoards returns every board ordered by id
func (s *service) ListBoards(ctx context.Context) ([]*models.Board, error) {
	var boards []*models.Board
	err := s.run(ctx, "list_boards", func(ctx context.Context) error {
		var err error
		boards, err = s.repo.ListBoards(ctx)
		if err != nil {
			return fmt.Errorf("failed to list boards: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return boards, nil
}

// ListColumns returns a board's columns by position. A missing board yields
// an empty slice.
func (s *service) ListColumns(ctx context.Context, boardID int) ([]*models.Column, error) {
	var columns []*models.Column
	err := s.run(ctx, "list_columns", func(ctx context.Context) error {
		var err error
		columns, err = s.repo.ListColumns(ctx, boardID)
		if err != nil {
			return fmt.Errorf("failed to list columns: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return columns, nil
}

// ListCards returns a board's cards by column, then position. A missing board
// yields an empty slice.
func (s *service) ListCards(ctx context.Context, boardID int) ([]*models.Card, error) {
	var cards []*models.Card
	err := s.run(ctx, "list_cards", func(ctx context.Context) error {
		var err error
		cards, err = s.repo.ListCards(ctx, boardID)
		if err != nil {
			return fmt.Errorf("failed to list cards: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cards, nil
}

// GetBoard returns a single board
func (s *service) GetBoard(ctx context.Context, boardID int) (*models.Board, error) {
	if boardID <= 0 {
		return nil, ErrInvalidBoardID
	}

	var board *models.Board
	err := s.run(ctx, "get_board", func(ctx context.Context) error {
		var err error
		board, err = s.repo.GetBoard(ctx, boardID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBoardNotFound
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return board, nil
}

// GetCard returns a single card
func (s *service) GetCard(ctx context.Context, cardID int) (*models.Card, error) {
	if cardID <= 0 {
		return nil, ErrInvalidCardID
	}

	var card *models.Card
	err := s.run(ctx, "get_card", func(ctx context.Context) error {
		var err error
		card, err = s.repo.GetCard(ctx, cardID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCardNotFound
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

// CreateBoard creates a board with the default column set
func (s *service) CreateBoard(ctx context.Context, name string) (*models.Board, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyBoardName
	}
	if utf8.RuneCountInString(name) > MaxTitleLength {
		return nil, ErrBoardNameTooLong
	}

	var board *models.Board
	err := s.run(ctx, "create_board", func(ctx context.Context) error {
		var err error
		board, err = s.repo.CreateBoard(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to create board: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("board created", "board_id", board.ID, "name", board.Name)
	return board, nil
}

// CreateCard appends a card to the end of a column
func (s *service) CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error) {
	req, err := s.validateCreateCard(req)
	if err != nil {
		return nil, err
	}

	var card *models.Card
	err = s.run(ctx, "create_card", func(ctx context.Context) error {
		return s.repo.WithCardTx(ctx, func(tx *database.CardTx) error {
			if err := checkColumnOnBoard(ctx, tx, req.ColumnID, req.BoardID); err != nil {
				return err
			}

			pos, err := position.Append(ctx, tx, req.BoardID, req.ColumnID)
			if err != nil {
				return err
			}

			card, err = tx.InsertCard(ctx, req.BoardID, req.ColumnID, req.Title, req.Description, pos)
			if err != nil {
				return fmt.Errorf("failed to create card: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("card created",
		"card_id", card.ID, "board_id", card.BoardID,
		"column_id", card.ColumnID, "position", card.Position)
	return card, nil
}

// MoveCard moves a card to a position in a column of the same board and
// returns its post-move state
func (s *service) MoveCard(ctx context.Context, req MoveCardRequest) (*models.Card, error) {
	if err := validateMoveCard(req); err != nil {
		return nil, err
	}

	var card *models.Card
	err := s.run(ctx, "move_card", func(ctx context.Context) error {
		return s.repo.WithCardTx(ctx, func(tx *database.CardTx) error {
			current, err := tx.GetCard(ctx, req.CardID)
			if errors.Is(err, sql.ErrNoRows) {
				return ErrCardNotFound
			}
			if err != nil {
				return fmt.Errorf("failed to load card: %w", err)
			}

			if current.BoardID != req.BoardID {
				return ErrCardNotOnBoard
			}
			if current.ColumnID != req.FromColumnID {
				return ErrCardNotInColumn
			}
			if err := checkColumnOnBoard(ctx, tx, req.ToColumnID, req.BoardID); err != nil {
				return err
			}

			from := position.Placement{
				BoardID:  current.BoardID,
				ColumnID: current.ColumnID,
				Position: current.Position,
			}
			target := position.Placement{
				BoardID:  req.BoardID,
				ColumnID: req.ToColumnID,
				Position: req.NewPosition,
			}
			if _, err := position.Move(ctx, tx, s.policy, req.CardID, from, target); err != nil {
				return err
			}

			card, err = tx.GetCard(ctx, req.CardID)
			if err != nil {
				return fmt.Errorf("failed to reload card: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("card moved",
		"card_id", card.ID, "from_column_id", req.FromColumnID,
		"to_column_id", card.ColumnID, "position", card.Position,
		"policy", s.policy.String())
	return card, nil
}

// checkColumnOnBoard fails with a referential error unless columnID is a
// column of boardID
func checkColumnOnBoard(ctx context.Context, tx *database.CardTx, columnID, boardID int) error {
	owner, err := tx.ColumnBoardID(ctx, columnID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUnknownColumn
	}
	if err != nil {
		return fmt.Errorf("failed to look up column: %w", err)
	}
	if owner != boardID {
		return ErrColumnNotOnBoard
	}
	return nil
}

// validateCreateCard checks and normalizes a create request
func (s *service) validateCreateCard(req CreateCardRequest) (CreateCardRequest, error) {
	if req.BoardID <= 0 {
		return req, ErrInvalidBoardID
	}
	if req.ColumnID <= 0 {
		return req, ErrInvalidColumnID
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return req, ErrEmptyTitle
	}
	if utf8.RuneCountInString(req.Title) > MaxTitleLength {
		return req, ErrTitleTooLong
	}

	if req.Description != nil {
		if utf8.RuneCountInString(*req.Description) > MaxDescriptionLength {
			return req, ErrDescriptionTooLong
		}
	}

	return req, nil
}

// validateMoveCard checks a move request
func validateMoveCard(req MoveCardRequest) error {
	if req.CardID <= 0 {
		return ErrInvalidCardID
	}
	if req.BoardID <= 0 {
		return ErrInvalidBoardID
	}
	if req.FromColumnID <= 0 || req.ToColumnID <= 0 {
		return ErrInvalidColumnID
	}
	if req.NewPosition < 0 || req.NewPosition > MaxPosition {
		return ErrInvalidPosition
	}
	return nil
}
