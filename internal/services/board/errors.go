package board

import (
	"errors"
	"fmt"
	"math"
)

// Error kinds surfaced by the service. Callers match them with errors.Is.
var (
	ErrNotFound       = errors.New("not found")
	ErrReferential    = errors.New("referential integrity violation")
	ErrStorageTimeout = errors.New("storage timeout")
	ErrValidation     = errors.New("validation error")
)

// Validation errors
var (
	ErrEmptyTitle         = fmt.Errorf("%w: card title cannot be empty", ErrValidation)
	ErrTitleTooLong       = fmt.Errorf("%w: card title cannot exceed %d characters", ErrValidation, MaxTitleLength)
	ErrDescriptionTooLong = fmt.Errorf("%w: card description cannot exceed %d characters", ErrValidation, MaxDescriptionLength)
	ErrEmptyBoardName     = fmt.Errorf("%w: board name cannot be empty", ErrValidation)
	ErrBoardNameTooLong   = fmt.Errorf("%w: board name cannot exceed %d characters", ErrValidation, MaxTitleLength)
	ErrInvalidBoardID     = fmt.Errorf("%w: invalid board ID", ErrValidation)
	ErrInvalidColumnID    = fmt.Errorf("%w: invalid column ID", ErrValidation)
	ErrInvalidCardID      = fmt.Errorf("%w: invalid card ID", ErrValidation)
	ErrInvalidPosition    = fmt.Errorf("%w: invalid position: must be between 0 and %d", ErrValidation, MaxPosition)
)

// Business logic errors
var (
	ErrCardNotFound     = fmt.Errorf("card %w", ErrNotFound)
	ErrBoardNotFound    = fmt.Errorf("board %w", ErrNotFound)
	ErrColumnNotOnBoard = fmt.Errorf("%w: column does not belong to board", ErrReferential)
	ErrCardNotOnBoard   = fmt.Errorf("%w: card does not belong to board", ErrReferential)
	ErrCardNotInColumn  = fmt.Errorf("%w: card is not in the source column", ErrReferential)
	ErrUnknownColumn    = fmt.Errorf("%w: column does not exist", ErrReferential)
)

// Field limits
const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 10000

	// MaxPosition bounds requested positions so shifts never leave the int64 range
	MaxPosition = math.MaxInt32
)
