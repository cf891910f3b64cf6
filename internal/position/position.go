// Package position keeps card positions within a column dense and zero-based
// across inserts and moves.
package position

import (
	"context"
	"fmt"
)

// Store is the set of transaction-scoped primitives the algorithms need.
// database.CardTx implements it.
type Store interface {
	// MaxPosition returns the highest position in (board, column); ok is
	// false when the column is empty.
	MaxPosition(ctx context.Context, boardID, columnID int) (pos int, ok bool, err error)
	// CountCards counts cards in (board, column), ignoring excludeID.
	CountCards(ctx context.Context, boardID, columnID, excludeID int) (int, error)
	// ShiftPositions adds delta to every position >= from in (board, column).
	ShiftPositions(ctx context.Context, boardID, columnID, from, delta int) error
	// PlaceCard sets a card's board, column and position.
	PlaceCard(ctx context.Context, cardID, boardID, columnID, position int) error
}

// Placement locates a card slot
type Placement struct {
	BoardID  int
	ColumnID int
	Position int
}

// Policy selects how a move treats the source column and out-of-range targets
type Policy struct {
	// CloseSourceGap shifts down the cards that followed the moved card in
	// its old column.
	CloseSourceGap bool
	// ClampTarget limits the target position to the number of other cards
	// in the target column.
	ClampTarget bool
}

var (
	// Compact keeps every column at positions 0..n-1 after each move
	Compact = Policy{CloseSourceGap: true, ClampTarget: true}

	// Legacy shifts the target column and places the card, nothing else.
	// The source column keeps a hole and targets past the end stay sparse.
	Legacy = Policy{}
)

// Policy names accepted by ParsePolicy
const (
	PolicyCompact = "compact"
	PolicyLegacy  = "legacy"
)

// ParsePolicy maps a configuration value to a Policy
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "", PolicyCompact:
		return Compact, nil
	case PolicyLegacy:
		return Legacy, nil
	default:
		return Policy{}, fmt.Errorf("unknown move policy %q", name)
	}
}

// String returns the configuration name of the policy
func (p Policy) String() string {
	switch p {
	case Compact:
		return PolicyCompact
	case Legacy:
		return PolicyLegacy
	default:
		return fmt.Sprintf("custom(close=%t,clamp=%t)", p.CloseSourceGap, p.ClampTarget)
	}
}

// Append returns the position for a card added to the end of (board, column)
func Append(ctx context.Context, s Store, boardID, columnID int) (int, error) {
	maxPos, ok, err := s.MaxPosition(ctx, boardID, columnID)
	if err != nil {
		return 0, fmt.Errorf("failed to read max position: %w", err)
	}
	if !ok {
		return 0, nil
	}
	return maxPos + 1, nil
}

// Move relocates cardID from its current slot to target and returns where it
// landed. The caller must run it inside one transaction and must reject
// negative target positions beforehand.
//
// The target column is opened at target.Position before the card is placed.
// In a same-column move the card itself may be shifted by that step; placing
// it afterwards overwrites its position, so the net effect is the same as
// shifting everyone else.
func Move(ctx context.Context, s Store, policy Policy, cardID int, from, target Placement) (Placement, error) {
	if policy.CloseSourceGap {
		if err := s.ShiftPositions(ctx, from.BoardID, from.ColumnID, from.Position+1, -1); err != nil {
			return Placement{}, fmt.Errorf("failed to close source gap: %w", err)
		}
	}

	if policy.ClampTarget {
		others, err := s.CountCards(ctx, target.BoardID, target.ColumnID, cardID)
		if err != nil {
			return Placement{}, fmt.Errorf("failed to count target cards: %w", err)
		}
		if target.Position > others {
			target.Position = others
		}
	}

	if err := s.ShiftPositions(ctx, target.BoardID, target.ColumnID, target.Position, 1); err != nil {
		return Placement{}, fmt.Errorf("failed to open target slot: %w", err)
	}

	if err := s.PlaceCard(ctx, cardID, target.BoardID, target.ColumnID, target.Position); err != nil {
		return Placement{}, fmt.Errorf("failed to place card: %w", err)
	}

	return target, nil
}
