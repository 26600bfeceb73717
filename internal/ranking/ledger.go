// Package ranking accumulates the points users win and ranks them by total.
package ranking

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/passblock-backend/internal/model"
)

type Store interface {
	AddPoints(ctx context.Context, id uint64, points int64) (int64, error)
	UserRank(ctx context.Context, id uint64) (model.Rank, error)
}

// Ledger owns the total points of every user.
type Ledger struct {
	store Store
}

// NewLedger constructs a Ledger.
func NewLedger(store Store) (*Ledger, error) {
	if store == nil {
		return nil, errors.New("ranking store is required")
	}
	return &Ledger{store: store}, nil
}

// Credit atomically adds points to userID and returns the new total.
// Totals only grow, so negative points are rejected.
func (l *Ledger) Credit(ctx context.Context, userID uint64, points int64) (int64, error) {
	if points < 0 {
		return 0, fmt.Errorf("credit %d points: %w", points, model.ErrInvalidArgument)
	}
	total, err := l.store.AddPoints(ctx, userID, points)
	if err != nil {
		return 0, fmt.Errorf("credit user %d: %w", userID, err)
	}
	return total, nil
}

// Rank returns the total and 1-based rank of userID.
func (l *Ledger) Rank(ctx context.Context, userID uint64) (model.Rank, error) {
	rank, err := l.store.UserRank(ctx, userID)
	if err != nil {
		return model.Rank{}, fmt.Errorf("rank user %d: %w", userID, err)
	}
	return rank, nil
}
