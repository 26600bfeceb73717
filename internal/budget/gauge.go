// Package budget meters how many guesses a user may submit. The balance refills
// lazily: every read credits the whole minutes elapsed since the last check.
package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/passblock-backend/internal/clock"
	"github.com/goodnatureofminers/passblock-backend/internal/model"
	"go.uber.org/zap"
)

// maxRefillRaces bounds how often a refill re-reads the user after losing a
// concurrent checkpoint update.
const maxRefillRaces = 3

// Caps are the balance limits per tier.
type Caps struct {
	Anonymous  int
	Registered int
}

// Cap returns the limit of tier.
func (c Caps) Cap(tier model.Tier) int {
	if tier == model.TierRegistered {
		return c.Registered
	}
	return c.Anonymous
}

// Gauge is the compute-power budget of every user.
type Gauge struct {
	store           Store
	metrics         Metrics
	clock           clock.Clock
	caps            Caps
	refillPerMinute int
	logger          *zap.Logger
}

// NewGauge constructs a Gauge.
func NewGauge(store Store, metrics Metrics, clk clock.Clock, caps Caps, refillPerMinute int, logger *zap.Logger) (*Gauge, error) {
	if store == nil {
		return nil, errors.New("budget store is required")
	}
	if metrics == nil {
		return nil, errors.New("budget metrics is required")
	}
	if clk == nil {
		return nil, errors.New("budget clock is required")
	}
	if caps.Anonymous < 1 || caps.Registered < 1 {
		return nil, fmt.Errorf("budget caps must be positive, got %+v", caps)
	}
	if refillPerMinute < 0 {
		return nil, fmt.Errorf("refill per minute must not be negative, got %d", refillPerMinute)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Gauge{
		store:           store,
		metrics:         metrics,
		clock:           clk,
		caps:            caps,
		refillPerMinute: refillPerMinute,
		logger:          logger.Named("budget"),
	}, nil
}

// Register creates userID with a full balance.
func (g *Gauge) Register(ctx context.Context, userID uint64, tier model.Tier) (model.Budget, error) {
	if userID == 0 {
		return model.Budget{}, fmt.Errorf("user id must be positive: %w", model.ErrInvalidArgument)
	}
	if !tier.Valid() {
		return model.Budget{}, fmt.Errorf("unknown tier %q: %w", tier, model.ErrInvalidArgument)
	}
	now := g.clock.Now()
	limit := g.caps.Cap(tier)
	if err := g.store.CreateUser(ctx, model.User{
		ID:                  userID,
		Tier:                tier,
		CPBalance:           limit,
		LastRefillCheckedAt: now,
		CreatedAt:           now,
	}); err != nil {
		return model.Budget{}, fmt.Errorf("register user %d: %w", userID, err)
	}
	g.logger.Info("user registered", zap.Uint64("user_id", userID), zap.String("tier", string(tier)))
	return model.Budget{UserID: userID, Balance: limit, Cap: limit}, nil
}

// Budget returns the refilled balance of userID.
func (g *Gauge) Budget(ctx context.Context, userID uint64) (model.Budget, error) {
	user, err := g.refill(ctx, userID)
	if err != nil {
		return model.Budget{}, err
	}
	return model.Budget{UserID: userID, Balance: user.CPBalance, Cap: g.caps.Cap(user.Tier)}, nil
}

// CurrentBalance returns the refilled balance of userID.
func (g *Gauge) CurrentBalance(ctx context.Context, userID uint64) (int, error) {
	b, err := g.Budget(ctx, userID)
	if err != nil {
		return 0, err
	}
	return b.Balance, nil
}

// TryConsume spends one unit of userID's budget. It reports false when the
// balance is exhausted; concurrent callers never spend more than the balance.
func (g *Gauge) TryConsume(ctx context.Context, userID uint64) (ok bool, err error) {
	defer func() {
		g.metrics.ObserveConsume(ok, err)
	}()

	if _, err = g.refill(ctx, userID); err != nil {
		return false, err
	}
	ok, err = g.store.ConsumeBudget(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("consume budget of user %d: %w", userID, err)
	}
	return ok, nil
}

// Refund returns one unit to userID without crossing the tier cap.
func (g *Gauge) Refund(ctx context.Context, userID uint64) (err error) {
	defer func() {
		g.metrics.ObserveRefund(err)
	}()

	user, err := g.store.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("refund user %d: %w", userID, err)
	}
	if err = g.store.RefundBudget(ctx, userID, g.caps.Cap(user.Tier)); err != nil {
		return fmt.Errorf("refund user %d: %w", userID, err)
	}
	return nil
}

// refill credits the minutes elapsed since the last checkpoint and moves the
// checkpoint to now. A lost checkpoint race means another request refilled
// first, so the user is re-read.
func (g *Gauge) refill(ctx context.Context, userID uint64) (model.User, error) {
	for range maxRefillRaces {
		user, err := g.store.GetUser(ctx, userID)
		if err != nil {
			return model.User{}, fmt.Errorf("load budget of user %d: %w", userID, err)
		}

		now := g.clock.Now()
		minutes := elapsedMinutes(user.LastRefillCheckedAt, now)
		if minutes <= 0 {
			return user, nil
		}

		limit := g.caps.Cap(user.Tier)
		credit := minutes * g.refillPerMinute
		applied, err := g.store.RefillBudget(ctx, userID, limit, credit, user.LastRefillCheckedAt, now)
		if err != nil {
			return model.User{}, fmt.Errorf("refill budget of user %d: %w", userID, err)
		}
		if applied {
			g.metrics.ObserveRefill(minutes)
			user.CPBalance = min(limit, max(user.CPBalance+credit, 0))
			user.LastRefillCheckedAt = now
			return user, nil
		}
		g.logger.Debug("refill checkpoint moved concurrently", zap.Uint64("user_id", userID))
	}

	user, err := g.store.GetUser(ctx, userID)
	if err != nil {
		return model.User{}, fmt.Errorf("load budget of user %d: %w", userID, err)
	}
	return user, nil
}

func elapsedMinutes(since, now time.Time) int {
	if !now.After(since) {
		return 0
	}
	return int(now.Sub(since) / time.Minute)
}
