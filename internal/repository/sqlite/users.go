package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/passblock-backend/internal/model"
	"gorm.io/gorm"
)

// CreateUser inserts a user.
func (r *Repository) CreateUser(ctx context.Context, u model.User) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("create_user", err, start)
	}()

	row := userRow{
		ID:                  u.ID,
		Tier:                string(u.Tier),
		CPBalance:           u.CPBalance,
		LastRefillCheckedAt: utc(u.LastRefillCheckedAt),
		TotalPoints:         u.TotalPoints,
		CreatedAt:           utc(u.CreatedAt),
	}
	if err = r.conn(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("user %d already exists: %w", u.ID, model.ErrInvalidArgument)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetUser loads a user by id.
func (r *Repository) GetUser(ctx context.Context, id uint64) (model.User, error) {
	start := time.Now()
	var row userRow
	if err := r.conn(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		err = wrapLookup(err, fmt.Sprintf("get user %d", id))
		r.metrics.Observe("get_user", err, start)
		return model.User{}, err
	}
	r.metrics.Observe("get_user", nil, start)
	return row.toModel(), nil
}

// RefillBudget credits minutes of refill, capped at limit, if the refill
// checkpoint still equals checkedAt. It reports whether the update applied.
func (r *Repository) RefillBudget(ctx context.Context, id uint64, limit, minutes int, checkedAt, now time.Time) (applied bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("refill_budget", err, start)
	}()

	res := r.conn(ctx).Model(&userRow{}).
		Where("id = ? AND last_refill_checked_at = ?", id, utc(checkedAt)).
		Updates(map[string]any{
			"cp_balance":             gorm.Expr("MAX(MIN(?, cp_balance + ?), 0)", limit, minutes),
			"last_refill_checked_at": utc(now),
		})
	if err = res.Error; err != nil {
		return false, fmt.Errorf("refill budget of user %d: %w", id, err)
	}
	return res.RowsAffected == 1, nil
}

// ConsumeBudget decrements the balance by one iff it is at least one.
func (r *Repository) ConsumeBudget(ctx context.Context, id uint64) (consumed bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("consume_budget", err, start)
	}()

	res := r.conn(ctx).Model(&userRow{}).
		Where("id = ? AND cp_balance >= 1", id).
		Update("cp_balance", gorm.Expr("cp_balance - 1"))
	if err = res.Error; err != nil {
		return false, fmt.Errorf("consume budget of user %d: %w", id, err)
	}
	return res.RowsAffected == 1, nil
}

// RefundBudget increments the balance by one without crossing limit.
func (r *Repository) RefundBudget(ctx context.Context, id uint64, limit int) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("refund_budget", err, start)
	}()

	res := r.conn(ctx).Model(&userRow{}).
		Where("id = ?", id).
		Update("cp_balance", gorm.Expr("MIN(cp_balance + 1, ?)", limit))
	if err = res.Error; err != nil {
		return fmt.Errorf("refund budget of user %d: %w", id, err)
	}
	if res.RowsAffected == 0 {
		err = fmt.Errorf("refund budget of user %d: %w", id, model.ErrNotFound)
		return err
	}
	return nil
}

// AddPoints atomically increments the user's total and returns the new total.
func (r *Repository) AddPoints(ctx context.Context, id uint64, points int64) (total int64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("add_points", err, start)
	}()

	var totals []int64
	err = r.conn(ctx).
		Raw("UPDATE users SET total_points = total_points + ? WHERE id = ? RETURNING total_points", points, id).
		Scan(&totals).Error
	if err != nil {
		return 0, fmt.Errorf("add points to user %d: %w", id, err)
	}
	if len(totals) == 0 {
		err = fmt.Errorf("add points to user %d: %w", id, model.ErrNotFound)
		return 0, err
	}
	return totals[0], nil
}

// UserRank returns the user's total and its 1-based rank. Ties share a rank.
func (r *Repository) UserRank(ctx context.Context, id uint64) (rank model.Rank, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("user_rank", err, start)
	}()

	var row userRow
	if err = r.conn(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		err = wrapLookup(err, fmt.Sprintf("get user %d", id))
		return model.Rank{}, err
	}

	var ahead int64
	if err = r.conn(ctx).Model(&userRow{}).Where("total_points > ?", row.TotalPoints).Count(&ahead).Error; err != nil {
		return model.Rank{}, fmt.Errorf("count users ahead of %d: %w", id, err)
	}
	return model.Rank{UserID: id, TotalPoints: row.TotalPoints, Rank: ahead + 1}, nil
}
